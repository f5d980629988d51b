package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    any
		expected bool
		ok       bool
	}{
		{input: true, expected: true, ok: true},
		{input: false, expected: false, ok: true},
		{input: "true", expected: true, ok: true},
		{input: " YES ", expected: true, ok: true},
		{input: "1", expected: true, ok: true},
		{input: "on", expected: true, ok: true},
		{input: "False", expected: false, ok: true},
		{input: "no", expected: false, ok: true},
		{input: "0", expected: false, ok: true},
		{input: "off", expected: false, ok: true},
		{input: "", expected: false, ok: false},
		{input: "enabled", expected: false, ok: false},
		{input: 1, expected: false, ok: false},
		{input: nil, expected: false, ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseBool(tt.input)
		assert.Equal(t, tt.ok, ok, "input %#v", tt.input)
		assert.Equal(t, tt.expected, got, "input %#v", tt.input)
	}
}

func TestNormalizeStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "comma string", input: "a, b ,c", expected: []string{"a", "b", "c"}},
		{name: "array", input: []any{"a", "b", "c"}, expected: []string{"a", "b", "c"}},
		{name: "trims and drops empties", input: []any{" a ", "", "   ", "b"}, expected: []string{"a", "b"}},
		{name: "keeps duplicates and order", input: "z,a,z", expected: []string{"z", "a", "z"}},
		{name: "stringifies scalars", input: []any{1.0, 2.5, true, 7}, expected: []string{"1", "2.5", "true", "7"}},
		{name: "drops nulls", input: []any{nil, "x"}, expected: []string{"x"}},
		{name: "string slice", input: []string{" x", "y "}, expected: []string{"x", "y"}},
		{name: "empty string", input: "", expected: []string{}},
		{name: "only commas", input: " , ,", expected: []string{}},
		{name: "nil", input: nil, expected: []string{}},
		{name: "number", input: 42.0, expected: []string{}},
		{name: "boolean", input: true, expected: []string{}},
		{name: "object", input: map[string]any{"a": "b"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStringList(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeStringList_RepresentationInvariant(t *testing.T) {
	assert.Equal(t, NormalizeStringList([]any{"a", "b", "c"}), NormalizeStringList("a, b ,c"))
}
