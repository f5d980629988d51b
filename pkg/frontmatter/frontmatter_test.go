package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := `---
name: nested
enabled: yes
retries: 3
ratio: 0.5
tags:
  - a
  - b
extra:
  owner: ops
  limits:
    cpu: 2
---

# Body
`
	fm, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "nested", fm["name"])
	assert.Equal(t, true, fm["enabled"])
	assert.Equal(t, []any{"a", "b"}, fm["tags"])

	extra, ok := fm["extra"].(map[string]any)
	require.True(t, ok, "nested maps should be normalized to map[string]any")
	assert.Equal(t, "ops", extra["owner"])
	limits, ok := extra["limits"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, limits["cpu"])

	retries, ok := fm.Scalar("retries")
	assert.True(t, ok)
	assert.Equal(t, "3", retries)

	ratio, ok := fm.Scalar("ratio")
	assert.True(t, ok)
	assert.Equal(t, "0.5", ratio)
}

func TestParse_NoBlock(t *testing.T) {
	fm, err := Parse("# Just content\nNo frontmatter here.\n")
	require.NoError(t, err)
	assert.NotNil(t, fm)
	assert.Empty(t, fm)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse("---\nname: [unterminated\n---\nbody\n")
	assert.Error(t, err)
}

func TestFrontmatter_String(t *testing.T) {
	fm := Frontmatter{"name": "x", "count": 3}

	s, ok := fm.String("name")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = fm.String("count")
	assert.False(t, ok)

	_, ok = fm.String("missing")
	assert.False(t, ok)
}

func TestFrontmatter_Scalar(t *testing.T) {
	fm := Frontmatter{"s": "on", "b": false, "i": 1, "f": 2.25, "l": []any{"x"}}

	tests := []struct {
		key      string
		expected string
		ok       bool
	}{
		{key: "s", expected: "on", ok: true},
		{key: "b", expected: "false", ok: true},
		{key: "i", expected: "1", ok: true},
		{key: "f", expected: "2.25", ok: true},
		{key: "l", expected: "", ok: false},
		{key: "missing", expected: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := fm.Scalar(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFrontmatter_Bool(t *testing.T) {
	fm := Frontmatter{"on": "On", "off": "0", "typed": true, "junk": "perhaps"}

	assert.True(t, fm.Bool("on", false))
	assert.False(t, fm.Bool("off", true))
	assert.True(t, fm.Bool("typed", false))
	assert.True(t, fm.Bool("junk", true))
	assert.False(t, fm.Bool("junk", false))
	assert.True(t, fm.Bool("missing", true))
}

func TestFrontmatter_Decode(t *testing.T) {
	type header struct {
		Name        string `mapstructure:"name"`
		Description string `mapstructure:"description"`
	}

	t.Run("ignores unknown keys", func(t *testing.T) {
		var h header
		fm := Frontmatter{"name": "n", "description": "d", "metadata": "{}"}
		require.NoError(t, fm.Decode(&h))
		assert.Equal(t, header{Name: "n", Description: "d"}, h)
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		var h header
		fm := Frontmatter{"name": 12}
		assert.Error(t, fm.Decode(&h))
	})
}

func TestBody(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "with frontmatter",
			input: `---
name: test
description: desc
---

# Content

Body text.`,
			expected: `# Content

Body text.`,
		},
		{
			name:     "no frontmatter",
			input:    "# Just content\nNo frontmatter.",
			expected: "# Just content\nNo frontmatter.",
		},
		{
			name: "incomplete frontmatter",
			input: `---
name: test
# No closing ---`,
			expected: `---
name: test
# No closing ---`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Body(tt.input))
		})
	}
}
