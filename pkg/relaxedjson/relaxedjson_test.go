package relaxedjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RelaxedSyntax(t *testing.T) {
	result := Parse(`{
		// line comment
		openclaw: {
			emoji: "🦞", /* block comment */
			install: [1, 2,],
		},
	}`)
	require.True(t, result.OK(), "unexpected error: %v", result.Err())
	assert.NoError(t, result.Err())

	obj, err := result.Object()
	require.NoError(t, err)

	ns, ok := obj["openclaw"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "🦞", ns["emoji"])
	assert.Equal(t, []any{1.0, 2.0}, ns["install"])
}

func TestParse_Malformed(t *testing.T) {
	for _, raw := range []string{"", "{", "{openclaw: }", "not json", "{a: 1} trailing"} {
		t.Run(raw, func(t *testing.T) {
			var result Result
			assert.NotPanics(t, func() { result = Parse(raw) })
			assert.False(t, result.OK())
			assert.Error(t, result.Err())
			assert.Nil(t, result.Value())

			_, err := result.Object()
			assert.Error(t, err)
		})
	}
}

func TestResult_ObjectRequiresObject(t *testing.T) {
	for _, raw := range []string{`[1, 2]`, `"text"`, `12`, `null`, `true`} {
		t.Run(raw, func(t *testing.T) {
			result := Parse(raw)
			require.True(t, result.OK())

			_, err := result.Object()
			assert.ErrorIs(t, err, ErrNotObject)
		})
	}
}
