// Package frontmatter extracts the YAML metadata block that prefixes a unit
// definition (SKILL.md, HOOK.md) and offers the lookups shared by the skill
// and hook resolvers: strict string access, permissive booleans and
// string-list normalization.
package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Frontmatter is the flat key/value mapping parsed from a metadata block.
// Values are untyped: strings, booleans, numbers, []any or map[string]any.
type Frontmatter map[string]any

// Parse extracts the frontmatter block from content. Content without a
// leading block yields an empty mapping.
func Parse(content string) (Frontmatter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return Frontmatter{}, errors.Wrap(err, "failed to parse markdown")
	}

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return Frontmatter{}, errors.Wrap(err, "failed to parse frontmatter")
	}

	fm := make(Frontmatter, len(metaData))
	for key, value := range metaData {
		fm[key] = normalizeValue(value)
	}
	return fm, nil
}

// normalizeValue converts the map[interface{}]interface{} values produced by
// the YAML decoder into map[string]any so nested structures can be consumed
// like decoded JSON.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case []interface{}:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// String returns the value at key when it is a string.
func (f Frontmatter) String(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok
}

// Scalar returns the textual form of a scalar value at key. YAML types bare
// tokens such as `yes` or `1`, so booleans and numbers are rendered back to
// text before permissive parsing.
func (f Frontmatter) Scalar(key string) (string, bool) {
	value, exists := f[key]
	if !exists {
		return "", false
	}
	return scalarString(value)
}

// Bool reads key with permissive boolean parsing, substituting fallback when
// the key is absent or its value cannot be interpreted.
func (f Frontmatter) Bool(key string, fallback bool) bool {
	raw, ok := f.Scalar(key)
	if !ok {
		return fallback
	}
	parsed, ok := ParseBool(raw)
	if !ok {
		return fallback
	}
	return parsed
}

// Decode copies frontmatter keys into out using its mapstructure tags.
// Mismatched types are reported, unknown keys are ignored.
func (f Frontmatter) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: false,
		ErrorUnused:      false,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create frontmatter decoder")
	}
	if err := decoder.Decode(map[string]any(f)); err != nil {
		return errors.Wrap(err, "failed to decode frontmatter")
	}
	return nil
}

// Body strips the frontmatter block and returns the remaining markdown.
func Body(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
