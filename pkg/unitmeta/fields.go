package unitmeta

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/openclaw/unitmeta/pkg/frontmatter"
)

// FieldError reports a payload field whose value has the wrong type. The
// field is treated as absent.
type FieldError struct {
	Path     string
	Expected string
	Got      any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, typeName(e.Got))
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func stringField(obj map[string]any, path, key string) (*string, error) {
	raw, exists := obj[key]
	if !exists {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &FieldError{Path: path + "." + key, Expected: "string", Got: raw}
	}
	return &s, nil
}

func boolField(obj map[string]any, path, key string) (*bool, error) {
	raw, exists := obj[key]
	if !exists {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, &FieldError{Path: path + "." + key, Expected: "boolean", Got: raw}
	}
	return &b, nil
}

// intField accepts non-negative whole numbers that fit in an int; the JSON5
// decoder yields float64.
func intField(obj map[string]any, path, key string) (*int, error) {
	raw, exists := obj[key]
	if !exists {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok || math.IsNaN(f) || f != math.Trunc(f) || f < 0 || f >= float64(math.MaxInt) {
		return nil, &FieldError{Path: path + "." + key, Expected: "whole number", Got: raw}
	}
	n := int(f)
	return &n, nil
}

func objectField(obj map[string]any, path, key string) (map[string]any, error) {
	raw, exists := obj[key]
	if !exists || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &FieldError{Path: path + "." + key, Expected: "object", Got: raw}
	}
	return m, nil
}

// fields runs per-field extraction against one object and accumulates the
// failures, so a bad field never voids its siblings.
type fields struct {
	obj  map[string]any
	path string
	errs *multierror.Error
}

func newFields(obj map[string]any, path string) *fields {
	return &fields{obj: obj, path: path}
}

func (f *fields) record(err error) {
	if err != nil {
		f.errs = multierror.Append(f.errs, err)
	}
}

func (f *fields) str(key string) *string {
	if key == "" {
		return nil
	}
	v, err := stringField(f.obj, f.path, key)
	f.record(err)
	return v
}

func (f *fields) boolean(key string) *bool {
	v, err := boolField(f.obj, f.path, key)
	f.record(err)
	return v
}

func (f *fields) integer(key string) *int {
	v, err := intField(f.obj, f.path, key)
	f.record(err)
	return v
}

func (f *fields) object(key string) map[string]any {
	v, err := objectField(f.obj, f.path, key)
	f.record(err)
	return v
}

// list normalizes a list-shaped field; it never fails.
func (f *fields) list(key string) []string {
	return frontmatter.NormalizeStringList(f.obj[key])
}

// optionalList is list with the empty result collapsed to nil.
func (f *fields) optionalList(key string) []string {
	if l := f.list(key); len(l) > 0 {
		return l
	}
	return nil
}

func (f *fields) err() error {
	return f.errs.ErrorOrNil()
}
