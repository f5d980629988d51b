// Package relaxedjson decodes JSON5 payloads (comments, trailing commas,
// unquoted keys, single-quoted strings) embedded in frontmatter values.
package relaxedjson

import (
	"github.com/pkg/errors"
	"github.com/titanous/json5"
)

// ErrNotObject is returned by Result.Object when the payload decoded to
// something other than an object.
var ErrNotObject = errors.New("payload is not an object")

// Result is the outcome of Parse: either a decoded value or the parse error.
type Result struct {
	value any
	err   error
}

// Parse decodes raw as JSON5. It never panics; malformed input is reported
// through Result.Err.
func Parse(raw string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{err: errors.Errorf("json5 decoder panic: %v", r)}
		}
	}()

	var value any
	if err := json5.Unmarshal([]byte(raw), &value); err != nil {
		return Result{err: errors.Wrap(err, "invalid json5 payload")}
	}
	return Result{value: value}
}

// OK reports whether the payload decoded successfully.
func (r Result) OK() bool { return r.err == nil }

// Err returns the parse error, or nil on success.
func (r Result) Err() error { return r.err }

// Value returns the decoded value, or nil on failure.
func (r Result) Value() any { return r.value }

// Object returns the decoded value as an object.
func (r Result) Object() (map[string]any, error) {
	if r.err != nil {
		return nil, r.err
	}
	obj, ok := r.value.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}
