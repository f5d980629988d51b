package unitmeta

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/relaxedjson"
	"github.com/pkg/errors"
)

var (
	// ErrNoMetadata means the frontmatter carries no usable metadata string.
	ErrNoMetadata = errors.New("no metadata field")
	// ErrMalformedPayload means the metadata string is not valid JSON5.
	ErrMalformedPayload = errors.New("malformed metadata payload")
	// ErrNoNamespace means the payload is not an object or lacks the
	// namespaced object.
	ErrNoNamespace = errors.New("metadata namespace not found")
)

// Resolve extracts the namespaced metadata object from fm.
//
// A nil Metadata is returned with ErrNoMetadata, ErrMalformedPayload or
// ErrNoNamespace when the payload is absent or unusable. Otherwise the
// Metadata is returned together with a *multierror.Error describing the
// fields and install entries that were dropped, or nil when everything was
// accepted.
func Resolve(fm frontmatter.Frontmatter, schema Schema) (*Metadata, error) {
	raw, ok := metadataText(fm)
	if !ok || raw == "" {
		return nil, ErrNoMetadata
	}

	result := relaxedjson.Parse(raw)
	if !result.OK() {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, result.Err())
	}

	payload, err := result.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoNamespace, err)
	}

	ns := schema.namespace()
	obj, ok := payload[ns].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is missing or not an object", ErrNoNamespace, ns)
	}

	f := newFields(obj, ns)
	md := &Metadata{
		Always:     f.boolean("always"),
		Emoji:      f.str("emoji"),
		Homepage:   f.str("homepage"),
		Key:        f.str(schema.Fields.Key),
		PrimaryEnv: f.str(schema.Fields.PrimaryEnv),
		Export:     f.str(schema.Fields.Export),
		OS:         f.optionalList("os"),
	}

	if schema.Fields.Events != "" {
		md.Events = f.list(schema.Fields.Events)
	}

	if requires := f.object("requires"); requires != nil {
		r := newFields(requires, ns+".requires")
		md.Requires = &Requirements{
			Bins:    r.list("bins"),
			AnyBins: r.list("anyBins"),
			Env:     r.list("env"),
			Config:  r.list("config"),
		}
	}

	md.Install = resolveInstall(f, schema)

	return md, f.err()
}

// metadataText returns the metadata payload as text. An unquoted
// `metadata: {openclaw: ...}` is already a YAML flow mapping by the time it
// reaches fm, so structured values are re-encoded as JSON and go through the
// same JSON5 decoding as quoted payloads.
func metadataText(fm frontmatter.Frontmatter) (string, bool) {
	switch v := fm[MetadataField].(type) {
	case string:
		return v, true
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	default:
		return "", false
	}
}

func resolveInstall(f *fields, schema Schema) []InstallSpec {
	raw, exists := f.obj["install"]
	if !exists {
		return nil
	}
	entries, ok := raw.([]any)
	if !ok {
		f.record(&FieldError{Path: f.path + ".install", Expected: "array", Got: raw})
		return nil
	}

	var install []InstallSpec
	for i, entry := range entries {
		spec, ok, err := normalizeInstallSpec(entry, schema, fmt.Sprintf("%s.install[%d]", f.path, i))
		f.record(err)
		if ok {
			install = append(install, *spec)
		}
	}
	return install
}

// Diagnostics flattens the error returned by Resolve into individual
// messages. Absence errors yield a single message.
func Diagnostics(err error) []string {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		out := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// IsAbsent reports whether err means Resolve found no usable metadata.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrNoMetadata) || errors.Is(err, ErrMalformedPayload) || errors.Is(err, ErrNoNamespace)
}
