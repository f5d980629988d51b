package unitmeta

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant field names recognized in install entries.
const (
	InstallFieldFormula         = "formula"
	InstallFieldPackage         = "package"
	InstallFieldModule          = "module"
	InstallFieldURL             = "url"
	InstallFieldArchive         = "archive"
	InstallFieldExtract         = "extract"
	InstallFieldStripComponents = "stripComponents"
	InstallFieldTargetDir       = "targetDir"
	InstallFieldRepository      = "repository"
)

// installFieldSetters copies one variant field from an install entry. Every
// field is copied independently of the entry kind.
var installFieldSetters = map[string]func(*InstallSpec, *fields){
	InstallFieldFormula:         func(s *InstallSpec, f *fields) { s.Formula = f.str(InstallFieldFormula) },
	InstallFieldPackage:         func(s *InstallSpec, f *fields) { s.Package = f.str(InstallFieldPackage) },
	InstallFieldModule:          func(s *InstallSpec, f *fields) { s.Module = f.str(InstallFieldModule) },
	InstallFieldURL:             func(s *InstallSpec, f *fields) { s.URL = f.str(InstallFieldURL) },
	InstallFieldArchive:         func(s *InstallSpec, f *fields) { s.Archive = f.str(InstallFieldArchive) },
	InstallFieldExtract:         func(s *InstallSpec, f *fields) { s.Extract = f.boolean(InstallFieldExtract) },
	InstallFieldStripComponents: func(s *InstallSpec, f *fields) { s.StripComponents = f.integer(InstallFieldStripComponents) },
	InstallFieldTargetDir:       func(s *InstallSpec, f *fields) { s.TargetDir = f.str(InstallFieldTargetDir) },
	InstallFieldRepository:      func(s *InstallSpec, f *fields) { s.Repository = f.str(InstallFieldRepository) },
}

// NormalizeInstallSpec reshapes one raw install entry. It reports false when
// the entry is not an object or its kind is outside the schema's set.
func NormalizeInstallSpec(raw any, schema Schema) (*InstallSpec, bool) {
	spec, ok, _ := normalizeInstallSpec(raw, schema, "install")
	return spec, ok
}

func normalizeInstallSpec(raw any, schema Schema, path string) (*InstallSpec, bool, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, false, &FieldError{Path: path, Expected: "object", Got: raw}
	}

	kind := strings.ToLower(strings.TrimSpace(installKind(obj)))
	if !schema.allowsKind(kind) {
		return nil, false, errors.Errorf("%s: unsupported install kind %q", path, kind)
	}

	f := newFields(obj, path)
	spec := &InstallSpec{
		Kind:  kind,
		ID:    f.str("id"),
		Label: f.str("label"),
		Bins:  f.optionalList("bins"),
		OS:    f.optionalList("os"),
	}
	for _, name := range schema.InstallFields {
		if set, ok := installFieldSetters[name]; ok {
			set(spec, f)
		}
	}

	return spec, true, f.err()
}

// installKind takes the first string found under "kind" then "type".
func installKind(obj map[string]any) string {
	if kind, ok := obj["kind"].(string); ok {
		return kind
	}
	if kind, ok := obj["type"].(string); ok {
		return kind
	}
	return ""
}
