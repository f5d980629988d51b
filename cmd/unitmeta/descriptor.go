package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/openclaw/unitmeta/pkg/hooks"
	"github.com/openclaw/unitmeta/pkg/skills"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// descriptor is the normalized view of one unit printed by inspect and watch
type descriptor struct {
	Domain      string   `json:"domain" yaml:"domain"`
	Name        string   `json:"name" yaml:"name"`
	Key         string   `json:"key" yaml:"key"`
	Path        string   `json:"path" yaml:"path"`
	Invocation  any      `json:"invocation" yaml:"invocation"`
	Metadata    any      `json:"metadata" yaml:"metadata"`
	Diagnostics []string `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// unitDomain binds a unit file name to the loader producing its descriptor
type unitDomain struct {
	name     string
	fileName string
	inspect  func(path string) (*descriptor, error)
}

var (
	skillDomain = unitDomain{name: skills.Schema.Domain, fileName: skills.FileName, inspect: inspectSkill}
	hookDomain  = unitDomain{name: hooks.Schema.Domain, fileName: hooks.FileName, inspect: inspectHook}
)

// domainForPath picks the domain from the unit file name
func domainForPath(path string) (unitDomain, error) {
	switch filepath.Base(path) {
	case skills.FileName:
		return skillDomain, nil
	case hooks.FileName:
		return hookDomain, nil
	}
	return unitDomain{}, errors.Errorf("%s is neither a %s nor a %s file", path, skills.FileName, hooks.FileName)
}

func inspectSkill(path string) (*descriptor, error) {
	entry, err := skills.LoadEntry(path)
	if err != nil {
		return nil, err
	}
	_, resolveErr := skills.InspectMetadata(entry.Frontmatter)

	d := &descriptor{
		Domain:      skills.Schema.Domain,
		Name:        entry.Skill.Name,
		Key:         entry.Key(),
		Path:        path,
		Invocation:  entry.Invocation,
		Diagnostics: problems(resolveErr),
	}
	if entry.Metadata != nil {
		d.Metadata = entry.Metadata
	}
	return d, nil
}

func inspectHook(path string) (*descriptor, error) {
	entry, err := hooks.LoadEntry(path)
	if err != nil {
		return nil, err
	}
	_, resolveErr := hooks.InspectMetadata(entry.Frontmatter)

	d := &descriptor{
		Domain:      hooks.Schema.Domain,
		Name:        entry.Hook.Name,
		Key:         entry.Key(),
		Path:        path,
		Invocation:  entry.Invocation,
		Diagnostics: problems(resolveErr),
	}
	if entry.Metadata != nil {
		d.Metadata = entry.Metadata
	}
	return d, nil
}

// problems turns a resolver error into diagnostics. A unit without any
// metadata is not a problem.
func problems(err error) []string {
	if err == nil || errors.Is(err, unitmeta.ErrNoMetadata) {
		return nil
	}
	return unitmeta.Diagnostics(err)
}

// expandPaths resolves files, unit directories and doublestar patterns into
// a sorted, de-duplicated list of unit files.
func expandPaths(args []string, fileName string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", arg)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no units match %q", arg)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to stat %s", match)
			}
			if info.IsDir() {
				match = filepath.Join(match, fileName)
				if _, err := os.Stat(match); err != nil {
					return nil, errors.Wrapf(err, "no %s in directory", fileName)
				}
			}
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// render writes v in the requested output format
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(v), "failed to encode JSON")
	}
	return errors.Errorf("unsupported output format %q", format)
}

func renderString(format string, v any) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, format, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
