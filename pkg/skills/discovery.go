package skills

import (
	"os"
	"path/filepath"

	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/plugins"
	"github.com/pkg/errors"
)

// FileName is the definition file looked up in every skill directory
const FileName = "SKILL.md"

// Discovery handles skill discovery from configured directories
type Discovery struct {
	skillDirs []string
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithSkillDirs sets custom skill directories
func WithSkillDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.skillDirs = dirs
		return nil
	}
}

// WithDefaultDirs searches the repo-local and global .openclaw skill
// directories, including installed plugin bundles
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		layout, err := plugins.NewDiscovery()
		if err != nil {
			return err
		}
		d.skillDirs = layout.SkillDirs()
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		if err := WithDefaultDirs()(d); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(d); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Dirs returns the configured skill directories in precedence order
func (d *Discovery) Dirs() []string {
	return d.skillDirs
}

// DiscoverSkills finds all available skills from configured directories,
// keyed by their resolved skill key
func (d *Discovery) DiscoverSkills() (map[string]*Entry, error) {
	entries := make(map[string]*Entry)

	for _, dir := range d.skillDirs {
		d.discoverSkillsFromDir(dir, entries)
	}

	return entries, nil
}

// discoverSkillsFromDir loads every skill directory below dir. Keys already
// present win over later directories.
func (d *Discovery) discoverSkillsFromDir(dir string, entries map[string]*Entry) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, dirEntry := range dirEntries {
		entryPath := filepath.Join(dir, dirEntry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		entry, err := LoadEntry(filepath.Join(entryPath, FileName))
		if err != nil {
			logger.L.WithError(err).WithField("dir", entryPath).Debug("skipping skill")
			continue
		}

		key := entry.Key()
		if _, exists := entries[key]; exists {
			logger.L.WithField("key", key).WithField("dir", entryPath).Debug("skill key already discovered, skipping")
			continue
		}
		entries[key] = entry
	}
}

// GetSkill returns a specific skill by key
func (d *Discovery) GetSkill(key string) (*Entry, error) {
	entries, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	entry, exists := entries[key]
	if !exists {
		return nil, errors.Errorf("skill '%s' not found", key)
	}

	return entry, nil
}

// ListSkillKeys returns the keys of all available skills
func (d *Discovery) ListSkillKeys() ([]string, error) {
	entries, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}

	return keys, nil
}

// LoadEntry loads a single skill from its SKILL.md file and resolves its
// metadata and invocation policy
func LoadEntry(path string) (*Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	entry, err := NewEntry(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid skill %s", path)
	}
	entry.Skill.Directory = filepath.Dir(path)

	return entry, nil
}

// NewEntry builds an Entry from the content of a SKILL.md document
func NewEntry(content string) (*Entry, error) {
	fm, err := ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}
	if len(fm) == 0 {
		return nil, errors.New("missing frontmatter")
	}

	var header Header
	if err := fm.Decode(&header); err != nil {
		return nil, err
	}

	if header.Name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if header.Description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	return &Entry{
		Skill: Skill{
			Name:        header.Name,
			Description: header.Description,
			Content:     frontmatter.Body(content),
		},
		Frontmatter: fm,
		Metadata:    ResolveMetadata(fm),
		Invocation:  ResolveInvocationPolicy(fm),
	}, nil
}

// FilterByAllowlist filters skills by an allowlist of keys
// If the allowlist is empty, all skills are returned
func FilterByAllowlist(entries map[string]*Entry, allowed []string) map[string]*Entry {
	if len(allowed) == 0 {
		return entries
	}

	filtered := make(map[string]*Entry)
	for _, key := range allowed {
		if entry, exists := entries[key]; exists {
			filtered[key] = entry
		}
	}
	return filtered
}
