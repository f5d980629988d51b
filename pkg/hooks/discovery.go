package hooks

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/plugins"
	"github.com/pkg/errors"
)

// FileName is the definition file looked up in every hook directory
const FileName = "HOOK.md"

// Discovery handles hook discovery from configured directories
type Discovery struct {
	hookDirs []string
}

// DiscoveryOption is a function that configures a Discovery
type DiscoveryOption func(*Discovery) error

// WithDefaultDirs searches the repo-local and global .openclaw hook
// directories, including installed plugin bundles
func WithDefaultDirs() DiscoveryOption {
	return func(d *Discovery) error {
		layout, err := plugins.NewDiscovery()
		if err != nil {
			return err
		}
		d.hookDirs = layout.HookDirs()
		return nil
	}
}

// WithHookDirs sets custom hook directories
func WithHookDirs(dirs ...string) DiscoveryOption {
	return func(d *Discovery) error {
		d.hookDirs = dirs
		return nil
	}
}

// NewDiscovery creates a new hook discovery instance
func NewDiscovery(opts ...DiscoveryOption) (*Discovery, error) {
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

// Dirs returns the configured hook directories in precedence order
func (d *Discovery) Dirs() []string {
	return d.hookDirs
}

// DiscoverHooks finds all hook directories, keyed by resolved hook key.
// Earlier directories take precedence; invalid hooks are skipped.
func (d *Discovery) DiscoverHooks() (map[string]*Entry, error) {
	entries := make(map[string]*Entry)

	for _, dir := range d.hookDirs {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue // Skip non-existent directories
			}
			return nil, errors.Wrapf(err, "failed to read hook directory %s", dir)
		}

		for _, dirEntry := range dirEntries {
			hookDir := filepath.Join(dir, dirEntry.Name())

			info, err := os.Stat(hookDir)
			if err != nil || !info.IsDir() {
				continue
			}

			entry, err := LoadEntry(filepath.Join(hookDir, FileName))
			if err != nil {
				logger.L.WithError(err).WithField("dir", hookDir).Debug("skipping invalid hook")
				continue
			}

			key := entry.Key()
			if _, exists := entries[key]; exists {
				logger.L.WithField("key", key).WithField("dir", hookDir).Debug("hook key already discovered, skipping")
				continue
			}
			entries[key] = entry
		}
	}

	return entries, nil
}

// LoadEntry loads a single hook from its HOOK.md file and resolves its
// metadata and invocation policy
func LoadEntry(path string) (*Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hook file")
	}

	entry, err := NewEntry(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hook %s", path)
	}
	entry.Hook.Directory = filepath.Dir(path)

	return entry, nil
}

// NewEntry builds an Entry from the content of a HOOK.md document
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
		return nil, errors.New("hook name is required in frontmatter")
	}

	return &Entry{
		Hook: Hook{
			Name:        header.Name,
			Description: header.Description,
			Content:     frontmatter.Body(content),
		},
		Frontmatter: fm,
		Metadata:    ResolveMetadata(fm),
		Invocation:  ResolveInvocationPolicy(fm),
	}, nil
}

func sortedKeys(entries map[string]*Entry) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
