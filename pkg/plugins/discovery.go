package plugins

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/pkg/errors"
)

const (
	openclawDir   = ".openclaw"
	pluginsSubdir = "plugins"
	skillsSubdir  = "skills"
	hooksSubdir   = "hooks"
	skillFileName = "SKILL.md"
	hookFileName  = "HOOK.md"
)

// Discovery resolves unit search directories from the repo-local and global
// .openclaw directories
type Discovery struct {
	baseDir string // ".openclaw" or absolute path for repo-local
	homeDir string
}

// DiscoveryOption configures a Discovery instance
type DiscoveryOption func(*Discovery) error

// WithBaseDir sets a custom repo-local base directory
func WithBaseDir(dir string) DiscoveryOption {
	return func(d *Discovery) error {
		d.baseDir = dir
		return nil
	}
}

// WithHomeDir sets a custom home directory
func WithHomeDir(dir string) DiscoveryOption {
	return func(d *Discovery) error {
		d.homeDir = dir
		return nil
	}
}

// NewDiscovery creates a new plugin discovery instance
func NewDiscovery(opts ...DiscoveryOption) (*Discovery, error) {
	d := &Discovery{baseDir: openclawDir}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.homeDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		d.homeDir = homeDir
	}

	return d, nil
}

func (d *Discovery) globalDir() string {
	return filepath.Join(d.homeDir, openclawDir)
}

// SkillDirs returns the skill discovery directories in precedence order
func (d *Discovery) SkillDirs() []string {
	return d.unitDirs(skillsSubdir)
}

// HookDirs returns the hook discovery directories in precedence order
func (d *Discovery) HookDirs() []string {
	return d.unitDirs(hooksSubdir)
}

// unitDirs orders repo-local standalone, repo-local plugins, global
// standalone, then global plugins
func (d *Discovery) unitDirs(subdir string) []string {
	dirs := []string{filepath.Join(d.baseDir, subdir)}
	dirs = append(dirs, pluginUnitDirs(d.baseDir, subdir)...)
	dirs = append(dirs, filepath.Join(d.globalDir(), subdir))
	dirs = append(dirs, pluginUnitDirs(d.globalDir(), subdir)...)
	return dirs
}

// pluginUnitDirs returns the subdir of every plugin under root that has one
func pluginUnitDirs(root, subdir string) []string {
	var dirs []string
	for _, name := range pluginNames(filepath.Join(root, pluginsSubdir)) {
		dir := filepath.Join(root, pluginsSubdir, name, subdir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// pluginNames lists plugin directory names under pluginsDir in sorted order
func pluginNames(pluginsDir string) []string {
	entries, err := os.ReadDir(pluginsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.L.WithError(err).WithField("dir", pluginsDir).Debug("failed to read plugins directory")
		}
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Installed lists the plugin bundles found in both scopes. Directories that
// contain neither skills nor hooks are not plugins.
func (d *Discovery) Installed() []InstalledPlugin {
	var installed []InstalledPlugin
	for _, root := range []struct {
		dir   string
		scope Scope
	}{
		{dir: d.baseDir, scope: ScopeLocal},
		{dir: d.globalDir(), scope: ScopeGlobal},
	} {
		pluginsDir := filepath.Join(root.dir, pluginsSubdir)
		for _, name := range pluginNames(pluginsDir) {
			path := filepath.Join(pluginsDir, name)
			plugin := InstalledPlugin{
				Name:   PluginNameToUserFacing(name),
				Path:   path,
				Scope:  root.scope,
				Skills: unitNames(filepath.Join(path, skillsSubdir), skillFileName),
				Hooks:  unitNames(filepath.Join(path, hooksSubdir), hookFileName),
			}
			if len(plugin.Skills) == 0 && len(plugin.Hooks) == 0 {
				continue
			}
			installed = append(installed, plugin)
		}
	}
	return installed
}

// unitNames lists the directories under dir holding fileName
func unitNames(dir, fileName string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), fileName)); err == nil {
			names = append(names, entry.Name())
		}
	}
	return names
}

// PluginNameToUserFacing converts "org@repo" directory format to "org/repo" user-facing format.
func PluginNameToUserFacing(pluginName string) string {
	return strings.Replace(pluginName, "@", "/", 1)
}

// RepoToPluginName converts "org/repo" to the "org@repo" directory format.
// Only the first slash is replaced.
func RepoToPluginName(repo string) string {
	return strings.Replace(repo, "/", "@", 1)
}
