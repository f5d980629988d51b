// Package plugins computes where skills and hooks are looked up. Units live
// either standalone under an .openclaw directory or inside plugin bundles
// installed under .openclaw/plugins/<org@repo>/, both repo-locally and in the
// user's home directory.
package plugins

// Scope tells whether a plugin is installed for the repository or the user
type Scope string

// Plugin scopes
const (
	ScopeLocal  Scope = "local"
	ScopeGlobal Scope = "global"
)

// InstalledPlugin represents a plugin bundle that may contain skills and hooks
type InstalledPlugin struct {
	Name   string   // User-facing name, "org/repo"
	Path   string   // Full path to the plugin directory
	Scope  Scope    // Where the plugin is installed
	Skills []string // Skill directory names contained in this plugin
	Hooks  []string // Hook directory names contained in this plugin
}
