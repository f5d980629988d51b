// Package hooks normalizes the frontmatter of hook definitions. Hooks are
// packaged as directories containing a HOOK.md file; the embedded JSON5
// metadata payload lists the lifecycle events a hook subscribes to together
// with its requirements and install instructions.
package hooks

import (
	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
)

// InstallKind is the installation strategy of an InstallSpec
type InstallKind string

// Install kinds supported for hooks
const (
	InstallKindBundled InstallKind = "bundled"
	InstallKindNPM     InstallKind = "npm"
	InstallKindGit     InstallKind = "git"
)

// Schema is the resolver configuration for hook metadata
var Schema = unitmeta.Schema{
	Domain:    "hook",
	Namespace: unitmeta.DefaultNamespace,
	Fields: unitmeta.FieldNames{
		Key:    "hookKey",
		Export: "export",
		Events: "events",
	},
	InstallKinds: []string{
		string(InstallKindBundled),
		string(InstallKindNPM),
		string(InstallKindGit),
	},
	InstallFields: []string{
		unitmeta.InstallFieldPackage,
		unitmeta.InstallFieldRepository,
	},
}

// Hook represents a discovered hook definition
type Hook struct {
	Name        string // Name from frontmatter
	Description string // Optional description
	Directory   string // Full path to the hook directory
	Content     string // Body of HOOK.md, without frontmatter
}

// Header represents the identity fields of HOOK.md frontmatter
type Header struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// InstallSpec describes how to provision a hook
type InstallSpec struct {
	Kind       InstallKind `json:"kind" yaml:"kind"`
	ID         *string     `json:"id,omitempty" yaml:"id,omitempty"`
	Label      *string     `json:"label,omitempty" yaml:"label,omitempty"`
	Bins       []string    `json:"bins,omitempty" yaml:"bins,omitempty"`
	OS         []string    `json:"os,omitempty" yaml:"os,omitempty"`
	Package    *string     `json:"package,omitempty" yaml:"package,omitempty"`
	Repository *string     `json:"repository,omitempty" yaml:"repository,omitempty"`
}

// Metadata is the openclaw namespace of a hook's metadata payload.
// Events is never nil; an empty list means no events are configured.
type Metadata struct {
	Always   *bool                  `json:"always,omitempty" yaml:"always,omitempty"`
	Emoji    *string                `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Homepage *string                `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	HookKey  *string                `json:"hookKey,omitempty" yaml:"hookKey,omitempty"`
	Export   *string                `json:"export,omitempty" yaml:"export,omitempty"`
	OS       []string               `json:"os,omitempty" yaml:"os,omitempty"`
	Events   []string               `json:"events" yaml:"events"`
	Requires *unitmeta.Requirements `json:"requires,omitempty" yaml:"requires,omitempty"`
	Install  []InstallSpec          `json:"install,omitempty" yaml:"install,omitempty"`
}

// InvocationPolicy controls whether a hook runs at all
type InvocationPolicy struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Entry is a loaded hook together with everything resolved from its
// frontmatter
type Entry struct {
	Hook        Hook
	Frontmatter frontmatter.Frontmatter
	Metadata    *Metadata
	Invocation  InvocationPolicy
}

// Key returns the stable identity key of the entry
func (e *Entry) Key() string {
	return ResolveKey(e.Hook.Name, e)
}

// Events returns the events the hook subscribes to
func (e *Entry) Events() []string {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata.Events
}

// Manager indexes discovered hooks by the events they subscribe to
type Manager struct {
	entries map[string]*Entry
	byEvent map[string][]*Entry
}

// NewManager discovers hooks and indexes them by event
func NewManager(opts ...DiscoveryOption) (Manager, error) {
	discovery, err := NewDiscovery(opts...)
	if err != nil {
		return Manager{}, err
	}

	entries, err := discovery.DiscoverHooks()
	if err != nil {
		return Manager{}, err
	}

	return NewManagerFromEntries(entries), nil
}

// NewManagerFromEntries indexes already loaded entries
func NewManagerFromEntries(entries map[string]*Entry) Manager {
	m := Manager{
		entries: entries,
		byEvent: make(map[string][]*Entry),
	}
	for _, key := range sortedKeys(entries) {
		entry := entries[key]
		if !entry.Invocation.Enabled {
			continue
		}
		seen := make(map[string]bool)
		for _, event := range entry.Events() {
			if seen[event] {
				continue
			}
			seen[event] = true
			m.byEvent[event] = append(m.byEvent[event], entry)
		}
	}
	return m
}

// HasHooks returns true if any enabled hook subscribes to event
func (m Manager) HasHooks(event string) bool {
	return len(m.byEvent[event]) > 0
}

// GetHooks returns the enabled hooks subscribed to event, ordered by key
func (m Manager) GetHooks(event string) []*Entry {
	return m.byEvent[event]
}

// Entries returns every discovered hook keyed by hook key, including
// disabled ones
func (m Manager) Entries() map[string]*Entry {
	return m.entries
}

// Keys returns the keys of every discovered hook in sorted order
func (m Manager) Keys() []string {
	return sortedKeys(m.entries)
}
