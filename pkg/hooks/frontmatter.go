package hooks

import (
	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
)

// EnabledField is the frontmatter key toggling a hook
const EnabledField = "enabled"

// ParseFrontmatter extracts the frontmatter block of a HOOK.md document
func ParseFrontmatter(content string) (frontmatter.Frontmatter, error) {
	return frontmatter.Parse(content)
}

// ResolveMetadata returns the hook's openclaw metadata, or nil when the
// payload is absent or unusable.
func ResolveMetadata(fm frontmatter.Frontmatter) *Metadata {
	md, _ := InspectMetadata(fm)
	return md
}

// InspectMetadata is ResolveMetadata that also reports why the payload was
// rejected or which fields were dropped.
func InspectMetadata(fm frontmatter.Frontmatter) (*Metadata, error) {
	resolved, err := unitmeta.Resolve(fm, Schema)
	if resolved == nil {
		return nil, err
	}
	return fromResolved(resolved), err
}

// ResolveInvocationPolicy derives the invocation flags of a hook. enabled
// defaults to true.
func ResolveInvocationPolicy(fm frontmatter.Frontmatter) InvocationPolicy {
	return InvocationPolicy{
		Enabled: fm.Bool(EnabledField, true),
	}
}

// ResolveKey returns the hookKey override of entry when set, otherwise
// hookName
func ResolveKey(hookName string, entry *Entry) string {
	if entry == nil || entry.Metadata == nil {
		return hookName
	}
	return unitmeta.ResolveKey(hookName, entry.Metadata.HookKey)
}

func fromResolved(md *unitmeta.Metadata) *Metadata {
	events := md.Events
	if events == nil {
		events = []string{}
	}

	out := &Metadata{
		Always:   md.Always,
		Emoji:    md.Emoji,
		Homepage: md.Homepage,
		HookKey:  md.Key,
		Export:   md.Export,
		OS:       md.OS,
		Events:   events,
		Requires: md.Requires,
	}
	for _, spec := range md.Install {
		out.Install = append(out.Install, InstallSpec{
			Kind:       InstallKind(spec.Kind),
			ID:         spec.ID,
			Label:      spec.Label,
			Bins:       spec.Bins,
			OS:         spec.OS,
			Package:    spec.Package,
			Repository: spec.Repository,
		})
	}
	return out
}
