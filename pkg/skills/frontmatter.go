package skills

import (
	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
)

// Frontmatter keys holding the invocation flags
const (
	UserInvocableField          = "user-invocable"
	DisableModelInvocationField = "disable-model-invocation"
)

// ParseFrontmatter extracts the frontmatter block of a SKILL.md document
func ParseFrontmatter(content string) (frontmatter.Frontmatter, error) {
	return frontmatter.Parse(content)
}

// ResolveMetadata returns the skill's openclaw metadata, or nil when the
// payload is absent or unusable. Malformed fields are dropped individually.
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

// ResolveInvocationPolicy derives the invocation flags of a skill.
// user-invocable defaults to true, disable-model-invocation to false.
func ResolveInvocationPolicy(fm frontmatter.Frontmatter) InvocationPolicy {
	return InvocationPolicy{
		UserInvocable:          fm.Bool(UserInvocableField, true),
		DisableModelInvocation: fm.Bool(DisableModelInvocationField, false),
	}
}

// ResolveKey returns the skillKey override of entry when set, otherwise name
func ResolveKey(name string, entry *Entry) string {
	if entry == nil || entry.Metadata == nil {
		return name
	}
	return unitmeta.ResolveKey(name, entry.Metadata.SkillKey)
}

func fromResolved(md *unitmeta.Metadata) *Metadata {
	out := &Metadata{
		Always:     md.Always,
		Emoji:      md.Emoji,
		Homepage:   md.Homepage,
		SkillKey:   md.Key,
		PrimaryEnv: md.PrimaryEnv,
		OS:         md.OS,
		Requires:   md.Requires,
	}
	for _, spec := range md.Install {
		out.Install = append(out.Install, InstallSpec{
			Kind:            InstallKind(spec.Kind),
			ID:              spec.ID,
			Label:           spec.Label,
			Bins:            spec.Bins,
			OS:              spec.OS,
			Formula:         spec.Formula,
			Package:         spec.Package,
			Module:          spec.Module,
			URL:             spec.URL,
			Archive:         spec.Archive,
			Extract:         spec.Extract,
			StripComponents: spec.StripComponents,
			TargetDir:       spec.TargetDir,
		})
	}
	return out
}
