// Package skills normalizes the frontmatter of skill definitions. Skills are
// packaged as directories containing a SKILL.md file whose YAML frontmatter
// carries the skill's name, description, invocation flags and an embedded
// JSON5 metadata payload describing requirements and install instructions.
package skills

import (
	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
)

// InstallKind is the installation strategy of an InstallSpec
type InstallKind string

// Install kinds supported for skills
const (
	InstallKindBrew     InstallKind = "brew"
	InstallKindNode     InstallKind = "node"
	InstallKindGo       InstallKind = "go"
	InstallKindUV       InstallKind = "uv"
	InstallKindDownload InstallKind = "download"
)

// Schema is the resolver configuration for skill metadata
var Schema = unitmeta.Schema{
	Domain:    "skill",
	Namespace: unitmeta.DefaultNamespace,
	Fields: unitmeta.FieldNames{
		Key:        "skillKey",
		PrimaryEnv: "primaryEnv",
	},
	InstallKinds: []string{
		string(InstallKindBrew),
		string(InstallKindNode),
		string(InstallKindGo),
		string(InstallKindUV),
		string(InstallKindDownload),
	},
	InstallFields: []string{
		unitmeta.InstallFieldFormula,
		unitmeta.InstallFieldPackage,
		unitmeta.InstallFieldModule,
		unitmeta.InstallFieldURL,
		unitmeta.InstallFieldArchive,
		unitmeta.InstallFieldExtract,
		unitmeta.InstallFieldStripComponents,
		unitmeta.InstallFieldTargetDir,
	},
}

// Skill represents a discovered skill with its header fields
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description for model decision-making
	Directory   string // Full path to the skill directory
	Content     string // Body of SKILL.md, without frontmatter
}

// Header represents the identity fields of SKILL.md frontmatter
type Header struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// InstallSpec describes how to provision a dependency of a skill.
// Only the fields relevant to Kind are expected to be set, but no
// cross-field validation is performed.
type InstallSpec struct {
	Kind            InstallKind `json:"kind" yaml:"kind"`
	ID              *string     `json:"id,omitempty" yaml:"id,omitempty"`
	Label           *string     `json:"label,omitempty" yaml:"label,omitempty"`
	Bins            []string    `json:"bins,omitempty" yaml:"bins,omitempty"`
	OS              []string    `json:"os,omitempty" yaml:"os,omitempty"`
	Formula         *string     `json:"formula,omitempty" yaml:"formula,omitempty"`
	Package         *string     `json:"package,omitempty" yaml:"package,omitempty"`
	Module          *string     `json:"module,omitempty" yaml:"module,omitempty"`
	URL             *string     `json:"url,omitempty" yaml:"url,omitempty"`
	Archive         *string     `json:"archive,omitempty" yaml:"archive,omitempty"`
	Extract         *bool       `json:"extract,omitempty" yaml:"extract,omitempty"`
	StripComponents *int        `json:"stripComponents,omitempty" yaml:"stripComponents,omitempty"`
	TargetDir       *string     `json:"targetDir,omitempty" yaml:"targetDir,omitempty"`
}

// Metadata is the openclaw namespace of a skill's metadata payload
type Metadata struct {
	Always     *bool                  `json:"always,omitempty" yaml:"always,omitempty"`
	Emoji      *string                `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Homepage   *string                `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	SkillKey   *string                `json:"skillKey,omitempty" yaml:"skillKey,omitempty"`
	PrimaryEnv *string                `json:"primaryEnv,omitempty" yaml:"primaryEnv,omitempty"`
	OS         []string               `json:"os,omitempty" yaml:"os,omitempty"`
	Requires   *unitmeta.Requirements `json:"requires,omitempty" yaml:"requires,omitempty"`
	Install    []InstallSpec          `json:"install,omitempty" yaml:"install,omitempty"`
}

// InvocationPolicy controls who may trigger a skill
type InvocationPolicy struct {
	UserInvocable          bool `json:"userInvocable" yaml:"userInvocable"`
	DisableModelInvocation bool `json:"disableModelInvocation" yaml:"disableModelInvocation"`
}

// Entry is a loaded skill together with everything resolved from its
// frontmatter
type Entry struct {
	Skill       Skill
	Frontmatter frontmatter.Frontmatter
	Metadata    *Metadata
	Invocation  InvocationPolicy
}

// Key returns the stable identity key of the entry
func (e *Entry) Key() string {
	return ResolveKey(e.Skill.Name, e)
}
