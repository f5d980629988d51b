// Package unitmeta resolves the namespaced metadata payload embedded in unit
// frontmatter into structured descriptors. A single resolver serves every
// unit domain; the differences between skills and hooks are expressed as a
// Schema.
package unitmeta

// DefaultNamespace is the key of the object inside the metadata payload that
// carries unit metadata.
const DefaultNamespace = "openclaw"

// MetadataField is the frontmatter key holding the relaxed-JSON payload.
const MetadataField = "metadata"

// FieldNames maps domain-specific metadata fields to their payload keys.
// An empty name means the domain does not recognize the field.
type FieldNames struct {
	Key        string
	PrimaryEnv string
	Export     string
	Events     string
}

// Schema parameterizes the resolver for one unit domain.
type Schema struct {
	Domain        string
	Namespace     string
	Fields        FieldNames
	InstallKinds  []string
	InstallFields []string
}

func (s Schema) namespace() string {
	if s.Namespace == "" {
		return DefaultNamespace
	}
	return s.Namespace
}

func (s Schema) allowsKind(kind string) bool {
	for _, k := range s.InstallKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Requirements lists the prerequisites a unit declares. Every list is
// non-nil.
type Requirements struct {
	Bins    []string `json:"bins" yaml:"bins"`
	AnyBins []string `json:"anyBins" yaml:"anyBins"`
	Env     []string `json:"env" yaml:"env"`
	Config  []string `json:"config" yaml:"config"`
}

// InstallSpec is the union of every install strategy field. Which variant
// fields are populated depends on the Schema that produced it.
type InstallSpec struct {
	Kind            string
	ID              *string
	Label           *string
	Bins            []string
	OS              []string
	Formula         *string
	Package         *string
	Module          *string
	URL             *string
	Archive         *string
	Extract         *bool
	StripComponents *int
	TargetDir       *string
	Repository      *string
}

// Metadata is the resolved namespaced payload. Nil pointers and nil slices
// mean the field was absent; Events is non-nil whenever the schema names an
// events field.
type Metadata struct {
	Always     *bool
	Emoji      *string
	Homepage   *string
	Key        *string
	PrimaryEnv *string
	Export     *string
	OS         []string
	Events     []string
	Requires   *Requirements
	Install    []InstallSpec
}

// ResolveKey returns override when it is set and non-empty, else natural.
func ResolveKey(natural string, override *string) string {
	if override != nil && *override != "" {
		return *override
	}
	return natural
}
