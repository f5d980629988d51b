package hooks

import (
	"testing"

	"github.com/openclaw/unitmeta/pkg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveMetadata(t *testing.T) {
	content := `---
name: session-memory
description: Save session context on /new
metadata: '{ openclaw: { emoji: "💾", hookKey: "memory", export: "default", events: ["command:new", " ", "command:new"], requires: { config: ["workspace.dir"] }, install: [{ kind: "bundled" }, { kind: "brew", formula: "x" }, { type: "GIT", repository: "https://example.com/hooks.git", os: "linux" }], }, }'
---

# Session memory
`
	fm, err := ParseFrontmatter(content)
	require.NoError(t, err)

	md := ResolveMetadata(fm)
	require.NotNil(t, md)

	assert.Equal(t, strPtr("💾"), md.Emoji)
	assert.Equal(t, strPtr("memory"), md.HookKey)
	assert.Equal(t, strPtr("default"), md.Export)
	assert.Equal(t, []string{"command:new", "command:new"}, md.Events)
	require.NotNil(t, md.Requires)
	assert.Equal(t, []string{"workspace.dir"}, md.Requires.Config)
	assert.Equal(t, []string{}, md.Requires.Bins)

	require.Len(t, md.Install, 2)
	assert.Equal(t, InstallSpec{Kind: InstallKindBundled}, md.Install[0])
	assert.Equal(t, InstallSpec{
		Kind:       InstallKindGit,
		OS:         []string{"linux"},
		Repository: strPtr("https://example.com/hooks.git"),
	}, md.Install[1])
}

func TestResolveMetadata_UnquotedPayload(t *testing.T) {
	fm, err := ParseFrontmatter(`---
name: session-memory
metadata: {openclaw: {emoji: x, hookKey: memory, events: ["command:new"], requires: {config: ["workspace.dir"]}}}
---
`)
	require.NoError(t, err)

	md, err := InspectMetadata(fm)
	require.NoError(t, err)
	require.NotNil(t, md)
	assert.Equal(t, strPtr("x"), md.Emoji)
	assert.Equal(t, strPtr("memory"), md.HookKey)
	assert.Equal(t, []string{"command:new"}, md.Events)
	require.NotNil(t, md.Requires)
	assert.Equal(t, []string{"workspace.dir"}, md.Requires.Config)
}

func TestResolveMetadata_EventsNeverAbsent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "events omitted", payload: `{openclaw: {install: [{kind: "pip"}]}}`},
		{name: "events empty", payload: `{openclaw: {events: [], install: []}}`},
		{name: "events wrong type", payload: `{openclaw: {events: 3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := ResolveMetadata(frontmatter.Frontmatter{"metadata": tt.payload})
			require.NotNil(t, md)
			assert.NotNil(t, md.Events)
			assert.Empty(t, md.Events)
			assert.Nil(t, md.Install)
		})
	}
}

func TestResolveMetadata_StringListRepresentations(t *testing.T) {
	fromString := ResolveMetadata(frontmatter.Frontmatter{"metadata": `{openclaw: {events: "a, b ,c"}}`})
	fromArray := ResolveMetadata(frontmatter.Frontmatter{"metadata": `{openclaw: {events: ["a", "b", "c"]}}`})

	require.NotNil(t, fromString)
	require.NotNil(t, fromArray)
	assert.Equal(t, []string{"a", "b", "c"}, fromString.Events)
	assert.Equal(t, fromArray.Events, fromString.Events)
}

func TestResolveMetadata_Absent(t *testing.T) {
	assert.Nil(t, ResolveMetadata(frontmatter.Frontmatter{}))
	assert.Nil(t, ResolveMetadata(frontmatter.Frontmatter{"metadata": "{{"}))
	assert.Nil(t, ResolveMetadata(frontmatter.Frontmatter{"metadata": `{openclaw: []}`}))
}

func TestResolveMetadata_SkillOnlyFieldsIgnored(t *testing.T) {
	md, err := InspectMetadata(frontmatter.Frontmatter{
		"metadata": `{openclaw: {skillKey: "nope", primaryEnv: "X", install: [{kind: "npm", package: "hook-pkg", formula: "ignored"}]}}`,
	})
	require.NoError(t, err)
	require.NotNil(t, md)
	assert.Nil(t, md.HookKey)
	require.Len(t, md.Install, 1)
	assert.Equal(t, InstallSpec{Kind: InstallKindNPM, Package: strPtr("hook-pkg")}, md.Install[0])
}

func TestResolveInvocationPolicy(t *testing.T) {
	tests := []struct {
		name     string
		fm       frontmatter.Frontmatter
		expected bool
	}{
		{name: "default", fm: frontmatter.Frontmatter{}, expected: true},
		{name: "string no", fm: frontmatter.Frontmatter{"enabled": "no"}, expected: false},
		{name: "string off", fm: frontmatter.Frontmatter{"enabled": "OFF"}, expected: false},
		{name: "yaml false", fm: frontmatter.Frontmatter{"enabled": false}, expected: false},
		{name: "number zero", fm: frontmatter.Frontmatter{"enabled": 0}, expected: false},
		{name: "garbage", fm: frontmatter.Frontmatter{"enabled": "sometimes"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, InvocationPolicy{Enabled: tt.expected}, ResolveInvocationPolicy(tt.fm))
		})
	}
}

func TestResolveInvocationPolicy_YAMLDocument(t *testing.T) {
	fm, err := ParseFrontmatter("---\nname: quiet\nenabled: no\n---\n")
	require.NoError(t, err)
	assert.False(t, ResolveInvocationPolicy(fm).Enabled)
}

func TestResolveKey(t *testing.T) {
	assert.Equal(t, "boot-md", ResolveKey("boot-md", nil))
	assert.Equal(t, "boot", ResolveKey("boot-md", &Entry{Metadata: &Metadata{HookKey: strPtr("boot")}}))
	assert.Equal(t, "boot-md", ResolveKey("boot-md", &Entry{Metadata: &Metadata{}}))
}
