package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclaw/unitmeta/pkg/hooks"
	"github.com/openclaw/unitmeta/pkg/skills"
	"github.com/openclaw/unitmeta/pkg/unitmeta"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const githubSkill = `---
name: github
description: Interact with GitHub using the gh CLI
user-invocable: no
metadata: '{openclaw: {emoji: "🐙", skillKey: "gh", requires: {bins: ["gh"]}, install: [{kind: "brew", formula: "gh", bins: ["gh"]}]}}'
---

# GitHub
`

const brokenSkill = `---
name: broken
description: Has a bad emoji and an unsupported installer
metadata: '{openclaw: {emoji: 5, install: [{kind: "apt"}]}}'
---
`

const memoryHook = `---
name: session-memory
description: Save session context
metadata: '{openclaw: {events: ["command:new"], install: [{kind: "bundled"}]}}'
---
`

func writeUnit(t *testing.T, dir, name, fileName, content string) string {
	t.Helper()
	unitDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(unitDir, 0o755))
	path := filepath.Join(unitDir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDomainForPath(t *testing.T) {
	d, err := domainForPath("/a/SKILL.md")
	require.NoError(t, err)
	assert.Equal(t, "skill", d.name)

	d, err = domainForPath("HOOK.md")
	require.NoError(t, err)
	assert.Equal(t, "hook", d.name)

	_, err = domainForPath("README.md")
	assert.Error(t, err)
}

func TestInspectSkill(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "github", skills.FileName, githubSkill)

	d, err := inspectSkill(path)
	require.NoError(t, err)

	assert.Equal(t, "skill", d.Domain)
	assert.Equal(t, "github", d.Name)
	assert.Equal(t, "gh", d.Key)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, skills.InvocationPolicy{UserInvocable: false}, d.Invocation)
	assert.Empty(t, d.Diagnostics)

	md, ok := d.Metadata.(*skills.Metadata)
	require.True(t, ok)
	require.Len(t, md.Install, 1)
	assert.Equal(t, skills.InstallKindBrew, md.Install[0].Kind)
}

func TestInspectSkill_Diagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "broken", skills.FileName, brokenSkill)

	d, err := inspectSkill(path)
	require.NoError(t, err)
	assert.Equal(t, "broken", d.Key)
	assert.ElementsMatch(t, []string{
		"openclaw.emoji: expected string, got number",
		`openclaw.install[0]: unsupported install kind "apt"`,
	}, d.Diagnostics)
}

func TestInspectHook(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "memory", hooks.FileName, memoryHook)

	d, err := inspectHook(path)
	require.NoError(t, err)
	assert.Equal(t, "hook", d.Domain)
	assert.Equal(t, "session-memory", d.Key)
	assert.Equal(t, hooks.InvocationPolicy{Enabled: true}, d.Invocation)

	md, ok := d.Metadata.(*hooks.Metadata)
	require.True(t, ok)
	assert.Equal(t, []string{"command:new"}, md.Events)
}

func TestInspect_NoMetadata(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "plain", skills.FileName, "---\nname: plain\ndescription: nothing else\n---\n")

	d, err := inspectSkill(path)
	require.NoError(t, err)
	assert.Nil(t, d.Metadata)
	assert.Empty(t, d.Diagnostics)
}

func TestProblems(t *testing.T) {
	assert.Nil(t, problems(nil))
	assert.Nil(t, problems(unitmeta.ErrNoMetadata))
	assert.Equal(t, []string{"malformed metadata payload"}, problems(unitmeta.ErrMalformedPayload))
	assert.Len(t, problems(errors.Wrap(unitmeta.ErrNoNamespace, "payload")), 1)
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	first := writeUnit(t, dir, "alpha", skills.FileName, githubSkill)
	second := writeUnit(t, dir, "beta", skills.FileName, githubSkill)
	writeUnit(t, dir, "hook", hooks.FileName, memoryHook)

	t.Run("files and directories", func(t *testing.T) {
		paths, err := expandPaths([]string{second, filepath.Join(dir, "alpha")}, skills.FileName)
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, paths)
	})

	t.Run("doublestar pattern", func(t *testing.T) {
		paths, err := expandPaths([]string{filepath.Join(dir, "**", skills.FileName)}, skills.FileName)
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, paths)
	})

	t.Run("duplicates removed", func(t *testing.T) {
		paths, err := expandPaths([]string{first, first, filepath.Join(dir, "alpha")}, skills.FileName)
		require.NoError(t, err)
		assert.Equal(t, []string{first}, paths)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := expandPaths([]string{filepath.Join(dir, "missing")}, skills.FileName)
		assert.Error(t, err)
	})

	t.Run("directory without unit file", func(t *testing.T) {
		_, err := expandPaths([]string{filepath.Join(dir, "hook")}, skills.FileName)
		assert.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	d := &descriptor{
		Domain:     "hook",
		Name:       "boot",
		Key:        "boot",
		Path:       "hooks/boot/HOOK.md",
		Invocation: hooks.InvocationPolicy{Enabled: true},
		Metadata:   &hooks.Metadata{Events: []string{}},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, formatJSON, d))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "boot", decoded["key"])
		assert.Equal(t, map[string]any{"enabled": true}, decoded["invocation"])
		assert.Equal(t, map[string]any{"events": []any{}}, decoded["metadata"])
		assert.NotContains(t, decoded, "diagnostics")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, formatYAML, d))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "hooks/boot/HOOK.md", decoded["path"])
		assert.Equal(t, map[string]any{"enabled": true}, decoded["invocation"])
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, render(&bytes.Buffer{}, "toml", d))
	})
}
