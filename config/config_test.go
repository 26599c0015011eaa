package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.CrossRefRole, opts.CrossRefRole)
	assert.Equal(t, def.CodeLanguage, opts.CodeLanguage)
	assert.Equal(t, LinkerSentinel, opts.Linker)
	assert.Equal(t, ".rst", opts.OutputExtension)
	assert.Positive(t, opts.Workers)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rstdoc.yaml")
	content := []byte(`crossref_role: java:ref
code_language: kotlin
width: 72
linker: role
include_private: true
output_extension: txt
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kotlin", opts.CodeLanguage)
	assert.Equal(t, 72, opts.Width)
	assert.Equal(t, LinkerRole, opts.Linker)
	assert.True(t, opts.IncludePrivate)
	assert.Equal(t, ".txt", opts.OutputExtension)
	assert.Equal(t, DefaultFallbackMessage, opts.FallbackMessage)
}

func TestLoadEmptyCodeLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rstdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code_language: \"\"\nanchor_role: \"\"\n"), 0o600))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", opts.CodeLanguage)
	assert.Equal(t, Default().AnchorRole, opts.AnchorRole)
}

func TestLoadRejectsUnknownLinker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rstdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("linker: magic\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestWriteRoundTripsThroughYAML(t *testing.T) {
	data, err := Write(Default())
	require.NoError(t, err)

	var back Options
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, Default().RolePrefixes, back.RolePrefixes)
	assert.Equal(t, Default().FallbackMessage, back.FallbackMessage)
}
