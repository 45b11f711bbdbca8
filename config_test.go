package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := loadConfig(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, defaultExtension, cfg.Extension)
	assert.Equal(t, defaultPrefixes, cfg.Prefixes)
	assert.Empty(t, cfg.Include)
}

func TestLoadConfigReadsImplicitFile(t *testing.T) {
	dir := t.TempDir()
	content := "extension: .fs\nprefixes:\n  - MyDep\ninclude:\n  - \"Core/**\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".xrefstrip.yaml"), []byte(content), 0o644))

	cfg, err := loadConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, ".fs", cfg.Extension)
	assert.Equal(t, []string{"MyDep"}, cfg.Prefixes)
	assert.Equal(t, []string{"Core/**"}, cfg.Include)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".xrefstrip.yaml"), []byte("prefixes:\n  - Troschuetz\n"), 0o644))

	cfg, err := loadConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, defaultExtension, cfg.Extension)
	assert.Equal(t, []string{"Troschuetz"}, cfg.Prefixes)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	_, err := loadConfig(t.TempDir(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigExplicitFileOutsideRoot(t *testing.T) {
	other := t.TempDir()
	path := filepath.Join(other, "strip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extension: .vb\n"), 0o644))

	cfg, err := loadConfig(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, ".vb", cfg.Extension)
}
