package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
output = "gen"
schemas = ["schemas/events.yaml", "/abs/other.yaml"]
deref = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "gen"), cfg.Output)
	assert.Equal(t, []string{
		filepath.Join(dir, "schemas/events.yaml"),
		"/abs/other.yaml",
	}, cfg.Schemas)
	assert.False(t, cfg.DerefEnabled())
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "generated"), cfg.Output)
	assert.Empty(t, cfg.Schemas)
	assert.True(t, cfg.DerefEnabled())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `outptu = "gen"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "internal", "game")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want := writeManifest(t, root, `output = "generated"`)

	got, found, err := Find(nested)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestFindNotFound(t *testing.T) {
	_, found, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
}
