package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Empty(t, cfg.HistoryFile)
	assert.Empty(t, cfg.DefaultFamily)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cidrcalc.toml")
	contents := `
indent = "    "
history_file = "/tmp/cidrcalc.history"
default_family = "v6"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, "/tmp/cidrcalc.history", cfg.HistoryFile)
	assert.Equal(t, FamilyV6, cfg.DefaultFamily)
}

func TestLoadDefaultsBlankIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cidrcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`history_file = "h"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultIndent, cfg.Indent)
}

func TestLoadRejectsInvalidFamily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cidrcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_family = "v5"`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cidrcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`not = [valid`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
