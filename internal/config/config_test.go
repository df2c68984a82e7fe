package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.Width = 800
	cfg.Scroll.Rows = 500
	cfg.Scroll.Preset = "solid"
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "scrolldemo", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[scroll]\nrows = 42\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Scroll.Rows)
	assert.Equal(t, DefaultConfig().UI, cfg.UI)
	assert.Equal(t, DefaultConfig().Scroll.RowHeight, cfg.Scroll.RowHeight)
}
