package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"poshell/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, 1000, cfg.HistorySize)
	assert.True(t, cfg.CompletionBell)
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &config.Config{Theme: "dark", HistorySize: 42, CompletionBell: false}
	require.NoError(t, config.Save(cfg))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := config.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "poshell", "config.yaml"), path)
}
