package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "roster.json", cfg.SnapshotPath)
	assert.True(t, cfg.BootstrapDefaults)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\nstorage: memory\nbootstrap_defaults: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("COURTLOG_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.False(t, cfg.BootstrapDefaults)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))
	t.Setenv("COURTLOG_CONFIG", path)
	t.Setenv("COURTLOG_ADDR", ":7070")
	t.Setenv("COURTLOG_STORAGE", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	t.Setenv("COURTLOG_STORAGE", "tape")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRequiresRedisURL(t *testing.T) {
	t.Setenv("COURTLOG_STORAGE", "redis")

	_, err := Load()
	assert.Error(t, err)
}
