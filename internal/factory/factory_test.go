package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtlog/courtlog/internal/config"
	"github.com/courtlog/courtlog/internal/storage/memory"
)

func TestNewWiresMemoryStorage(t *testing.T) {
	cfg := config.New()
	cfg.Storage = config.StorageMemory

	app, err := New(Config{Server: cfg})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NotNil(t, app.RosterService)
	assert.NotNil(t, app.Metrics)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	cfg := config.New()
	cfg.Storage = "tape"

	_, err := New(Config{Server: cfg})
	assert.Error(t, err)
}

func TestNewDefaultsToFileStorage(t *testing.T) {
	cfg := config.New()
	cfg.SnapshotPath = t.TempDir() + "/roster.json"

	app, err := New(Config{Server: cfg})
	require.NoError(t, err)
	assert.NotNil(t, app.Storage)
}
