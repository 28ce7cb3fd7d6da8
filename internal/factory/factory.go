package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/courtlog/courtlog/internal/config"
	"github.com/courtlog/courtlog/internal/dependencies/idgen"
	"github.com/courtlog/courtlog/internal/metrics"
	"github.com/courtlog/courtlog/internal/services/roster"
	"github.com/courtlog/courtlog/internal/storage"
	filestorage "github.com/courtlog/courtlog/internal/storage/file"
	"github.com/courtlog/courtlog/internal/storage/memory"
	redisstorage "github.com/courtlog/courtlog/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	Storage       storage.Storage
	RosterService *roster.Service
	Metrics       *metrics.Metrics
}

// Config holds configuration for the application factory
type Config struct {
	// Server is the loaded server configuration (optional)
	// If nil, defaults to config.New()
	Server *config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	server := cfg.Server
	if server == nil {
		server = config.New()
	}

	store, err := newStorage(server)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	rosterService := roster.NewService(store, idgen.New(), logger, m)

	return &App{
		Storage:       store,
		RosterService: rosterService,
		Metrics:       m,
	}, nil
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		return filestorage.New(cfg.SnapshotPath)
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		return redisstorage.New(redisCfg)
	default:
		return nil, fmt.Errorf("invalid storage backend %q", cfg.Storage)
	}
}
