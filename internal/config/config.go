// Package config defines server configuration and its loading.
package config

// Storage backend names
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// Config contains server process configuration
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080"
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// Storage selects the snapshot backend: memory, file, or redis
	Storage string `koanf:"storage"`

	// SnapshotPath is the roster snapshot file (file backend)
	SnapshotPath string `koanf:"snapshot_path"`

	// RedisURL is the Redis connection URL (redis backend)
	RedisURL string `koanf:"redis_url"`

	// BootstrapDefaults loads the built-in default roster when no
	// snapshot exists; otherwise the roster starts empty
	BootstrapDefaults bool `koanf:"bootstrap_defaults"`
}

// New returns a Config populated with defaults
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		Storage:           StorageFile,
		SnapshotPath:      "roster.json",
		BootstrapDefaults: true,
	}
}
