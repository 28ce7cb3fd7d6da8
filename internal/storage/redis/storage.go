package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The whole roster lives in one JSON blob under a single key, matching
// the full-snapshot-overwrite persistence model.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) rosterKey() string {
	return s.cfg.KeyPrefix + ":roster"
}

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("encoding roster snapshot: %w", err)
	}
	return s.client.Set(ctx, s.rosterKey(), data, 0).Err()
}

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	data, err := s.client.Get(ctx, s.rosterKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrCorruptSnapshot, err)
	}
	return roster, nil
}

func (s *Storage) ClearRoster(ctx context.Context) error {
	return s.client.Del(ctx, s.rosterKey()).Err()
}
