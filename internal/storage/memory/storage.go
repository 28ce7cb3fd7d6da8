package memory

import (
	"context"
	"sync"

	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Snapshots do not survive the process; use it for tests and ephemeral runs.
type Storage struct {
	mu     sync.RWMutex
	roster model.Roster
	stored bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = roster.Clone()
	s.stored = true
	return nil
}

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.stored {
		return nil, model.ErrNoSnapshot
	}
	return s.roster.Clone(), nil
}

func (s *Storage) ClearRoster(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = nil
	s.stored = false
	return nil
}

func (s *Storage) Close() error {
	return nil
}
