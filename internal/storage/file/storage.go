package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/storage"
)

// Storage persists the roster as a single JSON document on disk.
// Writes go to a temp file in the same directory followed by a rename,
// so a crash mid-write never leaves a truncated snapshot behind.
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a file storage instance writing to the given path.
// The parent directory must exist.
func New(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot directory %q is not usable: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snapshot path parent %q is not a directory", dir)
	}
	return &Storage{path: path}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roster snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".roster-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, model.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrCorruptSnapshot, err)
	}
	return roster, nil
}

func (s *Storage) ClearRoster(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return nil
}
