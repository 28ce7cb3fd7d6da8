package storage

import (
	"context"

	"github.com/courtlog/courtlog/internal/model"
)

// Storage persists full roster snapshots. The roster service overwrites
// the whole snapshot after every mutation; there is no incremental form.
type Storage interface {
	// SaveRoster overwrites the stored snapshot with the given roster
	SaveRoster(ctx context.Context, roster model.Roster) error

	// LoadRoster returns the stored snapshot.
	// Returns model.ErrNoSnapshot if nothing has been stored, and
	// model.ErrCorruptSnapshot if the stored data cannot be decoded.
	LoadRoster(ctx context.Context) (model.Roster, error)

	// ClearRoster removes the stored snapshot entirely
	ClearRoster(ctx context.Context) error

	// Close releases any resources held by the backend
	Close() error
}
