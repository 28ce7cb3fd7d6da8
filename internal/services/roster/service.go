package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/courtlog/courtlog/internal/dependencies/idgen"
	"github.com/courtlog/courtlog/internal/metrics"
	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/storage"
)

// Service holds the authoritative roster and owns all mutation logic.
// Every mutation is applied to a clone, persisted as a full snapshot,
// and only swapped in once the save succeeds: a failed save leaves both
// the in-memory roster and the stored snapshot untouched.
type Service struct {
	mu      sync.RWMutex
	roster  model.Roster
	store   storage.Storage
	ids     idgen.Generator
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService creates a roster service with an empty roster.
// Call Load to hydrate from the persisted snapshot.
func NewService(store storage.Storage, ids idgen.Generator, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		roster:  model.NewRoster(),
		store:   store,
		ids:     ids,
		logger:  logger,
		metrics: m,
	}
}

// Load hydrates the roster from the persisted snapshot. When no
// snapshot exists it bootstraps either the built-in default names or an
// empty roster, depending on bootstrapDefaults. A present-but-malformed
// snapshot is a hard failure: the caller decides between surfacing it
// and an explicit ResetAll.
func (s *Service) Load(ctx context.Context, bootstrapDefaults bool) error {
	stored, err := s.store.LoadRoster(ctx)
	switch {
	case errors.Is(err, model.ErrNoSnapshot):
		next := model.NewRoster()
		if bootstrapDefaults {
			for _, name := range model.DefaultPlayerNames {
				next[name] = []model.Match{}
			}
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.commit(ctx, "bootstrap", next); err != nil {
			return err
		}
		s.logger.Info("roster bootstrapped",
			slog.Bool("defaults", bootstrapDefaults),
			slog.Int("players", len(next)))
		return nil
	case err != nil:
		return fmt.Errorf("loading roster snapshot: %w", err)
	}

	// Stored lists are sorted on write, but re-sorting on read keeps
	// hand-edited file snapshots well-formed
	for _, matches := range stored {
		model.SortMatches(matches)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = stored
	s.logger.Info("roster loaded", slog.Int("players", len(stored)))
	return nil
}

// AddPlayer inserts a new player with an empty match list. The name is
// trimmed; empty names and exact-name collisions are rejected.
func (s *Service) AddPlayer(ctx context.Context, name string) (string, error) {
	name = model.TrimName(name)
	if name == "" {
		return "", model.ErrEmptyPlayerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roster[name]; ok {
		return "", fmt.Errorf("%w: %q", model.ErrPlayerExists, name)
	}

	next := s.roster.Clone()
	next[name] = []model.Match{}
	if err := s.commit(ctx, "add_player", next); err != nil {
		return "", err
	}
	return name, nil
}

// DeletePlayer removes a player and their entire match history.
// Fails loudly when the name is unknown; callers are expected to have
// confirmed the deletion with the user already.
func (s *Service) DeletePlayer(ctx context.Context, name string) error {
	name = model.TrimName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roster[name]; !ok {
		return fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}

	next := s.roster.Clone()
	delete(next, name)
	return s.commit(ctx, "delete_player", next)
}

// AddMatch records a match for a player. The date must be a valid
// YYYY-MM-DD calendar date; count fields go through the permissive
// parse-or-zero policy and never cause a rejection. The match list is
// re-sorted ascending by date after insertion.
func (s *Service) AddMatch(ctx context.Context, name, date string, points, rebounds, assists any) (model.Match, error) {
	name = model.TrimName(name)
	if name == "" {
		return model.Match{}, model.ErrEmptyPlayerName
	}
	normDate, err := model.ParseDate(date)
	if err != nil {
		return model.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roster[name]; !ok {
		return model.Match{}, fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}

	match := model.Match{
		ID:       model.MatchID(s.ids.NewID()),
		Date:     normDate,
		Points:   model.ParseCountOrZero(points),
		Rebounds: model.ParseCountOrZero(rebounds),
		Assists:  model.ParseCountOrZero(assists),
	}

	next := s.roster.Clone()
	next[name] = append(next[name], match)
	model.SortMatches(next[name])

	if err := s.commit(ctx, "add_match", next); err != nil {
		return model.Match{}, err
	}
	return match, nil
}

// UpdateMatch replaces the mutable fields of an existing match and
// re-sorts the player's list. The identifier is preserved.
func (s *Service) UpdateMatch(ctx context.Context, name string, id model.MatchID, date string, points, rebounds, assists any) (model.Match, error) {
	name = model.TrimName(name)
	normDate, err := model.ParseDate(date)
	if err != nil {
		return model.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches, ok := s.roster[name]
	if !ok {
		return model.Match{}, fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}

	idx := -1
	for i, m := range matches {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Match{}, fmt.Errorf("%w: %q", model.ErrMatchNotFound, id)
	}

	next := s.roster.Clone()
	next[name][idx] = model.Match{
		ID:       id,
		Date:     normDate,
		Points:   model.ParseCountOrZero(points),
		Rebounds: model.ParseCountOrZero(rebounds),
		Assists:  model.ParseCountOrZero(assists),
	}
	updated := next[name][idx]
	model.SortMatches(next[name])

	if err := s.commit(ctx, "update_match", next); err != nil {
		return model.Match{}, err
	}
	return updated, nil
}

// DeleteMatch removes a match by identifier. An unknown identifier is a
// silent no-op; an unknown player fails loudly.
func (s *Service) DeleteMatch(ctx context.Context, name string, id model.MatchID) error {
	name = model.TrimName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	matches, ok := s.roster[name]
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}

	idx := -1
	for i, m := range matches {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := s.roster.Clone()
	next[name] = append(next[name][:idx], next[name][idx+1:]...)
	return s.commit(ctx, "delete_match", next)
}

// ResetPlayerStats replaces a player's match list with an empty list.
// The player entry itself survives.
func (s *Service) ResetPlayerStats(ctx context.Context, name string) error {
	name = model.TrimName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roster[name]; !ok {
		return fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}

	next := s.roster.Clone()
	next[name] = []model.Match{}
	return s.commit(ctx, "reset_player", next)
}

// ResetAll clears the entire roster and purges the persisted snapshot
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearRoster(ctx); err != nil {
		s.metrics.MutationFailed("reset_all")
		return fmt.Errorf("purging roster snapshot: %w", err)
	}
	s.roster = model.NewRoster()
	s.metrics.MutationApplied("reset_all", 0)
	s.logger.Info("roster reset", slog.String("op", "reset_all"))
	return nil
}

// LoadDefaultsReplace discards the current roster and installs the
// built-in default names, each with an empty match list
func (s *Service) LoadDefaultsReplace(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.NewRoster()
	for _, name := range model.DefaultPlayerNames {
		next[name] = []model.Match{}
	}
	return s.commit(ctx, "defaults_replace", next)
}

// LoadDefaultsMerge inserts the built-in default names that are not
// already present; existing players keep their match lists
func (s *Service) LoadDefaultsMerge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.roster.Clone()
	for _, name := range model.DefaultPlayerNames {
		if _, ok := next[name]; !ok {
			next[name] = []model.Match{}
		}
	}
	return s.commit(ctx, "defaults_merge", next)
}

// PlayerNames returns all player names sorted ascending
func (s *Service) PlayerNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.PlayerNames()
}

// Matches returns a copy of a player's date-sorted match list
func (s *Service) Matches(name string) ([]model.Match, error) {
	name = model.TrimName(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches, ok := s.roster[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrPlayerNotFound, name)
	}
	out := make([]model.Match, len(matches))
	copy(out, matches)
	return out, nil
}

// Snapshot returns a deep copy of the current roster
func (s *Service) Snapshot() model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.Clone()
}

// commit persists the candidate roster and swaps it in on success.
// Callers must hold the write lock.
func (s *Service) commit(ctx context.Context, op string, next model.Roster) error {
	start := time.Now()
	if err := s.store.SaveRoster(ctx, next); err != nil {
		s.metrics.MutationFailed(op)
		s.logger.Error("roster mutation rejected",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return fmt.Errorf("persisting roster: %w", err)
	}
	s.roster = next
	s.metrics.MutationApplied(op, time.Since(start))
	s.logger.Info("roster mutation applied",
		slog.String("op", op),
		slog.Int("players", len(next)))
	return nil
}
