package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/courtlog/courtlog/internal/dependencies/mocks"
	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/storage"
	"github.com/courtlog/courtlog/internal/storage/memory"
	"github.com/courtlog/courtlog/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	ids     *mocks.MockGenerator
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ids = mocks.NewMockGenerator()
	s.service = NewService(s.storage, s.ids, testutil.NopLogger(), nil)
	s.ctx = context.Background()
}

// AddPlayer tests

func (s *ServiceSuite) TestAddPlayerSucceeds() {
	name, err := s.service.AddPlayer(s.ctx, "Ana")
	s.Require().NoError(err)

	s.Equal("Ana", name)
	s.Equal([]string{"Ana"}, s.service.PlayerNames())
}

func (s *ServiceSuite) TestAddPlayerTrimsName() {
	name, err := s.service.AddPlayer(s.ctx, "  Bo  ")
	s.Require().NoError(err)

	s.Equal("Bo", name)
	s.Equal([]string{"Bo"}, s.service.PlayerNames())
}

func (s *ServiceSuite) TestAddPlayerEmptyName() {
	_, err := s.service.AddPlayer(s.ctx, "   ")
	s.ErrorIs(err, model.ErrEmptyPlayerName)
}

func (s *ServiceSuite) TestAddPlayerDuplicate() {
	_, err := s.service.AddPlayer(s.ctx, "Ana")
	s.Require().NoError(err)
	_, err = s.service.AddMatch(s.ctx, "Ana", "2024-01-05", 10, 2, 1)
	s.Require().NoError(err)

	_, err = s.service.AddPlayer(s.ctx, "Ana")
	s.ErrorIs(err, model.ErrPlayerExists)

	// Original entry and its match list survive
	s.Equal([]string{"Ana"}, s.service.PlayerNames())
	matches, err := s.service.Matches("Ana")
	s.Require().NoError(err)
	s.Len(matches, 1)
}

func (s *ServiceSuite) TestAddPlayerIsPersisted() {
	_, err := s.service.AddPlayer(s.ctx, "Ana")
	s.Require().NoError(err)

	stored, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Contains(stored, "Ana")
}

// DeletePlayer tests

func (s *ServiceSuite) TestDeletePlayerRemovesHistory() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)

	err := s.service.DeletePlayer(s.ctx, "John")
	s.Require().NoError(err)

	s.Empty(s.service.PlayerNames())

	// Subsequent match recording fails loudly
	_, err = s.service.AddMatch(s.ctx, "John", "2024-01-11", 10, 1, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeletePlayerUnknownFailsLoudly() {
	err := s.service.DeletePlayer(s.ctx, "Ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// AddMatch tests

func (s *ServiceSuite) TestAddMatchSucceeds() {
	s.ids.QueueIDs("match-1")
	_, _ = s.service.AddPlayer(s.ctx, "John")

	match, err := s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)
	s.Require().NoError(err)

	s.Equal(model.MatchID("match-1"), match.ID)
	s.Equal("2024-01-10", match.Date)
	s.Equal(20, match.Points)
	s.Equal(5, match.Rebounds)
	s.Equal(3, match.Assists)
}

func (s *ServiceSuite) TestAddMatchEmptyName() {
	_, err := s.service.AddMatch(s.ctx, "  ", "2024-01-10", 20, 5, 3)
	s.ErrorIs(err, model.ErrEmptyPlayerName)
}

func (s *ServiceSuite) TestAddMatchUnknownPlayer() {
	_, err := s.service.AddMatch(s.ctx, "Ghost", "2024-01-10", 20, 5, 3)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestAddMatchInvalidDate() {
	_, _ = s.service.AddPlayer(s.ctx, "John")

	_, err := s.service.AddMatch(s.ctx, "John", "", 20, 5, 3)
	s.ErrorIs(err, model.ErrInvalidDate)

	_, err = s.service.AddMatch(s.ctx, "John", "not-a-date", 20, 5, 3)
	s.ErrorIs(err, model.ErrInvalidDate)
}

func (s *ServiceSuite) TestAddMatchCoercesBadCounts() {
	_, _ = s.service.AddPlayer(s.ctx, "John")

	match, err := s.service.AddMatch(s.ctx, "John", "2024-01-10", "twelve", nil, "7")
	s.Require().NoError(err)

	s.Equal(0, match.Points)
	s.Equal(0, match.Rebounds)
	s.Equal(7, match.Assists)
}

func (s *ServiceSuite) TestAddMatchKeepsListSortedByDate() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)

	matches, err := s.service.Matches("John")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal("2024-01-05", matches[0].Date)
	s.Equal(10, matches[0].Points)
	s.Equal("2024-01-10", matches[1].Date)
	s.Equal(20, matches[1].Points)
}

func (s *ServiceSuite) TestAddMatchGeneratesUniqueIDs() {
	_, _ = s.service.AddPlayer(s.ctx, "John")

	m1, _ := s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)
	m2, _ := s.service.AddMatch(s.ctx, "John", "2024-01-05", 12, 3, 2)

	s.NotEqual(m1.ID, m2.ID)
}

// UpdateMatch tests

func (s *ServiceSuite) TestUpdateMatchPreservesIDAndResorts() {
	s.ids.QueueIDs("m1", "m2")
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)

	// Move the earlier match past the later one
	updated, err := s.service.UpdateMatch(s.ctx, "John", "m1", "2024-01-15", 30, 6, 4)
	s.Require().NoError(err)
	s.Equal(model.MatchID("m1"), updated.ID)
	s.Equal(30, updated.Points)

	matches, _ := s.service.Matches("John")
	s.Require().Len(matches, 2)
	s.Equal(model.MatchID("m2"), matches[0].ID)
	s.Equal(model.MatchID("m1"), matches[1].ID)
}

func (s *ServiceSuite) TestUpdateMatchUnknownPlayer() {
	_, err := s.service.UpdateMatch(s.ctx, "Ghost", "m1", "2024-01-15", 30, 6, 4)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdateMatchUnknownID() {
	_, _ = s.service.AddPlayer(s.ctx, "John")

	_, err := s.service.UpdateMatch(s.ctx, "John", "missing", "2024-01-15", 30, 6, 4)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// DeleteMatch tests

func (s *ServiceSuite) TestDeleteMatchRemovesRecord() {
	s.ids.QueueIDs("m1", "m2")
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)

	err := s.service.DeleteMatch(s.ctx, "John", "m1")
	s.Require().NoError(err)

	matches, _ := s.service.Matches("John")
	s.Require().Len(matches, 1)
	s.Equal(model.MatchID("m2"), matches[0].ID)
}

func (s *ServiceSuite) TestDeleteMatchAbsentIDIsNoop() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)

	err := s.service.DeleteMatch(s.ctx, "John", "missing")
	s.Require().NoError(err)

	matches, _ := s.service.Matches("John")
	s.Len(matches, 1)
}

func (s *ServiceSuite) TestDeleteMatchUnknownPlayer() {
	err := s.service.DeleteMatch(s.ctx, "Ghost", "m1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Reset tests

func (s *ServiceSuite) TestResetPlayerStatsKeepsPlayer() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)

	err := s.service.ResetPlayerStats(s.ctx, "John")
	s.Require().NoError(err)

	matches, err := s.service.Matches("John")
	s.Require().NoError(err)
	s.Empty(matches)
	s.Equal([]string{"John"}, s.service.PlayerNames())
}

func (s *ServiceSuite) TestResetAllClearsRosterAndSnapshot() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)

	err := s.service.ResetAll(s.ctx)
	s.Require().NoError(err)

	s.Empty(s.service.PlayerNames())

	_, err = s.storage.LoadRoster(s.ctx)
	s.ErrorIs(err, model.ErrNoSnapshot)
}

// Default roster tests

func (s *ServiceSuite) TestLoadDefaultsReplaceDiscardsExisting() {
	_, _ = s.service.AddPlayer(s.ctx, "Zinedine")
	_, _ = s.service.AddMatch(s.ctx, "Zinedine", "2024-01-05", 10, 2, 1)

	err := s.service.LoadDefaultsReplace(s.ctx)
	s.Require().NoError(err)

	names := s.service.PlayerNames()
	s.NotContains(names, "Zinedine")
	s.ElementsMatch(model.DefaultPlayerNames, names)
}

func (s *ServiceSuite) TestLoadDefaultsMergeKeepsExisting() {
	existing := model.DefaultPlayerNames[0]
	_, _ = s.service.AddPlayer(s.ctx, existing)
	_, _ = s.service.AddMatch(s.ctx, existing, "2024-01-05", 10, 2, 1)

	err := s.service.LoadDefaultsMerge(s.ctx)
	s.Require().NoError(err)

	s.ElementsMatch(model.DefaultPlayerNames, s.service.PlayerNames())

	// The pre-existing player's match list survives the merge
	matches, err := s.service.Matches(existing)
	s.Require().NoError(err)
	s.Len(matches, 1)
}

// Load tests

func (s *ServiceSuite) TestLoadBootstrapsDefaultsWhenNoSnapshot() {
	err := s.service.Load(s.ctx, true)
	s.Require().NoError(err)

	s.ElementsMatch(model.DefaultPlayerNames, s.service.PlayerNames())

	// Bootstrap is persisted
	stored, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, len(model.DefaultPlayerNames))
}

func (s *ServiceSuite) TestLoadBootstrapsEmptyWhenConfigured() {
	err := s.service.Load(s.ctx, false)
	s.Require().NoError(err)

	s.Empty(s.service.PlayerNames())
}

func (s *ServiceSuite) TestLoadHydratesStoredRoster() {
	_, _ = s.service.AddPlayer(s.ctx, "John")
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-10", 20, 5, 3)
	_, _ = s.service.AddMatch(s.ctx, "John", "2024-01-05", 10, 2, 1)

	// A second service over the same storage sees the same roster
	fresh := NewService(s.storage, mocks.NewMockGenerator(), testutil.NopLogger(), nil)
	err := fresh.Load(s.ctx, true)
	s.Require().NoError(err)

	s.Equal([]string{"John"}, fresh.PlayerNames())
	matches, err := fresh.Matches("John")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal("2024-01-05", matches[0].Date)
	s.Equal("2024-01-10", matches[1].Date)
}

// Atomicity tests

var errSaveRejected = errors.New("save rejected")

// failingStorage rejects every save, for exercising the commit path
type failingStorage struct {
	storage.Storage
}

func (f *failingStorage) SaveRoster(context.Context, model.Roster) error {
	return errSaveRejected
}

func (s *ServiceSuite) TestFailedSaveLeavesStateUntouched() {
	_, _ = s.service.AddPlayer(s.ctx, "John")

	broken := NewService(&failingStorage{Storage: s.storage}, s.ids, testutil.NopLogger(), nil)
	s.Require().NoError(broken.Load(s.ctx, false))

	_, err := broken.AddPlayer(s.ctx, "Ana")
	s.ErrorIs(err, errSaveRejected)

	s.NotContains(broken.PlayerNames(), "Ana")
}
