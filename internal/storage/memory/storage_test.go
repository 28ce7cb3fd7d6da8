package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/courtlog/courtlog/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadWithoutSave() {
	_, err := s.storage.LoadRoster(s.ctx)
	s.ErrorIs(err, model.ErrNoSnapshot)
}

func (s *StorageSuite) TestSaveAndLoadRoundTrip() {
	roster := model.Roster{
		"Ana": {
			{ID: "m1", Date: "2024-01-05", Points: 10, Rebounds: 2, Assists: 1},
			{ID: "m2", Date: "2024-01-10", Points: 20, Rebounds: 5, Assists: 3},
		},
		"Bo": {},
	}

	err := s.storage.SaveRoster(s.ctx, roster)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Equal(roster, loaded)
}

func (s *StorageSuite) TestSaveStoresACopy() {
	roster := model.Roster{"Ana": {{ID: "m1", Date: "2024-01-05", Points: 10}}}
	_ = s.storage.SaveRoster(s.ctx, roster)

	// Mutating the caller's roster must not affect the stored snapshot
	roster["Ana"][0].Points = 99

	loaded, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Equal(10, loaded["Ana"][0].Points)
}

func (s *StorageSuite) TestSaveEmptyRosterIsASnapshot() {
	err := s.storage.SaveRoster(s.ctx, model.NewRoster())
	s.Require().NoError(err)

	loaded, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *StorageSuite) TestClearRoster() {
	_ = s.storage.SaveRoster(s.ctx, model.Roster{"Ana": {}})

	err := s.storage.ClearRoster(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.LoadRoster(s.ctx)
	s.ErrorIs(err, model.ErrNoSnapshot)
}
