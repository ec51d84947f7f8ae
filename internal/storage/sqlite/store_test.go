package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
	"github.com/mcoot/matchday/internal/storage/storagetest"
)

type StoreSuite struct {
	storagetest.Suite
	path string
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "test.db")
	s.NewStorage = func() storage.Storage {
		st, err := Open(s.path)
		s.Require().NoError(err)
		return st
	}
	s.Suite.SetupTest()
}

func (s *StoreSuite) TestPragmasApplied() {
	db := s.Store.(*Storage).db

	var mode string
	s.Require().NoError(db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	s.Equal("wal", mode)

	var fk int
	s.Require().NoError(db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	s.Equal(1, fk)

	var version int
	s.Require().NoError(db.QueryRow("PRAGMA user_version").Scan(&version))
	s.Equal(currentSchemaVersion, version)
}

func (s *StoreSuite) TestReopenKeepsData() {
	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
		return tx.SaveGame(s.Ctx, &model.Game{
			ID: "g1", ScheduledAt: now, Location: "Pitch 3", State: model.GameStateOpen, CreatedAt: now, UpdatedAt: now,
		})
	}))
	s.Require().NoError(s.Store.Close())

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.Store = reopened

	g, err := reopened.GetOpenGame(s.Ctx)
	s.Require().NoError(err)
	s.Equal(model.GameID("g1"), g.ID)
	s.True(g.ScheduledAt.Equal(now))
}

func (s *StoreSuite) TestSecondOpenGameRejected() {
	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	save := func(id model.GameID) error {
		return s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
			return tx.SaveGame(s.Ctx, &model.Game{
				ID: id, ScheduledAt: now, Location: "Pitch 3", State: model.GameStateOpen, CreatedAt: now, UpdatedAt: now,
			})
		})
	}

	s.Require().NoError(save("g1"))
	s.Error(save("g2"))

	_, err := s.Store.GetGame(s.Ctx, "g2")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StoreSuite) TestGuestForUnknownGameRejected() {
	err := s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
		return tx.SaveGuest(s.Ctx, &model.GuestSlot{
			ID: "guest-1", GameID: "missing", InviterID: "p1", DisplayName: "Guest", Rating: 5,
			PrimaryPosition: model.PositionGoalkeeper, Status: model.GuestConfirmed,
		})
	})
	s.Error(err)
}

func (s *StoreSuite) TestOpenEscapesURICharactersInPath() {
	s.True(strings.HasPrefix(dsn("/data/a#1?b%.db"), "file:/data/a%231%3Fb%25.db?"))

	path := filepath.Join(s.T().TempDir(), "club#1?season.db")
	st, err := Open(path)
	s.Require().NoError(err)
	defer st.Close()

	_, err = os.Stat(path)
	s.NoError(err)
}
