// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
)

var errAbort = errors.New("abort")

var baseTime = time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

// Suite runs the storage contract against a fresh backend per test
type Suite struct {
	suite.Suite

	// NewStorage builds an empty backend for each test
	NewStorage func() storage.Storage

	Store storage.Storage
	Ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.Store = s.NewStorage()
	s.Ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.Store != nil {
		_ = s.Store.Close()
	}
}

func (s *Suite) tx(fn func(tx storage.Tx) error) {
	s.Require().NoError(s.Store.WithTx(s.Ctx, fn))
}

func (s *Suite) savePlayer(id, name string) {
	s.tx(func(tx storage.Tx) error {
		return tx.SavePlayer(s.Ctx, &model.Player{ID: model.PlayerID(id), DisplayName: name, Rating: 5, CreatedAt: baseTime})
	})
}

func (s *Suite) saveGame(id string, state model.GameState, createdAt time.Time) {
	s.tx(func(tx storage.Tx) error {
		return tx.SaveGame(s.Ctx, &model.Game{
			ID:          model.GameID(id),
			ScheduledAt: createdAt.Add(48 * time.Hour),
			Location:    "Pitch 3",
			State:       state,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		})
	})
}

func (s *Suite) upsert(gameID, playerID string, status model.AttendanceStatus, at time.Time) {
	s.tx(func(tx storage.Tx) error {
		return tx.UpsertAttendance(s.Ctx, &model.Attendance{
			GameID:    model.GameID(gameID),
			PlayerID:  model.PlayerID(playerID),
			Status:    status,
			CreatedAt: at,
			UpdatedAt: at,
		})
	})
}

func (s *Suite) saveGuest(id, gameID, inviterID string, status model.GuestStatus, at time.Time) {
	s.tx(func(tx storage.Tx) error {
		return tx.SaveGuest(s.Ctx, &model.GuestSlot{
			ID:              model.GuestID(id),
			GameID:          model.GameID(gameID),
			InviterID:       model.PlayerID(inviterID),
			DisplayName:     "Guest " + id,
			Rating:          6,
			PrimaryPosition: model.PositionMidfielder,
			Status:          status,
			CreatedAt:       at,
			UpdatedAt:       at,
		})
	})
}

// Player tests

func (s *Suite) TestSaveAndGetPlayer() {
	s.savePlayer("p1", "Alice")

	p, err := s.Store.GetPlayer(s.Ctx, "p1")
	s.Require().NoError(err)
	s.Equal("Alice", p.DisplayName)
	s.Equal(5, p.Rating)
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.Store.GetPlayer(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestGetPlayersSkipsUnknown() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")

	players, err := s.Store.GetPlayers(s.Ctx, []model.PlayerID{"p1", "p2", "p3"})
	s.Require().NoError(err)
	s.Len(players, 2)
	s.Equal("Bob", players["p2"].DisplayName)
}

func (s *Suite) TestRegisteredPlayerByUsername() {
	s.savePlayer("p1", "Alice")
	s.tx(func(tx storage.Tx) error {
		return tx.SaveRegisteredPlayer(s.Ctx, &model.RegisteredPlayer{
			PlayerID: "p1", Username: "alice", PasswordHash: "hash", CreatedAt: baseTime, UpdatedAt: baseTime,
		})
	})

	rp, err := s.Store.GetRegisteredPlayerByUsername(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), rp.PlayerID)
	s.Equal("hash", rp.PasswordHash)

	_, err = s.Store.GetRegisteredPlayerByUsername(s.Ctx, "bob")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Game tests

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Store.GetGame(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveGameUpdatesExisting() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.tx(func(tx storage.Tx) error {
		g, err := tx.GetGame(s.Ctx, "g1")
		if err != nil {
			return err
		}
		g.State = model.GameStateClosed
		g.Location = "Pitch 5"
		return tx.SaveGame(s.Ctx, g)
	})

	g, err := s.Store.GetGame(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Equal(model.GameStateClosed, g.State)
	s.Equal("Pitch 5", g.Location)
	s.True(g.ScheduledAt.Equal(baseTime.Add(48 * time.Hour)))
}

func (s *Suite) TestGetOpenGameNone() {
	s.saveGame("g1", model.GameStateArchived, baseTime)

	_, err := s.Store.GetOpenGame(s.Ctx)
	s.ErrorIs(err, model.ErrNoOpenGame)
}

func (s *Suite) TestArchiveOpenGamesThenInsertInOneTx() {
	s.saveGame("g1", model.GameStateOpen, baseTime)

	s.tx(func(tx storage.Tx) error {
		n, err := tx.ArchiveOpenGames(s.Ctx, baseTime.Add(time.Hour))
		if err != nil {
			return err
		}
		s.Equal(1, n)
		return tx.SaveGame(s.Ctx, &model.Game{
			ID: "g2", ScheduledAt: baseTime, Location: "Pitch 1", State: model.GameStateOpen,
			CreatedAt: baseTime.Add(time.Hour), UpdatedAt: baseTime.Add(time.Hour),
		})
	})

	open, err := s.Store.GetOpenGame(s.Ctx)
	s.Require().NoError(err)
	s.Equal(model.GameID("g2"), open.ID)

	old, err := s.Store.GetGame(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Equal(model.GameStateArchived, old.State)

	archived, err := s.Store.ListGamesByState(s.Ctx, model.GameStateArchived)
	s.Require().NoError(err)
	s.Len(archived, 1)
}

// Transaction tests

func (s *Suite) TestTxRollbackDiscardsWrites() {
	s.saveGame("g1", model.GameStateOpen, baseTime)

	err := s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
		if _, err := tx.ArchiveOpenGames(s.Ctx, baseTime); err != nil {
			return err
		}
		return errAbort
	})
	s.ErrorIs(err, errAbort)

	g, err := s.Store.GetGame(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Equal(model.GameStateOpen, g.State)
}

func (s *Suite) TestTxSeesOwnWrites() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")

	s.tx(func(tx storage.Tx) error {
		if err := tx.UpsertAttendance(s.Ctx, &model.Attendance{
			GameID: "g1", PlayerID: "p1", Status: model.StatusConfirmed, CreatedAt: baseTime, UpdatedAt: baseTime,
		}); err != nil {
			return err
		}
		count, err := tx.CountConfirmed(s.Ctx, "g1")
		s.Equal(1, count)
		return err
	})
}

// Attendance tests

func (s *Suite) TestUpsertAttendanceKeepsCreatedAt() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")

	s.upsert("g1", "p1", model.StatusConfirmed, baseTime)
	s.upsert("g1", "p1", model.StatusOut, baseTime.Add(time.Hour))

	a, err := s.Store.GetAttendance(s.Ctx, "g1", "p1")
	s.Require().NoError(err)
	s.Equal(model.StatusOut, a.Status)
	s.True(a.CreatedAt.Equal(baseTime))
	s.True(a.UpdatedAt.Equal(baseTime.Add(time.Hour)))

	all, err := s.Store.ListAttendances(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *Suite) TestGetAttendanceNotFound() {
	_, err := s.Store.GetAttendance(s.Ctx, "g1", "p1")
	s.ErrorIs(err, model.ErrAttendanceNotFound)
}

func (s *Suite) TestListAttendancesOrderedByCreation() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")
	s.savePlayer("p3", "Cara")

	s.upsert("g1", "p2", model.StatusConfirmed, baseTime.Add(2*time.Minute))
	s.upsert("g1", "p3", model.StatusWaiting, baseTime.Add(3*time.Minute))
	s.upsert("g1", "p1", model.StatusConfirmed, baseTime.Add(time.Minute))

	all, err := s.Store.ListAttendances(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.PlayerID("p1"), all[0].PlayerID)
	s.Equal(model.PlayerID("p2"), all[1].PlayerID)
	s.Equal(model.PlayerID("p3"), all[2].PlayerID)
}

// Guest tests

func (s *Suite) TestGuestLifecycle() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")
	s.saveGuest("guest-1", "g1", "p1", model.GuestConfirmed, baseTime)

	g, err := s.Store.GetGuest(s.Ctx, "guest-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), g.InviterID)
	s.Equal(model.PositionMidfielder, g.PrimaryPosition)
	s.Equal(model.Position(""), g.SecondaryPosition)

	s.tx(func(tx storage.Tx) error { return tx.DeleteGuest(s.Ctx, "guest-1") })

	_, err = s.Store.GetGuest(s.Ctx, "guest-1")
	s.ErrorIs(err, model.ErrGuestNotFound)
}

func (s *Suite) TestDeleteGuestNotFound() {
	err := s.Store.WithTx(s.Ctx, func(tx storage.Tx) error { return tx.DeleteGuest(s.Ctx, "missing") })
	s.ErrorIs(err, model.ErrGuestNotFound)
}

func (s *Suite) TestListGuestsByInviter() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")
	s.saveGuest("guest-2", "g1", "p1", model.GuestConfirmed, baseTime.Add(2*time.Minute))
	s.saveGuest("guest-1", "g1", "p1", model.GuestWaiting, baseTime.Add(time.Minute))
	s.saveGuest("guest-3", "g1", "p2", model.GuestConfirmed, baseTime)

	mine, err := s.Store.ListGuestsByInviter(s.Ctx, "g1", "p1")
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Equal(model.GuestID("guest-1"), mine[0].ID)
	s.Equal(model.GuestID("guest-2"), mine[1].ID)

	all, err := s.Store.ListGuests(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal(model.GuestID("guest-3"), all[0].ID)
}

func (s *Suite) TestCountConfirmedCombinesPlayersAndGuests() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.saveGame("g2", model.GameStateArchived, baseTime.Add(-time.Hour))
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		s.savePlayer(id, id)
	}
	s.upsert("g1", "p1", model.StatusConfirmed, baseTime)
	s.upsert("g1", "p2", model.StatusLateConfirmed, baseTime)
	s.upsert("g1", "p3", model.StatusWaiting, baseTime)
	s.upsert("g1", "p4", model.StatusOut, baseTime)
	s.upsert("g2", "p3", model.StatusConfirmed, baseTime)
	s.saveGuest("guest-1", "g1", "p1", model.GuestConfirmed, baseTime)
	s.saveGuest("guest-2", "g1", "p1", model.GuestWaiting, baseTime)

	count, err := s.Store.CountConfirmed(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *Suite) TestViewReturnsFnError() {
	err := s.Store.View(s.Ctx, func(storage.Reader) error { return errAbort })
	s.ErrorIs(err, errAbort)
}

func (s *Suite) TestViewIgnoresConcurrentCommit() {
	s.saveGame("g1", model.GameStateOpen, baseTime)
	s.savePlayer("p1", "Alice")
	s.upsert("g1", "p1", model.StatusConfirmed, baseTime)

	committed := make(chan error, 1)
	err := s.Store.View(s.Ctx, func(r storage.Reader) error {
		before, err := r.ListGuests(s.Ctx, "g1")
		s.Require().NoError(err)
		s.Empty(before)

		go func() {
			committed <- s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
				return tx.SaveGuest(s.Ctx, &model.GuestSlot{
					ID: "guest-1", GameID: "g1", InviterID: "p1", DisplayName: "Alex", Rating: 6,
					PrimaryPosition: model.PositionMidfielder, Status: model.GuestConfirmed,
					CreatedAt: baseTime, UpdatedAt: baseTime,
				})
			})
		}()
		select {
		case err := <-committed:
			s.FailNow("write committed inside a view", "err: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		after, err := r.ListGuests(s.Ctx, "g1")
		s.Require().NoError(err)
		s.Empty(after)

		count, err := r.CountConfirmed(s.Ctx, "g1")
		s.Require().NoError(err)
		s.Equal(1, count)
		return nil
	})
	s.Require().NoError(err)
	s.Require().NoError(<-committed)

	guests, err := s.Store.ListGuests(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Len(guests, 1)
}
