package roster

import (
	"context"
	"fmt"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
)

// Service builds roster views of a game
type Service struct {
	storage storage.Storage
}

// New creates a new roster Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Project returns the current roster of a game, read from a single snapshot
func (s *Service) Project(ctx context.Context, gameID model.GameID) (*model.Roster, error) {
	var roster *model.Roster
	err := s.storage.View(ctx, func(r storage.Reader) error {
		var err error
		roster, err = s.ProjectTx(ctx, r, gameID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

// ProjectTx builds the roster from r, which may be an open transaction so
// writers can return exactly the state they are about to commit.
func (s *Service) ProjectTx(ctx context.Context, r storage.Reader, gameID model.GameID) (*model.Roster, error) {
	if _, err := r.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	attendances, err := r.ListAttendances(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	guests, err := r.ListGuests(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	profiles, err := r.GetPlayers(ctx, playerIDs(attendances, guests))
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	roster := &model.Roster{
		GameID:          gameID,
		Confirmed:       []model.RosterPlayer{},
		Waiting:         []model.RosterPlayer{},
		ConfirmedGuests: []model.RosterGuest{},
		WaitingGuests:   []model.RosterGuest{},
	}

	for _, a := range attendances {
		entry := model.RosterPlayer{Attendance: *a, Player: profile(profiles, a.PlayerID)}
		switch a.Status {
		case model.StatusConfirmed, model.StatusLateConfirmed:
			roster.Confirmed = append(roster.Confirmed, entry)
		case model.StatusWaiting:
			roster.Waiting = append(roster.Waiting, entry)
		case model.StatusOut:
		}
	}

	for _, g := range guests {
		entry := model.RosterGuest{GuestSlot: *g, Inviter: profile(profiles, g.InviterID)}
		switch g.Status {
		case model.GuestConfirmed:
			roster.ConfirmedGuests = append(roster.ConfirmedGuests, entry)
		case model.GuestWaiting:
			roster.WaitingGuests = append(roster.WaitingGuests, entry)
		}
	}

	return roster, nil
}

func playerIDs(attendances []*model.Attendance, guests []*model.GuestSlot) []model.PlayerID {
	seen := make(map[model.PlayerID]bool, len(attendances)+len(guests))
	ids := make([]model.PlayerID, 0, len(attendances)+len(guests))
	add := func(id model.PlayerID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, a := range attendances {
		add(a.PlayerID)
	}
	for _, g := range guests {
		add(g.InviterID)
	}
	return ids
}

// profile falls back to a bare id when the player has no stored profile
func profile(profiles map[model.PlayerID]*model.Player, id model.PlayerID) model.Player {
	if p, ok := profiles[id]; ok {
		return *p
	}
	return model.Player{ID: id}
}
