package guests

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/matchday/internal/dependencies/clock"
	"github.com/mcoot/matchday/internal/dependencies/ids"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/roster"
	"github.com/mcoot/matchday/internal/storage"
)

// Controller manages guest slots. Guests draw from the same capacity pool
// as players.
type Controller struct {
	storage storage.Storage
	roster  *roster.Service
	clock   clock.Clock
	ids     ids.Generator
	logger  *slog.Logger
}

// NewController creates a new guest Controller
func NewController(
	storage storage.Storage,
	roster *roster.Service,
	clock clock.Clock,
	ids ids.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		roster:  roster,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// CreateGuest adds a guest on behalf of an attending player. The guest is
// CONFIRMED while spots remain and WAITING otherwise.
func (c *Controller) CreateGuest(
	ctx context.Context,
	inviterID model.PlayerID,
	gameID model.GameID,
	details model.GuestDetails,
) (*model.Roster, error) {
	name, primary, secondary, err := details.Normalize()
	if err != nil {
		return nil, err
	}

	var (
		guest  *model.GuestSlot
		result *model.Roster
	)
	err = c.storage.WithTx(ctx, func(tx storage.Tx) error {
		game, err := tx.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		if !game.IsOpen() {
			return model.ErrGameNotOpen
		}

		inviter, err := tx.GetAttendance(ctx, gameID, inviterID)
		if errors.Is(err, model.ErrAttendanceNotFound) {
			return model.ErrInviterIneligible
		}
		if err != nil {
			return fmt.Errorf("get inviter attendance: %w", err)
		}
		if inviter.Status == model.StatusOut {
			return model.ErrInviterIneligible
		}

		count, err := tx.CountConfirmed(ctx, gameID)
		if err != nil {
			return fmt.Errorf("count confirmed: %w", err)
		}
		status := model.GuestConfirmed
		if count >= model.MaxTotal {
			status = model.GuestWaiting
		}

		now := c.clock.Now()
		guest = &model.GuestSlot{
			ID:                model.GuestID(c.ids.NewID()),
			GameID:            gameID,
			InviterID:         inviterID,
			DisplayName:       name,
			Rating:            details.Rating,
			PrimaryPosition:   primary,
			SecondaryPosition: secondary,
			Status:            status,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := tx.SaveGuest(ctx, guest); err != nil {
			return err
		}

		result, err = c.roster.ProjectTx(ctx, tx, gameID)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("guest added",
		slog.String("game_id", string(gameID)),
		slog.String("guest_id", string(guest.ID)),
		slog.String("inviter_id", string(inviterID)),
		slog.String("status", string(guest.Status)),
	)

	return result, nil
}

// DeleteGuest removes a guest slot and returns the roster of its game.
// Guests of a CLOSED game are locked; OPEN and ARCHIVED games allow removal.
// Callers must check ownership first with AuthorizeDeletion.
func (c *Controller) DeleteGuest(ctx context.Context, guestID model.GuestID) (*model.Roster, error) {
	var (
		gameID model.GameID
		result *model.Roster
	)
	err := c.storage.WithTx(ctx, func(tx storage.Tx) error {
		guest, err := tx.GetGuest(ctx, guestID)
		if err != nil {
			return err
		}
		gameID = guest.GameID

		game, err := tx.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		if game.State == model.GameStateClosed {
			return model.ErrGameClosed
		}

		if err := tx.DeleteGuest(ctx, guestID); err != nil {
			return err
		}

		result, err = c.roster.ProjectTx(ctx, tx, gameID)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("guest removed",
		slog.String("game_id", string(gameID)),
		slog.String("guest_id", string(guestID)),
	)

	return result, nil
}

// GetGuestsByInviter lists the guests a player brought to a game
func (c *Controller) GetGuestsByInviter(ctx context.Context, gameID model.GameID, inviterID model.PlayerID) ([]*model.GuestSlot, error) {
	return c.storage.ListGuestsByInviter(ctx, gameID, inviterID)
}

// AuthorizeDeletion checks that caller may remove guestID from gameID.
// Admins may remove any guest; players only their own.
func (c *Controller) AuthorizeDeletion(ctx context.Context, caller model.Player, gameID model.GameID, guestID model.GuestID) error {
	guest, err := c.storage.GetGuest(ctx, guestID)
	if err != nil {
		return err
	}
	if guest.GameID != gameID {
		return model.ErrGuestNotFound
	}
	if caller.IsAdmin {
		return nil
	}

	owned, err := c.GetGuestsByInviter(ctx, gameID, caller.ID)
	if err != nil {
		return fmt.Errorf("list guests: %w", err)
	}
	for _, g := range owned {
		if g.ID == guestID {
			return nil
		}
	}
	return model.ErrNotGuestOwner
}

// UpdateGuest lets an admin correct a guest's details. Status is unchanged.
func (c *Controller) UpdateGuest(ctx context.Context, guestID model.GuestID, details model.GuestDetails) (*model.GuestSlot, error) {
	name, primary, secondary, err := details.Normalize()
	if err != nil {
		return nil, err
	}

	var guest *model.GuestSlot
	err = c.storage.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		guest, err = tx.GetGuest(ctx, guestID)
		if err != nil {
			return err
		}

		game, err := tx.GetGame(ctx, guest.GameID)
		if err != nil {
			return err
		}
		if game.State == model.GameStateClosed {
			return model.ErrGameClosed
		}

		guest.DisplayName = name
		guest.Rating = details.Rating
		guest.PrimaryPosition = primary
		guest.SecondaryPosition = secondary
		guest.UpdatedAt = c.clock.Now()
		return tx.SaveGuest(ctx, guest)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("guest updated",
		slog.String("game_id", string(guest.GameID)),
		slog.String("guest_id", string(guestID)),
	)

	return guest, nil
}
