package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/matchday/internal/dependencies/clock"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/roster"
	"github.com/mcoot/matchday/internal/storage"
)

// Result is the outcome of an attendance change
type Result struct {
	Roster *model.Roster
	// RequiresGuestRemovalDialog is set when a player dropped OUT while still
	// owning guest slots; the guests stay until the player removes them.
	RequiresGuestRemovalDialog bool
}

// Controller applies attendance changes under the shared capacity cap
type Controller struct {
	storage storage.Storage
	roster  *roster.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new attendance Controller
func NewController(
	storage storage.Storage,
	roster *roster.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		roster:  roster,
		clock:   clock,
		logger:  logger,
	}
}

// RegisterAttendance moves a player to the requested status for an open game.
// Repeating the current status changes nothing.
//
// A first-time CONFIRMED request lands in WAITING once the game is full.
// Players who already have a record are moved to CONFIRMED regardless of
// the cap, and WAITING, OUT and LATE_CONFIRMED are always honoured.
func (c *Controller) RegisterAttendance(
	ctx context.Context,
	playerID model.PlayerID,
	gameID model.GameID,
	requested model.AttendanceStatus,
) (*Result, error) {
	if !requested.Valid() {
		return nil, model.ErrInvalidStatus
	}

	result := &Result{}
	var (
		previous model.AttendanceStatus
		placed   model.AttendanceStatus
	)

	err := c.storage.WithTx(ctx, func(tx storage.Tx) error {
		game, err := tx.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		if !game.IsOpen() {
			return model.ErrGameNotOpen
		}

		current, err := tx.GetAttendance(ctx, gameID, playerID)
		if err != nil && !errors.Is(err, model.ErrAttendanceNotFound) {
			return fmt.Errorf("get attendance: %w", err)
		}
		if current != nil {
			previous = current.Status
		}

		placed, err = c.place(ctx, tx, gameID, current, requested)
		if err != nil {
			return err
		}

		if current == nil || current.Status != placed {
			now := c.clock.Now()
			if err := tx.UpsertAttendance(ctx, &model.Attendance{
				GameID:    gameID,
				PlayerID:  playerID,
				Status:    placed,
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return err
			}

			if placed == model.StatusOut {
				owned, err := tx.ListGuestsByInviter(ctx, gameID, playerID)
				if err != nil {
					return fmt.Errorf("list guests: %w", err)
				}
				result.RequiresGuestRemovalDialog = len(owned) > 0
			}
		}

		result.Roster, err = c.roster.ProjectTx(ctx, tx, gameID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if previous != placed {
		c.logger.Info("attendance changed",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(playerID)),
			slog.String("from", string(previous)),
			slog.String("requested", string(requested)),
			slog.String("to", string(placed)),
		)
	}

	return result, nil
}

// place decides the status a request resolves to
func (c *Controller) place(
	ctx context.Context,
	tx storage.Tx,
	gameID model.GameID,
	current *model.Attendance,
	requested model.AttendanceStatus,
) (model.AttendanceStatus, error) {
	if current != nil && current.Status == requested {
		return requested, nil
	}

	switch requested {
	case model.StatusConfirmed:
		if current != nil {
			return model.StatusConfirmed, nil
		}
		count, err := tx.CountConfirmed(ctx, gameID)
		if err != nil {
			return "", fmt.Errorf("count confirmed: %w", err)
		}
		if count >= model.MaxTotal {
			return model.StatusWaiting, nil
		}
		return model.StatusConfirmed, nil
	case model.StatusWaiting, model.StatusOut, model.StatusLateConfirmed:
		return requested, nil
	}
	return "", model.ErrInvalidStatus
}

// GetAttendance returns a player's own record for a game
func (c *Controller) GetAttendance(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Attendance, error) {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return c.storage.GetAttendance(ctx, gameID, playerID)
}
