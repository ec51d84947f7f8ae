package games

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/matchday/internal/dependencies/clock"
	"github.com/mcoot/matchday/internal/dependencies/ids"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
)

// Controller manages the game lifecycle. At most one game is OPEN at a time.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	ids ids.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// CreateGame publishes a new OPEN game, archiving any game that was open.
// The archive and the insert commit together.
func (c *Controller) CreateGame(ctx context.Context, adminID model.PlayerID, details model.NewGame) (*model.Game, error) {
	if details.ScheduledAt.IsZero() {
		return nil, model.ErrInvalidSchedule
	}
	location := strings.TrimSpace(details.Location)
	if location == "" {
		return nil, model.ErrLocationRequired
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.ids.NewID()),
		ScheduledAt: details.ScheduledAt.UTC(),
		Location:    location,
		Markdown:    details.Markdown,
		State:       model.GameStateOpen,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var archived int
	err := c.storage.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		if archived, err = tx.ArchiveOpenGames(ctx, now); err != nil {
			return err
		}
		return tx.SaveGame(ctx, game)
	})
	if err != nil {
		c.logger.Error("failed to create game",
			slog.String("admin_id", string(adminID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("admin_id", string(adminID)),
		slog.Time("scheduled_at", game.ScheduledAt),
		slog.Int("archived", archived),
	)

	return game, nil
}

// GetOpenGame returns the game currently accepting attendance
func (c *Controller) GetOpenGame(ctx context.Context) (*model.Game, error) {
	return c.storage.GetOpenGame(ctx)
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// CloseGame locks the roster of an open game once teams are published
func (c *Controller) CloseGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game *model.Game
	err := c.storage.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		game, err = tx.GetGame(ctx, id)
		if err != nil {
			return err
		}
		if !game.IsOpen() {
			return model.ErrGameNotOpen
		}
		game.State = model.GameStateClosed
		game.UpdatedAt = c.clock.Now()
		return tx.SaveGame(ctx, game)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("game closed", slog.String("game_id", string(id)))

	return game, nil
}
