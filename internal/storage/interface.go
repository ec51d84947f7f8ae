package storage

import (
	"context"
	"time"

	"github.com/mcoot/matchday/internal/model"
)

// Reader defines the read side of data persistence.
// List operations return rows ordered by creation time, earliest first.
type Reader interface {
	// Player operations
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayers(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Game operations
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	// GetOpenGame returns the most recently created OPEN game
	GetOpenGame(ctx context.Context) (*model.Game, error)
	ListGamesByState(ctx context.Context, state model.GameState) ([]*model.Game, error)

	// Attendance operations
	GetAttendance(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Attendance, error)
	ListAttendances(ctx context.Context, gameID model.GameID) ([]*model.Attendance, error)

	// Guest operations
	GetGuest(ctx context.Context, id model.GuestID) (*model.GuestSlot, error)
	ListGuests(ctx context.Context, gameID model.GameID) ([]*model.GuestSlot, error)
	ListGuestsByInviter(ctx context.Context, gameID model.GameID, inviterID model.PlayerID) ([]*model.GuestSlot, error)

	// CountConfirmed returns the headcount under the capacity cap:
	// players CONFIRMED or LATE_CONFIRMED plus guests CONFIRMED
	CountConfirmed(ctx context.Context, gameID model.GameID) (int, error)
}

// Tx is a unit of work. Reads inside a Tx observe the Tx's own writes.
type Tx interface {
	Reader

	SavePlayer(ctx context.Context, player *model.Player) error
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error

	// SaveGame inserts or fully replaces a game
	SaveGame(ctx context.Context, game *model.Game) error
	// ArchiveOpenGames moves every OPEN game to ARCHIVED and returns how many changed
	ArchiveOpenGames(ctx context.Context, at time.Time) (int, error)

	// UpsertAttendance inserts or updates the (game, player) record.
	// CreatedAt of an existing record is preserved.
	UpsertAttendance(ctx context.Context, attendance *model.Attendance) error

	SaveGuest(ctx context.Context, guest *model.GuestSlot) error
	DeleteGuest(ctx context.Context, id model.GuestID) error
}

// Storage defines the interface for data persistence
type Storage interface {
	Reader

	// WithTx runs fn in a transaction. The transaction commits when fn returns
	// nil and rolls back otherwise; fn's error is returned unchanged.
	// Transactions are serialized, so a count followed by a write inside fn
	// cannot interleave with another transaction's writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// View runs fn against a consistent snapshot. Transactions that commit
	// while fn runs are not visible to it.
	View(ctx context.Context, fn func(r Reader) error) error

	Close() error
}
