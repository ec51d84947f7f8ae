package model

import "time"

// GameID uniquely identifies a game (UUID)
type GameID string

// GameState is the lifecycle phase of a game
type GameState string

const (
	GameStateOpen     GameState = "OPEN"     // Accepting attendance and guests
	GameStateClosed   GameState = "CLOSED"   // Teams published, roster locked
	GameStateArchived GameState = "ARCHIVED" // Superseded by a newer game
)

// Game is one scheduled match
type Game struct {
	ID          GameID
	ScheduledAt time.Time
	Location    string
	Markdown    string
	State       GameState
	CreatedBy   PlayerID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether the game still accepts roster changes
func (g *Game) IsOpen() bool {
	return g.State == GameStateOpen
}

// NewGame holds the admin-supplied fields for publishing a game
type NewGame struct {
	ScheduledAt time.Time
	Location    string
	Markdown    string
}
