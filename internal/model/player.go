package model

import "time"

// PlayerID uniquely identifies a registered group member
type PlayerID string

// DefaultRating is assigned to new players until an admin edits it
const DefaultRating = 5

// Player is the profile shown next to a player's attendance
type Player struct {
	ID          PlayerID
	DisplayName string
	Rating      int
	IsAdmin     bool
	CreatedAt   time.Time
}

// RegisteredPlayer holds login credentials for a Player.
// Stored separately so the password hash never travels with the profile.
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
