package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/mcoot/matchday/internal/model"
)

// ErrNotFound is returned when a token has no stored session
var ErrNotFound = errors.New("session not found")

// Session represents an authenticated session
type Session struct {
	Token     string         `json:"token"`
	PlayerID  model.PlayerID `json:"player_id"`
	Player    model.Player   `json:"player"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Store persists sessions by token. Stores may drop a session once its
// ttl has passed; callers still check ExpiresAt themselves.
type Store interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	Close() error
}
