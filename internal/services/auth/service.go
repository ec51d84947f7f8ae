package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/matchday/internal/dependencies/clock"
	"github.com/mcoot/matchday/internal/dependencies/ids"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/sessions"
	"github.com/mcoot/matchday/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = fmt.Errorf("username already exists: %w", model.ErrConflict)
)

// Session is re-exported so callers need not import the sessions package
type Session = sessions.Session

// Service handles player accounts and sessions
type Service struct {
	storage  storage.Storage
	sessions sessions.Store
	clock    clock.Clock
	ids      ids.Generator
	logger   *slog.Logger

	sessionDuration time.Duration
	admins          map[string]bool
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
	// Admins lists usernames granted the admin role when they register
	Admins []string
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(
	storage storage.Storage,
	store sessions.Store,
	clock clock.Clock,
	ids ids.Generator,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	admins := make(map[string]bool, len(cfg.Admins))
	for _, name := range cfg.Admins {
		if name = strings.TrimSpace(name); name != "" {
			admins[name] = true
		}
	}
	return &Service{
		storage:         storage,
		sessions:        store,
		clock:           clock,
		ids:             ids,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
		admins:          admins,
	}
}

// RegisterPlayer creates a player account and logs it in
func (s *Service) RegisterPlayer(ctx context.Context, username, password, displayName string) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(s.ids.NewID()),
		DisplayName: displayName,
		Rating:      model.DefaultRating,
		IsAdmin:     s.admins[username],
		CreatedAt:   now,
	}

	err = s.storage.WithTx(ctx, func(tx storage.Tx) error {
		_, err := tx.GetRegisteredPlayerByUsername(ctx, username)
		if err == nil {
			return ErrUsernameExists
		}
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}

		if err := tx.SavePlayer(ctx, player); err != nil {
			return err
		}
		return tx.SaveRegisteredPlayer(ctx, &model.RegisteredPlayer{
			PlayerID:     player.ID,
			Username:     username,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.Bool("is_admin", player.IsAdmin),
	)

	return s.createSession(ctx, player)
}

// Login authenticates a registered player and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	rp, err := s.storage.GetRegisteredPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rp.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	player, err := s.storage.GetPlayer(ctx, rp.PlayerID)
	if err != nil {
		return nil, err
	}

	return s.createSession(ctx, player)
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(ctx context.Context, token string) (*Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if errors.Is(err, sessions.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if s.clock.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Logout removes a session
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// createSession creates a new session for a player
func (s *Service) createSession(ctx context.Context, player *model.Player) (*Session, error) {
	now := s.clock.Now()

	session := &Session{
		Token:     generateToken("sess_"),
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessions.Save(ctx, session, s.sessionDuration); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// generateToken generates a random token with a prefix
func generateToken(prefix string) string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
