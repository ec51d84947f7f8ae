package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/matchday/internal/sessions"
)

// Store keeps sessions in process memory. Sessions are lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]sessions.Session
}

// New creates an empty in-memory session store
func New() *Store {
	return &Store{sessions: make(map[string]sessions.Session)}
}

// Ensure Store implements the interface
var _ sessions.Store = (*Store)(nil)

// Save stores the session and drops every session that expired before it
// was created
func (s *Store) Save(_ context.Context, session *sessions.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteExpired(session.CreatedAt)
	s.sessions[session.Token] = *session
	return nil
}

func (s *Store) Get(_ context.Context, token string) (*sessions.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, sessions.ErrNotFound
	}
	return &session, nil
}

func (s *Store) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// deleteExpired must be called with mu held
func (s *Store) deleteExpired(now time.Time) {
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// Close is a no-op for memory sessions
func (s *Store) Close() error {
	return nil
}
