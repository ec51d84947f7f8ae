package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchday/internal/sessions"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	now   time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StoreSuite) save(token string, ttl time.Duration) {
	s.saveAt(token, s.now, ttl)
}

func (s *StoreSuite) saveAt(token string, createdAt time.Time, ttl time.Duration) {
	s.Require().NoError(s.store.Save(s.ctx, &sessions.Session{
		Token:     token,
		PlayerID:  "player-1",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}, ttl))
}

func (s *StoreSuite) TestSaveGetDelete() {
	s.save("sess_a", time.Hour)

	got, err := s.store.Get(s.ctx, "sess_a")
	s.Require().NoError(err)
	s.Equal("sess_a", got.Token)

	s.Require().NoError(s.store.Delete(s.ctx, "sess_a"))
	_, err = s.store.Get(s.ctx, "sess_a")
	s.ErrorIs(err, sessions.ErrNotFound)
}

func (s *StoreSuite) TestSaveDropsExpiredSessions() {
	s.save("short", time.Minute)
	s.save("long", 2*time.Hour)

	s.saveAt("fresh", s.now.Add(time.Hour), time.Hour)

	_, err := s.store.Get(s.ctx, "short")
	s.ErrorIs(err, sessions.ErrNotFound)
	_, err = s.store.Get(s.ctx, "long")
	s.NoError(err)
	_, err = s.store.Get(s.ctx, "fresh")
	s.NoError(err)
	s.Len(s.store.sessions, 2)
}
