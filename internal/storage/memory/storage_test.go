package memory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
	"github.com/mcoot/matchday/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &StorageSuite{
		Suite: storagetest.Suite{NewStorage: func() storage.Storage { return New() }},
	})
}

func (s *StorageSuite) TestReturnedRowsAreCopies() {
	s.Require().NoError(s.Store.WithTx(s.Ctx, func(tx storage.Tx) error {
		return tx.SavePlayer(s.Ctx, &model.Player{ID: "p1", DisplayName: "Alice"})
	}))

	p, err := s.Store.GetPlayer(s.Ctx, "p1")
	s.Require().NoError(err)
	p.DisplayName = "Mallory"

	again, err := s.Store.GetPlayer(s.Ctx, "p1")
	s.Require().NoError(err)
	s.Equal("Alice", again.DisplayName)
}
