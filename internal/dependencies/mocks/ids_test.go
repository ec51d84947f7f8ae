package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/matchday/internal/dependencies/ids"
)

func TestMockIDsQueueThenFallback(t *testing.T) {
	m := NewMockIDs()
	m.Queue("guest-1", "guest-2")

	assert.Equal(t, "guest-1", m.NewID())
	assert.Equal(t, "guest-2", m.NewID())

	fallback := m.NewID()
	assert.Equal(t, "00000000-0000-7000-8000-000000000001", fallback)
	assert.True(t, ids.Valid(fallback))
}

func TestMockIDsReset(t *testing.T) {
	m := NewMockIDs()
	m.Queue("guest-1")
	_ = m.NewID()
	_ = m.NewID()

	m.Reset()

	require.Empty(t, m.Queued)
	assert.Equal(t, "00000000-0000-7000-8000-000000000001", m.NewID())
}
