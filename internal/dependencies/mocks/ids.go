package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/matchday/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	mu sync.Mutex

	// Queued is a queue of ids to hand out before falling back to a counter
	Queued []string
	index  int
	count  int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued id, or a deterministic UUID-shaped id when the queue is empty
func (m *MockIDs) NewID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index < len(m.Queued) {
		id := m.Queued[m.index]
		m.index++
		return id
	}
	m.count++
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", m.count)
}

// Queue adds ids to the queue
func (m *MockIDs) Queue(values ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queued = append(m.Queued, values...)
}

// Reset clears the queue and the fallback counter
func (m *MockIDs) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queued = nil
	m.index = 0
	m.count = 0
}
