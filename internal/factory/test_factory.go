package factory

import (
	"time"

	"github.com/mcoot/matchday/internal/dependencies/mocks"
	"github.com/mcoot/matchday/internal/services/auth"
	memsessions "github.com/mcoot/matchday/internal/sessions/memory"
	"github.com/mcoot/matchday/internal/storage"
	"github.com/mcoot/matchday/internal/storage/memory"
	"github.com/mcoot/matchday/internal/testutil"
)

// TestAdmin is the username granted admin rights in test apps
const TestAdmin = "admin"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an in-memory App with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates an App over the given storage with mocked
// dependencies. The clock steps one second per read so records created in
// sequence have distinct timestamps.
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewSteppingClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.Second)
	mockIDs := mocks.NewMockIDs()

	authCfg := auth.DefaultConfig()
	authCfg.Admins = []string{TestAdmin}

	app := newWithDependencies(store, memsessions.New(), mockClock, mockIDs, authCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
