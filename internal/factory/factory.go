package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/matchday/internal/dependencies/clock"
	"github.com/mcoot/matchday/internal/dependencies/ids"
	"github.com/mcoot/matchday/internal/services/attendance"
	"github.com/mcoot/matchday/internal/services/auth"
	"github.com/mcoot/matchday/internal/services/games"
	"github.com/mcoot/matchday/internal/services/guests"
	"github.com/mcoot/matchday/internal/services/roster"
	"github.com/mcoot/matchday/internal/sessions"
	memsessions "github.com/mcoot/matchday/internal/sessions/memory"
	redissessions "github.com/mcoot/matchday/internal/sessions/redis"
	"github.com/mcoot/matchday/internal/storage"
	"github.com/mcoot/matchday/internal/storage/memory"
	"github.com/mcoot/matchday/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// Session store type constants
const (
	SessionTypeMemory = "memory"
	SessionTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	Sessions sessions.Store

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	RosterService        *roster.Service
	GameController       *games.Controller
	AttendanceController *attendance.Controller
	GuestController      *guests.Controller
	AuthService          *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// SessionType selects the session store ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionType string
	// RedisConfig holds Redis connection settings (required if SessionType is "redis")
	RedisConfig *redissessions.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg.SessionDuration = auth.DefaultConfig().SessionDuration
	}

	return newWithDependencies(store, sessionStore, clock.New(), ids.New(), authCfg, logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return store, nil
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}
}

func newSessionStore(cfg Config) (sessions.Store, error) {
	switch cfg.SessionType {
	case "", SessionTypeMemory:
		return memsessions.New(), nil
	case SessionTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionType is redis")
		}
		store, err := redissessions.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis sessions: %w", err)
		}
		return store, nil
	default:
		return nil, errors.New("invalid SessionType: must be 'memory' or 'redis'")
	}
}

// Close releases the storage and session backends
func (a *App) Close() error {
	return errors.Join(a.Sessions.Close(), a.Storage.Close())
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	sessionStore sessions.Store,
	clk clock.Clock,
	idGen ids.Generator,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	rosterService := roster.New(store)

	return &App{
		Storage:              store,
		Sessions:             sessionStore,
		Clock:                clk,
		IDs:                  idGen,
		RosterService:        rosterService,
		GameController:       games.NewController(store, clk, idGen, logger),
		AttendanceController: attendance.NewController(store, rosterService, clk, logger),
		GuestController:      guests.NewController(store, rosterService, clk, idGen, logger),
		AuthService:          auth.New(store, sessionStore, clk, idGen, logger, authCfg),
	}
}
