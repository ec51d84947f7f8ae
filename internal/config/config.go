package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend names
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"

	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

// Config is the server configuration, read from MATCHDAY_* environment variables
type Config struct {
	Host string `env:"MATCHDAY_HOST"`
	Port int    `env:"MATCHDAY_PORT" envDefault:"8080"`

	// Storage selects where games and attendance live (memory or sqlite)
	Storage    string `env:"MATCHDAY_STORAGE" envDefault:"memory"`
	SQLitePath string `env:"MATCHDAY_SQLITE_PATH" envDefault:"matchday.db"`

	// Sessions selects the session store (memory or redis)
	Sessions string `env:"MATCHDAY_SESSIONS" envDefault:"memory"`
	RedisURL string `env:"MATCHDAY_REDIS_URL"`

	// Admins are usernames that get the admin role on registration
	Admins     []string      `env:"MATCHDAY_ADMINS" envSeparator:","`
	SessionTTL time.Duration `env:"MATCHDAY_SESSION_TTL" envDefault:"24h"`

	LogLevel string `env:"MATCHDAY_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected backends are known and fully configured
func (c Config) Validate() error {
	var errs []error

	switch c.Storage {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("MATCHDAY_SQLITE_PATH required when MATCHDAY_STORAGE=sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid MATCHDAY_STORAGE %q: must be 'memory' or 'sqlite'", c.Storage))
	}

	switch c.Sessions {
	case SessionsMemory:
	case SessionsRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("MATCHDAY_REDIS_URL required when MATCHDAY_SESSIONS=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid MATCHDAY_SESSIONS %q: must be 'memory' or 'redis'", c.Sessions))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid MATCHDAY_PORT %d", c.Port))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("MATCHDAY_SESSION_TTL must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SlogLevel converts LogLevel to a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid MATCHDAY_LOG_LEVEL %q", c.LogLevel)
	}
	return level, nil
}
