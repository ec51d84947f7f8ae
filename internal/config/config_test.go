package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, SessionsMemory, cfg.Sessions)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.Admins)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MATCHDAY_HOST":        "127.0.0.1",
		"MATCHDAY_PORT":        "9090",
		"MATCHDAY_STORAGE":     "sqlite",
		"MATCHDAY_SQLITE_PATH": "/var/lib/matchday/data.db",
		"MATCHDAY_SESSIONS":    "redis",
		"MATCHDAY_REDIS_URL":   "redis://cache:6379/1",
		"MATCHDAY_ADMINS":      "coach,captain",
		"MATCHDAY_SESSION_TTL": "2h",
		"MATCHDAY_LOG_LEVEL":   "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/var/lib/matchday/data.db", cfg.SQLitePath)
	assert.Equal(t, SessionsRedis, cfg.Sessions)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, []string{"coach", "captain"}, cfg.Admins)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unknown storage", map[string]string{"MATCHDAY_STORAGE": "postgres"}},
		{"unknown sessions", map[string]string{"MATCHDAY_SESSIONS": "memcached"}},
		{"redis without url", map[string]string{"MATCHDAY_SESSIONS": "redis"}},
		{"bad port", map[string]string{"MATCHDAY_PORT": "70000"}},
		{"non-numeric port", map[string]string{"MATCHDAY_PORT": "http"}},
		{"bad ttl", map[string]string{"MATCHDAY_SESSION_TTL": "forever"}},
		{"negative ttl", map[string]string{"MATCHDAY_SESSION_TTL": "-1h"}},
		{"bad log level", map[string]string{"MATCHDAY_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			assert.Error(t, err)
		})
	}
}
