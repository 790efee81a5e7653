package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DSN", "DB_HOST", "DB_PORT", "DB_NAME", "REDIS_ADDR", "RATE_LIMIT_RPS", "EVENTS_CHANNEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "crudleads", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "board:events", cfg.Redis.Channel)
	assert.Equal(t, 0, cfg.RateLimit.RPS)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/leads?sslmode=disable")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_RPS", "10")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/leads?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 5432, cfg.Database.Port, "invalid integers fall back to the default")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

func TestValidate(t *testing.T) {
	t.Run("requires a database location", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Port: "8080"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		cfg := &Config{
			Server:    ServerConfig{Port: "8080"},
			Database:  DatabaseConfig{Host: "localhost"},
			RateLimit: RateLimitConfig{RPS: -1},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects zero burst with rate enabled", func(t *testing.T) {
		cfg := &Config{
			Server:    ServerConfig{Port: "8080"},
			Database:  DatabaseConfig{Host: "localhost"},
			RateLimit: RateLimitConfig{RPS: 5},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts dsn only", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{DSN: "postgres://localhost/crudleads"},
		}
		assert.NoError(t, cfg.Validate())
	})
}
