package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "PORT", "GIN_MODE", "ALLOWED_ORIGINS", "CACHE_ENABLED", "CACHE_TTL", "EVENTS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.False(t, cfg.IsRelease())
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.False(t, cfg.Queue.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CACHE_ENABLED", "yes")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("EVENTS_ENABLED", "1")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.True(t, cfg.IsRelease())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Queue.Enabled)
}

func TestParseHelpers_FallBackOnGarbage(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseDuration("soon", 5*time.Second))
	assert.Equal(t, 7, parseInt("seven", 7))
	assert.True(t, parseBool("maybe", true))
	assert.Empty(t, parseOrigins(""))
}

func TestNewRedisClient_Disabled(t *testing.T) {
	assert.Nil(t, NewRedisClient(RedisConfig{Enabled: false, Addr: "localhost:6379"}))
}
