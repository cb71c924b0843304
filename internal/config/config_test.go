package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "questtrack-api", cfg.AppName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0:3000", cfg.Address())
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Len(t, cfg.Auth.Keys, 4)
	assert.Contains(t, cfg.Auth.Keys, "demo_key_12345")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("API_KEYS", "key_one, key_two ,")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, []string{"key_one", "key_two"}, cfg.Auth.Keys)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	// Bare integers parse as seconds.
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_DurationStrings(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "5m")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
}
