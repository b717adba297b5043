package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "5000", cfg.Port)
	assert.True(t, cfg.MockMode)
	assert.Equal(t, "http://127.0.0.1:5000/api/v1", cfg.APIBaseURL)
	assert.Empty(t, cfg.StorePath)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Second, cfg.RateLimitWrite)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MOCK_API", "false")
	t.Setenv("STORE_PATH", "kampus.db")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.MockMode)
	assert.Equal(t, "kampus.db", cfg.StorePath)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
