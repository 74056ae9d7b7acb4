package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "sox", cfg.SoxPath)
	assert.Equal(t, 5, cfg.RecordSeconds)
	assert.Equal(t, 3, cfg.MaxInitAttempts)
	assert.Equal(t, time.Second, cfg.InitRetryDelay)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RECORD_SECONDS", "8")
	t.Setenv("DEBUG", "true")
	t.Setenv("INIT_RETRY_DELAY_MS", "250")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 8, cfg.RecordSeconds)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 250*time.Millisecond, cfg.InitRetryDelay)
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = "postgres://localhost/screener"
	require.NoError(t, cfg.Validate())

	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		c := Load()
		assert.Error(t, c.Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		c := Load()
		c.DatabaseURL = "postgres://localhost/screener"
		c.Port = -1
		assert.Error(t, c.Validate())
	})

	t.Run("bad record window", func(t *testing.T) {
		c := Load()
		c.DatabaseURL = "postgres://localhost/screener"
		c.RecordSeconds = 0
		assert.Error(t, c.Validate())
	})
}
