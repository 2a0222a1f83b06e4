package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SEED", "SPINS", "PLAYER_COUNTS",
	"WORKERS", "QUEUE_SIZE", "SWEEP_TIMEOUT", "SCENARIO_FILE", "CACHE_SIZE",
	"CACHE_TTL", "METRICS_ADDR", "PROGRESS_INTERVAL",
}

// clearEnvVars unsets every SLOTSIM_ variable and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		key := EnvPrefix + v
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, uint64(0), cfg.Seed)
		assert.Equal(t, DefaultSpins, cfg.Spins)
		assert.Equal(t, []int{3, 10, 25, 50, 75}, cfg.PlayerCounts)
		assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
		assert.Equal(t, 10*time.Minute, cfg.SweepTimeout)
		assert.Equal(t, 5*time.Second, cfg.ProgressInterval)
		assert.Empty(t, cfg.MetricsAddr)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SLOTSIM_LOG_LEVEL", "debug")
		t.Setenv("SLOTSIM_LOG_FORMAT", "json")
		t.Setenv("SLOTSIM_SEED", "12345")
		t.Setenv("SLOTSIM_SPINS", "500")
		t.Setenv("SLOTSIM_PLAYER_COUNTS", "1,2,75")
		t.Setenv("SLOTSIM_WORKERS", "4")
		t.Setenv("SLOTSIM_SCENARIO_FILE", "scenarios.yaml")
		t.Setenv("SLOTSIM_CACHE_TTL", "5m")
		t.Setenv("SLOTSIM_METRICS_ADDR", ":9090")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, uint64(12345), cfg.Seed)
		assert.Equal(t, 500, cfg.Spins)
		assert.Equal(t, []int{1, 2, 75}, cfg.PlayerCounts)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, "scenarios.yaml", cfg.ScenarioFile)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
	})

	t.Run("returns error for unparsable values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SLOTSIM_SPINS", "lots")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), ErrContextParseEnv)
	})

	t.Run("rejects out of range player counts", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SLOTSIM_PLAYER_COUNTS", "10,80")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), ErrContextValidate)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SLOTSIM_LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Equal(t, "Must be one of: text json", FormatValidationError(err)["logformat"])
	})
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	plain := FormatValidationError(errors.New("boom"))
	assert.Equal(t, "boom", plain["error"])

	cfg := &Config{LogLevel: "info", LogFormat: "text", Spins: 0, PlayerCounts: []int{3}, QueueSize: 1, CacheSize: 1}
	msgs := FormatValidationError(cfg.Validate())
	assert.Equal(t, "Must be at least 1", msgs["spins"])
}
