package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YairShachar/sc2-replay-analyzer/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:            ":8080",
		DBPath:          "test.db",
		ReplayFolder:    "",
		PlayerName:      "AppleJuice",
		ExtractorPath:   "sc2extract",
		ScanIntervalSec: 30,
		PollIntervalSec: 10,
		HistoryLimit:    100,
		LogLevel:        "INFO",
		WorkerCount:     2,
		QueueSize:       64,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidIntervals(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero scan interval",
			mutate:        func(c *config.Config) { c.ScanIntervalSec = 0 },
			expectedError: "SCAN_INTERVAL_SEC",
		},
		{
			name:          "negative scan interval",
			mutate:        func(c *config.Config) { c.ScanIntervalSec = -5 },
			expectedError: "SCAN_INTERVAL_SEC",
		},
		{
			name:          "zero poll interval",
			mutate:        func(c *config.Config) { c.PollIntervalSec = 0 },
			expectedError: "POLL_INTERVAL_SEC",
		},
		{
			name:          "zero history limit",
			mutate:        func(c *config.Config) { c.HistoryLimit = 0 },
			expectedError: "HISTORY_LIMIT",
		},
		{
			name:          "zero workers",
			mutate:        func(c *config.Config) { c.WorkerCount = 0 },
			expectedError: "WORKER_COUNT",
		},
		{
			name:          "zero queue size",
			mutate:        func(c *config.Config) { c.QueueSize = 0 },
			expectedError: "QUEUE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR", "debug", "warning"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = level

			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogLevel = "LOUD"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "SCAN_INTERVAL_SEC")
	assert.Contains(t, errStr, "POLL_INTERVAL_SEC")
	assert.Contains(t, errStr, "HISTORY_LIMIT")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "WORKER_COUNT")
	assert.Contains(t, errStr, "QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("PLAYER_NAME", "AppleJuice")
	t.Setenv("SCAN_INTERVAL_SEC", "60")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "AppleJuice", cfg.PlayerName)
	assert.Equal(t, 60, cfg.ScanIntervalSec)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "REPLAY_FOLDER", "PLAYER_NAME", "EXTRACTOR_PATH",
		"SCAN_INTERVAL_SEC", "POLL_INTERVAL_SEC", "HISTORY_LIMIT",
		"UPSTREAM_URL", "LOG_LEVEL", "WORKER_COUNT", "QUEUE_SIZE",
	} {
		if v := os.Getenv(key); v != "" {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:replays.db", cfg.DBPath)
	assert.Equal(t, 30, cfg.ScanIntervalSec)
	assert.Equal(t, 10, cfg.PollIntervalSec)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SCAN_INTERVAL_SEC", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 30, cfg.ScanIntervalSec)
}
