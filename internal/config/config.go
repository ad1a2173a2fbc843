package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	ReplayFolder    string
	PlayerName      string
	ExtractorPath   string
	ScanIntervalSec int
	PollIntervalSec int
	HistoryLimit    int
	UpstreamURL     string
	LogLevel        string
	WorkerCount     int
	QueueSize       int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:replays.db"),
		ReplayFolder:    envOr("REPLAY_FOLDER", ""),
		PlayerName:      envOr("PLAYER_NAME", ""),
		ExtractorPath:   envOr("EXTRACTOR_PATH", "sc2extract"),
		ScanIntervalSec: envIntOr("SCAN_INTERVAL_SEC", 30),
		PollIntervalSec: envIntOr("POLL_INTERVAL_SEC", 10),
		HistoryLimit:    envIntOr("HISTORY_LIMIT", 100),
		UpstreamURL:     envOr("UPSTREAM_URL", ""),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		WorkerCount:     envIntOr("WORKER_COUNT", 2),
		QueueSize:       envIntOr("QUEUE_SIZE", 64),
	}
}

// Validate checks the configuration and returns a single error listing
// every problem found.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.ScanIntervalSec <= 0 {
		problems = append(problems, "SCAN_INTERVAL_SEC must be positive")
	}
	if c.PollIntervalSec <= 0 {
		problems = append(problems, "POLL_INTERVAL_SEC must be positive")
	}
	if c.HistoryLimit <= 0 {
		problems = append(problems, "HISTORY_LIMIT must be positive")
	}
	if c.WorkerCount <= 0 {
		problems = append(problems, "WORKER_COUNT must be positive")
	}
	if c.QueueSize <= 0 {
		problems = append(problems, "QUEUE_SIZE must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
