// Package config provides configuration loading from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Defaults for the worker API client.
const (
	DefaultWorkerURL      = "http://localhost:8787"
	DefaultAPITimeoutSecs = 60
	DefaultMaxRetries     = 3
)

// Config holds all configuration for the MCP server.
type Config struct {
	WorkerURL  string        // MCP_WORKER_URL, default "http://localhost:8787"
	APITimeout time.Duration // MCP_API_TIMEOUT (seconds), default 60s
	MaxRetries int           // MCP_RETRIES, default 3

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
// Invalid numeric values fall back to the default with a logged warning
// rather than failing startup.
func Load() *Config {
	return &Config{
		WorkerURL:  getEnvString("MCP_WORKER_URL", DefaultWorkerURL),
		APITimeout: time.Duration(getEnvInt("MCP_API_TIMEOUT", DefaultAPITimeoutSecs)) * time.Second,
		MaxRetries: getEnvInt("MCP_RETRIES", DefaultMaxRetries),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid numeric value in environment, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", defaultVal),
		)
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}
