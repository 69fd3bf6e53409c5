// Package config centralizes the server/CLI environment surface.
package config

import (
	"os"
	"strconv"
)

// Config holds the environment-derived settings for the -serve web mode.
type Config struct {
	Port           string
	StaticDir      string
	LogLevel       string
	MaxUploadBytes int64
}

const defaultMaxUploadBytes = 32 << 20 // matches the teacher's Fiber BodyLimit

// Load reads Config from environment variables, falling back to the same
// defaults the CLI flags use when run standalone.
func Load() Config {
	cfg := Config{
		Port:           getenv("STATEMENT_EXTRACTOR_PORT", "8080"),
		StaticDir:      getenv("STATEMENT_EXTRACTOR_STATIC_DIR", ""),
		LogLevel:       getenv("STATEMENT_EXTRACTOR_LOG_LEVEL", "info"),
		MaxUploadBytes: defaultMaxUploadBytes,
	}

	if raw := os.Getenv("STATEMENT_EXTRACTOR_MAX_UPLOAD_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
