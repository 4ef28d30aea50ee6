package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port string

	// Book config file.
	BookPath string

	// Overrides the book's output directory when set.
	OutputDir string

	// Optional bearer key for mutating API endpoints.
	APIKey string

	// Concurrent chapter reads during load.
	LoadConcurrency int

	LogLevel slog.Level
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		BookPath:  envOr("TOCGEN_BOOK", "book.yaml"),
		OutputDir: os.Getenv("TOCGEN_OUTPUT_DIR"),

		APIKey: os.Getenv("TOCGEN_API_KEY"),

		LoadConcurrency: envInt("TOCGEN_LOAD_CONCURRENCY", 4),

		LogLevel: envLevel("TOCGEN_LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.LoadConcurrency <= 0 {
		cfg.LoadConcurrency = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.BookPath == "" {
		return fmt.Errorf("TOCGEN_BOOK is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		if lvl, err := ParseLevel(v); err == nil {
			return lvl
		}
	}
	return fallback
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
