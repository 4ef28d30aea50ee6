package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "TOCGEN_BOOK", "TOCGEN_OUTPUT_DIR", "TOCGEN_API_KEY", "TOCGEN_LOAD_CONCURRENCY", "TOCGEN_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Port)
	}
	if cfg.BookPath != "book.yaml" {
		t.Errorf("BookPath = %q, want book.yaml", cfg.BookPath)
	}
	if cfg.LoadConcurrency != 4 {
		t.Errorf("LoadConcurrency = %d, want 4", cfg.LoadConcurrency)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOCGEN_LOAD_CONCURRENCY", "-2")
	t.Setenv("TOCGEN_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LoadConcurrency != 4 {
		t.Errorf("non-positive concurrency should fall back to 4, got %d", cfg.LoadConcurrency)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Config{Port: "http", BookPath: "book.yaml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
