package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.API.URL != "http://localhost:8000" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %v", cfg.API.Timeout)
	}
	if cfg.API.DiscardStale {
		t.Error("DiscardStale should default to false")
	}
	if !cfg.History.Enabled {
		t.Error("History should be enabled by default")
	}

	wantDB := "file:" + filepath.Join(dataHome, "genex", "history.db")
	if cfg.History.DatabaseURL != wantDB {
		t.Errorf("History.DatabaseURL = %q, want %q", cfg.History.DatabaseURL, wantDB)
	}
	wantLog := filepath.Join(dataHome, "genex", "genex.log")
	if cfg.Logging.File != wantLog {
		t.Errorf("Logging.File = %q, want %q", cfg.Logging.File, wantLog)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GENEX_API_URL", "http://backend:9000")
	t.Setenv("GENEX_API_TIMEOUT", "5s")
	t.Setenv("GENEX_DISCARD_STALE", "true")
	t.Setenv("GENEX_HISTORY_ENABLED", "false")
	t.Setenv("GENEX_DATABASE_URL", "file:/tmp/custom.db")
	t.Setenv("GENEX_OTEL_ENABLED", "true")
	t.Setenv("GENEX_OTEL_ENDPOINT", "collector:4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"api url", cfg.API.URL, "http://backend:9000"},
		{"timeout", cfg.API.Timeout, 5 * time.Second},
		{"discard stale", cfg.API.DiscardStale, true},
		{"history enabled", cfg.History.Enabled, false},
		{"database url", cfg.History.DatabaseURL, "file:/tmp/custom.db"},
		{"otel enabled", cfg.Telemetry.Enabled, true},
		{"otel endpoint", cfg.Telemetry.Endpoint, "collector:4317"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GENEX_API_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid duration")
	}
}
