package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the loader at an empty directory so a developer's .env
// does not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvFileVar, "")
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", *cfg, Default())
	}
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("SELECTION_LENS_INTERVAL_MS", "250")
	t.Setenv("SELECTION_LENS_LOG_LEVEL", "debug")
	t.Setenv("SELECTION_LENS_FORMAT", "JSON")
	t.Setenv("SELECTION_LENS_BUFFER", "0")
	t.Setenv("SELECTION_LENS_CACHE_TTL_MS", "0")
	t.Setenv("SELECTION_LENS_PROMPT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("Interval = %v", cfg.Interval)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Buffer != 0 {
		t.Errorf("Buffer = %d", cfg.Buffer)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if !cfg.Prompt {
		t.Error("Prompt = false")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "lens.env")
	content := "SELECTION_LENS_INTERVAL_MS=900\nSELECTION_LENS_LOG_LEVEL=warn\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFileVar, path)
	// Already-set variables win over the file.
	t.Setenv("SELECTION_LENS_LOG_LEVEL", "error")
	t.Setenv("SELECTION_LENS_INTERVAL_MS", "")
	os.Unsetenv("SELECTION_LENS_INTERVAL_MS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnvFile != path {
		t.Errorf("EnvFile = %q, want %q", cfg.EnvFile, path)
	}
	if cfg.Interval != 900*time.Millisecond {
		t.Errorf("Interval = %v, want 900ms from file", cfg.Interval)
	}
	if cfg.LogLevel != slog.LevelError {
		t.Errorf("LogLevel = %v, want error from environment", cfg.LogLevel)
	}
}

func TestLoad_DefaultEnvFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SELECTION_LENS_BUFFER=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SELECTION_LENS_BUFFER", "")
	os.Unsetenv("SELECTION_LENS_BUFFER")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Buffer != 3 {
		t.Errorf("Buffer = %d, want 3", cfg.Buffer)
	}
	if cfg.EnvFile != DefaultEnvFile {
		t.Errorf("EnvFile = %q", cfg.EnvFile)
	}
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvFileVar, filepath.Join(dir, "missing.env"))
	if _, err := Load(); err == nil {
		t.Error("expected an error for a missing explicit env file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SELECTION_LENS_INTERVAL_MS", "fast"},
		{"SELECTION_LENS_INTERVAL_MS", "0"},
		{"SELECTION_LENS_CACHE_TTL_MS", "-1"},
		{"SELECTION_LENS_LOG_LEVEL", "loud"},
		{"SELECTION_LENS_BUFFER", "-2"},
		{"SELECTION_LENS_PROMPT", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
