// Package config resolves runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvFileVar names an alternative .env path.
	EnvFileVar = "SELECTION_LENS_ENV"
	// DefaultEnvFile is read when EnvFileVar is unset.
	DefaultEnvFile = ".env"

	prefix = "SELECTION_LENS_"
)

// Config holds settings shared by every command. Command-line flags
// override them.
type Config struct {
	Interval time.Duration
	LogLevel slog.Level
	// Format is the output format, empty to use each command's default.
	Format   string
	Buffer   int
	CacheTTL time.Duration
	Prompt   bool

	// EnvFile is the .env file that was loaded, empty if none.
	EnvFile string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interval: 1500 * time.Millisecond,
		LogLevel: slog.LevelInfo,
		Buffer:   8,
		CacheTTL: 500 * time.Millisecond,
	}
}

// Load reads the .env file, if present, and then SELECTION_LENS_* variables.
// Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	cfg := Default()

	envPath, explicit := resolveEnvPath()
	if err := godotenv.Load(envPath); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	} else {
		cfg.EnvFile = envPath
	}

	if v := getenv("INTERVAL_MS"); v != "" {
		d, err := millis("INTERVAL_MS", v)
		if err != nil {
			return nil, err
		}
		if d <= 0 {
			return nil, fmt.Errorf("%sINTERVAL_MS must be positive, got %s", prefix, v)
		}
		cfg.Interval = d
	}
	if v := getenv("CACHE_TTL_MS"); v != "" {
		d, err := millis("CACHE_TTL_MS", v)
		if err != nil {
			return nil, err
		}
		cfg.CacheTTL = d
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}
	if v := getenv("FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := getenv("BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%sBUFFER must be a non-negative integer, got %q", prefix, v)
		}
		cfg.Buffer = n
	}
	if v := getenv("PROMPT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%sPROMPT: %w", prefix, err)
		}
		cfg.Prompt = b
	}

	return &cfg, nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", s)
	}
	return level, nil
}

func resolveEnvPath() (path string, explicit bool) {
	if p := strings.TrimSpace(os.Getenv(EnvFileVar)); p != "" {
		return p, true
	}
	return DefaultEnvFile, false
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(prefix + key))
}

func millis(key, v string) (time.Duration, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s%s must be a non-negative number of milliseconds, got %q", prefix, key, v)
	}
	return time.Duration(n) * time.Millisecond, nil
}
