// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the TASKTORY_* environment. Empty paths resolve under
// ~/.tasktory.
type Config struct {
	DBPath       string `env:"TASKTORY_DB"`
	SettingsPath string `env:"TASKTORY_SETTINGS"`
	// LogLevel overrides system.log_level from the settings file when set.
	LogLevel string `env:"TASKTORY_LOG_LEVEL"`
	Env      string `env:"TASKTORY_ENV" envDefault:"dev"`
	LogCalls bool   `env:"TASKTORY_LOG_CALLS" envDefault:"false"`
	// MetricsFile, when set, receives use-case metrics in the Prometheus
	// text format on exit.
	MetricsFile string `env:"TASKTORY_METRICS_FILE"`
	// TraceFile and OTelEndpoint enable span export; see internal/tracing.
	TraceFile    string `env:"TASKTORY_TRACE_FILE"`
	OTelEndpoint string `env:"TASKTORY_OTEL_ENDPOINT"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment. Variables already set take precedence over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" || cfg.SettingsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		base := filepath.Join(home, ".tasktory")
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(base, "tasktory.db")
		}
		if cfg.SettingsPath == "" {
			cfg.SettingsPath = filepath.Join(base, "settings.yaml")
		}
	}
	return cfg, nil
}
