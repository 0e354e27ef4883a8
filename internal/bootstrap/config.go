// Package bootstrap wires process-level concerns: the structured
// logger and configuration loading.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/config"
)

// InitLogger initializes the structured logger. Debug level is enabled
// in dev mode.
func InitLogger(isDev bool) *slog.Logger {
	level := slog.LevelInfo
	if isDev {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration. Precedence, lowest to highest:
// the optional YAML config file, a .env file, the process environment.
// The file and .env only fill variables the environment leaves unset.
func LoadConfig() (config.AppConfig, error) {
	if err := applyConfigFile(); err != nil {
		return config.AppConfig{}, err
	}

	// Load .env file if it exists (development).
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// fileConfig is the YAML config file shape. Values are strings; parsing
// and validation happen in the env layer they feed.
type fileConfig struct {
	API struct {
		BaseURL         string `yaml:"base_url"`
		Timeout         string `yaml:"timeout"`
		RetryMaxElapsed string `yaml:"retry_max_elapsed"`
	} `yaml:"api"`
	Session struct {
		Dir     string `yaml:"dir"`
		Context string `yaml:"context"`
	} `yaml:"session"`
}

// ConfigFilePath resolves the config file location: $TASKDECK_CONFIG
// when set, else <user config dir>/taskdeck/config.yaml.
func ConfigFilePath() (string, error) {
	if path := os.Getenv("TASKDECK_CONFIG"); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "taskdeck", "config.yaml"), nil
}

// applyConfigFile surfaces file values as environment defaults, so the
// env layer stays the single parsing point. A missing file is fine.
func applyConfigFile() error {
	path, err := ConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	entries := map[string]string{
		"API_BASE_URL":          fc.API.BaseURL,
		"API_TIMEOUT":           fc.API.Timeout,
		"API_RETRY_MAX_ELAPSED": fc.API.RetryMaxElapsed,
		"SESSION_DIR":           fc.Session.Dir,
		"SESSION_CONTEXT":       fc.Session.Context,
	}
	for key, value := range entries {
		if value == "" {
			continue
		}
		if _, present := os.LookupEnv(key); present {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("apply config file value %s: %w", key, err)
		}
	}
	return nil
}
