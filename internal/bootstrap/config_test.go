package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.API.BaseURL == "" {
		t.Error("expected default API base URL")
	}
	if cfg.API.Timeout <= 0 {
		t.Errorf("expected positive timeout, got %v", cfg.API.Timeout)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("api:\n  base_url: https://deck.example.com/api\n  timeout: 30s\nsession:\n  context: filetest\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKDECK_CONFIG", path)
	t.Setenv("API_BASE_URL", "")
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("API_TIMEOUT")
	os.Unsetenv("SESSION_CONTEXT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.API.BaseURL != "https://deck.example.com/api" {
		t.Errorf("BaseURL = %q, want file value", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.Session.Context != "filetest" {
		t.Errorf("Session.Context = %q, want filetest", cfg.Session.Context)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKDECK_CONFIG", path)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env value to win", cfg.API.BaseURL)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKDECK_CONFIG", path)

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
