package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := Default()

	if config.Server.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", config.Server.Addr)
	}
	if config.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout 30s, got %v", config.Server.ShutdownTimeout)
	}
	if config.Database.Path == "" {
		t.Error("Expected non-empty default database path")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TASKTRACKER_ADDR", "")
	t.Setenv("TASKTRACKER_DB_PATH", "")

	config, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.Server.Addr != ":8080" {
		t.Errorf("Expected default addr, got %q", config.Server.Addr)
	}
}

func TestLoadFromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("TASKTRACKER_ADDR", "")
	t.Setenv("TASKTRACKER_DB_PATH", "")

	configDir := filepath.Join(configHome, "tasktracker")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	content := `server:
  addr: ":9090"
database:
  path: "/tmp/custom.db"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.Server.Addr != ":9090" {
		t.Errorf("Expected addr :9090, got %q", config.Server.Addr)
	}
	if config.Database.Path != "/tmp/custom.db" {
		t.Errorf("Expected custom database path, got %q", config.Database.Path)
	}
	// Unset fields still get defaults
	if config.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout, got %v", config.Server.ShutdownTimeout)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	configDir := filepath.Join(configHome, "tasktracker")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TASKTRACKER_ADDR", ":7070")
	t.Setenv("TASKTRACKER_DB_PATH", "/tmp/override.db")

	config, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.Server.Addr != ":7070" {
		t.Errorf("Expected env override addr :7070, got %q", config.Server.Addr)
	}
	if config.Database.Path != "/tmp/override.db" {
		t.Errorf("Expected env override database path, got %q", config.Database.Path)
	}
}
