// Package config loads the application configuration from YAML with
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// Default returns the built-in configuration
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. Environment variables
// TASKTRACKER_ADDR and TASKTRACKER_DB_PATH override the file values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		applyEnvOverrides(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		applyEnvOverrides(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	applyEnvOverrides(&config)

	return &config, nil
}

// applyDefaults fills in zero-valued fields with the built-in defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Database.Path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Database.Path = filepath.Join(home, ".tasktracker", "tasktracker.db")
		} else {
			c.Database.Path = "tasktracker.db"
		}
	}
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(c *Config) {
	if addr := os.Getenv("TASKTRACKER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("TASKTRACKER_DB_PATH"); path != "" {
		c.Database.Path = path
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasktracker", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tasktracker", "config.yaml"), nil
}
