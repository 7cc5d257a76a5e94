// Package store persists taskdeck's local configuration.
//
// The config is intentionally tiny: one display preference plus an optional
// service URL override. It is read once at startup and written on every
// change; there is no migration or versioning.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.json"

// Config is the on-disk configuration.
type Config struct {
	// DarkMode selects the dark palette in the TUI.
	DarkMode bool `json:"darkMode"`

	// APIBaseURL optionally overrides the built-in task service URL.
	// Flag and environment take precedence over this.
	APIBaseURL string `json:"apiBaseUrl,omitempty"`
}

// ConfigDir returns the directory holding the config file.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskdeck).
	if v := strings.TrimSpace(os.Getenv("TASKDECK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

// ConfigPath returns the config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config. It is best-effort: a missing or corrupt file yields
// the zero config and no error, so callers never fail startup over it.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		// Corrupted config: treat as missing.
		return &Config{}, nil
	}
	return &cfg, nil
}

// Save writes the config atomically (tmp + rename).
func Save(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, configFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
