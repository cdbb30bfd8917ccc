package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend constants
const (
	BackendSQLite = "sqlite" // single-slot snapshot table (default)
	BackendFile   = "file"   // plain JSON document on disk
)

// Config represents the flat opsdeck configuration
type Config struct {
	Version      string `json:"version"`
	Actor        string `json:"actor"`                   // stamped into mutation log entries
	Backend      string `json:"backend"`                 // "sqlite" or "file"
	StorePath    string `json:"store_path,omitempty"`    // override for the snapshot location
	CurrentFocus string `json:"current_focus,omitempty"` // asset id last focused (SVC-001, ...)
}

// Dir returns the opsdeck home directory (~/.opsdeck).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".opsdeck"), nil
}

// Default returns the configuration used when no config file exists yet.
func Default() *Config {
	actor := os.Getenv("USER")
	if actor == "" {
		actor = "operator"
	}
	return &Config{
		Version: "1",
		Actor:   actor,
		Backend: BackendSQLite,
	}
}

// Load reads config.json from the opsdeck home directory.
// Falls back to Default() if no config file exists - first runs work
// without an explicit `opsdeck init`.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendSQLite
	}

	return &cfg, nil
}

// Save writes config.json to the opsdeck home directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create .opsdeck dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ClearFocus removes the current focus if it points at the given asset id.
// Deleting an asset must not leave a stale focus behind.
func ClearFocus(assetID string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if cfg.CurrentFocus != assetID {
		return nil
	}
	cfg.CurrentFocus = ""
	return Save(cfg)
}
