package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/bptracker/internal/db"
)

// DefaultStorePath is the blueprint store file, relative to the working directory.
const DefaultStorePath = "crafting_blueprints.txt"

// Config represents the optional bptracker configuration file.
type Config struct {
	StorePath   string `yaml:"store_path"`
	History     *bool  `yaml:"history,omitempty"`      // nil means enabled
	HistoryPath string `yaml:"history_path,omitempty"` // default ~/.bptracker/history.db
}

// HistoryEnabled reports whether the audit trail should be written.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".bptracker", "config.yaml")
}

// LoadConfig reads .bptracker/config.yaml from the specified directory.
// A missing file yields defaults; relative store paths resolve against dir.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(Path(dir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyDefaults(cfg, dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .bptracker dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func applyDefaults(cfg *Config, dir string) error {
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	if !filepath.IsAbs(cfg.StorePath) {
		cfg.StorePath = filepath.Join(dir, cfg.StorePath)
	}

	if cfg.HistoryPath == "" && cfg.HistoryEnabled() {
		path, err := db.DefaultPath()
		if err != nil {
			return err
		}
		cfg.HistoryPath = path
	}
	return nil
}
