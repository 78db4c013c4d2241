package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a project directory.
const FileName = "bankbook.yaml"

// Config represents the top-level bankbook.yaml configuration.
type Config struct {
	Data  DataConfig  `yaml:"data"`
	Audit AuditConfig `yaml:"audit"`
	Log   LogConfig   `yaml:"log"`
}

// DataConfig locates the snapshot file, relative to the project directory.
type DataConfig struct {
	File string `yaml:"file"`
}

// AuditConfig controls the per-command audit trail.
type AuditConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a bankbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data:  DataConfig{File: "data/users.json"},
		Audit: AuditConfig{Enabled: true},
		Log:   LogConfig{Level: "info"},
	}
}
