// Package config loads the jobsummary configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds jobsummary settings.
type Config struct {
	// DBPath is the SQLite database holding prefs and the workload catalog.
	DBPath string `yaml:"db_path"`
	// BarWidth is the width in cells of the full status bar.
	BarWidth int `yaml:"bar_width"`
	// InlineWidth is the width in cells of the collapsed inline bar.
	InlineWidth int `yaml:"inline_width"`
	// RefreshInterval is how often the TUI reloads workloads from the store.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	// LogFile receives TUI logs. Empty discards them.
	LogFile string `yaml:"log_file,omitempty"`
}

// Dir returns ~/.jobsummary, or .jobsummary if the home dir is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobsummary"
	}
	return filepath.Join(home, ".jobsummary")
}

// DefaultPath is the config file location under Dir.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath:          filepath.Join(Dir(), "jobsummary.db"),
		BarWidth:        48,
		InlineWidth:     20,
		RefreshInterval: 2 * time.Second,
	}
}

// LoadConfig loads configuration from a YAML file. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories if needed.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must be set")
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("bar_width must be at least 1")
	}
	if c.InlineWidth < 1 {
		return fmt.Errorf("inline_width must be at least 1")
	}
	if c.RefreshInterval < 100*time.Millisecond {
		return fmt.Errorf("refresh_interval must be at least 100ms")
	}
	return nil
}
