package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Monitor  MonitorConfig  `yaml:"monitor"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `yaml:"path"` // SQLite file path (default: ~/.gradtrack/gradtrack.db)
}

// MonitorConfig contains announcement monitor settings.
type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"` // crawl interval (default: 30s)
	Chance   float64       `yaml:"chance"`   // per-roll hit probability (default: 0.3)
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = defaultDBPath()
	}
	if c.Monitor.Interval == 0 {
		c.Monitor.Interval = 30 * time.Second
	}
	if c.Monitor.Chance == 0 {
		c.Monitor.Chance = 0.3
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Monitor.Interval < 0 {
		return fmt.Errorf("monitor.interval must be positive")
	}
	if c.Monitor.Chance < 0 || c.Monitor.Chance > 1 {
		return fmt.Errorf("monitor.chance must be between 0 and 1")
	}
	return nil
}

// databaseDir returns the directory holding the database file, or ""
// for a bare filename in the working directory.
func (c *Config) databaseDir() string {
	dir := filepath.Dir(c.Database.Path)
	if dir == "." {
		return ""
	}
	return dir
}

// defaultDBPath is ~/.gradtrack/gradtrack.db, falling back to the
// working directory when the home directory cannot be resolved.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gradtrack.db"
	}
	return filepath.Join(home, ".gradtrack", "gradtrack.db")
}
