package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Database.Path == "" {
		t.Error("default database path is empty")
	}
	if cfg.Monitor.Interval != 30*time.Second {
		t.Errorf("default interval = %v, want 30s", cfg.Monitor.Interval)
	}
	if cfg.Monitor.Chance != 0.3 {
		t.Errorf("default chance = %v, want 0.3", cfg.Monitor.Chance)
	}
}

func TestConfigValidate_RejectsBadChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Monitor.Chance = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for chance above 1")
	}
}

func TestConfigValidate_RejectsNegativeInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Monitor.Interval = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for negative interval")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("database:\n  path: /tmp/apps.db\nmonitor:\n  interval: 10s\n  chance: 0.5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Database.Path != "/tmp/apps.db" {
		t.Errorf("database path = %s, want /tmp/apps.db", cfg.Database.Path)
	}
	if cfg.Monitor.Interval != 10*time.Second {
		t.Errorf("interval = %v, want 10s", cfg.Monitor.Interval)
	}
	if cfg.Monitor.Chance != 0.5 {
		t.Errorf("chance = %v, want 0.5", cfg.Monitor.Chance)
	}
}

func TestLoadConfig_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  path: /tmp/apps.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Monitor.Interval != 30*time.Second {
		t.Errorf("interval = %v, want default 30s", cfg.Monitor.Interval)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
