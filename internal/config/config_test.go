package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test nav defaults
	if cfg.Nav.Tag != "[navmesh]" {
		t.Errorf("expected tag '[navmesh]', got %q", cfg.Nav.Tag)
	}
	if cfg.Nav.CacheDir != "cache" {
		t.Errorf("expected cache dir 'cache', got %q", cfg.Nav.CacheDir)
	}
	if !cfg.Nav.CacheEnabled {
		t.Error("expected cache to be enabled by default")
	}

	// Test game defaults
	if cfg.Game.Gravity != -0.5 {
		t.Errorf("expected gravity -0.5, got %f", cfg.Game.Gravity)
	}
	if cfg.Game.JumpDuration != 0.23 {
		t.Errorf("expected jump duration 0.23, got %f", cfg.Game.JumpDuration)
	}
	if cfg.Game.JumpSpeed != 10.0 {
		t.Errorf("expected jump speed 10.0, got %f", cfg.Game.JumpSpeed)
	}
	if cfg.Game.MoveSpeed != 6.0 {
		t.Errorf("expected move speed 6.0, got %f", cfg.Game.MoveSpeed)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
nav:
  tag: "[nav]"
  cache_dir: "/tmp/navcache"
  cache_enabled: false

game:
  gravity: -9.81
  jump_duration: 0.5
  jump_speed: 12.5
  move_speed: 4.0

logging:
  level: "debug"
  log_file: "bake.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Nav.Tag != "[nav]" {
		t.Errorf("expected tag '[nav]', got %q", cfg.Nav.Tag)
	}
	if cfg.Nav.CacheDir != "/tmp/navcache" {
		t.Errorf("expected cache dir '/tmp/navcache', got %q", cfg.Nav.CacheDir)
	}
	if cfg.Nav.CacheEnabled {
		t.Error("expected cache to be disabled")
	}
	if cfg.Game.Gravity != -9.81 {
		t.Errorf("expected gravity -9.81, got %f", cfg.Game.Gravity)
	}
	if cfg.Game.JumpDuration != 0.5 {
		t.Errorf("expected jump duration 0.5, got %f", cfg.Game.JumpDuration)
	}
	if cfg.Game.JumpSpeed != 12.5 {
		t.Errorf("expected jump speed 12.5, got %f", cfg.Game.JumpSpeed)
	}
	if cfg.Game.MoveSpeed != 4.0 {
		t.Errorf("expected move speed 4.0, got %f", cfg.Game.MoveSpeed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "bake.log" {
		t.Errorf("expected log file 'bake.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Partial config should keep defaults for unspecified fields
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
logging:
  level: "warn"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	// Defaults preserved
	if cfg.Nav.Tag != "[navmesh]" {
		t.Errorf("expected default tag '[navmesh]', got %q", cfg.Nav.Tag)
	}
	if cfg.Game.MoveSpeed != 6.0 {
		t.Errorf("expected default move speed 6.0, got %f", cfg.Game.MoveSpeed)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Nav.Tag = "[walkable]"
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Nav.Tag != "[walkable]" {
		t.Errorf("expected tag '[walkable]', got %q", loaded.Nav.Tag)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", loaded.Logging.Level)
	}
}
