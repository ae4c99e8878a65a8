package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.TargetFPS != 60 {
		t.Errorf("expected target fps 60, got %d", cfg.Graphics.TargetFPS)
	}
	if cfg.Camera.VFOV != 30 {
		t.Errorf("expected default vfov 30, got %f", cfg.Camera.VFOV)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 160
  height: 100
  target_fps: 30

camera:
  position: [0, 1, -10]
  vfov: 60

logging:
  level: "debug"
  log_file: "vcam.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 160 || cfg.Graphics.Height != 100 {
		t.Errorf("expected 160x100, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.TargetFPS != 30 {
		t.Errorf("expected target fps 30, got %d", cfg.Graphics.TargetFPS)
	}
	if cfg.Camera.VFOV != 60 {
		t.Errorf("expected vfov 60, got %f", cfg.Camera.VFOV)
	}
	if cfg.Camera.Position != [3]float64{0, 1, -10} {
		t.Errorf("expected camera position [0 1 -10], got %v", cfg.Camera.Position)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Light.Ambient != Default().Light.Ambient {
		t.Errorf("expected light ambient to keep its default when unset in the file")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("graphics:\n  width: not a number\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected missing file to fall back to defaults, got error: %v", err)
	}
	if cfg.Camera.VFOV != Default().Camera.VFOV {
		t.Errorf("expected defaults when config file is absent")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults for empty path")
	}
}
