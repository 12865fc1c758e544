package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and (almost certainly) no user config in the test
	// environment: the embedded default must parse.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	if cfg.Game.TickRate <= 0 {
		t.Errorf("TickRate = %d, expected positive default", cfg.Game.TickRate)
	}
	if cfg.Input.DebounceFrames < 0 {
		t.Errorf("DebounceFrames = %d, expected non-negative", cfg.Input.DebounceFrames)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("game:\n  tick_rate: 30\ninput:\n  debounce_frames: 2\nui:\n  ascii: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Game.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Game.TickRate)
	}
	if cfg.Input.DebounceFrames != 2 {
		t.Errorf("DebounceFrames = %d, expected 2", cfg.Input.DebounceFrames)
	}
	if !cfg.UI.ASCII {
		t.Error("ASCII = false, expected true")
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicitly named missing config should be an error")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := Config{
		Game:  GameConfig{TickRate: 0},
		Input: InputConfig{DebounceFrames: -3},
	}
	cfg.Normalize()

	def := Default()
	if cfg.Game.TickRate != def.Game.TickRate {
		t.Errorf("TickRate = %d, expected default %d", cfg.Game.TickRate, def.Game.TickRate)
	}
	if cfg.Input.DebounceFrames != def.Input.DebounceFrames {
		t.Errorf("DebounceFrames = %d, expected default %d", cfg.Input.DebounceFrames, def.Input.DebounceFrames)
	}
}
