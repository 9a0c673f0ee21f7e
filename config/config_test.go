package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestDefaultIsValid ensures the canonical tuning passes validation
func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

// TestLoadOverlaysDefaults keeps unspecified keys at their defaults
func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
player:
  start_ammo: 3
  fire_cooldown: 400ms
enemy:
  decay: 0.95
camera:
  offset: [-10, 15, -25]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Player.StartAmmo != 3 {
		t.Errorf("start ammo = %d, want 3", cfg.Player.StartAmmo)
	}
	if cfg.Player.FireCooldown != 400*time.Millisecond {
		t.Errorf("cooldown = %v, want 400ms", cfg.Player.FireCooldown)
	}
	if cfg.Enemy.Decay != 0.95 {
		t.Errorf("decay = %v, want 0.95", cfg.Enemy.Decay)
	}
	if cfg.Camera.Offset[2] != -25 {
		t.Errorf("camera offset = %v", cfg.Camera.Offset)
	}

	def := Default()
	if cfg.Player.MuzzleSpeed != def.Player.MuzzleSpeed {
		t.Errorf("muzzle speed = %v, want default %v", cfg.Player.MuzzleSpeed, def.Player.MuzzleSpeed)
	}
	if cfg.Enemy.MinInterval != def.Enemy.MinInterval {
		t.Errorf("min interval = %v, want default", cfg.Enemy.MinInterval)
	}
}

// TestLoadRejectsInvalid wraps ErrInvalid
func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative ammo", "player:\n  start_ammo: -1\n"},
		{"decay above one", "enemy:\n  decay: 1.5\n"},
		{"floor above interval", "enemy:\n  interval: 1s\n  min_interval: 2s\n"},
		{"inverted wall range", "wall:\n  min_height: 40\n"},
		{"three periods", "wall:\n  periods: [1s, 2s, 3s]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

// TestLoadMissingFile surfaces the read error
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("cause = %v, want not-exist", errors.Cause(err))
	}
}

// TestLoadMalformedYAML reports a parse error, not ErrInvalid
func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "player: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("parse error must not be ErrInvalid")
	}
}
