package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/bulletsinair/engine"
)

// TestDefaultIsValid verifies the stock configuration passes validation and matches the stock rules
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}
	if cfg.Rules() != engine.DefaultRules() {
		t.Errorf("Expected default rules, got %+v", cfg.Rules())
	}
	if cfg.FrameInterval() != 16*time.Millisecond {
		t.Errorf("Expected 16ms frame, got %v", cfg.FrameInterval())
	}
}

// TestValidateRejects covers each validation branch
func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero surface", func(c *Config) { c.Surface.Width = 0 }},
		{"negative actor", func(c *Config) { c.Actor.Height = -1 }},
		{"actor taller than surface", func(c *Config) { c.Actor.Height = 500 }},
		{"zero speed", func(c *Config) { c.Actor.Speed = 0 }},
		{"left start outside", func(c *Config) { c.Actor.LeftStartX = 790 }},
		{"right inset too small", func(c *Config) { c.Actor.RightInset = 10 }},
		{"actors overlap", func(c *Config) { c.Surface.Width = 150 }},
		{"zero health", func(c *Config) { c.Actor.Health = 0 }},
		{"zero damage", func(c *Config) { c.Actor.HitDamage = 0 }},
		{"zero projectile speed", func(c *Config) { c.Projectile.Speed = 0 }},
		{"zero frame", func(c *Config) { c.Loop.FrameMs = 0 }},
		{"negative hold", func(c *Config) { c.Input.HoldRepeatMs = -1 }},
		{"volume too loud", func(c *Config) { c.Audio.Volume = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadTOML overlays a partial TOML file on the defaults
func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "game.toml", `
debug = true

[actor]
speed = 8
hit_damage = 25

[audio]
muted = true

[input.keys]
p1_shoot = ["space", "d"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug || !cfg.Audio.Muted {
		t.Error("Expected debug and muted set")
	}
	if cfg.Actor.Speed != 8 || cfg.Actor.HitDamage != 25 {
		t.Errorf("Expected speed 8 damage 25, got %v %d", cfg.Actor.Speed, cfg.Actor.HitDamage)
	}
	if cfg.Actor.Width != 30 {
		t.Errorf("Expected untouched width 30, got %v", cfg.Actor.Width)
	}
	if got := cfg.Input.Keys["p1_shoot"]; len(got) != 2 || got[0] != "space" {
		t.Errorf("Expected p1_shoot bindings [space d], got %v", got)
	}
}

// TestLoadYAML overlays a partial YAML file on the defaults
func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
surface:
  width: 1000
projectile:
  speed: 20
loop:
  frame_ms: 33
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Surface.Width != 1000 || cfg.Surface.Height != 400 {
		t.Errorf("Expected surface 1000x400, got %vx%v", cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.Projectile.Speed != 20 {
		t.Errorf("Expected projectile speed 20, got %v", cfg.Projectile.Speed)
	}
	if cfg.FrameInterval() != 33*time.Millisecond {
		t.Errorf("Expected 33ms frame, got %v", cfg.FrameInterval())
	}
}

// TestLoadEmptyYAML keeps the defaults for an empty file
func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rules() != engine.DefaultRules() {
		t.Error("Expected defaults from empty file")
	}
}

// TestLoadErrors covers unknown keys, bad extensions, missing files and invalid values
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		invalid bool // expect ErrInvalid in the chain
	}{
		{"unknown toml key", "a.toml", "[actor]\ncolour = 1\n", true},
		{"unknown yaml key", "a.yaml", "actor:\n  colour: 1\n", false},
		{"bad extension", "a.json", "{}", true},
		{"invalid value", "a.toml", "[loop]\nframe_ms = 0\n", true},
		{"malformed toml", "a.toml", "[actor\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

// TestLoadEmptyPath returns defaults without touching the filesystem
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Input.TouchButtons {
		t.Error("Expected touch buttons on by default")
	}
}
