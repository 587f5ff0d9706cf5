// Package config loads match rules, loop timing, input bindings and audio settings
// from a TOML or YAML file layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Surface    SurfaceConfig    `toml:"surface" yaml:"surface"`
	Actor      ActorConfig      `toml:"actor" yaml:"actor"`
	Projectile ProjectileConfig `toml:"projectile" yaml:"projectile"`
	Loop       LoopConfig       `toml:"loop" yaml:"loop"`
	Input      InputConfig      `toml:"input" yaml:"input"`
	Audio      AudioConfig      `toml:"audio" yaml:"audio"`
	Debug      bool             `toml:"debug" yaml:"debug"`
}

// SurfaceConfig is the playfield size in playfield units
type SurfaceConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// ActorConfig describes both actors
type ActorConfig struct {
	Width      float64 `toml:"width" yaml:"width"`
	Height     float64 `toml:"height" yaml:"height"`
	Speed      float64 `toml:"speed" yaml:"speed"`
	LeftStartX float64 `toml:"left_start_x" yaml:"left_start_x"`
	RightInset float64 `toml:"right_inset" yaml:"right_inset"`
	Health     int     `toml:"health" yaml:"health"`
	HitDamage  int     `toml:"hit_damage" yaml:"hit_damage"`
}

// ProjectileConfig describes projectiles of both actors
type ProjectileConfig struct {
	Speed float64 `toml:"speed" yaml:"speed"`
	Size  float64 `toml:"size" yaml:"size"`
}

// LoopConfig controls frame pacing
type LoopConfig struct {
	FrameMs int `toml:"frame_ms" yaml:"frame_ms"`
}

// InputConfig controls key hold emulation, touch buttons and key bindings
type InputConfig struct {
	HoldInitialMs int                 `toml:"hold_initial_ms" yaml:"hold_initial_ms"`
	HoldRepeatMs  int                 `toml:"hold_repeat_ms" yaml:"hold_repeat_ms"`
	TouchButtons  bool                `toml:"touch_buttons" yaml:"touch_buttons"`
	Keys          map[string][]string `toml:"keys" yaml:"keys"` // Action name -> key names, replaces defaults per action
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Muted  bool    `toml:"muted" yaml:"muted"`
	Volume float64 `toml:"volume" yaml:"volume"` // log2 gain, 0 = unity
}

// Volume limits as log2 gain
const (
	MinVolume = -10.0
	MaxVolume = 2.0
)

// Default returns the stock configuration
func Default() Config {
	rules := engine.DefaultRules()
	return Config{
		Surface: SurfaceConfig{
			Width:  rules.SurfaceWidth,
			Height: rules.SurfaceHeight,
		},
		Actor: ActorConfig{
			Width:      rules.ActorWidth,
			Height:     rules.ActorHeight,
			Speed:      rules.ActorSpeed,
			LeftStartX: rules.LeftActorStartX,
			RightInset: rules.RightActorStartInset,
			Health:     rules.MaxHealth,
			HitDamage:  rules.Damage,
		},
		Projectile: ProjectileConfig{
			Speed: rules.ProjectileSpeed,
			Size:  rules.ProjectileSize,
		},
		Loop: LoopConfig{
			FrameMs: constants.FrameUpdateIntervalMs,
		},
		Input: InputConfig{
			HoldInitialMs: int(constants.HoldInitialTimeout / time.Millisecond),
			HoldRepeatMs:  int(constants.HoldRepeatTimeout / time.Millisecond),
			TouchButtons:  true,
		},
		Audio: AudioConfig{
			Volume: constants.DefaultVolume,
		},
	}
}

// Validate checks geometry and timing for values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must be positive, got %vx%v", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return fmt.Errorf("%w: actor size must be positive, got %vx%v", ErrInvalid, c.Actor.Width, c.Actor.Height)
	case c.Actor.Height > c.Surface.Height:
		return fmt.Errorf("%w: actor height %v exceeds surface height %v", ErrInvalid, c.Actor.Height, c.Surface.Height)
	case c.Actor.Speed <= 0:
		return fmt.Errorf("%w: actor speed must be positive, got %v", ErrInvalid, c.Actor.Speed)
	case c.Actor.LeftStartX < 0 || c.Actor.LeftStartX+c.Actor.Width > c.Surface.Width:
		return fmt.Errorf("%w: left start x %v puts actor outside surface", ErrInvalid, c.Actor.LeftStartX)
	case c.Actor.RightInset < c.Actor.Width || c.Actor.RightInset > c.Surface.Width:
		return fmt.Errorf("%w: right inset %v puts actor outside surface", ErrInvalid, c.Actor.RightInset)
	case c.Actor.LeftStartX+c.Actor.Width >= c.Surface.Width-c.Actor.RightInset:
		return fmt.Errorf("%w: actors overlap at start", ErrInvalid)
	case c.Actor.Health <= 0:
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalid, c.Actor.Health)
	case c.Actor.HitDamage <= 0:
		return fmt.Errorf("%w: hit damage must be positive, got %d", ErrInvalid, c.Actor.HitDamage)
	case c.Projectile.Speed <= 0 || c.Projectile.Size <= 0:
		return fmt.Errorf("%w: projectile speed and size must be positive", ErrInvalid)
	case c.Loop.FrameMs <= 0:
		return fmt.Errorf("%w: frame_ms must be positive, got %d", ErrInvalid, c.Loop.FrameMs)
	case c.Input.HoldInitialMs < 0 || c.Input.HoldRepeatMs < 0:
		return fmt.Errorf("%w: hold timeouts must not be negative", ErrInvalid)
	case c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume:
		return fmt.Errorf("%w: volume %v outside [%v,%v]", ErrInvalid, c.Audio.Volume, MinVolume, MaxVolume)
	}
	return nil
}

// Rules converts the config into simulation rules
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		SurfaceWidth:         c.Surface.Width,
		SurfaceHeight:        c.Surface.Height,
		ActorWidth:           c.Actor.Width,
		ActorHeight:          c.Actor.Height,
		ActorSpeed:           c.Actor.Speed,
		LeftActorStartX:      c.Actor.LeftStartX,
		RightActorStartInset: c.Actor.RightInset,
		MaxHealth:            c.Actor.Health,
		Damage:               c.Actor.HitDamage,
		ProjectileSpeed:      c.Projectile.Speed,
		ProjectileSize:       c.Projectile.Size,
	}
}

// FrameInterval returns the loop tick duration
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.Loop.FrameMs) * time.Millisecond
}

// HoldTimeouts returns the initial and repeat key hold timeouts
func (c Config) HoldTimeouts() (initial, repeat time.Duration) {
	return time.Duration(c.Input.HoldInitialMs) * time.Millisecond,
		time.Duration(c.Input.HoldRepeatMs) * time.Millisecond
}
