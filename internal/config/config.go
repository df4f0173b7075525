// Package config provides YAML-based runtime configuration for the
// platformer: audio, controls, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned (wrapped) by Config.Validate.
var (
	ErrVolumeRange = errors.New("audio volume must be within [0, 1]")
	ErrHoldTicks   = errors.New("controls hold_ticks must be at least 1")
	ErrIdleTimeout = errors.New("server idle_timeout_minutes must not be negative")
	ErrNoAddress   = errors.New("server address is empty")
)

// Config is the complete runtime configuration.
type Config struct {
	Audio    AudioConfig    `yaml:"audio"`
	Controls ControlsConfig `yaml:"controls"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Pack     string         `yaml:"pack"` // Level pack played when none is given
}

// AudioConfig controls local sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"` // Sound on at startup
	Volume  float64 `yaml:"volume"`  // Master volume, 0.0 - 1.0
}

// ControlsConfig tunes keyboard handling.
type ControlsConfig struct {
	// Terminals report key presses but not releases, so a movement key
	// counts as held for this many ticks after its last press or repeat.
	HoldTicks int `yaml:"hold_ticks"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"` // 0 disables the timeout
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: %v: %w", c.Audio.Volume, ErrVolumeRange)
	}
	if c.Controls.HoldTicks < 1 {
		return fmt.Errorf("config: %d: %w", c.Controls.HoldTicks, ErrHoldTicks)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: %d: %w", c.Server.IdleTimeoutMinutes, ErrIdleTimeout)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: %w", ErrNoAddress)
	}
	return nil
}
