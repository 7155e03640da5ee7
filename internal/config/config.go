// Package config provides YAML-based game configuration loading and
// difficulty presets for the stacker.
package config

import (
	"errors"
	"fmt"
)

// StackerConfig contains all configuration for the stacker game.
type StackerConfig struct {
	Field FieldConfig `yaml:"field"`
	Box   BoxConfig   `yaml:"box"`
	Tower TowerConfig `yaml:"tower"`
	Host  HostConfig  `yaml:"host"`
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoxConfig defines the falling box at the start of a game.
type BoxConfig struct {
	StartX int `yaml:"start_x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Also the height of every placed box
	Speed  int `yaml:"speed"`
}

// TowerConfig defines the base box of the tower.
type TowerConfig struct {
	BaseX     int `yaml:"base_x"`
	BaseWidth int `yaml:"base_width"`
}

// HostConfig defines how the host drives the engine.
type HostConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Ticks per second
	ReleaseDelayMS int `yaml:"release_delay_ms"` // Delay before a synthesized key release
	InputBuffer    int `yaml:"input_buffer"`     // Pending input events before drops
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c StackerConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Box.Width <= 0 || c.Box.Width > c.Field.Width:
		return fmt.Errorf("%w: box width %d must be in 1..%d", ErrInvalidConfig, c.Box.Width, c.Field.Width)
	case c.Box.Height <= 0:
		return fmt.Errorf("%w: box height must be positive, got %d", ErrInvalidConfig, c.Box.Height)
	case c.Box.Speed == 0:
		return fmt.Errorf("%w: box speed must not be zero", ErrInvalidConfig)
	case c.Box.Y < 0 || c.Box.Y+c.Box.Height > c.Field.Height:
		return fmt.Errorf("%w: box y %d is outside the field", ErrInvalidConfig, c.Box.Y)
	case c.Tower.BaseWidth <= 0:
		return fmt.Errorf("%w: base width must be positive, got %d", ErrInvalidConfig, c.Tower.BaseWidth)
	case c.Tower.BaseX < 0 || c.Tower.BaseX+c.Tower.BaseWidth > c.Field.Width:
		return fmt.Errorf("%w: base [%d, %d) does not fit the field", ErrInvalidConfig, c.Tower.BaseX, c.Tower.BaseX+c.Tower.BaseWidth)
	case c.Host.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.Host.TickRate)
	case c.Host.ReleaseDelayMS < 0:
		return fmt.Errorf("%w: release delay must not be negative", ErrInvalidConfig)
	case c.Host.InputBuffer <= 0:
		return fmt.Errorf("%w: input buffer must be positive, got %d", ErrInvalidConfig, c.Host.InputBuffer)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedForPreset returns the box speed magnitude for a preset.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The sign of the configured speed (starting direction) is kept.
func ApplyPreset(cfg *StackerConfig, preset DifficultyPreset) {
	speed := SpeedForPreset(preset)
	if cfg.Box.Speed < 0 {
		speed = -speed
	}
	cfg.Box.Speed = speed
}
