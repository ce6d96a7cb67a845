// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Spawn  T2048Spawn   `yaml:"spawn"`
	Levels []T2048Level `yaml:"levels"`
}

// T2048Spawn defines tile spawning parameters.
type T2048Spawn struct {
	InitialTiles int     `yaml:"initial_tiles"` // Tiles placed on a fresh board
	Spawn4       float64 `yaml:"spawn4"`        // Chance of a 4 in endless mode (0.0-1.0)
}

// T2048Level defines a campaign level with a target tile.
type T2048Level struct {
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"` // Target tile value to reach
	Spawn4 float64 `yaml:"spawn4"` // Chance of a 4 while playing this level
}

// Validate checks that spawn probabilities are in range, the initial tile
// count fits the board and every level target is a power of two.
func (c T2048Config) Validate() error {
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > 16 {
		return fmt.Errorf("%w: initial_tiles %d not in [0, 16]", ErrInvalidConfig, c.Spawn.InitialTiles)
	}
	if c.Spawn.Spawn4 < 0 || c.Spawn.Spawn4 > 1 {
		return fmt.Errorf("%w: spawn4 %.2f not in [0, 1]", ErrInvalidConfig, c.Spawn.Spawn4)
	}
	for i, lvl := range c.Levels {
		if lvl.Target < 4 || lvl.Target&(lvl.Target-1) != 0 {
			return fmt.Errorf("%w: level %d target %d is not a power of two >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
		if lvl.Spawn4 < 0 || lvl.Spawn4 > 1 {
			return fmt.Errorf("%w: level %d spawn4 %.2f not in [0, 1]", ErrInvalidConfig, i+1, lvl.Spawn4)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value into a preset.
// An empty string yields an empty preset, meaning "use the config as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Spawn4ScaleForPreset returns the factor applied to every spawn4 probability.
func Spawn4ScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}
