// Package t2048 implements the 2048 sliding-tile puzzle: the board, the
// move and merge engine, game-over detection and a playable game session
// with campaign and endless modes.
package t2048

import "github.com/vovakirdan/tile-twister/internal/config"

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"` // Target tile value to reach
	Spawn4 float64 `yaml:"spawn4"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// LevelsFromConfig numbers the configured campaign levels starting at 1.
func LevelsFromConfig(cfg config.T2048Config) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lvl.Name,
			Target: lvl.Target,
			Spawn4: lvl.Spawn4,
		}
	}
	return levels
}

// DefaultLevels returns the built-in campaign.
func DefaultLevels() []Level {
	return LevelsFromConfig(config.DefaultT2048Config())
}

// LevelNames returns the names of the given levels.
func LevelNames(levels []Level) []string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}
