package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: T2048Spawn{
			InitialTiles: 2,
			Spawn4:       0.10,
		},
		Levels: []T2048Level{
			{Name: "Warm-up", Target: 128, Spawn4: 0.10},
			{Name: "Getting Started", Target: 256, Spawn4: 0.10},
			{Name: "Building Momentum", Target: 512, Spawn4: 0.10},
			{Name: "The Climb", Target: 1024, Spawn4: 0.10},
			{Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
			{Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
			{Name: "Master Class", Target: 8192, Spawn4: 0.15},
			{Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
			{Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
			{Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
		},
	}
}

// DefaultT2048YAML returns the embedded default YAML.
func DefaultT2048YAML() []byte {
	return defaultT2048YAML
}
