package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME holding config overrides.
const configDirName = ".tiletwister"

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.tiletwister/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readT2048(customPath)
		if err != nil {
			return DefaultT2048Config(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if cfg, err := readT2048(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readT2048(filepath.Join("configs", "t2048.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseT2048(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readT2048 reads, parses and validates a config file.
func readT2048(path string) (T2048Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return T2048Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseT2048(data)
	if err != nil {
		return T2048Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parseT2048 decodes YAML on top of the hardcoded defaults and validates the result.
func parseT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Fixed keeps every level at the endless spawn rate; the other presets
// scale all spawn4 probabilities, capped at 1.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		for i := range cfg.Levels {
			cfg.Levels[i].Spawn4 = cfg.Spawn.Spawn4
		}
		return
	}

	scale := Spawn4ScaleForPreset(preset)
	cfg.Spawn.Spawn4 = min(cfg.Spawn.Spawn4*scale, 1.0)
	for i := range cfg.Levels {
		cfg.Levels[i].Spawn4 = min(cfg.Levels[i].Spawn4*scale, 1.0)
	}
}
