package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-twister/internal/config"
	"github.com/vovakirdan/tile-twister/internal/games/t2048"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels from the active configuration,
after applying the --difficulty preset.

Examples:
  tiletwister levels
  tiletwister levels --difficulty hard
  tiletwister levels --config ./my-t2048.yaml`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, _ := config.ParseDifficultyPreset(flagDifficulty) // validated in setup
	if preset != "" {
		config.ApplyT2048Preset(&cfg, preset)
	}

	levels := t2048.LevelsFromConfig(cfg)
	if len(levels) == 0 {
		fmt.Println("No campaign levels configured.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, name := range t2048.LevelNames(levels) {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Printf("  %-3s  %-*s  %-6s  %s\n", "#", maxNameLen, "Name", "Target", "Spawn 4")
	fmt.Printf("  %-3s  %-*s  %-6s  %s\n", "-", maxNameLen, "----", "------", "-------")
	for _, lvl := range levels {
		fmt.Printf("  %-3d  %-*s  %-6d  %.0f%%\n", lvl.ID, maxNameLen, lvl.Name, lvl.Target, lvl.Spawn4*100)
	}

	fmt.Println()
	fmt.Printf("Endless mode spawns a 4 %.0f%% of the time.\n", cfg.Spawn.Spawn4*100)
}
