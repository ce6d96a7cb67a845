// tiletwister runs headless 2048 games from the command line.
//
// Usage:
//
//	tiletwister list               - List available games
//	tiletwister levels             - List campaign levels
//	tiletwister replay <moves>     - Play a move sequence and print the final state
//	tiletwister sim                - Let the autoplayer play many games in parallel
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Path to a custom t2048.yaml
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-json            - Force JSON log output
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-twister/internal/config"
	"github.com/vovakirdan/tile-twister/internal/games/t2048"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogJSON    bool

	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiletwister",
	Short: "Tile Twister - headless 2048",
	Long: `Tile Twister plays the 2048 sliding-tile puzzle without a screen.

Available commands:
  list     - Show all available games
  levels   - Show the campaign levels
  replay   - Play a fixed sequence of moves
  sim      - Run the autoplayer over many games

Examples:
  tiletwister levels
  tiletwister replay LLDDRU --seed 42
  tiletwister sim --games 200 --workers 8`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simCmd)
}

// setup builds the logger and hands the config flags to the game package.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	logger, err = newLogger(os.Stderr, flagLogLevel, flagLogJSON)
	if err != nil {
		return err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(preset)
	return nil
}
