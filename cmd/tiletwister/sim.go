package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tile-twister/internal/games/t2048"
	"github.com/vovakirdan/tile-twister/internal/games/t2048/autoplay"
	"github.com/vovakirdan/tile-twister/internal/session"
)

var (
	flagGames    int
	flagWorkers  int
	flagMaxTurns int
	flagMode     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autoplayer over many games",
	Long: `Play many independent games with the built-in greedy autoplayer
and print a summary. Every game runs in its own session with its own
board; game i uses seed --seed + i, so a non-zero --seed makes the whole
run reproducible.

Examples:
  tiletwister sim --games 100
  tiletwister sim --games 1000 --workers 8 --seed 1
  tiletwister sim --mode campaign --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Games played in parallel")
	simCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 0, "Stop each game after this many turns (0 = no limit)")
	simCmd.Flags().StringVar(&flagMode, "mode", string(t2048.ModeEndless), "Game mode: campaign or endless")
	simCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based, 0 = first)")
}

func runSim(cmd *cobra.Command, args []string) {
	mode, err := t2048.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGames < 1 || flagWorkers < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games and --workers must be positive")
		os.Exit(1)
	}
	if flagLevel < 0 {
		fmt.Fprintln(os.Stderr, "Error: --level must not be negative")
		os.Exit(1)
	}

	sessions := session.NewRegistry(logger)
	results := make([]autoplay.Result, flagGames)
	strategy := autoplay.DefaultGreedy()
	start := time.Now()

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(flagWorkers)
	for i := range flagGames {
		seed := int64(0)
		if flagSeed != 0 {
			seed = flagSeed + int64(i)
		}

		group.Go(func() error {
			s, err := sessions.Create(session.Options{Mode: mode, Seed: seed, StartLevel: flagLevel})
			if err != nil {
				return err
			}
			defer func() {
				if err := sessions.Remove(s.ID()); err != nil {
					logger.Warn("remove session", "id", s.ID(), "error", err)
				}
			}()

			var runErr error
			s.Do(func(g *t2048.Game) {
				results[i], runErr = autoplay.Run(ctx, g, strategy, flagMaxTurns)
			})
			if runErr != nil {
				return fmt.Errorf("game %d: %w", i, runErr)
			}
			logger.Debug("game finished",
				"game", i,
				"score", results[i].Score,
				"max_tile", results[i].MaxTile,
				"elapsed", time.Since(s.CreatedAt()).Round(time.Microsecond),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation done", "games", flagGames, "elapsed", time.Since(start).Round(time.Millisecond))
	printSummary(mode, results)
}

func printSummary(mode t2048.Mode, results []autoplay.Result) {
	var total, turns, best, wins int
	tiles := make(map[int]int)
	for _, r := range results {
		total += r.Score
		turns += r.Turns
		best = max(best, r.Score)
		tiles[r.MaxTile]++
		if r.Won {
			wins++
		}
	}

	n := len(results)
	fmt.Printf("Games:      %d (%s)\n", n, mode)
	fmt.Printf("Mean score: %d\n", total/n)
	fmt.Printf("Best score: %d\n", best)
	fmt.Printf("Mean turns: %d\n", turns/n)
	if mode == t2048.ModeCampaign {
		fmt.Printf("Campaigns won: %d\n", wins)
	}

	values := make([]int, 0, len(tiles))
	for v := range tiles {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Max tile", "Games")
	fmt.Printf("  %-8s  %s\n", "--------", "-----")
	for _, v := range values {
		fmt.Printf("  %-8d  %d (%.1f%%)\n", v, tiles[v], float64(tiles[v])*100/float64(n))
	}
}
