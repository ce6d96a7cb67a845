// Package autoplay drives 2048 games without a human player.
package autoplay

import (
	"context"

	"github.com/vovakirdan/tile-twister/internal/games/t2048"
)

// Strategy picks the next direction for a board.
// ok is false when no direction changes the board.
type Strategy interface {
	Choose(b *t2048.Board) (dir t2048.Direction, ok bool)
}

// Greedy looks one move ahead and keeps the direction with the best
// evaluation. Earlier entries in Preference win ties.
type Greedy struct {
	Preference   []t2048.Direction
	EmptyWeight  int // Points per empty cell after the move
	CornerWeight int // Multiplier applied when the largest tile sits in the bottom-left corner
}

// DefaultGreedy keeps large tiles in the bottom-left corner.
func DefaultGreedy() Greedy {
	return Greedy{
		Preference:   []t2048.Direction{t2048.DirDown, t2048.DirLeft, t2048.DirRight, t2048.DirUp},
		EmptyWeight:  16,
		CornerWeight: 2,
	}
}

// Choose implements Strategy. The board is not modified.
func (s Greedy) Choose(b *t2048.Board) (t2048.Direction, bool) {
	prefs := s.Preference
	if len(prefs) == 0 {
		prefs = t2048.Directions[:]
	}

	var (
		best      t2048.Direction
		bestScore int
		found     bool
	)
	for _, dir := range prefs {
		next := b.Clone()
		result := t2048.Move(next, dir)
		if !result.Moved {
			continue
		}

		score := result.ScoreGained + s.EmptyWeight*len(next.EmptyCells())
		if corner := next.Value(0, t2048.Size-1); corner > 0 && corner == next.MaxTile() {
			score += s.CornerWeight * corner
		}

		if !found || score > bestScore {
			best, bestScore, found = dir, score, true
		}
	}
	return best, found
}

// Result summarizes a finished run.
type Result struct {
	Score   int
	MaxTile int
	Turns   int
	Won     bool
}

// Run plays g with strategy s until the game ends, no move is left or
// maxTurns turns were played (0 means no limit). Cleared campaign levels
// are continued automatically. g must already be Reset.
func Run(ctx context.Context, g *t2048.Game, s Strategy, maxTurns int) (Result, error) {
	for maxTurns == 0 || g.Moves() < maxTurns {
		if err := ctx.Err(); err != nil {
			return summarize(g), err
		}

		if g.LevelCleared() {
			g.AdvanceLevel()
		}
		if st := g.State(); st.GameOver || st.Paused {
			break
		}

		dir, ok := s.Choose(g.Board())
		if !ok {
			break
		}
		g.Play(dir)
	}
	return summarize(g), nil
}

func summarize(g *t2048.Game) Result {
	snap := g.Snapshot()
	return Result{
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Turns:   snap.Moves,
		Won:     snap.State == t2048.StateWin,
	}
}
