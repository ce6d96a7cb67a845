package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode    string        `yaml:"mode"`  // "campaign" or "endless"
	Level   int           `yaml:"level"` // Current level (1-indexed for display), 0 for endless
	Target  int           `yaml:"target"`
	Score   int           `yaml:"score"`
	Best    int           `yaml:"best"`
	Moves   int           `yaml:"moves"`
	Board   Grid          `yaml:"board"`
	MaxTile int           `yaml:"max_tile"`
	State   GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if lvl := g.Level(); lvl != nil {
		level = lvl.ID
	}

	snap := Snapshot{
		Mode:   string(g.mode),
		Level:  level,
		Target: g.currentTarget,
		Score:  g.score,
		Best:   g.best,
		Moves:  g.moves,
		State:  state,
	}
	if g.board != nil {
		snap.Board = g.board.Values()
		snap.MaxTile = g.board.MaxTile()
	}
	return snap
}
