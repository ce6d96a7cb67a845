package t2048

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-twister/internal/config"
	"github.com/vovakirdan/tile-twister/internal/core"
	"github.com/vovakirdan/tile-twister/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// ErrUnknownMode is returned for a mode other than campaign or endless.
var ErrUnknownMode = errors.New("t2048: unknown mode")

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeCampaign, ModeEndless:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// GameID returns the registry identifier for a mode.
func GameID(mode Mode) string {
	if mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// TurnResult describes everything that happened during one turn.
type TurnResult struct {
	Direction    Direction
	Move         MoveResult
	Spawn        Pos  // Where the new tile appeared, valid if Spawned
	Spawned      bool // A new tile was placed after the move
	LevelCleared bool // The campaign target was reached this turn
	GameOver     bool // No move is possible after this turn
}

// Game implements the 2048 puzzle game.
// A Game is owned by a single caller; it is not safe for concurrent use.
type Game struct {
	mode   Mode
	cfg    *config.T2048Config
	levels []Level
	board  *Board
	logger *log.Logger

	score         int
	best          int // Highest score seen by this instance, kept across resets
	moves         int // Turns that changed the board
	levelIndex    int // Current level (0-indexed)
	startLevel    int // Campaign level (1-based) every Reset starts at, 0 for the first
	currentTarget int // Current tile target, 0 for none

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool

	lastTurn TurnResult
}

// Package-level config settings, set once by the command line before any
// game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied after loading the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{
		mode:   ModeCampaign,
		logger: discardLogger(),
	}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{
		mode:   ModeEndless,
		logger: discardLogger(),
	}
}

// NewForMode creates a game for the given mode using the package-level config settings.
func NewForMode(mode Mode) (*Game, error) {
	switch mode {
	case ModeCampaign:
		return New(), nil
	case ModeEndless:
		return NewEndless(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// NewWithConfig creates a game that uses cfg instead of loading one from disk.
func NewWithConfig(mode Mode, cfg config.T2048Config) (*Game, error) {
	g, err := NewForMode(mode)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g.cfg = &cfg
	return g, nil
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// SetLogger sets the logger used for turn diagnostics. nil disables logging.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger()
	}
	g.logger = l
}

// SetStartLevel sets the campaign level (1-based) that Reset starts at.
// 0 starts from the first level. Endless games ignore it.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// StartLevel returns the level set by SetStartLevel.
func (g *Game) StartLevel() int {
	return g.startLevel
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game. The best score survives restarts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg == nil {
		loaded := g.loadConfig()
		g.cfg = &loaded
	}
	g.levels = LevelsFromConfig(*g.cfg)

	if cfg.Seed == 0 {
		g.board = NewRandomBoard()
	} else {
		g.board = NewBoard(cfg.Seed)
	}

	g.score = 0
	g.moves = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.lastTurn = TurnResult{}

	// Apply start level (campaign only)
	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 {
		if g.startLevel <= len(g.levels) {
			g.levelIndex = g.startLevel - 1
		} else {
			g.logger.Warn("start level out of range, starting at level 1", "level", g.startLevel, "levels", len(g.levels))
		}
	}

	// Set up level
	g.loadLevel()

	for range g.cfg.Spawn.InitialTiles {
		g.board.SpawnRandomTile()
	}
	g.gameOver = IsGameOver(g.board)

	g.logger.Debug("game reset", "mode", g.mode, "seed", g.board.Seed(), "level", g.levelIndex+1, "board", g.board)
}

// loadConfig loads the configuration from disk and applies the difficulty preset.
func (g *Game) loadConfig() config.T2048Config {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultT2048Config()
	}

	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	return cfg
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless || len(g.levels) == 0 {
		g.currentTarget = 0 // No target in endless
		g.board.SetSpawn4Probability(g.cfg.Spawn.Spawn4)
		return
	}

	level := g.levels[g.levelIndex]
	g.currentTarget = level.Target
	g.board.SetSpawn4Probability(level.Spawn4)
}

// Step applies one input frame.
// Pause toggles pausing, Confirm continues after a cleared level and the
// direction actions play a turn. Restarting is left to the caller via Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		if in.Has(core.ActionConfirm) {
			g.AdvanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Don't process moves if game over or won
	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	turn := g.Play(dir)
	return core.StepResult{State: g.State(), Moved: turn.Move.Moved}
}

// directionFor maps the first direction action in the frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	default:
		return 0, false
	}
}

// Play performs a full turn: move, spawn, target and game-over checks.
// A move that does not change the board spawns nothing and is not counted.
// Turns are ignored while paused, after a cleared level or once the game is over.
func (g *Game) Play(dir Direction) TurnResult {
	if g.paused || g.levelCleared || g.finished() {
		return TurnResult{Direction: dir}
	}

	turn := TurnResult{
		Direction: dir,
		Move:      Move(g.board, dir),
	}

	if !turn.Move.Moved {
		g.logger.Debug("move rejected", "dir", dir)
		g.lastTurn = turn
		return turn
	}

	g.moves++
	g.score += turn.Move.ScoreGained
	if g.score > g.best {
		g.best = g.score
	}

	turn.Spawn, turn.Spawned = g.board.SpawnRandomTile()

	// Check for level target (campaign only)
	if g.mode == ModeCampaign && g.currentTarget > 0 && g.board.MaxTile() >= g.currentTarget {
		g.levelCleared = true
		turn.LevelCleared = true
	} else if IsGameOver(g.board) {
		g.gameOver = true
		turn.GameOver = true
	}

	g.logger.Debug("turn",
		"n", g.moves,
		"dir", dir,
		"gained", turn.Move.ScoreGained,
		"score", g.score,
		"board", g.board,
	)
	if turn.LevelCleared {
		g.logger.Info("level cleared", "level", g.levelIndex+1, "target", g.currentTarget, "score", g.score)
	}
	if turn.GameOver {
		g.logger.Info("game over", "score", g.score, "moves", g.moves, "max_tile", g.board.MaxTile())
	}

	g.lastTurn = turn
	return turn
}

// AdvanceLevel moves to the next level after a cleared one.
// Completing the last level wins the game.
func (g *Game) AdvanceLevel() {
	if !g.levelCleared {
		return
	}
	g.levelCleared = false

	if g.levelIndex >= len(g.levels)-1 {
		// Completed all levels
		g.won = true
		g.logger.Info("campaign won", "score", g.score)
		return
	}

	g.levelIndex++
	g.loadLevel()
	// Keep current board and score - just update target

	if IsGameOver(g.board) {
		g.gameOver = true
	}
}

func (g *Game) finished() bool {
	return g.gameOver || g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished(),
		Paused:   g.paused || g.levelCleared,
	}
}

// Board returns the live board. Callers must not modify it while playing.
func (g *Game) Board() *Board {
	return g.board
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the highest score reached since the game was created.
func (g *Game) BestScore() int {
	return g.best
}

// Moves returns the number of turns that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// LastTurn returns the result of the most recent Play.
func (g *Game) LastTurn() TurnResult {
	return g.lastTurn
}

// Levels returns the campaign levels in play.
func (g *Game) Levels() []Level {
	return g.levels
}

// Level returns the current campaign level, or nil in endless mode.
func (g *Game) Level() *Level {
	if g.mode == ModeEndless || len(g.levels) == 0 {
		return nil
	}
	return &g.levels[g.levelIndex]
}

// LevelCleared reports whether the game waits for AdvanceLevel.
func (g *Game) LevelCleared() bool {
	return g.levelCleared
}
