package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay, 0 means seed from entropy
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the caller.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	Moved bool // Whether the input changed the board (a turn was taken)
}
