package core

// RuntimeConfig is passed to games on Reset.
// Games use it to adapt to the screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Rows cleared so far
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step after each host tick.
type StepResult struct {
	State GameState
	// Changed is true when the step altered the visible game state.
	Changed bool
}
