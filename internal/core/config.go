package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Values here come from the terminal and the command line, not from the YAML config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second; 0 means use the configured rate
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Total rows cleared
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Locked bool // A piece locked into the grid during this tick
}
