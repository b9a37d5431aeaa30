package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible mazes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Level        int  // Level being played, or the next level after a clear
	Moves        int  // Accepted moves on the current level
	Cleared      bool // The current level has just been completed
	ClearedLevel int  // Level that was completed, valid when Cleared
	Paused       bool // Paused, or the window is too small to play
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
