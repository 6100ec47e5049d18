package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to locate their settings.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	ConfigPath string // Custom game config file, empty for the search path
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Lives remaining
	Ticks    int    // Simulation ticks run so far
	GameOver bool   // Whether the round has reached a terminal phase
	Outcome  string // "won" or "lost" once GameOver is set
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Stop is set once the game no longer needs ticks scheduled.
	Stop bool
}
