package core

import "time"

// DefaultHoldWindow is how long a terminal key counts as held after its last
// press event. It must outlast the auto-repeat delay (660 ms on stock X11).
const DefaultHoldWindow = 750 * time.Millisecond

// RuntimeConfig contains configuration passed to the game by a frontend.
type RuntimeConfig struct {
	ScreenW    int           // Frontend surface width (cells or window pixels)
	ScreenH    int           // Frontend surface height
	TickRate   int           // Frames per second the frontend schedules (default 60)
	Seed       int64         // RNG seed for spawn jitter; 0 means use current time in platform layer
	HoldWindow time.Duration // Terminal only: synthesized key release delay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		HoldWindow: DefaultHoldWindow,
	}
}

// GameState is a read-only summary of the simulation handed to frontends.
type GameState struct {
	Score    int  // Enemies survived
	GameOver bool // Terminal: once true, never reset
	Frames   int  // Frames simulated so far
}
