package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // Puzzle seed; 0 picks one from the clock
}

// DefaultConfig returns an 80x24 config at the default tick rate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Resolved returns a copy with a positive tick rate and a concrete seed, so the
// seed of a played puzzle can be logged and stored.
func (c RuntimeConfig) Resolved() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// TickDuration returns the wall time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Score    int  // Score of the finished puzzle; 0 while playing
	GameOver bool // Result acknowledged; the platform may save and restart
	Paused   bool // Timer frozen (pause key or window too small)
}

// StepResult wraps the state returned by Game.Step.
type StepResult struct {
	State GameState
}
