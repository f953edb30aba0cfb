package core

import "time"

// DefaultTickRate is the step rate used when none is configured.
const DefaultTickRate = 64

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Window width in pixels (cells for the terminal)
	ScreenH  int   // Window height in pixels (cells*CellAspect for the terminal)
	TickRate int   // Fixed simulation steps per second
	FPS      int   // Frame rate the frontend aims for
	Seed     int64 // RNG seed for deterministic runs
	Debug    bool  // Show the debug overlay
}

// StepDuration returns the fixed simulation step.
func (c RuntimeConfig) StepDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / DefaultTickRate
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Rain drops absorbed by NPCs
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned after each simulation step.
type StepResult struct {
	State  GameState
	Events int // Hazard-absorbed events emitted this step
}
