package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic simulation parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/steps.
func (d *DifficultyManager) Level(score int, steps int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(steps) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the rain spawn interval for the current level.
// The spawn rate grows from base to base * (1 + spawn_rate), so the
// interval shrinks accordingly. It never drops below one millisecond.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score int, steps int) time.Duration {
	level := d.Level(score, steps)
	factor := 1.0 + level*math.Max(0, d.cfg.Scaling.SpawnRate)
	interval := time.Duration(float64(base) / factor)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// MaxNpcs returns the NPC population cap for the current level.
func (d *DifficultyManager) MaxNpcs(base int, score int, steps int) int {
	level := d.Level(score, steps)
	bonus := int(level * float64(max(0, d.cfg.Scaling.NpcBonus)))
	return base + bonus
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
