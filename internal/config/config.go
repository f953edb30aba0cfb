// Package config provides YAML-based simulation configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Behavior policies.
const (
	OnPlayerDeflect = "deflect" // rain bounces off the shield
	OnPlayerDestroy = "destroy" // rain vanishes on the shield

	ReactionFlee  = "flee"  // NPCs run away from the nearest drop
	ReactionChase = "chase" // NPCs run toward the nearest drop
)

// RainConfig contains all configuration for the rain simulation.
// Distances are world units (50 across the screen), speeds are units per second.
type RainConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Round      RoundConfig      `yaml:"round"`
	Player     PlayerConfig     `yaml:"player"`
	Shelter    ShelterConfig    `yaml:"shelter"`
	Rain       DropConfig       `yaml:"rain"`
	Npc        NpcConfig        `yaml:"npc"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity      float64       `yaml:"gravity"`        // Downward acceleration, units/s²
	Ground       float64       `yaml:"ground"`         // Height NPCs and the shelter stand on
	MaxFrameTime time.Duration `yaml:"max_frame_time"` // Longest frame fed to the step accumulator
}

// RoundConfig defines how long a run lasts.
type RoundConfig struct {
	Duration time.Duration `yaml:"duration"` // 0 means endless
}

// PlayerConfig defines the umbrella.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Speed       float64 `yaml:"speed"`
	Restitution float64 `yaml:"restitution"`
	ImageWidth  uint32  `yaml:"image_width"`  // Native sprite width in pixels
	ImageHeight uint32  `yaml:"image_height"` // Native sprite height in pixels
}

// ShelterConfig defines the static shelter.
type ShelterConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Restitution float64 `yaml:"restitution"`
	Nudge       float64 `yaml:"nudge"` // Horizontal push added on a top-face bounce
}

// DropConfig defines the rain particles.
type DropConfig struct {
	Radius        float64       `yaml:"radius"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	OnPlayer      string        `yaml:"on_player"` // "deflect" or "destroy"
}

// NpcConfig defines the NPCs and their behavior.
type NpcConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	WalkSpeed     float64       `yaml:"walk_speed"`
	RunSpeed      float64       `yaml:"run_speed"`
	SightDistance float64       `yaml:"sight_distance"`
	MaxWetness    int           `yaml:"max_wetness"` // Wet levels before soaked
	IdleTime      time.Duration `yaml:"idle_time"`
	WalkTime      time.Duration `yaml:"walk_time"`
	RunTime       time.Duration `yaml:"run_time"`
	Reaction      string        `yaml:"reaction"` // "flee" or "chase"
	Separation    bool          `yaml:"separation"`
	InitialCount  int           `yaml:"initial_count"`
	MaxCount      int           `yaml:"max_count"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // 0 disables periodic spawning
	SoakedTimeout time.Duration `yaml:"soaked_timeout"` // 0 keeps soaked NPCs forever
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnRate float64 `yaml:"spawn_rate"` // Extra rain spawn rate at max difficulty (1.0 = double)
	NpcBonus  int     `yaml:"npc_bonus"`  // Extra NPCs allowed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration can drive a simulation.
func (c RainConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("player.width", c.Player.Width)
	positive("player.speed", c.Player.Speed)
	unit("player.restitution", c.Player.Restitution)
	positive("shelter.width", c.Shelter.Width)
	positive("shelter.height", c.Shelter.Height)
	unit("shelter.restitution", c.Shelter.Restitution)
	positive("rain.radius", c.Rain.Radius)
	positive("rain.spawn_interval", c.Rain.SpawnInterval.Seconds())
	positive("npc.width", c.Npc.Width)
	positive("npc.height", c.Npc.Height)
	positive("npc.sight_distance", c.Npc.SightDistance)
	positive("npc.idle_time", c.Npc.IdleTime.Seconds())
	positive("npc.walk_time", c.Npc.WalkTime.Seconds())
	positive("npc.run_time", c.Npc.RunTime.Seconds())
	if c.Player.ImageWidth == 0 {
		errs = append(errs, errors.New("player.image_width must be positive"))
	}
	if c.Npc.WalkSpeed < 0 || c.Npc.RunSpeed < 0 {
		errs = append(errs, errors.New("npc speeds must not be negative"))
	}
	if c.Npc.MaxWetness < 1 {
		errs = append(errs, fmt.Errorf("npc.max_wetness must be at least 1, got %d", c.Npc.MaxWetness))
	}
	if c.Npc.InitialCount < 0 || c.Npc.MaxCount < c.Npc.InitialCount {
		errs = append(errs, fmt.Errorf("npc counts invalid: initial %d, max %d", c.Npc.InitialCount, c.Npc.MaxCount))
	}
	switch c.Rain.OnPlayer {
	case OnPlayerDeflect, OnPlayerDestroy:
	default:
		errs = append(errs, fmt.Errorf("rain.on_player must be %q or %q, got %q", OnPlayerDeflect, OnPlayerDestroy, c.Rain.OnPlayer))
	}
	switch c.Npc.Reaction {
	case ReactionFlee, ReactionChase:
	default:
		errs = append(errs, fmt.Errorf("npc.reaction must be %q or %q, got %q", ReactionFlee, ReactionChase, c.Npc.Reaction))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid rain config: %w", err)
	}
	return nil
}
