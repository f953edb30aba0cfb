package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rain.yaml
var defaultRainYAML []byte

// DefaultRainConfig returns the default rain simulation configuration.
func DefaultRainConfig() RainConfig {
	return RainConfig{
		Physics: PhysicsConfig{
			Gravity:      15.6,
			Ground:       -11.0,
			MaxFrameTime: 250 * time.Millisecond,
		},
		Round: RoundConfig{
			Duration: 2 * time.Minute,
		},
		Player: PlayerConfig{
			Width:       7.0,
			Speed:       15.6,
			Restitution: 0.15,
			ImageWidth:  600,
			ImageHeight: 300,
		},
		Shelter: ShelterConfig{
			Width:       5.9,
			Height:      9.44,
			Restitution: 0.3,
			Nudge:       0.04,
		},
		Rain: DropConfig{
			Radius:        0.4,
			SpawnInterval: 200 * time.Millisecond,
			OnPlayer:      OnPlayerDeflect,
		},
		Npc: NpcConfig{
			Width:         2.0,
			Height:        3.2,
			WalkSpeed:     0.8,
			RunSpeed:      4.0,
			SightDistance: 7.8,
			MaxWetness:    3,
			IdleTime:      2 * time.Second,
			WalkTime:      3 * time.Second,
			RunTime:       1500 * time.Millisecond,
			Reaction:      ReactionFlee,
			Separation:    true,
			InitialCount:  2,
			MaxCount:      4,
			SpawnInterval: 6 * time.Second,
			SoakedTimeout: 4 * time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7680,
			},
			Scaling: ScalingConfig{
				SpawnRate: 1.5,
				NpcBonus:  2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file for the
// given config name, or nil if there is none.
func DefaultYAML(name string) []byte {
	switch name {
	case "rain":
		return defaultRainYAML
	default:
		return nil
	}
}
