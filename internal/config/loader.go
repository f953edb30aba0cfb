package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs and the score database.
const AppDir = ".rainshield"

// LoadRain loads the rain simulation configuration.
// Search order: customPath -> ~/.rainshield/configs/rain.yaml -> ./configs/rain.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
// A custom path that cannot be read, parsed, or validated is an error; the
// other locations are skipped silently when they are unusable.
func LoadRain(customPath string) (RainConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RainConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRain(data)
		if err != nil {
			return RainConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rain.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRain(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rain.yaml")); err == nil {
		if cfg, err := parseRain(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRain(defaultRainYAML)
	if err != nil {
		return DefaultRainConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRain decodes data over the hardcoded defaults and validates the result.
func parseRain(data []byte) (RainConfig, error) {
	cfg := DefaultRainConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RainConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RainConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyRainPreset modifies the config based on a difficulty preset.
func ApplyRainPreset(cfg *RainConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// NPCs get quicker and more numerous as the preset hardens
	switch preset {
	case DifficultyEasy:
		cfg.Npc.RunSpeed *= 0.75
		cfg.Npc.SightDistance *= 1.25
	case DifficultyHard:
		cfg.Npc.RunSpeed *= 1.5
		cfg.Npc.MaxCount += 2
	}
}
