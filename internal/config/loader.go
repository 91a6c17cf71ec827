package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRPS loads the game configuration.
// Search order: customPath -> ~/.rps/config.yaml -> ./configs/rps.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadRPS(customPath string) (RPSConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRPSConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultRPSConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/rps.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRPSYAML)
	if err != nil {
		return DefaultRPSConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (RPSConfig, error) {
	cfg := DefaultRPSConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rps", filename)
}

// ApplyObjectivePreset overrides the start objective from a CLI flag.
// An empty preset leaves the config untouched.
func ApplyObjectivePreset(cfg *RPSConfig, preset ObjectivePreset) error {
	switch preset {
	case "":
		return nil
	case ObjectiveRandom, ObjectiveWin, ObjectiveLose:
		cfg.Rules.StartObjective = string(preset)
		return nil
	default:
		return fmt.Errorf("unknown objective %q (want random, win or lose)", preset)
	}
}
