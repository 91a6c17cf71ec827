package config

import (
	_ "embed"
)

//go:embed defaults/rps.yaml
var defaultRPSYAML []byte

// DefaultRPSConfig returns the default game configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{
		Rules: RulesConfig{
			MaxRounds:      10,
			StartObjective: "random",
			ResetObjective: "toggle",
		},
		Theme: ThemeConfig{
			Win:    "10",
			Lose:   "9",
			Accent: "14",
			Muted:  "245",
			Border: "13",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRPSYAML
}
