// Package config provides YAML-based configuration loading for the
// Rock-Paper-Scissors trainer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-rps/internal/rps"
)

// RPSConfig contains all configuration for the game.
type RPSConfig struct {
	Rules RulesConfig `yaml:"rules"`
	Theme ThemeConfig `yaml:"theme"`
}

// RulesConfig defines the round progression.
type RulesConfig struct {
	MaxRounds      int    `yaml:"max_rounds"`
	StartObjective string `yaml:"start_objective"` // "random", "win" or "lose"
	ResetObjective string `yaml:"reset_objective"` // "toggle" or "random"
}

// ThemeConfig holds terminal colors (ANSI 256 codes or hex strings).
type ThemeConfig struct {
	Win    string `yaml:"win"`
	Lose   string `yaml:"lose"`
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Border string `yaml:"border"`
}

// ObjectivePreset represents a named start objective from the CLI.
type ObjectivePreset string

const (
	ObjectiveRandom ObjectivePreset = "random"
	ObjectiveWin    ObjectivePreset = "win"
	ObjectiveLose   ObjectivePreset = "lose"
)

// Validate checks the config for values the game cannot run with.
func (c RPSConfig) Validate() error {
	if c.Rules.MaxRounds < 1 {
		return fmt.Errorf("rules.max_rounds must be at least 1, got %d", c.Rules.MaxRounds)
	}
	switch rps.StartObjective(c.Rules.StartObjective) {
	case rps.StartRandom, rps.StartWin, rps.StartLose:
	default:
		return fmt.Errorf("rules.start_objective: unknown value %q", c.Rules.StartObjective)
	}
	switch rps.ResetObjective(c.Rules.ResetObjective) {
	case rps.ResetToggle, rps.ResetRandom:
	default:
		return fmt.Errorf("rules.reset_objective: unknown value %q", c.Rules.ResetObjective)
	}
	return nil
}

// GameRules converts the rules section into engine rules.
func (c RPSConfig) GameRules() rps.Rules {
	return rps.Rules{
		MaxRounds:      c.Rules.MaxRounds,
		StartObjective: rps.StartObjective(c.Rules.StartObjective),
		ResetObjective: rps.ResetObjective(c.Rules.ResetObjective),
	}
}
