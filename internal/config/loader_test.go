package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-rps/internal/rps"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRPSConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultRPSConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rps.yaml")
	data := []byte("rules:\n  max_rounds: 5\n  reset_objective: random\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadRPS(path)
	if err != nil {
		t.Fatalf("LoadRPS() failed: %v", err)
	}
	if cfg.Rules.MaxRounds != 5 {
		t.Errorf("MaxRounds = %d, expected 5", cfg.Rules.MaxRounds)
	}
	if cfg.Rules.ResetObjective != "random" {
		t.Errorf("ResetObjective = %q, expected %q", cfg.Rules.ResetObjective, "random")
	}
	// Unset fields keep defaults
	if cfg.Rules.StartObjective != "random" {
		t.Errorf("StartObjective = %q, expected default %q", cfg.Rules.StartObjective, "random")
	}
	if cfg.Theme.Win != "10" {
		t.Errorf("Theme.Win = %q, expected default %q", cfg.Theme.Win, "10")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRPS(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadRPS() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules:\n  max_rounds: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadRPS(bad); err == nil {
		t.Error("LoadRPS() with max_rounds 0 should fail validation")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("rules: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadRPS(broken); err == nil {
		t.Error("LoadRPS() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RPSConfig)
		wantErr bool
	}{
		{"defaults", func(*RPSConfig) {}, false},
		{"single round", func(c *RPSConfig) { c.Rules.MaxRounds = 1 }, false},
		{"negative rounds", func(c *RPSConfig) { c.Rules.MaxRounds = -3 }, true},
		{"unknown start", func(c *RPSConfig) { c.Rules.StartObjective = "draw" }, true},
		{"unknown reset", func(c *RPSConfig) { c.Rules.ResetObjective = "keep" }, true},
		{"forced lose", func(c *RPSConfig) { c.Rules.StartObjective = "lose" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRPSConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyObjectivePreset(t *testing.T) {
	cfg := DefaultRPSConfig()

	if err := ApplyObjectivePreset(&cfg, ""); err != nil {
		t.Errorf("empty preset should be accepted: %v", err)
	}
	if cfg.Rules.StartObjective != "random" {
		t.Errorf("empty preset changed StartObjective to %q", cfg.Rules.StartObjective)
	}

	if err := ApplyObjectivePreset(&cfg, ObjectiveWin); err != nil {
		t.Fatalf("ApplyObjectivePreset(win) failed: %v", err)
	}
	if cfg.GameRules().StartObjective != rps.StartWin {
		t.Errorf("GameRules().StartObjective = %q, expected %q", cfg.GameRules().StartObjective, rps.StartWin)
	}

	if err := ApplyObjectivePreset(&cfg, "tie"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestGameRules(t *testing.T) {
	rules := DefaultRPSConfig().GameRules()
	if rules != rps.DefaultRules() {
		t.Errorf("GameRules() = %+v, expected %+v", rules, rps.DefaultRules())
	}
}
