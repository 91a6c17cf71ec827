// rps is a terminal Rock-Paper-Scissors trainer: every round you are told to
// either win or lose against the computer's move.
//
// Usage:
//
//	rps play              - Play a ten-round game (default command)
//	rps rules             - Print how every move combination is scored
//	rps serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rps/internal/config"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagLogFile   string
	flagObjective string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock-Paper-Scissors trainer for your terminal",
	Long: `Each round shows the computer's move and tells you to either WIN or
LOSE against it. Meet the goal for +1, miss it for -1, a tie scores 0.
A game lasts ten rounds.

Available commands:
  play     - Play a game (default)
  rules    - Show how each move combination is scored
  serve    - Start SSH server for remote play

Examples:
  rps
  rps play --objective win
  rps rules rock paper --lose
  rps serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagObjective, "objective", "", "Objective of the first round: random, win, lose")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config and applies the objective flag.
func loadConfig() (config.RPSConfig, error) {
	cfg, err := config.LoadRPS(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyObjectivePreset(&cfg, config.ObjectivePreset(flagObjective)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to path, or a discarding logger
// when path is empty. The returned func closes the file.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rps",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
