package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/platform/tui"
	"github.com/vovakirdan/tui-rps/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a ten-round game.

Controls:
  R/1  P/2  S/3     - Play Rock, Paper or Scissors
  Left/Right, Enter - Pick a move with the cursor
  Enter / N         - Restart (after game over)
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Objective options:
  random - First goal is random (default)
  win    - First goal is always "Win"
  lose   - First goal is always "Lose"

Examples:
  rps play
  rps play --objective lose
  rps play --seed 42 --log-file rps.log`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without the journal - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  gameCfg,
		Store:   store,
		Logger:  logger,
		Session: os.Getenv("USER"),
	}, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
