package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rps/internal/rps"
)

var flagLose bool

var rulesCmd = &cobra.Command{
	Use:   "rules [computer-move player-move]",
	Short: "Show how each move combination is scored",
	Long: `Without arguments, prints the outcome of all nine move combinations
for both goals. With two moves, resolves just that round.

Examples:
  rps rules
  rps rules rock paper
  rps rules rock paper --lose`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or two moves, got %d", len(args))
		}
		return nil
	},
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagLose, "lose", false, "Resolve with the goal to lose")
}

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 2 {
		computer, err := rps.ParseMove(args[0])
		if err != nil {
			return fmt.Errorf("computer move %q: %w", args[0], err)
		}
		player, err := rps.ParseMove(args[1])
		if err != nil {
			return fmt.Errorf("player move %q: %w", args[1], err)
		}
		mustWin := !flagLose
		outcome := rps.Resolve(computer, player, mustWin)
		fmt.Fprintf(out, "Goal %s: %s against %s is a %s (%+d)\n",
			rps.Prompt(mustWin), player, computer, outcome, outcome.Delta())
		return nil
	}

	printTable(out)
	return nil
}

// printTable writes the full resolution table for both goals.
func printTable(out io.Writer) {
	fmt.Fprintln(out, "Rock beats Scissors, Scissors beats Paper, Paper beats Rock.")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-9s  %-9s  %-9s  %s\n", "Computer", "You", "Goal Win", "Goal Lose")
	fmt.Fprintf(out, "  %-9s  %-9s  %-9s  %s\n", "--------", "---", "--------", "---------")

	for _, computer := range rps.Moves() {
		for _, player := range rps.Moves() {
			fmt.Fprintf(out, "  %-9s  %-9s  %-9s  %s\n",
				computer, player,
				rps.Resolve(computer, player, true),
				rps.Resolve(computer, player, false),
			)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Win +1, Lose -1, Tie 0. Run 'rps play' to start a game.")
}
