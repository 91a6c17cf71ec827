// Package rps implements the rules of the win-or-lose Rock-Paper-Scissors
// trainer: move resolution and the per-game round progression.
package rps

import (
	"errors"
	"math/rand"
	"strings"
)

// Move is a choice among rock, paper and scissors.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// ErrInvalidMove is returned by ParseMove for unknown input.
var ErrInvalidMove = errors.New("rps: invalid move")

// Moves returns all moves in display order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// String returns the display name of the move.
func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// ParseMove parses a move name (case-insensitive) or its first letter.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "scissor", "s":
		return Scissors, nil
	}
	return Rock, ErrInvalidMove
}

// RandomMove draws a move uniformly from rng.
func RandomMove(rng *rand.Rand) Move {
	return Move(rng.Intn(3))
}

// Outcome is the result of a round from the player's point of view.
type Outcome int

const (
	Win Outcome = iota
	Lose
	Tie
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Tie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Delta returns the score change for the outcome.
func (o Outcome) Delta() int {
	switch o {
	case Win:
		return 1
	case Lose:
		return -1
	default:
		return 0
	}
}

// Prompt returns the objective shown to the player: "Win" or "Lose".
func Prompt(mustWin bool) string {
	if mustWin {
		return "Win"
	}
	return "Lose"
}
