package rps

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		expected Move
		wantErr  bool
	}{
		{"rock", Rock, false},
		{"Rock", Rock, false},
		{" PAPER ", Paper, false},
		{"p", Paper, false},
		{"scissors", Scissors, false},
		{"s", Scissors, false},
		{"r", Rock, false},
		{"lizard", Rock, true},
		{"", Rock, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMove(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMove) {
					t.Errorf("ParseMove(%q) error = %v, expected ErrInvalidMove", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseMove(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestRandomMoveCoversAllMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[Move]int)
	const draws = 3000

	for i := 0; i < draws; i++ {
		m := RandomMove(rng)
		if !m.Valid() {
			t.Fatalf("RandomMove() returned invalid move %d", m)
		}
		counts[m]++
	}

	// Each move should land roughly a third of the time.
	for _, m := range Moves() {
		if counts[m] < draws/4 || counts[m] > draws/2 {
			t.Errorf("%v drawn %d times out of %d, distribution looks skewed", m, counts[m], draws)
		}
	}
}

func TestOutcomeDelta(t *testing.T) {
	if Win.Delta() != 1 || Lose.Delta() != -1 || Tie.Delta() != 0 {
		t.Errorf("Delta() = %d/%d/%d, expected 1/-1/0", Win.Delta(), Lose.Delta(), Tie.Delta())
	}
}

func TestPrompt(t *testing.T) {
	if Prompt(true) != "Win" {
		t.Errorf("Prompt(true) = %q, expected %q", Prompt(true), "Win")
	}
	if Prompt(false) != "Lose" {
		t.Errorf("Prompt(false) = %q, expected %q", Prompt(false), "Lose")
	}
}
