// Package core provides fundamental types shared by the rules engine and the
// platform layer. It has no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// RuntimeConfig contains configuration passed to a game session at startup.
// The platform fills it from the terminal (or SSH PTY) and CLI flags.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform needs to decide what to show.
type GameState struct {
	Score        int  // Current score, may be negative
	RoundsPlayed int  // Rounds played in the current game
	MaxRounds    int  // Rounds per game
	GameOver     bool // Whether the game has ended
}

// RoundsLeft returns how many rounds remain before the game ends.
func (s GameState) RoundsLeft() int {
	left := s.MaxRounds - s.RoundsPlayed
	if left < 0 {
		return 0
	}
	return left
}
