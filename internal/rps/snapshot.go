package rps

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	RoundsPlayed int
	MaxRounds    int
	Score        int
	ComputerMove Move
	MustWin      bool
	Phase        Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		RoundsPlayed: g.roundsPlayed,
		MaxRounds:    g.rules.MaxRounds,
		Score:        g.score,
		ComputerMove: g.computerMove,
		MustWin:      g.mustWin,
		Phase:        g.Phase(),
	}
}
