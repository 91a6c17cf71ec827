package rps

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Beats returns true if first defeats second.
func Beats(first, second Move) bool {
	loser, ok := beats[first]
	return ok && loser == second
}

// Resolve computes the player's outcome for one round.
//
// The canonical result treats the player as trying to win. When mustWin is
// false the objective is reversed: losing on purpose counts as a win and
// winning counts as a loss. Ties stay ties either way.
func Resolve(computer, player Move, mustWin bool) Outcome {
	result := Tie
	switch {
	case Beats(player, computer):
		result = Win
	case Beats(computer, player):
		result = Lose
	}

	if mustWin {
		return result
	}

	switch result {
	case Win:
		return Lose
	case Lose:
		return Win
	}
	return Tie
}
