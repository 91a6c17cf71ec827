package rps

// MaxRounds is the number of rounds in a game unless Rules says otherwise.
const MaxRounds = 10

// StartObjective decides the objective of the very first round.
type StartObjective string

const (
	StartRandom StartObjective = "random"
	StartWin    StartObjective = "win"
	StartLose   StartObjective = "lose"
)

// ResetObjective decides the first objective after a restart.
type ResetObjective string

const (
	ResetToggle ResetObjective = "toggle" // flip the objective left by the last game
	ResetRandom ResetObjective = "random" // draw a fresh one
)

// Rules configures a Game.
type Rules struct {
	MaxRounds      int
	StartObjective StartObjective
	ResetObjective ResetObjective
}

// DefaultRules returns the standard ten-round game with a random first
// objective that toggles on restart.
func DefaultRules() Rules {
	return Rules{
		MaxRounds:      MaxRounds,
		StartObjective: StartRandom,
		ResetObjective: ResetToggle,
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.MaxRounds <= 0 {
		r.MaxRounds = d.MaxRounds
	}
	if r.StartObjective == "" {
		r.StartObjective = d.StartObjective
	}
	if r.ResetObjective == "" {
		r.ResetObjective = d.ResetObjective
	}
	return r
}
