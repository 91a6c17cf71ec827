package rps

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-rps/internal/core"
)

var (
	// ErrGameOver is returned by Play once all rounds have been played.
	ErrGameOver = errors.New("rps: game is over")
	// ErrGameInProgress is returned by Reset before the game has ended.
	ErrGameInProgress = errors.New("rps: game still in progress")
)

// Phase is the state of the game's state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Round records one resolved player action.
type Round struct {
	Number       int // 1-indexed
	ComputerMove Move
	PlayerMove   Move
	MustWin      bool
	Outcome      Outcome
	ScoreAfter   int
}

// Game holds the state of one win-or-lose game and advances it on each
// player action.
type Game struct {
	rules Rules
	rng   *rand.Rand

	roundsPlayed int
	score        int
	computerMove Move
	mustWin      bool
	gameOver     bool

	history []Round
}

// New creates a game in the Playing phase with a random computer move.
// The first objective is random unless rules.StartObjective forces it.
func New(rules Rules, seed int64) *Game {
	rules = rules.withDefaults()
	g := &Game{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}

	switch rules.StartObjective {
	case StartWin:
		g.mustWin = true
	case StartLose:
		g.mustWin = false
	default:
		g.mustWin = g.rng.Intn(2) == 0
	}
	g.computerMove = RandomMove(g.rng)

	return g
}

// Play resolves the player's move against the current computer move and
// advances the game. It returns ErrGameOver, leaving the state untouched,
// once the final round has been played.
func (g *Game) Play(player Move) (Round, error) {
	if g.gameOver {
		return Round{}, ErrGameOver
	}
	if !player.Valid() {
		return Round{}, ErrInvalidMove
	}

	outcome := Resolve(g.computerMove, player, g.mustWin)
	g.score += outcome.Delta()
	g.roundsPlayed++

	round := Round{
		Number:       g.roundsPlayed,
		ComputerMove: g.computerMove,
		PlayerMove:   player,
		MustWin:      g.mustWin,
		Outcome:      outcome,
		ScoreAfter:   g.score,
	}
	g.history = append(g.history, round)

	if g.roundsPlayed >= g.rules.MaxRounds {
		g.gameOver = true
		return round, nil
	}

	g.nextPrompt()
	return round, nil
}

// Reset starts a new game after the previous one has ended. The score and
// round counter go back to zero and a fresh computer move is drawn.
func (g *Game) Reset() error {
	if !g.gameOver {
		return ErrGameInProgress
	}

	g.roundsPlayed = 0
	g.score = 0
	g.gameOver = false
	g.history = nil

	g.computerMove = RandomMove(g.rng)
	if g.rules.ResetObjective == ResetRandom {
		g.mustWin = g.rng.Intn(2) == 0
	} else {
		g.mustWin = !g.mustWin
	}

	return nil
}

// nextPrompt draws the next computer move and flips the objective.
func (g *Game) nextPrompt() {
	g.computerMove = RandomMove(g.rng)
	g.mustWin = !g.mustWin
}

// Score returns the current score (wins minus losses).
func (g *Game) Score() int { return g.score }

// RoundsPlayed returns the number of rounds played in this game.
func (g *Game) RoundsPlayed() int { return g.roundsPlayed }

// MaxRounds returns the number of rounds per game.
func (g *Game) MaxRounds() int { return g.rules.MaxRounds }

// ComputerMove returns the move the player has to answer.
func (g *Game) ComputerMove() Move { return g.computerMove }

// MustWin reports whether the current objective is to beat the computer.
func (g *Game) MustWin() bool { return g.mustWin }

// IsGameOver reports whether all rounds have been played.
func (g *Game) IsGameOver() bool { return g.gameOver }

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	if g.gameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// History returns a copy of the rounds played in the current game.
func (g *Game) History() []Round {
	out := make([]Round, len(g.history))
	copy(out, g.history)
	return out
}

// State returns the summary used by the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		RoundsPlayed: g.roundsPlayed,
		MaxRounds:    g.rules.MaxRounds,
		GameOver:     g.gameOver,
	}
}
