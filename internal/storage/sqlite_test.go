package storage

import (
	"testing"

	"github.com/vovakirdan/tui-rps/internal/rps"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if err := a.StartGame("g1", ""); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if err := a.FinishGame("g1", 4); err != nil {
		t.Fatalf("FinishGame() failed: %v", err)
	}

	n, err := b.GamesPlayed()
	if err != nil {
		t.Fatalf("GamesPlayed() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second in-memory store sees %d games, expected 0", n)
	}
}

func TestStoreSaveAndRetrieveRounds(t *testing.T) {
	store := openTestStore(t)

	if err := store.StartGame("game-1", "alice"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}

	want := []rps.Round{
		{Number: 1, ComputerMove: rps.Rock, PlayerMove: rps.Paper, MustWin: true, Outcome: rps.Win, ScoreAfter: 1},
		{Number: 2, ComputerMove: rps.Paper, PlayerMove: rps.Paper, MustWin: false, Outcome: rps.Tie, ScoreAfter: 1},
		{Number: 3, ComputerMove: rps.Scissors, PlayerMove: rps.Rock, MustWin: true, Outcome: rps.Win, ScoreAfter: 2},
		{Number: 4, ComputerMove: rps.Rock, PlayerMove: rps.Paper, MustWin: false, Outcome: rps.Lose, ScoreAfter: 1},
	}
	// Save out of order; Rounds() sorts by number
	for _, i := range []int{2, 0, 3, 1} {
		if err := store.SaveRound("game-1", want[i]); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	got, err := store.Rounds("game-1")
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Rounds() returned %d rounds, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("round %d = %+v, expected %+v", i+1, got[i], want[i])
		}
	}

	tally, err := store.Tally("game-1")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally != (Tally{Wins: 2, Losses: 1, Ties: 1}) {
		t.Errorf("Tally() = %+v, expected 2/1/1", tally)
	}
	if tally.Rounds() != 4 {
		t.Errorf("Tally().Rounds() = %d, expected 4", tally.Rounds())
	}
}

func TestStoreDuplicateRound(t *testing.T) {
	store := openTestStore(t)
	store.StartGame("g", "")

	r := rps.Round{Number: 1, Outcome: rps.Tie}
	if err := store.SaveRound("g", r); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if err := store.SaveRound("g", r); err == nil {
		t.Error("saving the same round number twice should fail")
	}
}

func TestStoreTallyEmptyGame(t *testing.T) {
	store := openTestStore(t)

	tally, err := store.Tally("nope")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally != (Tally{}) {
		t.Errorf("Tally() for unknown game = %+v, expected zero", tally)
	}
}

func TestStoreFinishGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.StartGame("g1", "bob"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}

	g, err := store.Game("g1")
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if g == nil || g.Finished {
		t.Fatalf("Game() = %+v, expected unfinished game", g)
	}
	if g.Session != "bob" {
		t.Errorf("Session = %q, expected %q", g.Session, "bob")
	}

	if err := store.FinishGame("g1", -3); err != nil {
		t.Fatalf("FinishGame() failed: %v", err)
	}

	g, err = store.Game("g1")
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if !g.Finished || g.FinalScore != -3 {
		t.Errorf("Game() = %+v, expected finished with score -3", g)
	}
	if g.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set")
	}

	if err := store.FinishGame("missing", 1); err == nil {
		t.Error("FinishGame() on unknown game should fail")
	}

	missing, err := store.Game("missing")
	if err != nil {
		t.Fatalf("Game() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Game(missing) = %+v, expected nil", missing)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok {
		t.Error("BestScore() should report no games yet")
	}

	scores := map[string]int{"a": -2, "b": 6, "c": 1}
	for id, score := range scores {
		store.StartGame(id, "")
		if err := store.FinishGame(id, score); err != nil {
			t.Fatalf("FinishGame() failed: %v", err)
		}
	}
	// In-progress games don't count
	store.StartGame("d", "")

	best, ok, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if !ok || best != 6 {
		t.Errorf("BestScore() = %d, %v, expected 6, true", best, ok)
	}

	n, err := store.GamesPlayed()
	if err != nil {
		t.Fatalf("GamesPlayed() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("GamesPlayed() = %d, expected 3", n)
	}
}

func TestStoreAllNegativeBestScore(t *testing.T) {
	store := openTestStore(t)
	store.StartGame("a", "")
	store.FinishGame("a", -5)

	best, ok, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if !ok || best != -5 {
		t.Errorf("BestScore() = %d, %v, expected -5, true", best, ok)
	}
}
