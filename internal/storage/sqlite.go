// Package storage keeps a journal of games and rounds played by the current
// process. It uses the pure-Go modernc.org/sqlite driver on a private
// in-memory database, so nothing outlives the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-rps/internal/rps"
)

// Store manages the SQLite connection for the round journal.
type Store struct {
	db *sql.DB
}

// GameEntry represents one journaled game.
type GameEntry struct {
	ID         string
	Session    string
	StartedAt  time.Time
	FinishedAt time.Time // Zero while the game is in progress
	FinalScore int
	Finished   bool
}

// Tally counts outcomes for a game.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

// Rounds returns the total number of rounds counted.
func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Ties
}

// OpenMemory creates an in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			finished_at DATETIME,
			final_score INTEGER
		);

		CREATE TABLE IF NOT EXISTS rounds (
			game_id TEXT NOT NULL REFERENCES games(id),
			number INTEGER NOT NULL,
			computer_move INTEGER NOT NULL,
			player_move INTEGER NOT NULL,
			must_win INTEGER NOT NULL,
			outcome INTEGER NOT NULL,
			score_after INTEGER NOT NULL,
			PRIMARY KEY (game_id, number)
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(final_score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartGame records a new game.
func (s *Store) StartGame(gameID, session string) error {
	_, err := s.db.Exec(
		"INSERT INTO games (id, session, started_at) VALUES (?, ?, ?)",
		gameID, session, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot start game: %w", err)
	}
	return nil
}

// SaveRound records one round of a game.
func (s *Store) SaveRound(gameID string, r rps.Round) error {
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (game_id, number, computer_move, player_move, must_win, outcome, score_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, r.Number, int(r.ComputerMove), int(r.PlayerMove), r.MustWin, int(r.Outcome), r.ScoreAfter,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// FinishGame stores the final score of a game.
func (s *Store) FinishGame(gameID string, score int) error {
	res, err := s.db.Exec(
		"UPDATE games SET finished_at = ?, final_score = ? WHERE id = ?",
		time.Now().UTC(), score, gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: unknown game %q", gameID)
	}
	return nil
}

// Rounds retrieves the rounds of a game in play order.
func (s *Store) Rounds(gameID string) ([]rps.Round, error) {
	rows, err := s.db.Query(
		`SELECT number, computer_move, player_move, must_win, outcome, score_after
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY number`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []rps.Round
	for rows.Next() {
		var r rps.Round
		var computer, player, outcome int
		if err := rows.Scan(&r.Number, &computer, &player, &r.MustWin, &outcome, &r.ScoreAfter); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.ComputerMove = rps.Move(computer)
		r.PlayerMove = rps.Move(player)
		r.Outcome = rps.Outcome(outcome)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Tally counts wins, losses and ties of a game.
func (s *Store) Tally(gameID string) (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		 FROM rounds WHERE game_id = ?`,
		int(rps.Win), int(rps.Lose), int(rps.Tie), gameID,
	).Scan(&t.Wins, &t.Losses, &t.Ties)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally game: %w", err)
	}
	return t, nil
}

// Game retrieves a journaled game by ID.
// Returns nil if the game is unknown.
func (s *Store) Game(gameID string) (*GameEntry, error) {
	var g GameEntry
	var startedAt, finishedAt any
	var finalScore sql.NullInt64

	err := s.db.QueryRow(
		"SELECT id, session, started_at, finished_at, final_score FROM games WHERE id = ?",
		gameID,
	).Scan(&g.ID, &g.Session, &startedAt, &finishedAt, &finalScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	g.StartedAt = parseTime(startedAt)
	g.FinishedAt = parseTime(finishedAt)
	if finalScore.Valid {
		g.FinalScore = int(finalScore.Int64)
		g.Finished = true
	}
	return &g, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{
			"2006-01-02 15:04:05.999999999 -0700 MST",
			time.RFC3339Nano,
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// BestScore returns the highest final score among finished games.
// ok is false when no game has finished yet.
func (s *Store) BestScore() (best int, ok bool, err error) {
	var score sql.NullInt64
	err = s.db.QueryRow("SELECT MAX(final_score) FROM games WHERE final_score IS NOT NULL").Scan(&score)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, false, nil
	}
	return int(score.Int64), true, nil
}

// GamesPlayed returns the number of finished games.
func (s *Store) GamesPlayed() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM games WHERE final_score IS NOT NULL").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count games: %w", err)
	}
	return n, nil
}
