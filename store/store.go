// Package store persists batch runs and per-game outcomes in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/anonimus/gapsim/engine"
	"github.com/anonimus/gapsim/simulation"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	created_at_ms  INTEGER NOT NULL,
	difficulty     TEXT NOT NULL,
	seed           INTEGER NOT NULL,
	games          INTEGER NOT NULL,
	mod_wins       INTEGER NOT NULL,
	ref_wins       INTEGER NOT NULL,
	draws          INTEGER NOT NULL,
	win_rate       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
	run_id          TEXT NOT NULL,
	game_index      INTEGER NOT NULL,
	plies           INTEGER NOT NULL,
	modular_total   REAL NOT NULL,
	reference_total REAL NOT NULL,
	outcome         TEXT NOT NULL,
	gaps_detected   INTEGER NOT NULL,
	PRIMARY KEY (run_id, game_index),
	FOREIGN KEY (run_id) REFERENCES runs(id)
);
`

// Run is one persisted batch run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Difficulty engine.Difficulty
	Seed       int64
	Games      int
	ModWins    int
	RefWins    int
	Draws      int
	WinRate    float64
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run database and applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// SaveRun records a finished batch and its per-game outcomes in one
// transaction, returning the generated run ID.
func (s *Store) SaveRun(ctx context.Context, difficulty engine.Difficulty, seed int64, results []simulation.GameResult, stats simulation.BatchStats) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	runID := uuid.New().String()
	createdAt := toMillis(time.Now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at_ms, difficulty, seed, games, mod_wins, ref_wins, draws, win_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, createdAt, string(difficulty), seed, stats.TotalGames,
		stats.ModWins, stats.RefWins, stats.Draws, stats.WinRate)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO games (run_id, game_index, plies, modular_total, reference_total, outcome, gaps_detected)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare game insert: %w", err)
	}
	defer stmt.Close()

	for i := range results {
		r := &results[i]
		_, err = stmt.ExecContext(ctx, runID, i, r.TotalPlies,
			r.ModularTotal, r.ReferenceTotal, string(r.Outcome), r.GapsDetected())
		if err != nil {
			return "", fmt.Errorf("insert game %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at_ms, difficulty, seed, games, mod_wins, ref_wins, draws, win_rate
		 FROM runs ORDER BY created_at_ms DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		var difficulty string
		if err := rows.Scan(&r.ID, &createdAt, &difficulty, &r.Seed, &r.Games,
			&r.ModWins, &r.RefWins, &r.Draws, &r.WinRate); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = fromMillis(createdAt)
		r.Difficulty = engine.Difficulty(difficulty)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GameOutcomes returns the (outcome, plies) rows for one run in game order.
func (s *Store) GameOutcomes(ctx context.Context, runID string) ([]simulation.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT outcome FROM games WHERE run_id = ? ORDER BY game_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var outcomes []simulation.Outcome
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		outcomes = append(outcomes, simulation.Outcome(o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return outcomes, nil
}
