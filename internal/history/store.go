// internal/history/store.go
//
// SQLite-backed history for batch solve-all runs. One row per run with the
// aggregate numbers, one row per solved word, so "which words are hardest"
// can be answered later without re-running anything.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run summarizes one completed solve-all batch.
type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	Starting   string    `json:"startingWord"`
	Words      int       `json:"words"`
	Solved     int       `json:"solved"`
	Failed     int       `json:"failed"`
	MaxGuesses int       `json:"maxGuesses"`
}

// WordRow is one secret's outcome inside a run.
type WordRow struct {
	RunID   string `json:"runId"`
	Word    string `json:"word"`
	Guesses int    `json:"guesses"`
	Solved  bool   `json:"solved"`
}

// Store persists batch runs in SQLite.
type Store struct{ db *sql.DB }

// NewStore wraps an opened database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// migrations are applied in order and recorded in _migrations, so re-running
// Migrate on an up-to-date database is a no-op.
var migrations = []struct {
	name string
	stmt string
}{
	{"001_batch_runs", `
		CREATE TABLE batch_runs (
			id            TEXT PRIMARY KEY,
			started_at    TEXT NOT NULL,
			starting_word TEXT NOT NULL,
			words         INTEGER NOT NULL,
			solved        INTEGER NOT NULL,
			failed        INTEGER NOT NULL,
			max_guesses   INTEGER NOT NULL
		)`},
	{"002_batch_words", `
		CREATE TABLE batch_words (
			run_id  TEXT NOT NULL REFERENCES batch_runs(id),
			word    TEXT NOT NULL,
			guesses INTEGER NOT NULL,
			solved  INTEGER NOT NULL,
			PRIMARY KEY (run_id, word)
		)`},
}

// Migrate applies any pending schema migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		err := s.db.QueryRowContext(ctx,
			`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
	}
	return nil
}

// InsertRun stores a run summary and its per-word outcomes in one
// transaction.
func (s *Store) InsertRun(ctx context.Context, r Run, outcomes []WordRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO batch_runs (id, started_at, starting_word, words, solved, failed, max_guesses)
		VALUES (?,?,?,?,?,?,?)`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339), r.Starting,
		r.Words, r.Solved, r.Failed, r.MaxGuesses,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, o := range outcomes {
		solved := 0
		if o.Solved {
			solved = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO batch_words (run_id, word, guesses, solved)
			VALUES (?,?,?,?)`,
			r.ID, o.Word, o.Guesses, solved,
		); err != nil {
			return fmt.Errorf("insert word %s: %w", o.Word, err)
		}
	}
	return tx.Commit()
}

// HardestWords returns the solved words that needed the most guesses across
// all recorded runs.
func (s *Store) HardestWords(ctx context.Context, limit int) ([]WordRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, word, guesses
		FROM batch_words
		WHERE solved=1
		ORDER BY guesses DESC, word ASC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WordRow, 0, limit)
	for rows.Next() {
		r := WordRow{Solved: true}
		if err := rows.Scan(&r.RunID, &r.Word, &r.Guesses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecentRuns returns the most recent run summaries, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, starting_word, words, solved, failed, max_guesses
		FROM batch_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Starting, &r.Words, &r.Solved, &r.Failed, &r.MaxGuesses); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		out = append(out, r)
	}
	return out, rows.Err()
}
