package report

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fieldvision/trackbench/internal/track"
)

// Store archives run summaries in a SQLite database. It records only
// the outcome of finished runs; live session state is never persisted.
type Store struct {
	*sql.DB
}

// OpenStore opens (or creates) the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			video TEXT,
			total_frames INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS results (
			run_id TEXT,
			method TEXT,
			survived_frames INTEGER,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// RecordRun inserts one finished run and its per-method results,
// returning the generated run ID.
func (s *Store) RecordRun(video string, sum track.Summary) (string, error) {
	runID := uuid.NewString()

	tx, err := s.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, video, total_frames) VALUES (?, ?, ?)",
		runID, video, sum.TotalFrames,
	); err != nil {
		return "", fmt.Errorf("could not record run: %w", err)
	}
	for _, r := range sum.Results {
		if _, err := tx.Exec(
			"INSERT INTO results (run_id, method, survived_frames) VALUES (?, ?, ?)",
			runID, r.Name, r.Survived,
		); err != nil {
			return "", fmt.Errorf("could not record result for %q: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// RunResults reads back the per-method survival counts for a run, in
// insertion order.
func (s *Store) RunResults(runID string) ([]track.Result, error) {
	rows, err := s.Query(
		"SELECT method, survived_frames FROM results WHERE run_id = ? ORDER BY rowid",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []track.Result
	for rows.Next() {
		var r track.Result
		if err := rows.Scan(&r.Name, &r.Survived); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
