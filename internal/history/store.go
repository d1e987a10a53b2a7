package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"ostforge/internal/config"
)

// TrackStatus classifies one track's outcome within a run.
type TrackStatus string

const (
	StatusEncoded TrackStatus = "encoded"
	StatusSkipped TrackStatus = "skipped"
	StatusFailed  TrackStatus = "failed"
)

// Run is one recorded pipeline run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Resolved   int
	Missing    int
	Unmatched  int
	Failures   int
}

// TrackOutcome is one track's recorded result within a run.
type TrackOutcome struct {
	RunID      string
	Number     int
	Title      string
	Status     TrackStatus
	Detail     string
	OutputPath string
	FinishedAt time.Time
}

// Store persists run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun records the start of a run.
func (s *Store) BeginRun(ctx context.Context, id string, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at) VALUES (?, ?)",
		id, startedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// RecordTrack stores one track's outcome. Replays within the same run
// overwrite the earlier record for that track.
func (s *Store) RecordTrack(ctx context.Context, outcome TrackOutcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO track_outcomes (run_id, track_number, title, status, detail, output_path, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (run_id, track_number) DO UPDATE SET
		   status = excluded.status,
		   detail = excluded.detail,
		   output_path = excluded.output_path,
		   finished_at = excluded.finished_at`,
		outcome.RunID, outcome.Number, outcome.Title, string(outcome.Status),
		outcome.Detail, outcome.OutputPath, outcome.FinishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record track %d: %w", outcome.Number, err)
	}
	return nil
}

// FinishRun closes out a run with its summary counts.
func (s *Store) FinishRun(ctx context.Context, run Run) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, resolved = ?, missing = ?, unmatched = ?, failures = ?
		 WHERE id = ?`,
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.Resolved, run.Missing, run.Unmatched, run.Failures, run.ID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: unknown run %q", run.ID)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, resolved, missing, unmatched, failures
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		var finished sql.NullString
		if err := rows.Scan(&run.ID, &started, &finished, &run.Resolved, &run.Missing, &run.Unmatched, &run.Failures); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTime(started)
		if finished.Valid {
			run.FinishedAt = parseTime(finished.String)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunTracks returns all track outcomes for a run in ascending track order.
func (s *Store) RunTracks(ctx context.Context, runID string) ([]TrackOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, track_number, title, status, detail, output_path, finished_at
		 FROM track_outcomes WHERE run_id = ? ORDER BY track_number`, runID)
	if err != nil {
		return nil, fmt.Errorf("list track outcomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var outcomes []TrackOutcome
	for rows.Next() {
		var outcome TrackOutcome
		var status, finished string
		if err := rows.Scan(&outcome.RunID, &outcome.Number, &outcome.Title, &status, &outcome.Detail, &outcome.OutputPath, &finished); err != nil {
			return nil, fmt.Errorf("scan track outcome: %w", err)
		}
		outcome.Status = TrackStatus(status)
		outcome.FinishedAt = parseTime(finished)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rows.Err()
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
