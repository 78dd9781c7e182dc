// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists classification runs in a SQLite database so
// department statistics can be compared across runs without re-reading
// the source tables. The engine core never depends on this package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

const defaultDBFile = "affiliation-runs.db"

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the run-history database at cfg.DBPath
// (default "affiliation-runs.db"), creating the schema if needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = defaultDBFile
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			affiliation_column TEXT NOT NULL,
			created_at TEXT NOT NULL,
			records INTEGER NOT NULL,
			other_records INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			row INTEGER NOT NULL,
			affiliations TEXT,
			cited_by REAL NOT NULL,
			department_label TEXT NOT NULL,
			corresponding_author TEXT NOT NULL,
			corresponding_affiliation TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
		`CREATE TABLE IF NOT EXISTS department_stats (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			department TEXT NOT NULL,
			papers INTEGER NOT NULL,
			citations REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_run_id ON department_stats(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunMeta describes one saved run.
type RunMeta struct {
	ID                int64     `json:"id"`
	InputPath         string    `json:"input_path"`
	AffiliationColumn string    `json:"affiliation_column"`
	CreatedAt         time.Time `json:"created_at"`
	Records           int       `json:"records"`
	OtherRecords      int       `json:"other_records"`
}

// SaveRun stores one classified run: its metadata, every record with
// its derived fields, and the aggregated statistics table, all in one
// transaction. Returns the new run ID.
func (s *Store) SaveRun(ctx context.Context, meta RunMeta, records []types.Record, classifications []types.Classification, stats []types.DepartmentStat) (int64, error) {
	if len(records) != len(classifications) {
		return 0, fmt.Errorf("store: %d classifications for %d records", len(classifications), len(records))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	other := 0
	for _, cls := range classifications {
		if cls.Label == types.OtherLabel {
			other++
		}
	}

	createdAt := meta.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input_path, affiliation_column, created_at, records, other_records)
		 VALUES (?, ?, ?, ?, ?)`,
		meta.InputPath, meta.AffiliationColumn, createdAt.Format(time.RFC3339), len(records), other,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	recStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, row, affiliations, cited_by, department_label,
		                      corresponding_author, corresponding_affiliation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing record insert: %w", err)
	}
	defer recStmt.Close()

	for i, rec := range records {
		cls := classifications[i]
		if _, err := recStmt.ExecContext(ctx,
			runID, rec.Row, rec.Affiliations, rec.CitedBy, cls.Label,
			cls.Corresponding.Name, cls.Corresponding.Affiliation,
		); err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", rec.Row, err)
		}
	}

	statStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO department_stats (run_id, position, department, papers, citations)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing stats insert: %w", err)
	}
	defer statStmt.Close()

	for i, stat := range stats {
		if _, err := statStmt.ExecContext(ctx,
			runID, i, stat.Department, stat.Papers, stat.Citations,
		); err != nil {
			return 0, fmt.Errorf("inserting stats for %s: %w", stat.Department, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns saved runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, affiliation_column, created_at, records, other_records
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var m RunMeta
		var created string
		if err := rows.Scan(&m.ID, &m.InputPath, &m.AffiliationColumn, &created, &m.Records, &m.OtherRecords); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			m.CreatedAt = t
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

// RunStats reloads the statistics table of a saved run in its original
// row order.
func (s *Store) RunStats(ctx context.Context, runID int64) ([]types.DepartmentStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT department, papers, citations FROM department_stats
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	var stats []types.DepartmentStat
	for rows.Next() {
		var stat types.DepartmentStat
		if err := rows.Scan(&stat.Department, &stat.Papers, &stat.Citations); err != nil {
			return nil, fmt.Errorf("scanning stat: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	return stats, nil
}
