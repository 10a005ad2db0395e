// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package history records analysis results in a local SQLite database so
// earlier verdicts on a document can be listed and compared later.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"burocrata-scan/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at     TEXT NOT NULL,
	source         TEXT NOT NULL,
	document_class TEXT NOT NULL,
	score          INTEGER NOT NULL,
	risk_tier      TEXT NOT NULL,
	critical       INTEGER NOT NULL,
	high           INTEGER NOT NULL,
	medium         INTEGER NOT NULL,
	low            INTEGER NOT NULL,
	info           INTEGER NOT NULL,
	suppressed     INTEGER NOT NULL DEFAULT 0,
	findings       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);
`

// Entry is one stored analysis.
type Entry struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Source        string    `json:"source"`
	DocumentClass string    `json:"document_class"`
	Score         int       `json:"score"`
	RiskTier      string    `json:"risk_tier"`
	Critical      int       `json:"critical"`
	High          int       `json:"high"`
	Medium        int       `json:"medium"`
	Low           int       `json:"low"`
	Info          int       `json:"info"`
	Suppressed    int       `json:"suppressed"`
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAnalysis records one report and returns the new row id. The full
// findings slice is stored as JSON alongside the scorecard columns.
func (s *Store) SaveAnalysis(source string, report *engine.Report, suppressedCount int) (int64, error) {
	findings, err := json.Marshal(report.Findings)
	if err != nil {
		return 0, fmt.Errorf("failed to encode findings: %w", err)
	}

	sc := report.Scorecard
	res, err := s.db.Exec(`
		INSERT INTO analyses
			(created_at, source, document_class, score, risk_tier,
			 critical, high, medium, low, info, suppressed, findings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		source,
		string(report.DocumentClass),
		sc.Score,
		string(sc.RiskTier),
		sc.Critical, sc.High, sc.Medium, sc.Low, sc.Info,
		suppressedCount,
		string(findings),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return res.LastInsertId()
}

// ListRecent returns the most recent analyses, newest first.
func (s *Store) ListRecent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, source, document_class, score, risk_tier,
		       critical, high, medium, low, info, suppressed
		FROM analyses
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListBySource returns the analyses of one source file, newest first.
func (s *Store) ListBySource(source string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, source, document_class, score, risk_tier,
		       critical, high, medium, low, info, suppressed
		FROM analyses
		WHERE source = ?
		ORDER BY id DESC
		LIMIT ?`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Findings loads the stored findings of one analysis.
func (s *Store) Findings(id int64) ([]engine.Finding, error) {
	var raw string
	err := s.db.QueryRow(`SELECT findings FROM analyses WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load findings: %w", err)
	}

	var findings []engine.Finding
	if err := json.Unmarshal([]byte(raw), &findings); err != nil {
		return nil, fmt.Errorf("stored findings for analysis %d are corrupt: %w", id, err)
	}
	return findings, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		err := rows.Scan(&e.ID, &createdAt, &e.Source, &e.DocumentClass, &e.Score, &e.RiskTier,
			&e.Critical, &e.High, &e.Medium, &e.Low, &e.Info, &e.Suppressed)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
