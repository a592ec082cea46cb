// Package telemetry records query activity in a local SQLite database.
// Purely observational: the indexing and scoring core never reads it.
package telemetry

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed query log.
type Store struct {
	db *sql.DB
}

// QueryRecord is one logged query.
type QueryRecord struct {
	Query      string
	TermCount  int
	Results    int
	DurationMS int64
	At         time.Time
}

// TermCount is one entry of the top-terms aggregation.
type TermCount struct {
	Term  string
	Count int64
}

// Open opens (or creates) the telemetry database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open telemetry db: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		term_count INTEGER NOT NULL,
		result_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_queries_at ON queries(at DESC);
	CREATE TABLE IF NOT EXISTS query_terms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query_id INTEGER NOT NULL REFERENCES queries(id),
		term TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_query_terms_term ON query_terms(term);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create telemetry schema: %w", err)
	}
	return nil
}

// RecordQuery appends one query to the log, along with its individual terms
// for the top-terms aggregation.
func (s *Store) RecordQuery(query string, termCount, results int, elapsed time.Duration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO queries (query, term_count, result_count, duration_ms)
		VALUES (?, ?, ?, ?)`,
		query, termCount, results, elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record query: %w", err)
	}

	for _, term := range strings.Fields(query) {
		if _, err := tx.Exec(`INSERT INTO query_terms (query_id, term) VALUES (?, ?)`,
			id, strings.ToLower(term)); err != nil {
			return fmt.Errorf("record query term: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	return nil
}

// TopTerms returns the most frequently queried terms, most frequent first,
// ties broken alphabetically.
func (s *Store) TopTerms(limit int) ([]TermCount, error) {
	rows, err := s.db.Query(`
		SELECT term, COUNT(*) AS n FROM query_terms
		GROUP BY term ORDER BY n DESC, term ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top terms: %w", err)
	}
	defer rows.Close()

	var terms []TermCount
	for rows.Next() {
		var tc TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan term row: %w", err)
		}
		terms = append(terms, tc)
	}
	return terms, rows.Err()
}

// Recent returns the most recent queries, newest first.
func (s *Store) Recent(limit int) ([]QueryRecord, error) {
	rows, err := s.db.Query(`
		SELECT query, term_count, result_count, duration_ms, at
		FROM queries ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent queries: %w", err)
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var r QueryRecord
		if err := rows.Scan(&r.Query, &r.TermCount, &r.Results, &r.DurationMS, &r.At); err != nil {
			return nil, fmt.Errorf("scan query row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Totals returns the total query count and how many returned no results.
func (s *Store) Totals() (total, zeroResult int64, err error) {
	err = s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(result_count = 0), 0) FROM queries`).
		Scan(&total, &zeroResult)
	if err != nil {
		return 0, 0, fmt.Errorf("query totals: %w", err)
	}
	return total, zeroResult, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
