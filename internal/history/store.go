// Package history provides SQLite persistence for recent search
// queries. Only the query text is kept; results are never cached across
// sessions.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Entry is one remembered query.
type Entry struct {
	Query       string
	ResultCount int
	SearchedAt  time.Time
}

// Open creates a Store at the given database path, creating the schema
// if needed. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS queries (
		query TEXT PRIMARY KEY,
		result_count INTEGER NOT NULL DEFAULT 0,
		searched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_queries_searched ON queries(searched_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Record remembers a query. Resubmitting a known query bumps its
// timestamp instead of inserting a duplicate row. Blank queries are
// not recorded; they are valid requests upstream but useless as
// suggestions.
func (s *Store) Record(query string, resultCount int) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO queries (query, result_count, searched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			result_count = excluded.result_count,
			searched_at = excluded.searched_at
	`, query, resultCount, time.Now())
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT query, result_count, searched_at
		FROM queries
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Query, &e.ResultCount, &e.SearchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Clear deletes all remembered queries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM queries`)
	return err
}

// RecentQueries returns just the query strings of Recent.
func (s *Store) RecentQueries(limit int) ([]string, error) {
	entries, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}
	queries := make([]string, 0, len(entries))
	for _, e := range entries {
		queries = append(queries, e.Query)
	}
	return queries, nil
}
