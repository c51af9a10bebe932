package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// dsn builds the connection string for a group database.
//
// Pragmas ride the DSN rather than a post-open Exec so that every pooled
// connection gets them, not just the one that happened to run the Exec:
//   - mode=ro: never create a missing file, reject writes at open time
//   - _query_only: the resolver never writes; enforce it
//   - _busy_timeout: wait for locks up to 5 seconds
func dsn(path string) string {
	return "file:" + path + "?mode=ro&_query_only=true&_busy_timeout=5000"
}

// Store provides read-only access to a group database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at the given path in read-only mode.
// The database file must already exist; the resolver never creates or
// migrates anything.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Enumeration keeps its full-scan rows open while membership queries
	// run, so the pool must be able to hand out a second connection.
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)

	return &Store{db: db}, nil
}

// Close closes the database connection. Idempotent on a nil store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Query executes a query and returns the resulting rows.
// Callers are responsible for closing the returned rows.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, query, args...)
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
