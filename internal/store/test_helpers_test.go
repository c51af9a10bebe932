package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// testSchema is the data-table layout the default queries assume.
const testSchema = `
CREATE TABLE groups (
	gid    INTEGER PRIMARY KEY,
	name   TEXT NOT NULL UNIQUE,
	passwd TEXT NOT NULL DEFAULT 'x'
);
CREATE TABLE users (
	uid  INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE user_group (
	uid INTEGER NOT NULL REFERENCES users(uid),
	gid INTEGER NOT NULL REFERENCES groups(gid),
	PRIMARY KEY (uid, gid)
);
`

// createFixture builds a database file with the test schema and any
// extra statements, then returns its path. The fixture is written with a
// plain read-write connection; Store.Open itself is read-only.
func createFixture(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groups.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

// openFixture creates a fixture and opens a read-only store over it.
func openFixture(t *testing.T, stmts ...string) *Store {
	t.Helper()
	s, err := Open(createFixture(t, stmts...))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
