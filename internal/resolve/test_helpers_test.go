package resolve

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testSchema mirrors the data-table layout the default queries assume.
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

// seedStmts populates the standard fixture:
//
//	audio (29): no members
//	staff (100): alice, bob
//	wheel (101): alice
var seedStmts = []string{
	`INSERT INTO groups (gid, name, passwd) VALUES
		(29, 'audio', 'x'), (100, 'staff', 'x'), (101, 'wheel', 'x')`,
	`INSERT INTO users (uid, name) VALUES (1, 'alice'), (2, 'bob'), (3, 'carol')`,
	`INSERT INTO user_group (uid, gid) VALUES (1, 100), (1, 101), (2, 100)`,
}

// createFixture builds a seeded database file and returns its path.
func createFixture(t *testing.T, extra ...string) string {
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
	for _, stmt := range append(append([]string{}, seedStmts...), extra...) {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}
