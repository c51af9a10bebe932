package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Operation names for named-query resolution. The names are part of the
// host calling convention and match the keys the original databases use
// in their queries table.
const (
	OpSetGrent   = "setgrent"       // full scan over all groups
	OpGetGrNam   = "getgrnam_r"     // one group by name
	OpGetGrGid   = "getgrgid_r"     // one group by gid
	OpInitGroups = "initgroups_dyn" // gids for a user, excluding the primary
	OpGetUsers   = "get_users"      // member names for a gid
)

// ErrNoQuery reports that no query text exists for an operation name,
// neither as an override row nor as a built-in default.
var ErrNoQuery = errors.New("store: no query for operation")

// defaultQueries covers databases that carry only the data tables
// (groups, users, user_group). A queries table row with the same name
// takes precedence.
var defaultQueries = map[string]string{
	OpSetGrent: `SELECT gid, name, passwd FROM groups ORDER BY gid`,
	OpGetGrNam: `SELECT gid, name, passwd FROM groups WHERE name = ?`,
	OpGetGrGid: `SELECT gid, name, passwd FROM groups WHERE gid = ?`,
	OpInitGroups: `SELECT ug.gid FROM user_group ug
		JOIN users u ON u.uid = ug.uid
		WHERE u.name = ? AND ug.gid != ? ORDER BY ug.gid`,
	OpGetUsers: `SELECT u.name FROM users u
		JOIN user_group ug ON ug.uid = u.uid
		WHERE ug.gid = ? ORDER BY u.name`,
}

// QueryText resolves the SQL for a named operation: first from the
// database's own queries table when present, then from the built-in
// defaults. Unknown names fail with ErrNoQuery.
func (s *Store) QueryText(ctx context.Context, op string) (string, error) {
	hasTable, err := s.hasQueryTable(ctx)
	if err != nil {
		return "", err
	}

	if hasTable {
		var text string
		err := s.db.QueryRowContext(ctx,
			`SELECT sql FROM queries WHERE name = ?`, op,
		).Scan(&text)
		switch {
		case err == nil:
			return text, nil
		case errors.Is(err, sql.ErrNoRows):
			// fall through to defaults
		default:
			return "", fmt.Errorf("read query override %q: %w", op, err)
		}
	}

	if text, ok := defaultQueries[op]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoQuery, op)
}

// hasQueryTable reports whether the database ships a queries table.
func (s *Store) hasQueryTable(ctx context.Context) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'queries'`,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("probe queries table: %w", err)
	}
	return count > 0, nil
}
