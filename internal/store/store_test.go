package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.db")

	_, err := Open(path)
	require.Error(t, err, "read-only open must not create a database")
}

func TestOpen_ReadOnly(t *testing.T) {
	s := openFixture(t)

	require.NoError(t, s.verifyPragma("query_only", "1"))

	_, err := s.db.Exec(`INSERT INTO groups (gid, name) VALUES (1, 'nope')`)
	require.Error(t, err, "store connections must reject writes")
}

func TestOpen_Idempotent(t *testing.T) {
	path := createFixture(t)

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		s.Close()
	}
}

func TestClose_NilStore(t *testing.T) {
	var s Store
	require.NoError(t, s.Close())
}

func TestQuery_StepsRows(t *testing.T) {
	s := openFixture(t,
		`INSERT INTO groups (gid, name, passwd) VALUES (100, 'staff', 'x')`,
		`INSERT INTO groups (gid, name, passwd) VALUES (101, 'wheel', 'x')`,
	)

	rows, err := s.Query(context.Background(), `SELECT gid, name FROM groups ORDER BY gid`)
	require.NoError(t, err)
	defer rows.Close()

	var gids []int64
	for rows.Next() {
		var gid int64
		var name string
		require.NoError(t, rows.Scan(&gid, &name))
		gids = append(gids, gid)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int64{100, 101}, gids)
}
