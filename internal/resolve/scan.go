package resolve

import (
	"database/sql"
	"fmt"

	"github.com/seafloor/grouper/internal/group"
)

// scanGroup maps one positioned result row onto a canonical group record.
// Column order is fixed by the named queries: gid, name, passwd.
// The member list is populated separately where a caller needs it.
func scanGroup(rows *sql.Rows) (group.Group, error) {
	var gid int64
	var name, passwd string
	if err := rows.Scan(&gid, &name, &passwd); err != nil {
		return group.Group{}, fmt.Errorf("scan group row: %w", err)
	}
	if gid < 0 || gid > int64(^uint32(0)) {
		return group.Group{}, fmt.Errorf("scan group row: gid %d out of range", gid)
	}
	return group.Group{GID: uint32(gid), Name: name, Passwd: passwd}, nil
}
