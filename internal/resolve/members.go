package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/store"
	"github.com/seafloor/grouper/internal/wire"
)

// memberGatherCap is the initial capacity of the gather collection.
// append doubles it on exhaustion; there is no upper bound other than
// memory.
const memberGatherCap = 20

// gatherMembers collects every member name of a group into an owned
// slice, in query order. Zero rows yields an empty list, not an error.
//
// This is the gather phase: the member count must be known before the
// pointer table can be sized, and SQLite won't tell us the row count up
// front.
func gatherMembers(ctx context.Context, st *store.Store, gid uint32) ([]string, error) {
	text, err := st.QueryText(ctx, store.OpGetUsers)
	if err != nil {
		slog.Error("resolve membership query text", "gid", gid, "error", err)
		return nil, err
	}

	rows, err := st.Query(ctx, text, int64(gid))
	if err != nil {
		slog.Error("query group members", "gid", gid, "error", err)
		return nil, fmt.Errorf("query members of gid %d: %w", gid, err)
	}
	defer rows.Close()

	names := make([]string, 0, memberGatherCap)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		slog.Error("step group members", "gid", gid, "error", err)
		return nil, fmt.Errorf("step members of gid %d: %w", gid, err)
	}
	return names, nil
}

// fillGroup attaches the member list to g and packs the record into buf:
// gather then pack, so a capacity shortfall is detected by arithmetic
// before any truncation could happen. The gathered list stays attached
// to g even when packing fails, which is what lets the enumerator retry
// the same record without re-querying.
func fillGroup(ctx context.Context, st *store.Store, g *group.Group, buf []byte) error {
	members, err := gatherMembers(ctx, st, g.GID)
	if err != nil {
		return err
	}
	g.Members = members
	return wire.Marshal(*g, buf)
}
