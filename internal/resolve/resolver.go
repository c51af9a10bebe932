package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/store"
)

// Resolver performs point lookups against the group database. Each call
// opens its own store handle and releases it before returning, so
// lookups need no locking and are safely concurrent with enumeration.
type Resolver struct {
	path string
}

// New returns a resolver over the database at path.
func New(path string) *Resolver {
	return &Resolver{path: path}
}

// LookupByName resolves one group by name and packs it into buf.
// The name is NFC-normalized before binding.
func (r *Resolver) LookupByName(ctx context.Context, name string, buf []byte) (group.Group, error) {
	return r.lookup(ctx, store.OpGetGrNam, group.Normalize(name), buf)
}

// LookupByID resolves one group by gid and packs it into buf.
func (r *Resolver) LookupByID(ctx context.Context, gid uint32, buf []byte) (group.Group, error) {
	return r.lookup(ctx, store.OpGetGrGid, int64(gid), buf)
}

// lookup runs a single-row named query, maps the row, and fills the
// caller buffer. Zero rows is ErrNotFound. Handle release is structural:
// the deferred closes fire on every exit path, success and failure
// alike, exactly once each.
func (r *Resolver) lookup(ctx context.Context, op string, key any, buf []byte) (group.Group, error) {
	st, err := store.Open(r.path)
	if err != nil {
		slog.Error("open group store", "op", op, "db", r.path, "error", err)
		return group.Group{}, err
	}
	defer st.Close()

	text, err := st.QueryText(ctx, op)
	if err != nil {
		slog.Error("resolve query text", "op", op, "error", err)
		return group.Group{}, err
	}

	rows, err := st.Query(ctx, text, key)
	if err != nil {
		slog.Error("query group", "op", op, "error", err)
		return group.Group{}, fmt.Errorf("query group (%s): %w", op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			slog.Error("step group query", "op", op, "error", err)
			return group.Group{}, fmt.Errorf("step group (%s): %w", op, err)
		}
		slog.Debug("group not found", "op", op, "key", key)
		return group.Group{}, ErrNotFound
	}

	g, err := scanGroup(rows)
	if err != nil {
		slog.Error("map group row", "op", op, "error", err)
		return group.Group{}, err
	}
	// Release the row cursor before the membership query; Close is
	// idempotent, so the defer above stays harmless.
	rows.Close()

	if err := fillGroup(ctx, st, &g, buf); err != nil {
		return group.Group{}, err
	}
	slog.Debug("resolved group", "op", op, "gid", g.GID, "name", g.Name, "members", len(g.Members))
	return g, nil
}

// MaterializeMembership appends every supplementary gid of user to b,
// excluding the primary gid. Entries before start belong to other
// backends and are never touched.
//
// On ErrCeilingReached the caller raises the ceiling and re-invokes:
// rows already collected in an earlier attempt (b.Len() - start of them)
// are skipped, so nothing is duplicated and no work is redone. On normal
// exhaustion the buffer is shrunk to its logical length.
func (r *Resolver) MaterializeMembership(ctx context.Context, user string, primary uint32, b *GIDBuf, start int) error {
	st, err := store.Open(r.path)
	if err != nil {
		slog.Error("open group store", "op", store.OpInitGroups, "db", r.path, "error", err)
		return err
	}
	defer st.Close()

	text, err := st.QueryText(ctx, store.OpInitGroups)
	if err != nil {
		slog.Error("resolve query text", "op", store.OpInitGroups, "error", err)
		return err
	}

	rows, err := st.Query(ctx, text, group.Normalize(user), int64(primary))
	if err != nil {
		slog.Error("query user gids", "user", user, "error", err)
		return fmt.Errorf("query gids of %q: %w", user, err)
	}
	defer rows.Close()

	skip := b.Len() - start
	if skip < 0 {
		skip = 0
	}

	seen := 0
	for rows.Next() {
		var gid int64
		if err := rows.Scan(&gid); err != nil {
			return fmt.Errorf("scan gid row: %w", err)
		}
		if gid < 0 || gid > int64(^uint32(0)) {
			return fmt.Errorf("gid %d of %q out of range", gid, user)
		}
		seen++
		if seen <= skip {
			continue
		}
		if err := b.Append(uint32(gid)); err != nil {
			slog.Debug("gid ceiling reached", "user", user, "collected", b.Len(), "ceiling", b.Ceiling())
			return err
		}
		slog.Debug("collected gid", "user", user, "gid", gid)
	}
	if err := rows.Err(); err != nil {
		slog.Error("step user gids", "user", user, "error", err)
		return fmt.Errorf("step gids of %q: %w", user, err)
	}

	b.Shrink()
	return nil
}
