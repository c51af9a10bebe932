package resolve

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/store"
	"github.com/seafloor/grouper/internal/wire"
)

// Enumerator iterates the full group set in query order. One instance is
// shared process-wide; all operations serialize on its lock, so
// concurrent Next callers each receive a distinct row, in order.
//
// The zero-value states map onto the fields: st == nil means Closed,
// pending != nil means a marshal retry is owed for the cached record.
type Enumerator struct {
	mu   sync.Mutex
	path string

	st      *store.Store
	rows    *sql.Rows
	pending *group.Group
}

// NewEnumerator returns a closed enumerator over the database at path.
func NewEnumerator(path string) *Enumerator {
	return &Enumerator{path: path}
}

// Open readies the enumerator: store opened, full-scan query running.
// Idempotent while already open.
func (e *Enumerator) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.openLocked(ctx)
}

// Next returns the next group and packs it into buf.
//
// A wire.ErrShortBuffer return means buf was too small: the record is
// cached, the row cursor is not advanced, and the caller retries with a
// larger buffer. ErrNotFound means the set is exhausted; the store is
// released and a later call starts a fresh enumeration. Any other error
// is a store failure, after which the enumerator is Closed.
//
// A Next on a closed enumerator opens it implicitly, mirroring a
// getgrent call without a prior setgrent.
func (e *Enumerator) Next(ctx context.Context, buf []byte) (group.Group, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st == nil {
		if err := e.openLocked(ctx); err != nil {
			return group.Group{}, err
		}
	}

	if e.pending != nil {
		if err := wire.Marshal(*e.pending, buf); err != nil {
			// Still short: row cursor stays put, record stays cached.
			return group.Group{}, err
		}
		g := *e.pending
		e.pending = nil
		return g, nil
	}

	if !e.rows.Next() {
		err := e.rows.Err()
		e.closeLocked()
		if err != nil {
			slog.Error("step group enumeration", "error", err)
			return group.Group{}, fmt.Errorf("step enumeration: %w", err)
		}
		return group.Group{}, ErrNotFound
	}

	g, err := scanGroup(e.rows)
	if err != nil {
		e.closeLocked()
		slog.Error("map enumerated group", "error", err)
		return group.Group{}, err
	}

	members, err := gatherMembers(ctx, e.st, g.GID)
	if err != nil {
		e.closeLocked()
		return group.Group{}, err
	}
	g.Members = members
	slog.Debug("enumerated group", "gid", g.GID, "name", g.Name, "members", len(g.Members))

	if err := wire.Marshal(g, buf); err != nil {
		e.pending = &g
		return group.Group{}, err
	}
	return g, nil
}

// Close releases the store and statement if open. Idempotent, callable
// from any state.
func (e *Enumerator) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
	return nil
}

func (e *Enumerator) openLocked(ctx context.Context) error {
	if e.st != nil {
		return nil
	}

	st, err := store.Open(e.path)
	if err != nil {
		slog.Error("open group store for enumeration", "db", e.path, "error", err)
		return err
	}
	text, err := st.QueryText(ctx, store.OpSetGrent)
	if err != nil {
		st.Close()
		slog.Error("resolve enumeration query text", "error", err)
		return err
	}
	rows, err := st.Query(ctx, text)
	if err != nil {
		st.Close()
		slog.Error("start group enumeration", "error", err)
		return fmt.Errorf("start enumeration: %w", err)
	}

	e.st = st
	e.rows = rows
	e.pending = nil
	slog.Debug("group enumeration opened", "db", e.path)
	return nil
}

func (e *Enumerator) closeLocked() {
	if e.rows != nil {
		e.rows.Close()
		e.rows = nil
	}
	if e.st != nil {
		e.st.Close()
		e.st = nil
	}
	e.pending = nil
}
