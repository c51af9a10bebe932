package cli

import (
	"fmt"
	"strings"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/nss"
)

// GroupEntry is the CLI-facing shape of one resolved group.
type GroupEntry struct {
	Name    string   `json:"name"`
	Passwd  string   `json:"passwd"`
	GID     uint32   `json:"gid"`
	Members []string `json:"members"`
}

func newGroupEntry(g group.Group) GroupEntry {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return GroupEntry{Name: g.Name, Passwd: g.Passwd, GID: g.GID, Members: members}
}

// String renders the entry in getent(1) group format.
func (e GroupEntry) String() string {
	return fmt.Sprintf("%s:%s:%d:%s", e.Name, e.Passwd, e.GID, strings.Join(e.Members, ","))
}

// withGrowingBuffer drives the host retry protocol: run fn with a fresh
// buffer, doubling its size on every TRYAGAIN/OUT_OF_RANGE until fn
// settles or the configured cap is exceeded. Any other status is
// returned as-is.
func withGrowingBuffer(initial, max int, fn func(buf []byte) nss.Status) (nss.Status, error) {
	for size := initial; size <= max; size *= 2 {
		st := fn(make([]byte, size))
		if st != nss.StatusOutOfRange {
			return st, nil
		}
	}
	return nss.StatusOutOfRange, fmt.Errorf("record exceeds max buffer size %d", max)
}

// statusExitError maps a terminal status onto a CLI error.
func statusExitError(st nss.Status, what string) *ExitError {
	switch st.Code {
	case nss.NotFound:
		return NewExitError(ExitFailure, what+" not found")
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: resolution failed (%s)", what, st))
	}
}
