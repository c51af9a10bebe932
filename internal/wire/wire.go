package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/seafloor/grouper/internal/group"
)

// PointerWidth is the size in bytes of one pointer-table slot.
const PointerWidth = 8

// ErrShortBuffer reports that the caller-supplied region is too small to
// hold the record. The caller is expected to discard the region contents
// and retry with a larger region.
var ErrShortBuffer = errors.New("wire: buffer too small for record")

// MinSize returns the exact minimum region size for g: one pointer-table
// slot per member plus the terminator, then the NUL-terminated group name
// and each NUL-terminated member name.
func MinSize(g group.Group) int {
	n := (len(g.Members)+1)*PointerWidth + len(g.Name) + 1
	for _, m := range g.Members {
		n += len(m) + 1
	}
	return n
}

// arena is a capacity-checked writer over a borrowed fixed-capacity byte
// slice. next tracks the first free string-table byte.
type arena struct {
	buf  []byte
	next int
}

// appendString copies s and a trailing NUL into the string table and
// returns the offset of its first byte. Capacity is verified before any
// byte is written.
func (a *arena) appendString(s string) (uint64, error) {
	if len(a.buf)-a.next < len(s)+1 {
		return 0, ErrShortBuffer
	}
	off := a.next
	copy(a.buf[off:], s)
	a.buf[off+len(s)] = 0
	a.next += len(s) + 1
	return uint64(off), nil
}

// putSlot writes a pointer-table slot. Slots are always inside the
// pointer table, which Marshal verifies fits before building the arena.
func (a *arena) putSlot(i int, off uint64) {
	binary.LittleEndian.PutUint64(a.buf[i*PointerWidth:], off)
}

// Marshal packs g into buf. It fails with ErrShortBuffer - before writing
// anything - if buf cannot hold the pointer table, and fails mid-way if
// the string table runs out; partial bytes from a failed attempt are the
// caller's to discard. On success the region is fully packed: member
// offsets in input order, strings in the same order, terminator last.
func Marshal(g group.Group, buf []byte) error {
	table := (len(g.Members) + 1) * PointerWidth
	if len(buf) < table {
		return ErrShortBuffer
	}
	a := &arena{buf: buf, next: table}

	if _, err := a.appendString(g.Name); err != nil {
		return err
	}
	for i, m := range g.Members {
		off, err := a.appendString(m)
		if err != nil {
			return err
		}
		a.putSlot(i, off)
	}
	a.putSlot(len(g.Members), 0)
	return nil
}

// Unmarshal reads the name and member list back out of a packed region.
// The gid and password placeholder are not part of the layout, so the
// returned record carries only what the region holds. Used by clients
// that receive a packed region and by tests.
func Unmarshal(buf []byte) (group.Group, error) {
	var g group.Group

	// Walk slots until the terminator to learn the member count.
	n := 0
	for {
		if len(buf) < (n+1)*PointerWidth {
			return group.Group{}, fmt.Errorf("wire: unterminated pointer table")
		}
		if binary.LittleEndian.Uint64(buf[n*PointerWidth:]) == 0 {
			break
		}
		n++
	}
	table := (n + 1) * PointerWidth

	name, err := stringAt(buf, uint64(table))
	if err != nil {
		return group.Group{}, err
	}
	g.Name = name

	for i := 0; i < n; i++ {
		off := binary.LittleEndian.Uint64(buf[i*PointerWidth:])
		if off < uint64(table) {
			return group.Group{}, fmt.Errorf("wire: slot %d points into pointer table", i)
		}
		m, err := stringAt(buf, off)
		if err != nil {
			return group.Group{}, err
		}
		g.Members = append(g.Members, m)
	}
	return g, nil
}

// stringAt extracts the NUL-terminated string starting at off.
func stringAt(buf []byte, off uint64) (string, error) {
	if off >= uint64(len(buf)) {
		return "", fmt.Errorf("wire: offset %d outside region of %d bytes", off, len(buf))
	}
	rest := buf[off:]
	end := 0
	for end < len(rest) && rest[end] != 0 {
		end++
	}
	if end == len(rest) {
		return "", fmt.Errorf("wire: string at offset %d is not NUL-terminated", off)
	}
	return string(rest[:end]), nil
}

// Dump renders a packed region as stable text, one line per slot and per
// string. Used for golden comparisons.
func Dump(buf []byte) (string, error) {
	g, err := Unmarshal(buf)
	if err != nil {
		return "", err
	}
	table := (len(g.Members) + 1) * PointerWidth

	var sb strings.Builder
	fmt.Fprintf(&sb, "region %d bytes, pointer width %d\n", len(buf), PointerWidth)
	for i := range g.Members {
		fmt.Fprintf(&sb, "slot %d: %d\n", i, binary.LittleEndian.Uint64(buf[i*PointerWidth:]))
	}
	fmt.Fprintf(&sb, "slot %d: terminator\n", len(g.Members))
	fmt.Fprintf(&sb, "name@%d: %q\n", table, g.Name)
	for i, m := range g.Members {
		off := binary.LittleEndian.Uint64(buf[i*PointerWidth:])
		fmt.Fprintf(&sb, "member@%d: %q\n", off, m)
	}
	return sb.String(), nil
}
