// Package wire packs group records into fixed-size caller-supplied byte
// regions, following the pointer-table/string-table layout of the host's
// identity-resolution calling convention.
//
// # Region Layout
//
// A region of L bytes holding a record with N members is split into a
// pointer-table prefix and a string-table suffix:
//
//	__________________________________________________________
//	| off1 | off2 | ... | offN | 0 | name\0 | m1\0 | ... | mN\0
//	----------------------------------------------------------
//	^ pointer table, (N+1) slots        ^ string table
//
// Each slot is a PointerWidth-byte little-endian offset measured from the
// start of the region. Slot i (i < N) points at member i's NUL-terminated
// name inside the string table of the same region. The final slot is
// always the zero terminator; zero can never be a valid offset because
// the string table starts after a non-empty pointer table.
//
// The group name is the first string in the string table, so it always
// starts at offset (N+1)*PointerWidth. The numeric gid and the password
// placeholder travel in the group.Group record, never in the region.
//
// # Capacity Discipline
//
// Capacity is checked before every copy, never discovered by overflow:
// no write ever exceeds the region's declared length. A failed Marshal
// may leave partial bytes behind - callers discard the region contents on
// ErrShortBuffer and retry with a larger region, so no undo mechanism is
// needed. The terminator slot is written last, only on success.
package wire
