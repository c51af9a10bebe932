package resolve

// GIDBuf is a growable array of numeric group ids with a logical length,
// a physical capacity, and an optional caller-imposed ceiling.
//
// Invariant: Len() <= Cap() <= Ceiling() when a ceiling is set. Growth
// always preserves previously appended ids at their original indices.
type GIDBuf struct {
	ids     []uint32
	ceiling int // 0 = unbounded
}

// NewGIDBuf returns a buffer with the given initial capacity and
// ceiling. A ceiling of 0 means unbounded; an initial capacity above a
// set ceiling is clamped to it.
func NewGIDBuf(initial, ceiling int) *GIDBuf {
	if initial < 1 {
		initial = 1
	}
	if ceiling > 0 && initial > ceiling {
		initial = ceiling
	}
	return &GIDBuf{ids: make([]uint32, 0, initial), ceiling: ceiling}
}

// SetCeiling raises (or clears, with 0) the ceiling for a retry after
// ErrCeilingReached. Existing contents are untouched.
func (b *GIDBuf) SetCeiling(ceiling int) {
	b.ceiling = ceiling
}

// Append stores one gid, growing capacity geometrically when exhausted:
// doubled, bounded by the ceiling when one is set. When the capacity
// already sits at the ceiling, Append fails with ErrCeilingReached
// before storing anything.
func (b *GIDBuf) Append(gid uint32) error {
	if len(b.ids) == cap(b.ids) {
		newCap := cap(b.ids) * 2
		if newCap == 0 {
			newCap = 1
		}
		if b.ceiling > 0 {
			if cap(b.ids) >= b.ceiling {
				return ErrCeilingReached
			}
			if newCap > b.ceiling {
				newCap = b.ceiling
			}
		}
		grown := make([]uint32, len(b.ids), newCap)
		copy(grown, b.ids)
		b.ids = grown
	}
	b.ids = append(b.ids, gid)
	return nil
}

// Shrink trims physical capacity down to the logical length, so the
// caller gets back exactly what was collected with no excess trailing
// capacity.
func (b *GIDBuf) Shrink() {
	if len(b.ids) == cap(b.ids) {
		return
	}
	exact := make([]uint32, len(b.ids))
	copy(exact, b.ids)
	b.ids = exact
}

// IDs returns the collected ids. The slice aliases the buffer's storage;
// it stays valid until the next Append.
func (b *GIDBuf) IDs() []uint32 { return b.ids }

// Len returns the logical length.
func (b *GIDBuf) Len() int { return len(b.ids) }

// Cap returns the physical capacity.
func (b *GIDBuf) Cap() int { return cap(b.ids) }

// Ceiling returns the caller-imposed ceiling, 0 when unbounded.
func (b *GIDBuf) Ceiling() int { return b.ceiling }
