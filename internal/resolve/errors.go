package resolve

import "errors"

// ErrNotFound reports that no row matched: an unknown name or gid on a
// lookup, or the end of the set during enumeration. A normal negative
// result, not a failure.
var ErrNotFound = errors.New("resolve: no matching group")

// ErrCeilingReached reports that a GIDBuf hit its caller-imposed ceiling
// with more rows remaining. Retryable: the caller re-invokes with a
// larger ceiling and every id collected so far is preserved.
var ErrCeilingReached = errors.New("resolve: gid array ceiling reached")
