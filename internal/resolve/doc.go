// Package resolve implements group resolution over a read-only store:
// point lookups, serialized enumeration, and membership materialization.
//
// ARCHITECTURE:
//
// Point lookups (LookupByName, LookupByID, MaterializeMembership) are
// self-contained: each opens a private store handle, runs to completion,
// and releases the handle on every exit path via defers. They are safely
// concurrent with each other and with enumeration.
//
// Enumeration is deliberately shared state: one Enumerator instance per
// process, guarded by a single lock. Callers observe one global
// enumeration position, exactly as an NSS host expects from the
// setgrent/getgrent/endgrent contract.
//
// Enumerator state machine:
//
//	Closed --Open/Next--> Ready --row marshaled--> Ready
//	                       |  \
//	     end of set        |   short buffer
//	  (store released)     |        v
//	       Closed <--------+   PendingRetry --bigger buffer--> Ready
//
// While PendingRetry, the fetched record is cached and the underlying
// row cursor is NOT advanced; repeated Next calls with growing buffers
// re-attempt the same record, so no row is ever skipped or delivered
// twice. A store failure at any point releases everything and returns
// the enumerator to Closed; the next call rebuilds it from scratch.
//
// ERROR TAXONOMY:
//
//   - ErrNotFound: no matching row, or end of enumeration. Not a failure.
//   - wire.ErrShortBuffer: caller buffer too small. Retry, larger buffer.
//   - ErrCeilingReached: gid array hit its caller-imposed ceiling.
//     Retry with a larger ceiling; collected ids are preserved.
//   - anything else: store failure. Logged where detected, terminal for
//     the call, all handles released.
//
// Capacity errors are the only retryable class and are never conflated
// with store failures.
package resolve
