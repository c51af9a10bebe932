// Package nss exposes group resolution through the host's
// identity-resolution calling convention: caller-owned buffers, a shared
// enumeration position, and a four-valued status with a capacity reason.
//
// The host contract, in terms of Status:
//
//   - Success: record delivered, buffer populated.
//   - NotFound: no matching record. Normal, not a failure.
//   - TryAgain + ReasonOutOfRange: buffer too small; retry the same
//     call with a larger buffer.
//   - TryAgain + ReasonLimitReached: gid array ceiling hit; retry with
//     a larger ceiling. Collected ids are preserved.
//   - Unavailable: store failure, terminal for the call.
package nss
