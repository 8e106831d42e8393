// Package nvlist implements the XDR encoding of ZFS-style name/value lists
// as used in the on-disk bootenv label area: a byte-exact, mutate-in-place
// codec rather than a parsed tree. A List owns (or borrows) a serialized
// buffer and every Add/Remove call edits that buffer directly, so the
// result is always ready to hand back to a caller without a separate
// rebuild step.
//
// Only the XDR variant is supported; the "native", host-endian encoding
// libnvpair also produces is out of scope. Mutating a single List
// concurrently from more than one goroutine is undefined; there are no
// internal locks.
package nvlist
