package nvlist

import "errors"

// Sentinel errors returned by this package's decode and mutate paths.
// Wrap with fmt.Errorf("...: %w", ErrXxx) where a pair name or byte
// offset needs to travel with the failure.
var (
	// ErrInvalidArg covers nil/empty arguments and mutation attempts on
	// a read-only (borrowed) handle.
	ErrInvalidArg = errors.New("nvlist: invalid argument")
	// ErrNotFound is returned by Find/Remove when no pair matches.
	ErrNotFound = errors.New("nvlist: pair not found")
	// ErrNoMemory is returned when growth allocation fails. Mutating
	// calls leave the list unchanged when this is returned.
	ErrNoMemory = errors.New("nvlist: allocation failed")
	// ErrMalformed covers bad envelopes, truncated streams, and size
	// mismatches encountered while decoding.
	ErrMalformed = errors.New("nvlist: malformed stream")
	// ErrUnsupported covers non-XDR encodings and tags this package
	// cannot produce on write.
	ErrUnsupported = errors.New("nvlist: unsupported encoding or type")
)
