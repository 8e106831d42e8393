package nvlist

// Flag is the nvlist-wide bitset stored in the body's flags word.
type Flag uint32

const (
	// UniqueName requires every Add* call to remove a same-name
	// same-type pair before appending the new one.
	UniqueName Flag = 1 << 0
)

// Encoding identifies the wire format of an imported stream. Only XDR is
// understood by this package; the "native", host-endian variant is out
// of scope.
type Encoding uint8

const (
	encodingXDR Encoding = 1
)

const (
	version = 0 // NV_VERSION

	// envelopeSize is the 4-byte {encoding, endian, reserved, reserved}
	// prefix that precedes the body (version, flags, pairs, terminator).
	envelopeSize = 4

	// bodyHeaderSize is the version+flags prefix of the body, before the
	// first pair header.
	bodyHeaderSize = 8

	// pairHeaderSize is the 8-byte {encoded_size, decoded_size} prefix
	// of every pair and of the terminator.
	pairHeaderSize = 8

	// emptyBodySize is a freshly created list's body: version(4) +
	// flags(4) + terminator(8).
	emptyBodySize = bodyHeaderSize + pairHeaderSize
)
