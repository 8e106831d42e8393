package nvlist

// List is a live, mutate-in-place nvlist handle. An owned List holds its
// own backing buffer and may be mutated; a borrowed List is a read-only
// view into an ancestor owned List's buffer — returned by Find/Next for
// nested NVLIST and NVLIST_ARRAY values — and is invalidated the moment
// that ancestor mutates.
//
// A List is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves, same as any other mutable
// Go value with no internal locking.
type List struct {
	body []byte // version, flags, pairs, terminator (no envelope)
	used int

	owned bool
	flags Flag

	root       *List  // nil for an owned List; the owning ancestor for a borrowed one
	rootGen    uint64 // root.generation observed at borrow time
	generation uint64 // bumped on every mutation of an owned List

	endian byte // envelope endian byte: the value imported, or hostEndian at Create

	isArrayElement bool   // true only for a List borrowed out of an NVLIST_ARRAY payload
	arrayNext      []byte // remaining, not-yet-borrowed bytes of an NVLIST_ARRAY payload, if l is one of its elements
}

// Create returns a new, empty owned List with the given flags,
// mirroring nvlist_create().
func Create(flags Flag) *List {
	body := make([]byte, emptyBodySize, 64)
	copy(body, encodeBodyHeader(flags))
	// terminator is already zero from make().
	return &List{body: body, used: emptyBodySize, owned: true, flags: flags, endian: hostEndian}
}

// Import decodes a complete XDR-encoded stream, including its 4-byte
// envelope, into a new owned List. The body's length is found by walking
// its pairs up to the terminator; any bytes after the terminator (such as
// the zero padding of a fixed-size label region) are ignored. The input
// is copied; the returned List shares no memory with stream. Mirrors
// nvlist_import().
func Import(stream []byte) (*List, error) {
	_, endian, err := decodeEnvelope(stream)
	if err != nil {
		return nil, err
	}
	body := stream[envelopeSize:]
	flags, err := decodeBodyHeader(body)
	if err != nil {
		return nil, err
	}
	size, err := bodySize(body)
	if err != nil {
		return nil, err
	}
	owned := make([]byte, size)
	copy(owned, body)
	return &List{body: owned, used: size, owned: true, flags: flags, endian: endian}, nil
}

// Export serializes l, envelope included, as a standalone XDR stream,
// mirroring nvlist_export(). Valid on both owned and borrowed lists. The
// envelope's endian byte is whatever was imported (or the host's own, for
// a List built with Create), never overwritten.
func (l *List) Export() ([]byte, error) {
	if !l.Valid() {
		return nil, ErrInvalidArg
	}
	out := make([]byte, envelopeSize+l.used)
	out[0] = byte(encodingXDR)
	out[1] = rootOf(l).endian
	copy(out[envelopeSize:], l.body[:l.used])
	return out, nil
}

// Destroy releases an owned List's buffer and invalidates every
// outstanding borrowed handle into it. Kept for API parity with
// nvlist_destroy(); Go's GC reclaims the memory regardless, but the
// generation bump still matters for borrow invalidation.
func (l *List) Destroy() {
	if !l.owned {
		return
	}
	l.body = nil
	l.used = 0
	l.generation++
}

// Valid reports whether l can still be read: true for an owned List
// until Destroy is called on it, and true for a borrowed List only while
// its root has not mutated since the borrow.
func (l *List) Valid() bool {
	if l.owned {
		return l.body != nil
	}
	return l.root != nil && l.root.generation == l.rootGen
}

// Clone returns a new, independent owned List with the same contents.
func (l *List) Clone() (*List, error) {
	if !l.Valid() {
		return nil, ErrInvalidArg
	}
	body := make([]byte, l.used, l.used+32)
	copy(body, l.body[:l.used])
	return &List{body: body, used: l.used, owned: true, flags: l.flags, endian: rootOf(l).endian}, nil
}

// Len returns the number of top-level pairs in l.
func (l *List) Len() (int, error) {
	if !l.Valid() {
		return 0, ErrInvalidArg
	}
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return 0, err
	}
	return len(offs), nil
}

// Names returns the names of every top-level pair, in wire order.
func (l *List) Names() ([]string, error) {
	if !l.Valid() {
		return nil, ErrInvalidArg
	}
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return nil, err
	}
	names := make([]string, len(offs))
	for i, off := range offs {
		name, _, err := nameAt(l.body[:l.used], off)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// nameAt reads the name and type tag of the pair header at body[off:]
// without decoding its payload, for callers that only need identity.
func nameAt(body []byte, off int) (name string, typ Type, err error) {
	if off+pairHeaderSize > len(body) {
		return "", 0, ErrMalformed
	}
	pos := off + pairHeaderSize
	name, n, err := getString(body[pos:])
	if err != nil {
		return "", 0, err
	}
	pos += n
	if pos+4 > len(body) {
		return "", 0, ErrMalformed
	}
	return name, Type(getU32(body[pos:])), nil
}

// rootOf returns the owned List that ultimately backs l's buffer.
func rootOf(l *List) *List {
	if l.owned {
		return l
	}
	return l.root
}

// borrowChild wraps a byte range of an ancestor's buffer as a read-only
// nested List, the same borrowed handle nvlist_find() returns for
// NVLIST/NVLIST_ARRAY values.
func borrowChild(parent *List, payload []byte) (*List, error) {
	flags, err := decodeBodyHeader(payload)
	if err != nil {
		return nil, err
	}
	root := rootOf(parent)
	return &List{
		body:    payload,
		used:    len(payload),
		owned:   false,
		flags:   flags,
		root:    root,
		rootGen: root.generation,
	}, nil
}
