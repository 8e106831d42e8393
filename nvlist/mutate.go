package nvlist

// growCap picks a new buffer capacity that amortizes repeated Add calls,
// the same doubling strategy Go's own append uses.
func growCap(need int) int {
	c := 64
	for c < need {
		c *= 2
	}
	return c
}

// insert splices data into l.body at byte offset at, growing the
// backing array if necessary, and advances l.used accordingly.
func (l *List) insert(at int, data []byte) {
	need := l.used + len(data)
	if cap(l.body) < need {
		nb := make([]byte, need, growCap(need))
		copy(nb, l.body[:at])
		copy(nb[at+len(data):need], l.body[at:l.used])
		copy(nb[at:], data)
		l.body = nb
	} else {
		l.body = l.body[:need]
		copy(l.body[at+len(data):need], l.body[at:l.used])
		copy(l.body[at:at+len(data)], data)
	}
	l.used = need
}

// cut removes the n bytes at body offset [at, at+n) and shrinks l.used.
func (l *List) cut(at, n int) {
	copy(l.body[at:l.used-n], l.body[at+n:l.used])
	l.used -= n
	l.body = l.body[:l.used]
}

// align8 rounds n up to the next multiple of 8, the NV_ALIGN granularity
// nvlist_add_uint64()/nvlist_add_string() use for decoded_size.
func align8(n int) int {
	return (n + 7) &^ 7
}

// decodedSize reproduces nvlist_add_uint64()/nvlist_add_string()'s
// decoded_size formula exactly: NV_ALIGN(4*4+namelen+1) for the name
// header, plus the value term. When fixed is true (a fixed-width scalar)
// the value term is the raw payloadLen (e.g. UINT64's 8); for a
// variable-length payload (STRING, NVLIST, NVLIST_ARRAY, any *_ARRAY) it
// is instead NV_ALIGN(payloadLen+1).
func decodedSize(name string, payloadLen int, fixed bool) uint32 {
	nameTerm := align8(4*4 + len(name) + 1)
	valueTerm := payloadLen
	if !fixed {
		valueTerm = align8(payloadLen + 1)
	}
	return uint32(nameTerm + valueTerm)
}

// addPair appends a new pair to l, enforcing UniqueName semantics first,
// and fails with ErrInvalidArg if l is not owned or name is empty.
// Mirrors the realloc-then-splice shape of nvlist_add_uint64() /
// nvlist_add_string() in the original nvlist.c.
func (l *List) addPair(name string, typ Type, nelem uint32, payload []byte) error {
	if !l.owned || l.body == nil {
		return ErrInvalidArg
	}
	if name == "" {
		return ErrInvalidArg
	}
	if l.flags&UniqueName != 0 {
		_ = l.removeMatching(name, typ)
	}

	nameWire := stringWireLen(name)
	encSize := pairHeaderSize + nameWire + 8 + len(payload)
	_, fixed := typ.fixedWidth()
	decSize := decodedSize(name, len(payload), fixed)

	pair := make([]byte, encSize)
	putU32(pair[0:], uint32(encSize))
	putU32(pair[4:], decSize)
	putString(pair[8:], name)
	putU32(pair[8+nameWire:], uint32(typ))
	putU32(pair[8+nameWire+4:], nelem)
	copy(pair[8+nameWire+8:], payload)

	l.insert(l.used-pairHeaderSize, pair)
	l.generation++
	return nil
}

// AddUint64 adds (or, under UniqueName, replaces) a DATA_TYPE_UINT64
// pair.
func (l *List) AddUint64(name string, v uint64) error {
	payload := make([]byte, 8)
	putU64(payload, v)
	return l.addPair(name, TypeUint64, 1, payload)
}

// AddInt64 adds a DATA_TYPE_INT64 pair.
func (l *List) AddInt64(name string, v int64) error {
	payload := make([]byte, 8)
	putI64(payload, v)
	return l.addPair(name, TypeInt64, 1, payload)
}

// AddString adds (or, under UniqueName, replaces) a DATA_TYPE_STRING
// pair.
func (l *List) AddString(name, v string) error {
	payload := make([]byte, stringWireLen(v))
	putString(payload, v)
	return l.addPair(name, TypeString, 1, payload)
}

// AddBoolean adds a presence-only DATA_TYPE_BOOLEAN pair.
func (l *List) AddBoolean(name string) error {
	return l.addPair(name, TypeBoolean, 1, nil)
}

// AddBooleanValue adds a DATA_TYPE_BOOLEAN_VALUE pair.
func (l *List) AddBooleanValue(name string, v bool) error {
	payload := make([]byte, 4)
	if v {
		putI32(payload, 1)
	}
	return l.addPair(name, TypeBooleanValue, 1, payload)
}

// AddNvlist embeds a copy of child's current contents as a nested
// DATA_TYPE_NVLIST pair. child is unaffected and may keep being mutated
// independently afterward — the embedded copy is a snapshot.
func (l *List) AddNvlist(name string, child *List) error {
	if !child.Valid() {
		return ErrInvalidArg
	}
	payload := make([]byte, child.used)
	copy(payload, child.body[:child.used])
	return l.addPair(name, TypeNvlist, 1, payload)
}

// AddNvlistArray embeds snapshots of each list in children as a
// DATA_TYPE_NVLIST_ARRAY pair, concatenated in order with no separators
// (each element's own terminator marks its end, per nvlist_next()).
func (l *List) AddNvlistArray(name string, children []*List) error {
	total := 0
	for _, c := range children {
		if !c.Valid() {
			return ErrInvalidArg
		}
		total += c.used
	}
	payload := make([]byte, total)
	pos := 0
	for _, c := range children {
		pos += copy(payload[pos:], c.body[:c.used])
	}
	return l.addPair(name, TypeNvlistArray, uint32(len(children)), payload)
}

// removeMatching removes the first pair with both the given name and
// type, used internally to enforce UniqueName before an Add.
func (l *List) removeMatching(name string, typ Type) error {
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return err
	}
	for _, off := range offs {
		n, t, err := nameAt(l.body[:l.used], off)
		if err != nil {
			return err
		}
		if n == name && t == typ {
			size := int(getU32(l.body[off:]))
			l.cut(off, size)
			l.generation++
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the first pair matching both name and typ. Same-name
// pairs of a different type are left alone, since UniqueName itself only
// dedupes within a type. Idempotent: removing a name/type pair that is
// not present returns ErrNotFound without otherwise changing l. Mirrors
// nvlist_remove().
func (l *List) Remove(name string, typ Type) error {
	if !l.owned || l.body == nil {
		return ErrInvalidArg
	}
	return l.removeMatching(name, typ)
}
