package nvlist

// Find returns the decoded value of the first top-level pair matching
// both name and typ, mirroring nvlist_find(). Same-name pairs of a
// different type (legal under UniqueName, which only dedupes within a
// type) are skipped rather than returned. Returns ErrNotFound if no pair
// matches both.
func (l *List) Find(name string, typ Type) (Value, error) {
	if !l.Valid() {
		return Value{}, ErrInvalidArg
	}
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return Value{}, err
	}
	for _, off := range offs {
		n, t, err := nameAt(l.body[:l.used], off)
		if err != nil {
			return Value{}, err
		}
		if n != name || t != typ {
			continue
		}
		p, err := decodePairAt(l, l.body[:l.used], off)
		if err != nil {
			return Value{}, err
		}
		return p.Value, nil
	}
	return Value{}, ErrNotFound
}

// Exists reports whether l has a top-level pair named name.
func (l *List) Exists(name string) (bool, error) {
	if !l.Valid() {
		return false, ErrInvalidArg
	}
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return false, err
	}
	for _, off := range offs {
		n, _, err := nameAt(l.body[:l.used], off)
		if err != nil {
			return false, err
		}
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Pairs decodes and returns every top-level pair, in wire order. It is
// the bulk form of repeated Find calls, used by the printer and by tests
// that walk a whole list.
func (l *List) Pairs() ([]Pair, error) {
	if !l.Valid() {
		return nil, ErrInvalidArg
	}
	offs, err := pairOffsets(l.body[:l.used])
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(offs))
	for _, off := range offs {
		p, err := decodePairAt(l, l.body[:l.used], off)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Next returns the array sibling that follows l. l must itself be a
// borrowed NVLIST_ARRAY element obtained from a Value's Lists slice;
// calling Next on any other List, including a borrowed NVLIST element,
// returns ErrInvalidArg. Returns ErrNotFound once l is the array's last
// element. Mirrors nvlist_next(), which the original restricts to
// nv_asize == 0 (borrowed-only) handles.
func (l *List) Next() (*List, error) {
	if l.owned || l.root == nil || !l.isArrayElement {
		return nil, ErrInvalidArg
	}
	if !l.Valid() {
		return nil, ErrInvalidArg
	}
	if len(l.arrayNext) == 0 {
		return nil, ErrNotFound
	}
	size, err := bodySize(l.arrayNext)
	if err != nil {
		return nil, err
	}
	next, err := borrowChild(l.root, l.arrayNext[:size])
	if err != nil {
		return nil, err
	}
	next.isArrayElement = true
	next.arrayNext = l.arrayNext[size:]
	return next, nil
}
