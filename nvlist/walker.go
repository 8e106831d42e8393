package nvlist

// bodySize walks the pair chain starting at data[0] (a version+flags
// header) and returns the number of bytes up to and including the double
// zero terminator, or ErrMalformed if the chain runs off the end of data
// before a terminator is found. Grounded on nvlist_size() in the original
// libsa nvlist.c, which performs the same walk to learn how much of a
// parent's payload belongs to a nested nvlist.
func bodySize(data []byte) (int, error) {
	if len(data) < bodyHeaderSize {
		return 0, ErrMalformed
	}
	pos := bodyHeaderSize
	for {
		if pos+pairHeaderSize > len(data) {
			return 0, ErrMalformed
		}
		encSize := int(getU32(data[pos:]))
		decSize := int(getU32(data[pos+4:]))
		if encSize == 0 && decSize == 0 {
			return pos + pairHeaderSize, nil
		}
		if encSize < pairHeaderSize {
			return 0, ErrMalformed
		}
		next := pos + encSize
		if next <= pos || next > len(data) {
			return 0, ErrMalformed
		}
		pos = next
	}
}

// pairOffsets returns the body offset of every pair header between the
// body header and the terminator, in wire order.
func pairOffsets(body []byte) ([]int, error) {
	offs := []int(nil)
	pos := bodyHeaderSize
	for {
		if pos+pairHeaderSize > len(body) {
			return nil, ErrMalformed
		}
		encSize := int(getU32(body[pos:]))
		decSize := int(getU32(body[pos+4:]))
		if encSize == 0 && decSize == 0 {
			return offs, nil
		}
		if encSize < pairHeaderSize || pos+encSize > len(body) {
			return nil, ErrMalformed
		}
		offs = append(offs, pos)
		pos += encSize
	}
}
