package nvlist

// Value holds the decoded payload of one pair. Exactly the fields that
// correspond to Type are meaningful; the rest are zero. This mirrors the
// tagged-union shape of a C nvpair_t far more directly than a reflected
// struct field ever could.
type Value struct {
	Type  Type
	Nelem uint32

	Bool  bool
	Int   int64
	Uint  uint64
	Str   string
	Bytes []byte
	List  *List
	Lists []*List

	Ints  []int64
	Uints []uint64
	Strs  []string
	Bools []bool
}

// Pair is one decoded name/value entry plus its position in the owning
// buffer: the offset of its header and its encoded_size.
type Pair struct {
	Name  string
	Value Value

	off  int // offset of the pair header within the body
	size int // encoded_size, i.e. distance to the next pair header
}

// decodePairAt decodes the pair whose header starts at body[off:]. parent
// supplies the buffer nested NVLIST/NVLIST_ARRAY values borrow into.
func decodePairAt(parent *List, body []byte, off int) (Pair, error) {
	if off+pairHeaderSize > len(body) {
		return Pair{}, ErrMalformed
	}
	encSize := int(getU32(body[off:]))
	if encSize < pairHeaderSize || off+encSize > len(body) {
		return Pair{}, ErrMalformed
	}
	pos := off + pairHeaderSize

	name, n, err := getString(body[pos:])
	if err != nil {
		return Pair{}, err
	}
	pos += n

	if pos+8 > off+encSize {
		return Pair{}, ErrMalformed
	}
	typ := Type(getU32(body[pos:]))
	nelem := getU32(body[pos+4:])
	pos += 8

	payload := body[pos : off+encSize]
	val, err := decodePayload(parent, typ, nelem, payload)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Name: name, Value: val, off: off, size: encSize}, nil
}

// decodePayload decodes a pair's value bytes according to typ. Primitive
// arrays are decoded only for read-tolerance of foreign-produced nvlists;
// this package never emits them. HRTIME and DOUBLE values are not decoded
// and yield ErrUnsupported.
func decodePayload(parent *List, typ Type, nelem uint32, payload []byte) (Value, error) {
	v := Value{Type: typ, Nelem: nelem}

	if w, ok := typ.fixedWidth(); ok {
		if w > 0 && len(payload) < w {
			return Value{}, ErrMalformed
		}
		switch typ {
		case TypeBoolean:
			// presence is the value; no bytes stored.
		case TypeByte, TypeUint8:
			v.Uint = uint64(getU32(payload) & 0xff)
		case TypeInt8:
			v.Int = int64(int8(getI32(payload)))
		case TypeInt16:
			v.Int = int64(int16(getI32(payload)))
		case TypeUint16:
			v.Uint = uint64(uint16(getU32(payload)))
		case TypeInt32:
			v.Int = int64(getI32(payload))
		case TypeUint32:
			v.Uint = uint64(getU32(payload))
		case TypeBooleanValue:
			x := getI32(payload)
			if x != 0 && x != 1 {
				return Value{}, ErrMalformed
			}
			v.Bool = x == 1
		case TypeInt64:
			v.Int = getI64(payload)
		case TypeUint64:
			v.Uint = getU64(payload)
		case TypeDouble, TypeHrtime:
			return Value{}, ErrUnsupported
		}
		return v, nil
	}

	switch typ {
	case TypeString:
		s, _, err := getString(payload)
		if err != nil {
			return Value{}, err
		}
		v.Str = s

	case TypeByteArray:
		n := int(nelem)
		if len(payload) < align4(n) {
			return Value{}, ErrMalformed
		}
		v.Bytes = append([]byte(nil), payload[:n]...)

	case TypeBooleanArray, TypeInt8Array, TypeUint8Array, TypeInt16Array, TypeUint16Array,
		TypeInt32Array, TypeUint32Array:
		n := int(nelem)
		if len(payload) < n*4 {
			return Value{}, ErrMalformed
		}
		switch typ {
		case TypeBooleanArray:
			v.Bools = make([]bool, n)
			for i := 0; i < n; i++ {
				v.Bools[i] = getI32(payload[i*4:]) != 0
			}
		case TypeInt8Array, TypeInt16Array, TypeInt32Array:
			v.Ints = make([]int64, n)
			for i := 0; i < n; i++ {
				v.Ints[i] = int64(getI32(payload[i*4:]))
			}
		default:
			v.Uints = make([]uint64, n)
			for i := 0; i < n; i++ {
				v.Uints[i] = uint64(getU32(payload[i*4:]))
			}
		}

	case TypeInt64Array, TypeUint64Array:
		n := int(nelem)
		if len(payload) < n*8 {
			return Value{}, ErrMalformed
		}
		if typ == TypeInt64Array {
			v.Ints = make([]int64, n)
			for i := 0; i < n; i++ {
				v.Ints[i] = getI64(payload[i*8:])
			}
		} else {
			v.Uints = make([]uint64, n)
			for i := 0; i < n; i++ {
				v.Uints[i] = getU64(payload[i*8:])
			}
		}

	case TypeStringArray:
		n := int(nelem)
		v.Strs = make([]string, n)
		pos := 0
		for i := 0; i < n; i++ {
			s, consumed, err := getString(payload[pos:])
			if err != nil {
				return Value{}, err
			}
			v.Strs[i] = s
			pos += consumed
		}

	case TypeNvlist:
		child, err := borrowChild(parent, payload)
		if err != nil {
			return Value{}, err
		}
		v.List = child

	case TypeNvlistArray:
		n := int(nelem)
		lists := make([]*List, 0, n)
		pos := 0
		for i := 0; i < n; i++ {
			size, err := bodySize(payload[pos:])
			if err != nil {
				return Value{}, err
			}
			child, err := borrowChild(parent, payload[pos:pos+size])
			if err != nil {
				return Value{}, err
			}
			child.isArrayElement = true
			child.arrayNext = payload[pos+size:]
			lists = append(lists, child)
			pos += size
		}
		v.Lists = lists

	default:
		return Value{}, ErrUnsupported
	}

	return v, nil
}
