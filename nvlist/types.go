package nvlist

// Type is the wire type tag of a pair's value. The numeric values match
// illumos/FreeBSD libnvpair's data_type_t exactly, so a foreign-produced
// nvlist decodes with the same tag values this package writes.
type Type uint32

const (
	TypeUnknown Type = iota
	TypeBoolean
	TypeByte
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeString
	TypeByteArray
	TypeInt16Array
	TypeUint16Array
	TypeInt32Array
	TypeUint32Array
	TypeInt64Array
	TypeUint64Array
	TypeStringArray
	TypeHrtime
	TypeNvlist
	TypeNvlistArray
	TypeBooleanValue
	TypeInt8
	TypeUint8
	TypeBooleanArray
	TypeInt8Array
	TypeUint8Array
	TypeDouble
)

var typeNames = [...]string{
	TypeUnknown:      "DATA_TYPE_UNKNOWN",
	TypeBoolean:      "DATA_TYPE_BOOLEAN",
	TypeByte:         "DATA_TYPE_BYTE",
	TypeInt16:        "DATA_TYPE_INT16",
	TypeUint16:       "DATA_TYPE_UINT16",
	TypeInt32:        "DATA_TYPE_INT32",
	TypeUint32:       "DATA_TYPE_UINT32",
	TypeInt64:        "DATA_TYPE_INT64",
	TypeUint64:       "DATA_TYPE_UINT64",
	TypeString:       "DATA_TYPE_STRING",
	TypeByteArray:    "DATA_TYPE_BYTE_ARRAY",
	TypeInt16Array:   "DATA_TYPE_INT16_ARRAY",
	TypeUint16Array:  "DATA_TYPE_UINT16_ARRAY",
	TypeInt32Array:   "DATA_TYPE_INT32_ARRAY",
	TypeUint32Array:  "DATA_TYPE_UINT32_ARRAY",
	TypeInt64Array:   "DATA_TYPE_INT64_ARRAY",
	TypeUint64Array:  "DATA_TYPE_UINT64_ARRAY",
	TypeStringArray:  "DATA_TYPE_STRING_ARRAY",
	TypeHrtime:       "DATA_TYPE_HRTIME",
	TypeNvlist:       "DATA_TYPE_NVLIST",
	TypeNvlistArray:  "DATA_TYPE_NVLIST_ARRAY",
	TypeBooleanValue: "DATA_TYPE_BOOLEAN_VALUE",
	TypeInt8:         "DATA_TYPE_INT8",
	TypeUint8:        "DATA_TYPE_UINT8",
	TypeBooleanArray: "DATA_TYPE_BOOLEAN_ARRAY",
	TypeInt8Array:    "DATA_TYPE_INT8_ARRAY",
	TypeUint8Array:   "DATA_TYPE_UINT8_ARRAY",
	TypeDouble:       "DATA_TYPE_DOUBLE",
}

func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "DATA_TYPE_UNKNOWN"
}

// fixedWidth returns the on-wire payload size in bytes for scalar types
// whose value does not depend on nelem/name length. ok is false
// for variable-length or compound types (STRING, NVLIST, NVLIST_ARRAY,
// any *_ARRAY of a primitive).
func (t Type) fixedWidth() (size int, ok bool) {
	switch t {
	case TypeBoolean:
		return 0, true
	case TypeByte, TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt32, TypeUint32, TypeBooleanValue:
		return 4, true
	case TypeInt64, TypeUint64, TypeDouble:
		return 8, true
	default:
		return 0, false
	}
}
