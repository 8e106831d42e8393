package nvlist

import (
	"encoding/binary"
	"unsafe"
)

// hostEndian is the envelope endian byte matching this process's native
// byte order: 0 for big-endian, 1 for little-endian, mirroring the
// convention decodeEnvelope validates on import.
var hostEndian = func() byte {
	var x uint16 = 1
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return 1
	}
	return 0
}()

// align4 rounds n up to the next multiple of 4, per the wire format's
// 4-byte payload alignment.
func align4(n int) int {
	return (n + 3) &^ 3
}

// getU32 reads a big-endian uint32 at buf[0:4].
func getU32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// putU32 writes v as big-endian into buf[0:4].
func putU32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// getI32 reads a big-endian int32 at buf[0:4].
func getI32(buf []byte) int32 {
	return int32(getU32(buf))
}

func putI32(buf []byte, v int32) {
	putU32(buf, uint32(v))
}

// getU64 reads a 64-bit value stored as two big-endian 32-bit words,
// high half first.
func getU64(buf []byte) uint64 {
	hi := uint64(getU32(buf))
	lo := uint64(getU32(buf[4:]))
	return hi<<32 | lo
}

func putU64(buf []byte, v uint64) {
	putU32(buf, uint32(v>>32))
	putU32(buf[4:], uint32(v))
}

func getI64(buf []byte) int64 {
	return int64(getU64(buf))
}

func putI64(buf []byte, v int64) {
	putU64(buf, uint64(v))
}

// stringWireLen returns the total padded on-wire size of a string value:
// a 4-byte length prefix, the raw bytes, and zero padding to a 4-byte
// boundary.
func stringWireLen(s string) int {
	return 4 + align4(len(s))
}

// putString writes the XDR string encoding of s into buf, which must be
// at least stringWireLen(s) bytes, and returns the bytes written.
func putString(buf []byte, s string) int {
	putU32(buf, uint32(len(s)))
	n := copy(buf[4:], s)
	total := 4 + align4(len(s))
	for i := 4 + n; i < total; i++ {
		buf[i] = 0
	}
	return total
}

// getString reads an XDR string at the start of buf, returning the
// decoded value and the number of padded wire bytes consumed. It fails
// if buf is too short for the declared length.
func getString(buf []byte) (string, int, error) {
	if len(buf) < 4 {
		return "", 0, ErrMalformed
	}
	n := int(getU32(buf))
	if n < 0 {
		return "", 0, ErrMalformed
	}
	total := 4 + align4(n)
	if len(buf) < total {
		return "", 0, ErrMalformed
	}
	return string(buf[4 : 4+n]), total, nil
}
