package nvlist

import (
	"bytes"
	"encoding/binary"

	"github.com/lunixbochs/struc"
)

// bodyHeader is the version+flags prefix of the body, immediately after
// the 4-byte envelope. Encoded with struc rather than hand-rolled
// binary.Write calls; the field types alone fix the layout (two
// big-endian uint32 words), so no struct tags are needed.
type bodyHeader struct {
	Version uint32
	Flags   uint32
}

func encodeBodyHeader(flags Flag) []byte {
	var buf bytes.Buffer
	// Struct-level Pack never fails for a header this simple; only
	// Unpack on attacker-controlled input needs error handling.
	_ = struc.PackWithOrder(&buf, &bodyHeader{Version: version, Flags: uint32(flags)}, binary.BigEndian)
	return buf.Bytes()
}

func decodeBodyHeader(data []byte) (flags Flag, err error) {
	if len(data) < bodyHeaderSize {
		return 0, ErrMalformed
	}
	var h bodyHeader
	if err := struc.UnpackWithOrder(bytes.NewReader(data[:bodyHeaderSize]), &h, binary.BigEndian); err != nil {
		return 0, ErrMalformed
	}
	if h.Version != version {
		return 0, ErrMalformed
	}
	return Flag(h.Flags), nil
}

// decodeEnvelope validates and returns the 4-byte envelope prefix of an
// imported stream.
func decodeEnvelope(stream []byte) (encoding, endian byte, err error) {
	if len(stream) < envelopeSize {
		return 0, 0, ErrMalformed
	}
	if Encoding(stream[0]) != encodingXDR {
		return 0, 0, ErrUnsupported
	}
	if stream[1] != 0 && stream[1] != 1 {
		return 0, 0, ErrMalformed
	}
	if stream[2] != 0 || stream[3] != 0 {
		return 0, 0, ErrMalformed
	}
	return stream[0], stream[1], nil
}
