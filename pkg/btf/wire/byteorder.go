package wire

import "encoding/binary"

// ByteOrder is the single byte-order tag selected once at the start of
// parsing a buffer and threaded down through every subsequent read.
// BTF never changes endianness mid-stream.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// DetectByteOrder peeks the first two bytes of a BTF buffer and
// selects the byte order from the magic pattern: 0x9f 0xeb is
// little-endian, 0xeb 0x9f is big-endian. Anything else is malformed.
func DetectByteOrder(b []byte) (ByteOrder, error) {
	if len(b) < 2 {
		return 0, newErr(EndOfInput, "magic")
	}
	switch {
	case b[0] == 0x9f && b[1] == 0xeb:
		return LittleEndian, nil
	case b[0] == 0xeb && b[1] == 0x9f:
		return BigEndian, nil
	default:
		return 0, newErr(Malformed, "invalid magic")
	}
}
