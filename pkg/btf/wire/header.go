package wire

// HeaderSize is the size, in bytes, of the known BTF header fields.
// A header may declare itself longer than this; the excess is padding
// that must be skipped, never interpreted.
const HeaderSize = 24

// Header is the fixed BTF file header. All four section descriptors
// are offsets relative to the end of the header (HdrLen bytes in),
// not to the start of the buffer.
type Header struct {
	Magic   uint16
	Version uint8
	Flags   uint8
	HdrLen  uint32
	TypeOff uint32
	TypeLen uint32
	StrOff  uint32
	StrLen  uint32
}

// ReadHeader decodes the fixed 24-byte header from the front of b
// using the given byte order. It does not skip header padding; the
// caller (ParseFile) does that once HdrLen is known.
func ReadHeader(b []byte, order ByteOrder) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, newErr(Incomplete, "header")
	}
	bo := order.binary()
	var h Header
	h.Magic = bo.Uint16(b[0:2])
	h.Version = b[2]
	h.Flags = b[3]
	h.HdrLen = bo.Uint32(b[4:8])
	h.TypeOff = bo.Uint32(b[8:12])
	h.TypeLen = bo.Uint32(b[12:16])
	h.StrOff = bo.Uint32(b[16:20])
	h.StrLen = bo.Uint32(b[20:24])
	return h, nil
}
