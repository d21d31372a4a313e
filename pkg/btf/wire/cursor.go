package wire

// Cursor is a bounds-checked sequential reader over one section of a
// BTF buffer (the type section, when C2 walks it). It never panics on
// short input; every read reports EndOfInput instead.
type Cursor struct {
	data  []byte
	pos   int
	order ByteOrder
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte, order ByteOrder) *Cursor {
	return &Cursor{data: b, order: order}
}

// Pos is the current byte offset into the underlying section.
func (c *Cursor) Pos() int { return c.pos }

// Len is the total length of the underlying section.
func (c *Cursor) Len() int { return len(c.data) }

// Done reports whether the cursor has consumed the entire section.
func (c *Cursor) Done() bool { return c.pos >= len(c.data) }

func (c *Cursor) take(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, newErr(EndOfInput, "entry")
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U32 reads one little/big-endian uint32 according to the cursor's
// byte order.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return c.order.binary().Uint32(b), nil
}

// I32 reads one signed 32-bit word with the same bit pattern as U32.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// RawEntryHeader is the fixed 12-byte header every type-section entry
// begins with.
type RawEntryHeader struct {
	NameOff    uint32
	Info       Info
	SizeOrType uint32
}

// ReadEntryHeader reads the 12-byte common header of the next entry.
func (c *Cursor) ReadEntryHeader() (RawEntryHeader, error) {
	nameOff, err := c.U32()
	if err != nil {
		return RawEntryHeader{}, err
	}
	infoRaw, err := c.U32()
	if err != nil {
		return RawEntryHeader{}, err
	}
	sizeOrType, err := c.U32()
	if err != nil {
		return RawEntryHeader{}, err
	}
	return RawEntryHeader{NameOff: nameOff, Info: Info(infoRaw), SizeOrType: sizeOrType}, nil
}

// Info is the bit-packed 32-bit word following every entry's name
// offset: vlen in bits 0-15, a 5-bit kind in bits 24-28, and the
// kind_flag in bit 31.
type Info uint32

const (
	infoVlenMask     = 0x0000ffff
	infoKindMask     = 0x1f000000
	infoKindShift    = 24
	infoKindFlagMask = 0x80000000
)

// VLen is the element count of the entry's trailing variable-length
// array (member/enum/param vectors), or the FUNC linkage tag for Func
// entries, which overload this field.
func (i Info) VLen() uint16 { return uint16(i & infoVlenMask) }

// RawKind is the raw 5-bit kind discriminant as it appears on the
// wire, before mapping unknown values to Unknown.
func (i Info) RawKind() uint8 { return uint8((i & infoKindMask) >> infoKindShift) }

// KindFlag is bit 31: a bitfield-layout flag on composites, or the
// struct-vs-union discriminator on forward declarations.
func (i Info) KindFlag() bool { return i&infoKindFlagMask != 0 }

// IntWord is the bit-packed trailing payload word of an INT entry:
// encoding<<24 | offset<<16 | bits.
type IntWord uint32

const (
	intEncodingMask  = 0x0f000000
	intEncodingShift = 24
	intOffsetMask    = 0x00ff0000
	intOffsetShift   = 16
	intBitsMask      = 0x000000ff
)

func (w IntWord) Encoding() uint8 { return uint8((w & intEncodingMask) >> intEncodingShift) }
func (w IntWord) Offset() uint8   { return uint8((w & intOffsetMask) >> intOffsetShift) }
func (w IntWord) Bits() uint8     { return uint8(w & intBitsMask) }

// MemberOffset is the bit-packed trailing offset word of a
// STRUCT/UNION member. Its meaning depends on the composite's
// kind_flag: when set, it splits into a bitfield size and a bit
// offset; otherwise it is a plain bit offset with no bitfield.
type MemberOffset uint32

func (o MemberOffset) BitfieldSize() uint8 { return uint8(o >> 24) }
func (o MemberOffset) BitsOffset() uint32  { return uint32(o) & 0x00ffffff }
