package types

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/go-btf/pkg/btf/wire"
)

type fileBuilder struct {
	typeSection bytes.Buffer
	strSection  []byte
}

func newFileBuilder() *fileBuilder {
	return &fileBuilder{strSection: []byte{0x00}}
}

// addString appends s to the string table and returns its offset.
func (b *fileBuilder) addString(s string) uint32 {
	off := uint32(len(b.strSection))
	b.strSection = append(b.strSection, append([]byte(s), 0)...)
	return off
}

func (b *fileBuilder) u32(v uint32) {
	_ = binary.Write(&b.typeSection, binary.LittleEndian, v)
}

func (b *fileBuilder) i32(v int32) {
	_ = binary.Write(&b.typeSection, binary.LittleEndian, v)
}

func (b *fileBuilder) build(t *testing.T) *wire.File {
	t.Helper()
	var header bytes.Buffer
	header.Write([]byte{0x9f, 0xeb})
	header.WriteByte(1)
	header.WriteByte(0)
	_ = binary.Write(&header, binary.LittleEndian, uint32(wire.HeaderSize))
	_ = binary.Write(&header, binary.LittleEndian, uint32(0))
	_ = binary.Write(&header, binary.LittleEndian, uint32(b.typeSection.Len()))
	_ = binary.Write(&header, binary.LittleEndian, uint32(b.typeSection.Len()))
	_ = binary.Write(&header, binary.LittleEndian, uint32(len(b.strSection)))

	buf := append(header.Bytes(), b.typeSection.Bytes()...)
	buf = append(buf, b.strSection...)

	f, err := wire.ParseFile(buf)
	require.NoError(t, err)
	return f
}

func TestDecodeInt(t *testing.T) {
	b := newFileBuilder()
	nameOff := b.addString("int")
	b.u32(nameOff)
	b.u32(1 << 24) // kind=INT
	b.u32(4)       // size
	b.u32(0x01000020)

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	i, ok := entries[0].(Int)
	require.True(t, ok)
	name, has := i.Name()
	assert.True(t, has)
	assert.Equal(t, "int", name)
	assert.Equal(t, uint32(4), i.Size)
	assert.Equal(t, uint8(0), i.BitsOffset)
	assert.Equal(t, uint8(32), i.NrBits)
	assert.True(t, i.Encoding.IsSigned())
	assert.Equal(t, "SIGNED", i.Encoding.String())
}

func TestDecodeBitfieldStruct(t *testing.T) {
	b := newFileBuilder()
	structName := b.addString("s")
	memberName := b.addString("x")

	// STRUCT, kind_flag set, vlen=1
	b.u32(structName)
	b.u32(uint32(KindStruct)<<24 | 1<<31 | 1)
	b.u32(4) // size
	// member: name_off, type_id, offset-word (bitfield_size=3, bits_offset=5)
	b.u32(memberName)
	b.u32(2) // type_id
	b.u32(0x03_00_00_05)

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	s, ok := entries[0].(Struct)
	require.True(t, ok)
	require.Len(t, s.Members, 1)
	m := s.Members[0]
	assert.Equal(t, uint32(2), m.TypeID)
	assert.Equal(t, uint32(5), m.BitsOffset)
	assert.Equal(t, uint8(3), m.BitfieldSize)
}

func TestDecodeVariadicFuncProto(t *testing.T) {
	b := newFileBuilder()
	aName := b.addString("a")
	bName := b.addString("b")

	b.u32(0) // no name
	b.u32(uint32(KindFuncProto)<<24 | 3) // vlen=3
	b.u32(0)                             // ret_type_id = void
	b.u32(aName)
	b.u32(10)
	b.u32(bName)
	b.u32(11)
	b.u32(0) // variadic sentinel: name_off=0
	b.u32(0) // type_id=0

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	proto, ok := entries[0].(FuncProto)
	require.True(t, ok)
	require.Len(t, proto.Params, 3)
	assert.True(t, proto.Params[2].IsVariableArgument())
	assert.True(t, proto.HasVariableArgument())
}

func TestDecodeEnumZeroExtends(t *testing.T) {
	b := newFileBuilder()
	name := b.addString("e")
	vname := b.addString("NEG")

	b.u32(name)
	b.u32(uint32(KindEnum)<<24 | 1)
	b.u32(4)
	b.u32(vname)
	b.i32(-1) // raw bit pattern 0xffffffff

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e, ok := entries[0].(Enum)
	require.True(t, ok)
	require.Len(t, e.Values, 1)
	// zero-extended, not sign-extended: 0xffffffff, not -1.
	assert.Equal(t, int64(0xffffffff), e.Values[0].Val)
}

func TestDecodeEnum64(t *testing.T) {
	b := newFileBuilder()
	name := b.addString("e64")
	vname := b.addString("BIG")

	b.u32(name)
	b.u32(uint32(KindEnum64)<<24 | 1)
	b.u32(8)
	b.u32(vname)
	b.u32(0x00000002) // lo
	b.u32(0x00000001) // hi

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	e, ok := entries[0].(Enum)
	require.True(t, ok)
	assert.True(t, e.Is64)
	assert.Equal(t, int64(0x100000002), e.Values[0].Val)
}

func TestDecodeUnknownKindYieldsVoid(t *testing.T) {
	b := newFileBuilder()
	b.u32(0)
	b.u32(uint32(31) << 24) // out of range kind
	b.u32(0)

	entries, err := Collect(b.build(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	_, ok := entries[0].(Void)
	assert.True(t, ok)
}

func TestResolveSplitBTF(t *testing.T) {
	base := make([]Entry, 100)
	for i := range base {
		base[i] = Void{}
	}
	local := []Entry{Pointer{TypeID: 1}}

	e, ok := Resolve(base, local, 42)
	require.True(t, ok)
	assert.Equal(t, base[41], e)

	e, ok = Resolve(base, local, 101)
	require.True(t, ok)
	assert.Equal(t, local[0], e)
}
