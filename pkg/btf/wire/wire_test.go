package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBuffer assembles a minimal little-endian BTF buffer with one
// INT entry named "int", size 4, signed 32-bit — spec.md §8.3's S1
// scenario.
func buildBuffer(t *testing.T) []byte {
	t.Helper()

	var typeSection bytes.Buffer
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(1))) // name_off -> "int"
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(1<<24)))
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(4))) // size
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(0x01000020)))

	strSection := []byte{0x00, 'i', 'n', 't', 0x00}

	var header bytes.Buffer
	header.Write([]byte{0x9f, 0xeb}) // magic -> little-endian
	header.WriteByte(1)              // version
	header.WriteByte(0)              // flags
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(HeaderSize)))
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(0)))                    // type_off
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(typeSection.Len())))    // type_len
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(typeSection.Len())))    // str_off
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(len(strSection))))      // str_len

	buf := append(header.Bytes(), typeSection.Bytes()...)
	buf = append(buf, strSection...)
	return buf
}

func TestDetectByteOrderLittleEndian(t *testing.T) {
	order, err := DetectByteOrder([]byte{0x9f, 0xeb, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, LittleEndian, order)
}

func TestDetectByteOrderBigEndian(t *testing.T) {
	order, err := DetectByteOrder([]byte{0xeb, 0x9f, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, BigEndian, order)
}

func TestDetectByteOrderInvalidMagic(t *testing.T) {
	_, err := DetectByteOrder([]byte{0x00, 0x00})
	require.Error(t, err)
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, Malformed, e.Kind)
}

func TestParseFile(t *testing.T) {
	f, err := ParseFile(buildBuffer(t))
	require.NoError(t, err)
	assert.Equal(t, LittleEndian, f.Order)
	assert.Len(t, f.TypeBytes, 16)
	assert.Len(t, f.StrBytes, 5)
}

func TestParseFileTruncated(t *testing.T) {
	buf := buildBuffer(t)
	_, err := ParseFile(buf[:10])
	require.Error(t, err)
}

func TestParseFileNegativePadding(t *testing.T) {
	buf := buildBuffer(t)
	// Corrupt str_off to be less than type_off+type_len.
	binary.LittleEndian.PutUint32(buf[16:20], 0)
	_, err := ParseFile(buf)
	require.Error(t, err)
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, Malformed, e.Kind)
}

func TestStringsReadStr(t *testing.T) {
	s := Strings([]byte{0x00, 'f', 'o', 'o', 0x00})
	name, has, err := s.ReadStr(0)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, name)

	name, has, err = s.ReadStr(1)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, "foo", name)
}

func TestStringsReadStrOutOfRange(t *testing.T) {
	s := Strings([]byte{0x00})
	_, _, err := s.ReadStr(5)
	require.Error(t, err)
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, OutOfRange, e.Kind)
}

func TestInfoDecoding(t *testing.T) {
	// kind=19 (Enum64) requires the full 5-bit mask to round-trip.
	info := Info(uint32(19)<<24 | 1<<31 | 7)
	assert.Equal(t, uint8(19), info.RawKind())
	assert.True(t, info.KindFlag())
	assert.Equal(t, uint16(7), info.VLen())
}

func TestMemberOffsetSplit(t *testing.T) {
	mo := MemberOffset(0x03_00_00_05)
	assert.Equal(t, uint8(3), mo.BitfieldSize())
	assert.Equal(t, uint32(5), mo.BitsOffset())
}
