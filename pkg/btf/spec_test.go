package btf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/go-btf/pkg/btf/types"
	"github.com/flier/go-btf/pkg/btf/wire"
)

// buildIntBTF assembles a minimal little-endian BTF buffer holding a
// single INT entry named name.
func buildIntBTF(t *testing.T, name string) []byte {
	t.Helper()

	var typeSection bytes.Buffer
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(1)))
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(1<<24)))
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(4)))
	require.NoError(t, binary.Write(&typeSection, binary.LittleEndian, uint32(0x01000020)))

	strSection := append([]byte{0x00}, append([]byte(name), 0)...)

	var header bytes.Buffer
	header.Write([]byte{0x9f, 0xeb})
	header.WriteByte(1)
	header.WriteByte(0)
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(wire.HeaderSize)))
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(0)))
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(typeSection.Len())))
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(typeSection.Len())))
	require.NoError(t, binary.Write(&header, binary.LittleEndian, uint32(len(strSection))))

	buf := append(header.Bytes(), typeSection.Bytes()...)
	buf = append(buf, strSection...)
	return buf
}

func TestParseDecodesSingleEntry(t *testing.T) {
	spec, err := Parse(buildIntBTF(t, "int"))
	require.NoError(t, err)
	require.Equal(t, 1, spec.Len())

	entry, ok := spec.TypeByID(1)
	require.True(t, ok)
	i, ok := entry.(types.Int)
	require.True(t, ok)
	name, _ := i.Name()
	assert.Equal(t, "int", name)
}

func TestTypeByIDResolvesVoidAtZero(t *testing.T) {
	spec, err := Parse(buildIntBTF(t, "int"))
	require.NoError(t, err)
	entry, ok := spec.TypeByID(0)
	require.True(t, ok)
	_, isVoid := entry.(types.Void)
	assert.True(t, isVoid)
}

func TestLoadResolvesAcrossBaseAndLocal(t *testing.T) {
	base := buildIntBTF(t, "base_int")
	local := buildIntBTF(t, "local_int")

	spec, err := Load(base, local)
	require.NoError(t, err)
	require.Len(t, spec.Base, 1)
	require.Len(t, spec.Local, 1)

	// id 1 resolves into base, id 2 (len(base)+1) resolves into local.
	baseEntry, ok := spec.TypeByID(1)
	require.True(t, ok)
	name, _ := baseEntry.(types.Int).Name()
	assert.Equal(t, "base_int", name)

	localEntry, ok := spec.TypeByID(2)
	require.True(t, ok)
	name, _ = localEntry.(types.Int).Name()
	assert.Equal(t, "local_int", name)
}

func TestTypesByNameSearchesBothVectors(t *testing.T) {
	base := buildIntBTF(t, "shared")
	local := buildIntBTF(t, "shared")

	spec, err := Load(base, local)
	require.NoError(t, err)

	matches := spec.TypesByName("shared")
	assert.Len(t, matches, 2)
}

func TestKindCountsIsCachedAndCountsLocalOnly(t *testing.T) {
	base := buildIntBTF(t, "base_int")
	local := buildIntBTF(t, "local_int")

	spec, err := Load(base, local)
	require.NoError(t, err)

	counts := spec.KindCounts()
	assert.Equal(t, 1, counts[types.KindInt])

	again := spec.KindCounts()
	assert.Equal(t, counts, again)
}

func TestParseRejectsTruncatedBuffer(t *testing.T) {
	buf := buildIntBTF(t, "int")
	_, err := Parse(buf[:8])
	require.Error(t, err)
}
