package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine_ImplementsInterface(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)
}

func TestGetLittleEndianEngine_HeaderVersionField(t *testing.T) {
	engine := GetLittleEndianEngine()

	// The container header's version field is fixed at 0x0301, stored as
	// on-disk bytes 01 03 (section 6.1).
	const version uint16 = 0x0301

	buf := make([]byte, 2)
	engine.PutUint16(buf, version)
	require.Equal(t, []byte{0x01, 0x03}, buf)
	require.Equal(t, version, engine.Uint16(buf))
}

func TestGetLittleEndianEngine_BlockCountField(t *testing.T) {
	engine := GetLittleEndianEngine()

	const blockCount uint32 = 1024

	buf := make([]byte, 4)
	engine.PutUint32(buf, blockCount)
	require.Equal(t, blockCount, engine.Uint32(buf))
}

func TestGetLittleEndianEngine_PayloadOffsetField(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Index entries store a 64-bit payload offset (section 6.1).
	const offset uint64 = 1<<40 + 7

	buf := make([]byte, 8)
	engine.PutUint64(buf, offset)
	require.Equal(t, offset, engine.Uint64(buf))
}

func TestGetLittleEndianEngine_AppendMatchesPut(t *testing.T) {
	engine := GetLittleEndianEngine()

	const originalLen uint64 = 65536

	put := make([]byte, 8)
	engine.PutUint64(put, originalLen)

	appended := engine.AppendUint64(nil, originalLen)

	require.Equal(t, put, appended)
}
