package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// Exactly one of the two orders must be reported.
	isLittle := order == binary.ByteOrder(binary.LittleEndian)
	isBig := order == binary.ByteOrder(binary.BigEndian)
	require.True(t, isLittle != isBig)
	require.Equal(t, isLittle, IsNativeLittleEndian())
	require.Equal(t, isBig, IsNativeBigEndian())
}

func TestNative_MatchesHostLayout(t *testing.T) {
	engine := Native()

	// Encode with the engine and verify the bytes match the in-memory
	// representation of the same value.
	buf := make([]byte, 8)
	engine.PutUint64(buf, 0x0102030405060708)

	decoded := engine.Uint64(buf)
	require.Equal(t, uint64(0x0102030405060708), decoded)

	if IsNativeLittleEndian() {
		require.Equal(t, byte(0x08), buf[0])
	} else {
		require.Equal(t, byte(0x01), buf[0])
	}
}

func TestNative_AppendOperations(t *testing.T) {
	engine := Native()

	buf := engine.AppendUint32(nil, 42)
	require.Len(t, buf, 4)
	require.Equal(t, uint32(42), engine.Uint32(buf))

	buf = engine.AppendUint16(buf, 7)
	require.Len(t, buf, 6)
	require.Equal(t, uint16(7), engine.Uint16(buf[4:]))
}
