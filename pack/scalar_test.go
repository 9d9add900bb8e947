package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/packbuf/endian"
	"github.com/arloliu/packbuf/errs"
)

type deviceID uint32

func TestScalar_Size(t *testing.T) {
	require.Equal(t, 1, Scalar[int8]().Size(0))
	require.Equal(t, 1, Scalar[bool]().Size(true))
	require.Equal(t, 2, Scalar[uint16]().Size(0))
	require.Equal(t, 4, Scalar[int32]().Size(0))
	require.Equal(t, 4, Scalar[float32]().Size(0))
	require.Equal(t, 8, Scalar[uint64]().Size(0))
	require.Equal(t, 8, Scalar[float64]().Size(0))

	// Named types defined on a trivial type keep the underlying width.
	require.Equal(t, 4, Scalar[deviceID]().Size(0))
}

func TestScalar_Pack(t *testing.T) {
	engine := endian.Native()

	t.Run("Uint32 advances by aligned size", func(t *testing.T) {
		c := newCursor(t, 16, 4)

		require.NoError(t, Scalar[uint32]().Pack(c, 42))
		require.Equal(t, 4, c.Written())
		require.Equal(t, uint32(42), engine.Uint32(c.Bytes()))
	})

	t.Run("Byte rounds up to stride", func(t *testing.T) {
		c := newCursor(t, 16, 4)

		require.NoError(t, Scalar[uint8]().Pack(c, 0x7f))
		require.Equal(t, 4, c.Written())
		require.Equal(t, byte(0x7f), c.Bytes()[0])
	})

	t.Run("Float64 representation", func(t *testing.T) {
		c := newCursor(t, 8, 1)

		require.NoError(t, Scalar[float64]().Pack(c, 3.5))
		require.Equal(t, 8, c.Written())
		require.Equal(t, 3.5, math.Float64frombits(engine.Uint64(c.Bytes())))
	})

	t.Run("Bool", func(t *testing.T) {
		c := newCursor(t, 2, 1)

		require.NoError(t, Scalar[bool]().Pack(c, true))
		require.NoError(t, Scalar[bool]().Pack(c, false))
		require.Equal(t, []byte{1, 0}, c.Bytes())
	})

	t.Run("Negative int preserved", func(t *testing.T) {
		c := newCursor(t, 4, 1)

		require.NoError(t, Scalar[int32]().Pack(c, -2))
		decoded := int32(engine.Uint32(c.Bytes()))
		require.Equal(t, int32(-2), decoded)
	})

	t.Run("Capacity exceeded leaves cursor unchanged", func(t *testing.T) {
		c := newCursor(t, 2, 1)

		err := Scalar[uint32]().Pack(c, 1)
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, 0, c.Written())
	})

	t.Run("Aligned size checked, not raw size", func(t *testing.T) {
		c := newCursor(t, 6, 4)
		require.NoError(t, c.Advance(4))

		// Raw size 2 fits the remaining 2 bytes, aligned size 4 does not.
		err := Scalar[uint16]().Pack(c, 1)
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, 4, c.Written())
	})
}

func TestScalar_FixedSizer(t *testing.T) {
	fs, ok := Scalar[uint16]().(FixedSizer)
	require.True(t, ok)
	require.Equal(t, 2, fs.FixedSize())
}
