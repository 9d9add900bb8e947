package pack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/packbuf/endian"
	"github.com/arloliu/packbuf/errs"
)

func TestSliceOf_Size(t *testing.T) {
	t.Run("Fixed-width fast path", func(t *testing.T) {
		s := SliceOf(Scalar[uint32]())

		require.Equal(t, CountSize, s.Size(nil))
		require.Equal(t, CountSize+12, s.Size([]uint32{1, 2, 3}))
	})

	t.Run("Recursive element sizes", func(t *testing.T) {
		s := SliceOf(CString())

		require.Equal(t, CountSize+2+3+4, s.Size([]string{"a", "bc", "def"}))
	})

	t.Run("Nested containers", func(t *testing.T) {
		s := SliceOf(SliceOf(Scalar[uint8]()))
		v := [][]uint8{{1}, {2, 3}}

		// outer count + 2 * (inner count) + 3 elements
		require.Equal(t, CountSize+2*CountSize+3, s.Size(v))
	})
}

func TestSliceOf_Pack(t *testing.T) {
	t.Run("Empty fails with nothing written", func(t *testing.T) {
		c := newCursor(t, 64, 1)
		s := SliceOf(Scalar[uint32]())

		require.ErrorIs(t, s.Pack(c, nil), errs.ErrEmptyContainer)
		require.ErrorIs(t, s.Pack(c, []uint32{}), errs.ErrEmptyContainer)
		require.Equal(t, 0, c.Written())
	})

	t.Run("Count then elements in insertion order", func(t *testing.T) {
		c := newCursor(t, 64, 1)
		s := SliceOf(Scalar[uint32]())
		vals := []uint32{10, 20, 10} // duplicates allowed

		require.NoError(t, s.Pack(c, vals))
		require.Equal(t, s.Size(vals), c.Written())

		packed := c.Bytes()
		require.Equal(t, 3, readCount(t, packed))

		engine := endian.Native()
		for i, want := range vals {
			require.Equal(t, want, engine.Uint32(packed[CountSize+i*4:]))
		}
	})

	t.Run("Recursive string elements", func(t *testing.T) {
		c := newCursor(t, 64, 1)
		s := SliceOf(CString())

		require.NoError(t, s.Pack(c, []string{"a", "bc"}))

		packed := c.Bytes()
		require.Equal(t, 2, readCount(t, packed))
		require.Equal(t, []byte{'a', 0, 'b', 'c', 0}, packed[CountSize:])
	})

	t.Run("Nested sequences recurse", func(t *testing.T) {
		c := newCursor(t, 128, 1)
		s := SliceOf(SliceOf(Scalar[uint8]()))
		v := [][]uint8{{1}, {2, 3}}

		require.NoError(t, s.Pack(c, v))
		require.Equal(t, s.Size(v), c.Written())

		packed := c.Bytes()
		require.Equal(t, 2, readCount(t, packed))
		off := CountSize
		require.Equal(t, 1, readCount(t, packed[off:]))
		require.Equal(t, byte(1), packed[off+CountSize])
		off += CountSize + 1
		require.Equal(t, 2, readCount(t, packed[off:]))
		require.Equal(t, []byte{2, 3}, packed[off+CountSize:off+CountSize+2])
	})

	t.Run("Pre-check failure writes nothing", func(t *testing.T) {
		c := newCursor(t, CountSize+2, 1)
		s := SliceOf(Scalar[uint32]())

		require.ErrorIs(t, s.Pack(c, []uint32{1}), errs.ErrCapacityExceeded)
		require.Equal(t, 0, c.Written())
	})

	t.Run("Aligned overrun mid-write rewinds atomically", func(t *testing.T) {
		// Pre-alignment size is CountSize+4 bytes, but with stride 8 each
		// element advance consumes 8: the pre-check passes and the write
		// runs out of room mid-container.
		c := newCursor(t, 24, 8)
		s := SliceOf(Scalar[uint8]())

		err := s.Pack(c, []uint8{1, 2, 3, 4})
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, 0, c.Written())
	})
}
