package pack

import (
	"unsafe"

	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// Trivial is the type set of values that can be copied byte-for-byte:
// fixed-width integers, floats, booleans and any type defined on them.
// Pointer, interface, string and aggregate types are excluded, so an
// attempt to pack a nil or non-trivial value through Scalar is rejected at
// compile time.
type Trivial interface {
	~bool |
		~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr |
		~float32 | ~float64
}

// Scalar returns the strategy for a trivial fixed-width value.
//
// The serialized form is the value's raw representation: host-native width
// and byte order, no prefix. Size is the native width of T.
func Scalar[T Trivial]() Strategy[T] {
	return scalarStrategy[T]{}
}

type scalarStrategy[T Trivial] struct{}

// FixedSize returns the native width of T in bytes.
func (scalarStrategy[T]) FixedSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (s scalarStrategy[T]) Size(T) int {
	return s.FixedSize()
}

func (s scalarStrategy[T]) Pack(c *cursor.Cursor, v T) error {
	size := s.FixedSize()
	if c.AlignedSize(size) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	copyValue(c.Current(), v)

	return c.Advance(size)
}
