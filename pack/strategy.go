package pack

import (
	"unsafe"

	"github.com/arloliu/packbuf/cursor"
)

// CountSize is the width in bytes of the element-count prefix written before
// every variable-length form: the host pointer-sized unsigned integer.
const CountSize = int(unsafe.Sizeof(uint(0)))

// Strategy serializes values of one category. Size and Pack must agree
// byte-for-byte: Pack consumes exactly Size(v) bytes before alignment
// rounding, and performs its capacity check with the same Size function a
// pre-write probe would use.
type Strategy[T any] interface {
	// Size returns the exact serialized size of v in bytes, before
	// alignment rounding. It needs no cursor and never writes.
	Size(v T) int

	// Pack writes v at the cursor's current position and advances it.
	// A failed Pack commits nothing and leaves the cursor offset unchanged.
	Pack(c *cursor.Cursor, v T) error
}

// FixedSizer is implemented by strategies whose serialized size does not
// depend on the value. Container strategies dispatch on it to size n
// elements in constant time instead of a per-element pass.
type FixedSizer interface {
	FixedSize() int
}

// packCount writes an element-count prefix through the count-type scalar
// strategy.
func packCount(c *cursor.Cursor, n int) error {
	return Scalar[uint]().Pack(c, uint(n))
}

// copyValue copies the in-memory representation of v into dst and returns
// the number of bytes copied. The explicit dst[:size] slicing bounds-checks
// the destination before the raw view of v is touched.
func copyValue[T any](dst []byte, v T) int {
	size := int(unsafe.Sizeof(v))
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)

	return copy(dst[:size], src)
}

// copyBlock copies the contiguous representation of vs into dst and returns
// the number of bytes copied. vs must be non-empty.
func copyBlock[T any](dst []byte, vs []T) int {
	size := len(vs) * int(unsafe.Sizeof(vs[0]))
	src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), size)

	return copy(dst[:size], src)
}
