package pack

import (
	"unsafe"

	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// Span returns the strategy for a pointer+length span of trivial elements.
//
// The serialized form is [count][element block]: the element count as a
// pointer-sized unsigned integer, then the raw contiguous representation of
// all elements copied in a single block. Fixed arrays are packed through the
// same strategy via arr[:].
//
// A nil slice is a no-op failure (errs.ErrNilInput, nothing written). An
// empty but non-nil span is valid and serializes to a zero count.
func Span[T Trivial]() Strategy[[]T] {
	return spanStrategy[T]{}
}

type spanStrategy[T Trivial] struct{}

func (spanStrategy[T]) elemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (s spanStrategy[T]) Size(vs []T) int {
	return CountSize + len(vs)*s.elemSize()
}

func (s spanStrategy[T]) Pack(c *cursor.Cursor, vs []T) error {
	if vs == nil {
		return errs.ErrNilInput
	}

	// The count and the element block advance separately, so the capacity
	// check must cover both aligned moves.
	payload := len(vs) * s.elemSize()
	if c.AlignedSize(CountSize)+c.AlignedSize(payload) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	mark := c.Offset()
	if err := packCount(c, len(vs)); err != nil {
		return err
	}

	if len(vs) > 0 {
		copyBlock(c.Current(), vs)
		if err := c.Advance(payload); err != nil {
			_ = c.Rewind(mark)
			return err
		}
	}

	return nil
}
