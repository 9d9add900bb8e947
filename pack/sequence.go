package pack

import (
	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// SliceOf returns the strategy for an ordered sequence with recursive
// elements: duplicates allowed, insertion order preserved.
//
// The serialized form is [count][element]*count, each element written by the
// element strategy. An empty (or nil) sequence is never serialized and fails
// with errs.ErrEmptyContainer.
func SliceOf[T any](elem Strategy[T]) Strategy[[]T] {
	return sliceStrategy[T]{elem: elem}
}

type sliceStrategy[T any] struct {
	elem Strategy[T]
}

func (s sliceStrategy[T]) Size(vs []T) int {
	if fs, ok := s.elem.(FixedSizer); ok {
		return CountSize + len(vs)*fs.FixedSize()
	}

	total := CountSize
	for _, v := range vs {
		total += s.elem.Size(v)
	}

	return total
}

func (s sliceStrategy[T]) Pack(c *cursor.Cursor, vs []T) error {
	if len(vs) == 0 {
		return errs.ErrEmptyContainer
	}
	if s.Size(vs) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	return packCounted(c, len(vs), func() error {
		for _, v := range vs {
			if err := s.elem.Pack(c, v); err != nil {
				return err
			}
		}

		return nil
	})
}

// packCounted writes the count prefix and runs emit to write the elements,
// rewinding to the pre-pack offset if anything fails. The pre-write size
// check uses pre-alignment sizes, so with a stride above one the aligned
// per-element advances can still overrun; the rewind keeps the whole pack
// atomic in that case.
func packCounted(c *cursor.Cursor, n int, emit func() error) error {
	mark := c.Offset()

	if err := packCount(c, n); err != nil {
		return err
	}
	if err := emit(); err != nil {
		_ = c.Rewind(mark)
		return err
	}

	return nil
}
