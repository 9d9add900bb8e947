package pack

import (
	"cmp"
	"slices"

	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// Set is the container form shared by the set strategies: a Go map with
// empty struct values.
type Set[K comparable] = map[K]struct{}

// SortedSetOf returns the strategy for an ordered unique set, iterated in
// ascending key order.
//
// The serialized form is [count][element]*count. An empty (or nil) set
// fails with errs.ErrEmptyContainer.
func SortedSetOf[K cmp.Ordered](elem Strategy[K]) Strategy[Set[K]] {
	return sortedSetStrategy[K]{setStrategy[K]{elem: elem}}
}

// SetOf returns the strategy for a hashed (unordered) set.
//
// Elements are written in Go map iteration order: implementation-defined
// and randomized between packs, but internally consistent within one pack
// since a single iteration produces the stream. Two packs of the same set
// are equal sets on the wire, not necessarily equal byte sequences.
func SetOf[K comparable](elem Strategy[K]) Strategy[Set[K]] {
	return setStrategy[K]{elem: elem}
}

type setStrategy[K comparable] struct {
	elem Strategy[K]
}

func (s setStrategy[K]) Size(set Set[K]) int {
	if fs, ok := s.elem.(FixedSizer); ok {
		return CountSize + len(set)*fs.FixedSize()
	}

	total := CountSize
	for k := range set {
		total += s.elem.Size(k)
	}

	return total
}

func (s setStrategy[K]) Pack(c *cursor.Cursor, set Set[K]) error {
	if len(set) == 0 {
		return errs.ErrEmptyContainer
	}
	if s.Size(set) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	return packCounted(c, len(set), func() error {
		for k := range set {
			if err := s.elem.Pack(c, k); err != nil {
				return err
			}
		}

		return nil
	})
}

type sortedSetStrategy[K cmp.Ordered] struct {
	setStrategy[K]
}

func (s sortedSetStrategy[K]) Pack(c *cursor.Cursor, set Set[K]) error {
	if len(set) == 0 {
		return errs.ErrEmptyContainer
	}
	if s.Size(set) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	keys := make([]K, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return packCounted(c, len(keys), func() error {
		for _, k := range keys {
			if err := s.elem.Pack(c, k); err != nil {
				return err
			}
		}

		return nil
	})
}
