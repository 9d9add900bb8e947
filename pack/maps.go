package pack

import (
	"cmp"
	"slices"

	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// SortedMapOf returns the strategy for an ordered map, iterated in ascending
// key order.
//
// The serialized form is [count][key][value]*count. An empty (or nil) map
// fails with errs.ErrEmptyContainer.
func SortedMapOf[K cmp.Ordered, V any](key Strategy[K], val Strategy[V]) Strategy[map[K]V] {
	return sortedMapStrategy[K, V]{mapStrategy[K, V]{key: key, val: val}}
}

// MapOf returns the strategy for a hashed (unordered) map.
//
// Entries are written in Go map iteration order: implementation-defined and
// randomized between packs, but internally consistent within one pack. Two
// packs of the same map are equal maps on the wire, not necessarily equal
// byte sequences.
func MapOf[K comparable, V any](key Strategy[K], val Strategy[V]) Strategy[map[K]V] {
	return mapStrategy[K, V]{key: key, val: val}
}

type mapStrategy[K comparable, V any] struct {
	key Strategy[K]
	val Strategy[V]
}

func (m mapStrategy[K, V]) Size(mp map[K]V) int {
	kf, keyFixed := m.key.(FixedSizer)
	vf, valFixed := m.val.(FixedSizer)
	if keyFixed && valFixed {
		return CountSize + len(mp)*(kf.FixedSize()+vf.FixedSize())
	}

	total := CountSize
	for k, v := range mp {
		total += m.key.Size(k) + m.val.Size(v)
	}

	return total
}

func (m mapStrategy[K, V]) Pack(c *cursor.Cursor, mp map[K]V) error {
	if len(mp) == 0 {
		return errs.ErrEmptyContainer
	}
	if m.Size(mp) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	return packCounted(c, len(mp), func() error {
		for k, v := range mp {
			if err := m.packEntry(c, k, v); err != nil {
				return err
			}
		}

		return nil
	})
}

func (m mapStrategy[K, V]) packEntry(c *cursor.Cursor, k K, v V) error {
	if err := m.key.Pack(c, k); err != nil {
		return err
	}

	return m.val.Pack(c, v)
}

type sortedMapStrategy[K cmp.Ordered, V any] struct {
	mapStrategy[K, V]
}

func (m sortedMapStrategy[K, V]) Pack(c *cursor.Cursor, mp map[K]V) error {
	if len(mp) == 0 {
		return errs.ErrEmptyContainer
	}
	if m.Size(mp) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	keys := make([]K, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return packCounted(c, len(keys), func() error {
		for _, k := range keys {
			if err := m.packEntry(c, k, mp[k]); err != nil {
				return err
			}
		}

		return nil
	})
}
