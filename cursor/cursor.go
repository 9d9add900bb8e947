// Package cursor implements the write cursor that tracks position, capacity
// and alignment over a caller-owned destination region.
//
// A Cursor is bound to a fixed-size byte region at construction and never
// allocates, grows or frees it. Every forward or backward move is rounded up
// to the configured alignment stride before being applied, and the cursor
// guarantees 0 <= offset <= capacity at all times: a move that would violate
// the invariant fails without changing the offset.
//
// The cursor is the bookkeeping half of the packing engine; the packing
// strategies in the pack package consult it for remaining capacity, write
// into the view returned by Current, and advance it afterwards.
//
// A Cursor is not safe for concurrent use. If two packing sessions must
// target the same region, the caller provides external mutual exclusion.
package cursor

import (
	"strconv"

	"github.com/arloliu/packbuf/errs"
	"github.com/arloliu/packbuf/internal/options"
)

// DefaultAlignment is the default alignment stride: the host integer width
// in bytes.
const DefaultAlignment = strconv.IntSize / 8

// Option configures a Cursor during construction.
type Option = options.Option[*Cursor]

// WithAlignment sets the alignment stride in bytes. The stride is fixed for
// the lifetime of the cursor and must be a positive power of two; a stride
// of 1 disables padding entirely.
func WithAlignment(stride int) Option {
	return options.New(func(c *Cursor) error {
		if stride <= 0 || stride&(stride-1) != 0 {
			return errs.ErrInvalidAlignment
		}
		c.stride = stride

		return nil
	})
}

// Cursor tracks the current write position within a caller-owned region.
//
// The zero value is not usable; construct with New.
type Cursor struct {
	region []byte
	offset int
	stride int
}

// New creates a Cursor bound to the given region. The region's length is the
// fixed capacity of the packing session; the cursor starts at offset 0 with
// the default alignment stride unless overridden by WithAlignment.
//
// The caller retains ownership of the region and is responsible for its
// lifetime.
//
// Returns:
//   - *Cursor: The cursor positioned at the start of the region.
//   - error: errs.ErrNilRegion for a nil region, or an option error.
func New(region []byte, opts ...Option) (*Cursor, error) {
	if region == nil {
		return nil, errs.ErrNilRegion
	}

	c := &Cursor{
		region: region,
		stride: DefaultAlignment,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// AlignedSize returns n rounded up to the nearest multiple of the alignment
// stride. Negative sizes round to 0.
func (c *Cursor) AlignedSize(n int) int {
	if n <= 0 {
		return 0
	}

	chunks := n / c.stride
	if n%c.stride != 0 {
		chunks++
	}

	return chunks * c.stride
}

// Advance moves the cursor forward by n bytes rounded up to the alignment
// stride.
//
// Returns errs.ErrCapacityExceeded without moving when the aligned advance
// would pass the end of the region. A negative n is a backward move and is
// rejected with errs.ErrUnderflow; only Retreat moves the offset back.
func (c *Cursor) Advance(n int) error {
	if n < 0 {
		return errs.ErrUnderflow
	}

	aligned := c.AlignedSize(n)
	if c.offset+aligned > len(c.region) {
		return errs.ErrCapacityExceeded
	}

	c.offset += aligned

	return nil
}

// Retreat moves the cursor backward by n bytes rounded up to the alignment
// stride.
//
// Returns errs.ErrUnderflow without moving when the aligned retreat would
// pass the start of the region. A negative n is a forward move and is
// rejected with errs.ErrCapacityExceeded; only Advance moves the offset
// forward.
func (c *Cursor) Retreat(n int) error {
	if n < 0 {
		return errs.ErrCapacityExceeded
	}

	aligned := c.AlignedSize(n)
	if aligned > c.offset {
		return errs.ErrUnderflow
	}

	c.offset -= aligned

	return nil
}

// Rewind restores the cursor to an absolute offset previously obtained from
// Offset. It is the restore half of the mark/restore pair that keeps a
// failed multi-part pack atomic.
//
// Returns errs.ErrUnderflow when offset is negative or past the current
// position.
func (c *Cursor) Rewind(offset int) error {
	if offset < 0 || offset > c.offset {
		return errs.ErrUnderflow
	}

	c.offset = offset

	return nil
}

// Reset rewinds the cursor fully to offset 0 in one bounded step.
func (c *Cursor) Reset() {
	c.offset = 0
}

// Current returns a writable view of the region starting at the current
// offset. The view is valid only until the next Advance, Retreat, Rewind or
// Reset.
func (c *Cursor) Current() []byte {
	return c.region[c.offset:]
}

// Remaining returns the number of bytes between the current offset and the
// end of the region.
func (c *Cursor) Remaining() int {
	return len(c.region) - c.offset
}

// Offset returns the current write offset in bytes.
func (c *Cursor) Offset() int {
	return c.offset
}

// Written returns the number of bytes committed so far. It equals Offset.
func (c *Cursor) Written() int {
	return c.offset
}

// Capacity returns the fixed total capacity of the region.
func (c *Cursor) Capacity() int {
	return len(c.region)
}

// Stride returns the alignment stride in bytes.
func (c *Cursor) Stride() int {
	return c.stride
}

// Bytes returns the packed prefix of the region, region[:offset]. The caller
// must not modify it while the session is active.
func (c *Cursor) Bytes() []byte {
	return c.region[:c.offset]
}

// Data returns the entire underlying region.
func (c *Cursor) Data() []byte {
	return c.region
}
