// Package packbuf provides a generic binary-packing engine over a
// caller-owned, fixed-size memory region.
//
// Values are serialized strictly in sequence through per-category packing
// strategies (see the pack package) against a write cursor (see the cursor
// package) that tracks position, remaining capacity and an alignment stride.
// Sizes are computed ahead of every write, so a pack either fits and commits
// whole, or fails and leaves the cursor untouched.
//
// # Core Properties
//
//   - The engine never allocates, grows or frees the destination region
//   - Compile-time (generics) strategy resolution, no reflection
//   - Exact pre-flight sizing: SizeOf/SizeWith need no cursor
//   - Every advance is rounded up to the configured alignment stride
//   - Failed packs are atomic: no partial bytes, offset unchanged
//   - Host-native wire layout: raw representation bytes plus pointer-sized
//     count prefixes for variable-length forms
//
// # Basic Usage
//
//	region := make([]byte, 64)
//	cur, _ := packbuf.New(region, cursor.WithAlignment(4))
//
//	_ = packbuf.Pack(cur, int32(42))          // trivial scalar
//	_ = packbuf.PackString(cur, "ab")         // null-terminated string
//	_ = packbuf.PackSpan(cur, []uint16{1, 2}) // count + raw block
//
//	packed := cur.Bytes() // region[:written]
//
// Container values compose strategies explicitly:
//
//	routes := map[uint32]string{7: "a", 9: "bc"}
//	s := pack.SortedMapOf(pack.Scalar[uint32](), pack.CString())
//	_ = packbuf.PackWith(cur, s, routes)
//
// # Sessions
//
// One cursor is one packing session bound to one region. Reset rewinds it to
// offset zero for reuse; the engine provides no locking, so concurrent
// sessions over the same region require external mutual exclusion.
package packbuf

import (
	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/internal/hash"
	"github.com/arloliu/packbuf/internal/pool"
	"github.com/arloliu/packbuf/pack"
)

// New creates a packing session over the caller-owned region. The region
// length is the session capacity; the alignment stride defaults to the host
// integer width and can be overridden with cursor.WithAlignment.
func New(region []byte, opts ...cursor.Option) (*cursor.Cursor, error) {
	return cursor.New(region, opts...)
}

// Pack writes a trivial scalar value at the cursor's current position.
//
// Every entry point is generic over the value's static type, so there is no
// way to pass an untyped nil: null values are rejected at compile time.
func Pack[T pack.Trivial](c *cursor.Cursor, v T) error {
	return pack.Scalar[T]().Pack(c, v)
}

// PackSpan writes a pointer+length span of trivial elements: the element
// count followed by the raw element block. A nil slice fails with
// errs.ErrNilInput. Fixed arrays pack through the same form via arr[:].
func PackSpan[T pack.Trivial](c *cursor.Cursor, vs []T) error {
	return pack.Span[T]().Pack(c, vs)
}

// PackString writes a null-terminated string: the bytes of s followed by a
// NUL terminator, no count prefix. An interior NUL in s delimits the
// content; see pack.CString.
func PackString(c *cursor.Cursor, s string) error {
	return pack.CString().Pack(c, s)
}

// PackWith writes v through an explicitly composed strategy. This is the
// entry point for containers and nested forms:
//
//	s := pack.SliceOf(pack.CString())
//	err := packbuf.PackWith(cur, s, []string{"a", "bc"})
func PackWith[T any](c *cursor.Cursor, s pack.Strategy[T], v T) error {
	return s.Pack(c, v)
}

// SizeOf returns the serialized size of a trivial scalar: its native width.
// No cursor is needed, so callers can pre-size a destination region before
// opening a session.
func SizeOf[T pack.Trivial](v T) int {
	return pack.Scalar[T]().Size(v)
}

// SpanSizeOf returns the serialized size of a span: count prefix plus the
// raw element block.
func SpanSizeOf[T pack.Trivial](vs []T) int {
	return pack.Span[T]().Size(vs)
}

// StringSizeOf returns the serialized size of a null-terminated string:
// the content through the first NUL, terminator included (len(s)+1 for a
// NUL-free string).
func StringSizeOf(s string) int {
	return pack.CString().Size(s)
}

// SizeWith returns the serialized size of v under an explicitly composed
// strategy, recursing into container elements. Sizes are pre-alignment.
func SizeWith[T any](s pack.Strategy[T], v T) int {
	return s.Size(v)
}

// Marshal packs a single value into a newly allocated, exactly sized byte
// slice and returns it.
//
// It sizes the value, borrows a pooled scratch region, packs with a stride
// of one (no padding, so the packed size equals the computed size), and
// copies the result out. Use the cursor path instead when the destination
// region is caller-owned or when values are packed in sequence.
func Marshal[T any](s pack.Strategy[T], v T) ([]byte, error) {
	bb := pool.GetScratch()
	defer pool.PutScratch(bb)

	region := bb.Region(s.Size(v))
	c, err := cursor.New(region, cursor.WithAlignment(1))
	if err != nil {
		return nil, err
	}

	if err := s.Pack(c, v); err != nil {
		return nil, err
	}

	out := make([]byte, c.Written())
	copy(out, c.Bytes())

	return out, nil
}

// Fingerprint returns the xxHash64 of a packed region, for integrity checks
// of stored or transmitted regions. The fingerprint is deterministic for a
// given byte sequence; note that unordered containers do not guarantee a
// stable byte sequence across packs.
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
