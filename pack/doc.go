// Package pack implements the type-dispatch layer of the packing engine:
// one strategy per value category, each pairing a size computation with a
// capacity-checked write against a cursor.Cursor.
//
// # Strategies
//
// A Strategy[T] knows how to serialize values of one category:
//
//   - Scalar[T]: trivial fixed-width values, copied verbatim
//   - Span[T]: pointer+length spans of trivial elements, block-copied
//   - CString: null-terminated strings, no count prefix
//   - Terminated: fixed-size byte buffers holding a terminated string
//   - SliceOf: ordered sequences, recursive elements
//   - SortedSetOf: unique sets iterated in ascending key order
//   - SetOf: hashed sets, implementation-defined order
//   - PairOf: two heterogeneous slots, no count prefix
//   - SortedMapOf: maps iterated in ascending key order
//   - MapOf: hashed maps, implementation-defined order
//
// Container strategies are parameterized by their element strategies and
// compose recursively:
//
//	s := pack.SliceOf(pack.SortedMapOf(pack.Scalar[uint32](), pack.CString()))
//	err := s.Pack(cur, values)
//
// # Wire layout
//
// The layout is host-native: scalars are raw representation bytes, every
// variable-length form is [count][element]*count with a pointer-sized count,
// except null-terminated strings whose terminator is the delimiter and pairs
// whose arity is fixed. There is no version byte, magic number or endianness
// tag; decode with endian.Native on the producing host.
//
// # Failure semantics
//
// Size and Pack share one source of truth per category: Pack consumes
// exactly Size(v) bytes before alignment rounding. A failed Pack commits
// nothing; the cursor offset is unchanged. Empty containers and nil spans
// are never serialized: they fail with errs.ErrEmptyContainer and
// errs.ErrNilInput respectively, so an absent value and an empty value are
// indistinguishable on the wire.
package pack
