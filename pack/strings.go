package pack

import (
	"bytes"
	"strings"

	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// CString returns the strategy for a null-terminated string.
//
// The serialized form is the string bytes followed by a single NUL
// terminator, with no count prefix: the terminator itself is the delimiter.
// This is deliberately asymmetric with the other variable-length forms; the
// decode side must already know a string comes next. Size is len(s)+1 for a
// NUL-free string, and an empty string serializes to the lone terminator.
//
// Because the terminator delimits the value on the wire, the content of a
// Go string holding an interior NUL runs only through that first NUL; the
// bytes after it are not representable in this form and are dropped.
func CString() Strategy[string] {
	return cstringStrategy{}
}

type cstringStrategy struct{}

func (cstringStrategy) Size(s string) int {
	if idx := strings.IndexByte(s, 0); idx >= 0 {
		return idx + 1
	}

	return len(s) + 1
}

func (cs cstringStrategy) Pack(c *cursor.Cursor, s string) error {
	size := cs.Size(s)
	if c.AlignedSize(size) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	dst := c.Current()
	n := copy(dst, s[:size-1])
	dst[n] = 0

	return c.Advance(size)
}

// Terminated returns the strategy for a fixed-size byte buffer holding a
// null-terminated string, reusing the CString size and layout: the content
// runs through the first NUL in the buffer. A buffer without a NUL is
// treated as all content and a terminator is appended on the wire.
//
// A nil buffer is a no-op failure (errs.ErrNilInput, nothing written).
func Terminated() Strategy[[]byte] {
	return terminatedStrategy{}
}

type terminatedStrategy struct{}

func (terminatedStrategy) Size(buf []byte) int {
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		return idx + 1
	}

	return len(buf) + 1
}

func (ts terminatedStrategy) Pack(c *cursor.Cursor, buf []byte) error {
	if buf == nil {
		return errs.ErrNilInput
	}

	size := ts.Size(buf)
	if c.AlignedSize(size) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	dst := c.Current()
	n := copy(dst, buf[:size-1])
	dst[n] = 0

	return c.Advance(size)
}
