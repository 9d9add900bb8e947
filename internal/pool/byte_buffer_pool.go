// Package pool provides pooled scratch regions for the convenience packing
// paths that allocate on behalf of the caller.
package pool

import "sync"

const (
	// ScratchDefaultSize is the initial capacity of a pooled scratch region.
	ScratchDefaultSize = 1024 * 4 // 4KiB
	// ScratchMaxThreshold is the largest region retained by the pool.
	// Larger regions are dropped to avoid memory bloat.
	ScratchMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a reusable byte region. Unlike bytes.Buffer it exposes its
// backing slice directly so a packing cursor can be bound to it.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Region resizes the buffer to exactly n zeroed bytes and returns it,
// reallocating only when the current capacity is insufficient.
func (bb *ByteBuffer) Region(n int) []byte {
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	} else {
		bb.B = bb.B[:n]
		clear(bb.B)
	}

	return bb.B
}

// ByteBufferPool is a sync.Pool of ByteBuffers with a retention threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of defaultSize capacity
// and discarding returned buffers larger than maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(ScratchDefaultSize, ScratchMaxThreshold)

// GetScratch retrieves a scratch ByteBuffer from the default pool.
func GetScratch() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratch returns a scratch ByteBuffer to the default pool.
func PutScratch(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
