// Package pool provides a pooled, growable byte buffer used as the default
// implementation of the encode-time allocator collaborator (spec §6).
package pool

import "sync"

// RecordBufferDefaultSize is the default capacity of a ByteBuffer drawn from
// the package's default pool. Most geometries (points, short line strings)
// encode well under this; it avoids a reallocation for the common case
// without over-committing memory for a pool entry.
const (
	RecordBufferDefaultSize  = 256        // 256B, fits an uncapped point/linestring header+body
	RecordBufferMaxThreshold = 1024 * 256 // 256KiB, buffers larger than this are not pooled
)

// ByteBuffer is a growable []byte with pool-friendly Reset/Grow semantics.
// treecodec's default PoolAllocator draws one from a ByteBufferPool and
// hands its bytes to Encode as the record; the buffer is not put back.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if its remaining capacity is insufficient, so fixed-size
// fields can then be written at precomputed offsets rather than via append.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

func (bb *ByteBuffer) extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// Grow grows the buffer so it can hold at least requiredBytes more bytes
// without reallocating. Does nothing if capacity is already sufficient.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers, bounded by a maximum
// capacity threshold so an unusually large record doesn't permanently
// inflate the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
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

var defaultPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)

// GetRecordBuffer retrieves a ByteBuffer from the default pool.
func GetRecordBuffer() *ByteBuffer {
	return defaultPool.Get()
}

// PutRecordBuffer returns a ByteBuffer to the default pool.
func PutRecordBuffer(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
