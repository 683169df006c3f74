package pool

import (
	"sync"
)

const (
	// BlobBufferDefaultSize covers a full W=8 table payload without growth.
	BlobBufferDefaultSize = 16 * 1024
	// BlobBufferMaxThreshold caps what the pool retains; payloads for large
	// window widths are better returned to the allocator.
	BlobBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper used to assemble table artifact
// payloads without repeated allocations.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while retaining its allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by the default size, larger ones by a
// quarter of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := BlobBufferDefaultSize
	if cap(bb.B) > 4*BlobBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var blobBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlobBufferDefaultSize)
	},
}

// GetBlobBuffer returns an empty ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := blobBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped so the pool does not pin large table payloads.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BlobBufferMaxThreshold {
		return
	}

	blobBufferPool.Put(bb)
}
