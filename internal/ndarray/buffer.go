package ndarray

import (
	"sync"
	"sync/atomic"
)

// Buffer is a reference-counted flat store shared by every view of an array.
// Each NDArray handle owns one reference; a write is only done in place when
// the writer holds the sole reference.
type Buffer[T any] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a zeroed buffer with refCount = 1.
func newBuffer[T any](n int) *Buffer[T] {
	return wrapBuffer(make([]T, n))
}

// wrapBuffer takes ownership of data without copying it.
func wrapBuffer[T any](data []T) *Buffer[T] {
	buf := &Buffer[T]{data: data}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count for a new handle.
func (b *Buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the data at zero.
func (b *Buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// IsUnique returns true if exactly one handle references the buffer.
func (b *Buffer[T]) IsUnique() bool {
	return b.refCount.Load() == 1
}

// Refs returns the current reference count.
func (b *Buffer[T]) Refs() int {
	return int(b.refCount.Load())
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// bufferRef is the single reference an NDArray handle holds. It is the
// argument of the handle's runtime cleanup, so it must not point back to the
// handle.
type bufferRef[T any] struct {
	buf      *Buffer[T]
	released atomic.Bool
}

func newBufferRef[T any](buf *Buffer[T]) *bufferRef[T] {
	return &bufferRef[T]{buf: buf}
}

// release drops the reference once; later calls are no-ops.
func (r *bufferRef[T]) release() {
	if r.released.CompareAndSwap(false, true) {
		r.buf.release()
	}
}

// swap releases the current buffer and takes ownership of buf.
func (r *bufferRef[T]) swap(buf *Buffer[T]) {
	old := r.buf
	r.buf = buf
	if !r.released.Load() {
		old.release()
	}
	r.released.Store(false)
}
