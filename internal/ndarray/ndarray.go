package ndarray

import (
	"fmt"
	"log/slog"
	"runtime"
)

// NDArray is a view over a shared Buffer through a Layout.
//
// Views produced by Get, Transposed, Tiled, ExpandDimensions, Clone and
// broadcasting share the buffer of their source and cost O(rank). Writes go
// through copy-on-write: an array only mutates its buffer in place when it
// holds the sole reference and its layout is an identity view, so a mutation
// is never visible through another array.
//
// Assigning the pointer (b := a) does not create a new array; use Clone for a
// second handle on the same data.
//
// Concurrent reads are safe. Concurrent writes through arrays that share a
// buffer must be serialized by the caller.
type NDArray[T any] struct {
	ref    *bufferRef[T]
	layout Layout
}

// newArray wraps buf, whose reference has already been taken for the new
// handle. The reference is dropped by Release or when the handle is collected.
func newArray[T any](buf *Buffer[T], layout Layout) *NDArray[T] {
	a := &NDArray[T]{ref: newBufferRef(buf), layout: layout}
	runtime.AddCleanup(a, func(r *bufferRef[T]) { r.release() }, a.ref)
	return a
}

// fromLayout allocates a zeroed contiguous array of shape.
func fromLayout[T any](shape Shape) *NDArray[T] {
	return newArray(newBuffer[T](shape.NumElements()), NewLayout(shape))
}

// view returns a new handle on the same buffer with a different layout.
func (a *NDArray[T]) view(layout Layout) *NDArray[T] {
	buf := a.ref.buf
	buf.addRef()
	runtime.KeepAlive(a)
	return newArray(buf, layout)
}

func (a *NDArray[T]) data() []T {
	return a.ref.buf.data
}

// Shape returns the visible shape.
func (a *NDArray[T]) Shape() Shape {
	return a.layout.Shape().Clone()
}

// Rank returns the number of visible axes.
func (a *NDArray[T]) Rank() int {
	return a.layout.Rank()
}

// Size returns the number of elements in the view.
func (a *NDArray[T]) Size() int {
	return a.layout.Size()
}

// DType returns the runtime element type.
func (a *NDArray[T]) DType() DataType {
	return inferDataType[T]()
}

// Layout returns the view's layout.
func (a *NDArray[T]) Layout() Layout {
	return a.layout
}

// Buffer returns the shared buffer. Writing to it bypasses copy-on-write.
func (a *NDArray[T]) Buffer() *Buffer[T] {
	return a.ref.buf
}

// IsUnique reports whether this handle is the only one on its buffer.
func (a *NDArray[T]) IsUnique() bool {
	return a.ref.buf.IsUnique()
}

// IsView reports whether the layout differs from a contiguous identity layout.
func (a *NDArray[T]) IsView() bool {
	return !a.layout.IsIdentity()
}

// SharesBuffer reports whether a and other read from the same buffer.
func (a *NDArray[T]) SharesBuffer(other *NDArray[T]) bool {
	return a.ref.buf == other.ref.buf
}

// String returns a short description of the array.
func (a *NDArray[T]) String() string {
	return fmt.Sprintf("NDArray[%s]%v", a.DType(), a.layout.Shape())
}

// Clone returns a second handle sharing the buffer and layout.
// The buffer is copied only when one of the handles is written to.
//
// Example:
//
//	b := a.Clone()
//	a.SetScalar(9, ndarray.All) // a copies; b still sees the old values
func (a *NDArray[T]) Clone() *NDArray[T] {
	return a.view(a.layout)
}

// Release drops this handle's reference on the buffer. The array must not be
// used afterwards. Releasing is optional: unreachable handles are released by
// the runtime, but an explicit Release lets a remaining handle write in place
// sooner.
func (a *NDArray[T]) Release() {
	a.ref.release()
}

// Copy returns a dense contiguous copy of the view.
func (a *NDArray[T]) Copy() *NDArray[T] {
	shape := a.layout.Shape().Clone()
	return newArray(wrapBuffer(a.ToSlice()), NewLayout(shape))
}

// ToSlice returns the elements of the view in row-major order, in a new slice.
func (a *NDArray[T]) ToSlice() []T {
	return gather(a.data(), a.layout)
}

// gather reads the elements addressed by l, in row-major order, into a new
// slice.
func gather[T any](src []T, l Layout) []T {
	n := l.Size()
	out := make([]T, n)
	if l.IsIdentity() {
		copy(out, src[:n])
		return out
	}
	for pos, index := range IndexSequence(0, n, l.Shape()) {
		out[pos] = src[l.LinearIndex(index)]
	}
	return out
}

// ensureWritable densifies the array unless it holds the sole reference on
// its buffer and its layout is an identity view.
func (a *NDArray[T]) ensureWritable() {
	unique := a.ref.buf.IsUnique()
	identity := a.layout.IsIdentity() && a.ref.buf.Len() == a.layout.Size()
	if unique && identity {
		return
	}
	slog.Debug("ndarray: copy-on-write", "shape", a.layout.Shape(), "unique", unique, "identity", identity)

	shape := a.layout.Shape().Clone()
	a.ref.swap(wrapBuffer(a.ToSlice()))
	a.layout = NewLayout(shape)
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *NDArray[T]) At(indices ...int) T {
	a.layout.checkIndex("at", indices)
	return a.data()[a.layout.LinearIndex(indices)]
}

// SetAt sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *NDArray[T]) SetAt(value T, indices ...int) {
	a.layout.checkIndex("set", indices)
	a.ensureWritable()
	a.data()[a.layout.LinearIndex(indices)] = value
}

// Fill sets every element to value.
func (a *NDArray[T]) Fill(value T) {
	a.ensureWritable()
	data := a.data()
	for i := range data {
		data[i] = value
	}
}

// Scalarized returns the only element of a rank-0 or shape [1] array.
func (a *NDArray[T]) Scalarized() T {
	shape := a.layout.Shape()
	if len(shape) > 1 || shape.NumElements() != 1 {
		fault(InvalidScalarConversion, "scalarized", "cannot convert array of shape %v to a scalar", shape)
	}
	return a.data()[a.layout.LinearIndex([]int{0}[:len(shape)])]
}

// Item is an alias of Scalarized.
func (a *NDArray[T]) Item() T {
	return a.Scalarized()
}
