package ndarray

// Transposed permutes the axes. This is a view operation (no data copy).
//
// An empty permutation reverses all axes. A shorter permutation reorders the
// leading axes and keeps the remaining ones in order.
//
// Example:
//
//	x := ndarray.Zeros[float32](ndarray.Shape{2, 3, 4})
//	x.Transposed(2, 0, 1) // Shape: [4, 2, 3]
//	x.Transposed()        // Shape: [4, 3, 2]
func (a *NDArray[T]) Transposed(perm ...int) *NDArray[T] {
	return a.view(a.layout.Transposed(perm))
}

// T is a shortcut for 2D transpose (swaps rows and columns).
// Panics if the array is not 2D.
func (a *NDArray[T]) T() *NDArray[T] {
	if a.Rank() != 2 {
		fault(RangeSpecArity, "transpose", "T() only works for 2D arrays, got shape %v", a.layout.Shape())
	}
	return a.Transposed(1, 0)
}

// Tiled repeats each axis reps[axis] times without copying.
//
// Example:
//
//	x := ndarray.FromVector([]int{1, 2})
//	x.Tiled(3).ToSlice() // [1 2 1 2 1 2]
func (a *NDArray[T]) Tiled(reps ...int) *NDArray[T] {
	return a.view(a.layout.Tiled(reps))
}

// ExpandDimensions adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing.
// This is a view operation (no data copy).
//
// Example:
//
//	x := ndarray.Zeros[float32](ndarray.Shape{2, 3})
//	x.ExpandDimensions(1)  // Shape: [2, 1, 3]
//	x.ExpandDimensions(-1) // Shape: [2, 3, 1]
func (a *NDArray[T]) ExpandDimensions(axis int) *NDArray[T] {
	return a.view(a.layout.ExpandDimensions(axis))
}

// Unsqueeze is an alias of ExpandDimensions.
func (a *NDArray[T]) Unsqueeze(axis int) *NDArray[T] {
	return a.ExpandDimensions(axis)
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1.
// Supports negative dim indexing.
// This is a view operation (no data copy).
func (a *NDArray[T]) Squeeze(axis int) *NDArray[T] {
	return a.view(a.layout.Squeezed(axis))
}

// Reshape returns an array with the same elements in a different shape.
// One dimension may be -1 and is inferred from the others.
//
// Identity views share the buffer; any other view is densified first.
//
// Example:
//
//	t := ndarray.Arange[int32](0, 12, 1) // Shape: [12]
//	t.Reshape(3, -1)                     // Shape: [3, 4]
func (a *NDArray[T]) Reshape(shape ...int) *NDArray[T] {
	target := inferShape(Shape(shape), a.Size())
	if a.layout.IsIdentity() {
		return a.view(NewLayout(target))
	}
	c := a.Copy()
	c.layout = NewLayout(target)
	return c
}

// Flatten returns a rank-1 array with the elements in row-major order.
func (a *NDArray[T]) Flatten() *NDArray[T] {
	return a.Reshape(-1)
}

func inferShape(shape Shape, size int) Shape {
	out := shape.Clone()
	unknown := -1
	known := 1
	for i, n := range out {
		switch {
		case n == -1 && unknown < 0:
			unknown = i
		case n < 0:
			fault(ShapeMismatch, "reshape", "invalid shape %v", shape)
		default:
			known *= n
		}
	}
	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			fault(ShapeMismatch, "reshape", "cannot reshape %d elements into %v", size, shape)
		}
		out[unknown] = size / known
	}
	if out.NumElements() != size {
		fault(ShapeMismatch, "reshape", "cannot reshape %d elements into %v", size, shape)
	}
	return out
}
