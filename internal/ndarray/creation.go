package ndarray

// FromSlice creates an array of the given shape from row-major data.
// The slice is copied into the array's memory.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, newError(ShapeMismatch, "from slice", "invalid shape: %v", err)
	}
	if shape.NumElements() != len(data) {
		return nil, newError(ShapeMismatch, "from slice",
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newArray(wrapBuffer(buf), NewLayout(shape.Clone())), nil
}

// MustFromSlice is FromSlice that faults instead of returning an error.
func MustFromSlice[T any](data []T, shape Shape) *NDArray[T] {
	a, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

// FromVector creates a rank-1 array holding a copy of data.
func FromVector[T any](data []T) *NDArray[T] {
	return MustFromSlice(data, Shape{len(data)})
}

// FromScalar creates a rank-0 array holding v.
func FromScalar[T any](v T) *NDArray[T] {
	return newArray(wrapBuffer([]T{v}), NewLayout(Shape{}))
}

// Zeros creates an array filled with the zero value of T.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape{3, 4})
func Zeros[T any](shape Shape) *NDArray[T] {
	if err := shape.Validate(); err != nil {
		fault(ShapeMismatch, "zeros", "%v", err)
	}
	// Data is already zero-initialized by make()
	return fromLayout[T](shape.Clone())
}

// ZerosLike creates a zeroed array with the shape of a.
func ZerosLike[T any](a *NDArray[T]) *NDArray[T] {
	return Zeros[T](a.Shape())
}

// Full creates an array filled with value.
//
// Example:
//
//	a := ndarray.Full(ndarray.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) *NDArray[T] {
	a := Zeros[T](shape)
	data := a.data()
	for i := range data {
		data[i] = value
	}
	return a
}

// Ones creates an array filled with ones.
func Ones[T Number](shape Shape) *NDArray[T] {
	return Full(shape, T(1))
}

// Arange creates a rank-1 array with values from start up to, but excluding,
// stop, spaced by step.
//
// Example:
//
//	a := ndarray.Arange(0, 10, 2) // [0 2 4 6 8]
func Arange[T Number](start, stop, step T) *NDArray[T] {
	if step == 0 {
		fault(IndexOutOfRange, "arange", "step cannot be zero")
	}
	data := []T{}
	if step > 0 {
		for v := start; v < stop; v += step {
			data = append(data, v)
		}
	} else {
		for v := start; v > stop; v += step {
			data = append(data, v)
		}
	}
	return newArray(wrapBuffer(data), NewLayout(Shape{len(data)}))
}
