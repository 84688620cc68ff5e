package ndarray

import "gonum.org/v1/gonum/floats"

// reducedAxes normalizes axes against rank and returns a mask of the reduced
// axes.
func reducedAxes(op string, axes []int, rank int) []bool {
	mask := make([]bool, rank)
	for _, axis := range axes {
		n := normalizeAxis(op, axis, rank)
		if mask[n] {
			fault(RangeSpecArity, op, "axis %d repeated in %v", n, axes)
		}
		mask[n] = true
	}
	return mask
}

// splitShape separates shape into the kept and the reduced lengths.
func splitShape(shape Shape, reduced []bool) (kept, reducing Shape) {
	kept, reducing = Shape{}, Shape{}
	for axis, n := range shape {
		if reduced[axis] {
			reducing = append(reducing, n)
		} else {
			kept = append(kept, n)
		}
	}
	return kept, reducing
}

func allAxes(rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = i
	}
	return axes
}

// Reduce folds a along axes into an accumulator with the shape of a without
// the reduced axes.
//
// For every combination of indexes along the reduced axes, the view fixing
// those indexes (and keeping every other axis whole) is folded elementwise into
// the accumulator with f. initial is broadcast to the kept shape and copied;
// it is never modified.
//
// Example:
//
//	rowSums := ndarray.Reduce(a, []int{1}, ndarray.FromScalar(0.0),
//		func(acc, x float64) float64 { return acc + x })
func Reduce[T, A any](a *NDArray[T], axes []int, initial *NDArray[A], f func(A, T) A) *NDArray[A] {
	rank := a.Rank()
	reduced := reducedAxes("reduce", axes, rank)
	kept, reducing := splitShape(a.layout.Shape(), reduced)

	acc := gather(initial.data(), broadcastLayoutTo("reduce", initial.layout, kept))
	src := a.data()

	ranges := make([]Range, rank)
	for axis := range ranges {
		ranges[axis] = All
	}
	for _, rindex := range IndexSequence(0, reducing.NumElements(), reducing) {
		k := 0
		for axis := range ranges {
			if reduced[axis] {
				ranges[axis] = Index(rindex[k])
				k++
			}
		}
		view := a.layout.Subscript(ranges)
		for pos, index := range IndexSequence(0, len(acc), kept) {
			acc[pos] = f(acc[pos], src[view.LinearIndex(index)])
		}
	}
	return newArray(wrapBuffer(acc), NewLayout(kept))
}

// Sum adds the elements of a along axes. Without axes it sums everything and
// returns a rank-0 array.
//
// Example:
//
//	ndarray.Sum(a, 0)      // column sums of a matrix
//	ndarray.Sum(a).Item()  // total
func Sum[T Number](a *NDArray[T], axes ...int) *NDArray[T] {
	if len(axes) == 0 {
		if total, ok := sumContiguousFloat64(a); ok {
			return FromScalar(total)
		}
		axes = allAxes(a.Rank())
	}
	return Reduce(a, axes, FromScalar(T(0)), func(acc, x T) T { return acc + x })
}

// sumContiguousFloat64 sums a float64 identity view with gonum.
func sumContiguousFloat64[T Number](a *NDArray[T]) (T, bool) {
	data, ok := any(a.data()).([]float64)
	if !ok || !a.layout.IsIdentity() {
		return 0, false
	}
	return any(floats.Sum(data[:a.layout.Size()])).(T), true
}

// Mean averages the elements of a along axes. Without axes it averages
// everything.
func Mean[T Float](a *NDArray[T], axes ...int) *NDArray[T] {
	if len(axes) == 0 {
		axes = allAxes(a.Rank())
	}
	reduced := reducedAxes("mean", axes, a.Rank())
	_, reducing := splitShape(a.layout.Shape(), reduced)
	count := T(reducing.NumElements())

	sum := Sum(a, axes...)
	data := sum.data()
	for i := range data {
		data[i] /= count
	}
	return sum
}

// Max returns the largest elements of a along axes. Without axes it reduces
// everything. Reducing an empty axis is a fault.
func Max[T Ordered](a *NDArray[T], axes ...int) *NDArray[T] {
	return extremum("max", a, axes, func(acc, x T) T { return max(acc, x) })
}

// Min returns the smallest elements of a along axes. Without axes it reduces
// everything. Reducing an empty axis is a fault.
func Min[T Ordered](a *NDArray[T], axes ...int) *NDArray[T] {
	return extremum("min", a, axes, func(acc, x T) T { return min(acc, x) })
}

func extremum[T Ordered](op string, a *NDArray[T], axes []int, f func(T, T) T) *NDArray[T] {
	if len(axes) == 0 {
		axes = allAxes(a.Rank())
	}
	reduced := reducedAxes(op, axes, a.Rank())

	// Seed with the first slice along the reduced axes.
	ranges := make([]Range, a.Rank())
	for axis, n := range a.layout.Shape() {
		ranges[axis] = All
		if reduced[axis] {
			if n == 0 {
				fault(ShapeMismatch, op, "cannot reduce empty axis %d of shape %v", axis, a.layout.Shape())
			}
			ranges[axis] = Index(0)
		}
	}
	seed := a.view(a.layout.Subscript(ranges))
	defer seed.Release()

	return Reduce(a, axes, seed, f)
}
