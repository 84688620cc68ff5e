package ndarray

// Get returns the view selected by ranges. No data is copied.
//
// Axes without a range are kept whole. Ellipsis expands to cover the axes not
// named by the other ranges.
//
// Example:
//
//	a := ndarray.MustFromSlice([]int{3, 30, 2, 20, 1, 10}, Shape{3, 2})
//	a.Get(ndarray.Index(1), ndarray.Index(1)).Scalarized() // 20
//	a.Get(ndarray.All, ndarray.Index(0))                   // [3 2 1]
//	a.Get(ndarray.Step(-1))                                // rows reversed
func (a *NDArray[T]) Get(ranges ...Range) *NDArray[T] {
	return a.view(a.layout.Subscript(ranges))
}

// Set writes value into the view selected by ranges. value is broadcast to the
// shape of the view.
//
// The array is densified first unless it is the only handle on its buffer and
// has an identity layout, so other arrays never observe the write.
func (a *NDArray[T]) Set(value *NDArray[T], ranges ...Range) {
	target := a.layout.Subscript(ranges)
	source := value.layout
	if !source.Shape().Equal(target.Shape()) {
		source = broadcastLayoutTo("set", source, target.Shape())
	}
	src := value.data()
	if value.ref.buf == a.ref.buf {
		// Reading and writing the same buffer: snapshot the source first.
		src = value.ToSlice()
		source = NewLayout(value.layout.Shape())
		if !source.Shape().Equal(target.Shape()) {
			source = broadcastLayoutTo("set", source, target.Shape())
		}
	}

	a.ensureWritable()
	target = a.layout.Subscript(ranges)

	dst := a.data()
	n := target.Size()
	if target.IsIdentity() && source.IsIdentity() && len(dst) == n {
		copy(dst, src[:n])
		return
	}
	for _, index := range IndexSequence(0, n, target.Shape()) {
		dst[target.LinearIndex(index)] = src[source.LinearIndex(index)]
	}
}

// SetScalar writes v into every element of the view selected by ranges.
func (a *NDArray[T]) SetScalar(v T, ranges ...Range) {
	a.layout.Subscript(ranges)
	a.ensureWritable()

	target := a.layout.Subscript(ranges)
	dst := a.data()
	for _, index := range IndexSequence(0, target.Size(), target.Shape()) {
		dst[target.LinearIndex(index)] = v
	}
}

// SetSlice writes values, in row-major order, into the view selected by
// ranges. len(values) must equal the size of the view.
func (a *NDArray[T]) SetSlice(values []T, ranges ...Range) {
	if size := a.layout.Subscript(ranges).Size(); len(values) != size {
		fault(ShapeMismatch, "set", "%d values for a view of %d elements", len(values), size)
	}
	a.ensureWritable()

	target := a.layout.Subscript(ranges)
	dst := a.data()
	for pos, index := range IndexSequence(0, len(values), target.Shape()) {
		dst[target.LinearIndex(index)] = values[pos]
	}
}
