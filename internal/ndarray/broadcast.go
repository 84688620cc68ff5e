package ndarray

// alignRank prefixes l with Singular axes until it has rank axes.
func alignRank(l Layout, rank int) Layout {
	for l.Rank() < rank {
		l = l.ExpandDimensions(0)
	}
	return l
}

// broadcastLayoutTo expands l to shape: missing leading axes are added and
// every length-1 axis facing a longer one is tiled. No data is copied.
func broadcastLayoutTo(op string, l Layout, shape Shape) Layout {
	out, _, err := BroadcastShapes(l.Shape(), shape)
	if err != nil || !out.Equal(shape) || l.Rank() > len(shape) {
		fault(ShapeMismatch, op, "cannot broadcast shape %v to %v", l.Shape(), shape)
	}
	if shape.NumElements() == 0 {
		// Nothing is ever read through an empty view.
		return NewLayout(shape)
	}

	l = alignRank(l, len(shape))
	reps := make([]int, len(shape))
	for axis, n := range l.Shape() {
		reps[axis] = 1
		if n != shape[axis] {
			reps[axis] = shape[axis]
		}
	}
	return l.Tiled(reps)
}

// broadcastLayouts expands both layouts to their common broadcast shape.
func broadcastLayouts(op string, a, b Layout) (Layout, Layout) {
	if a.Shape().Equal(b.Shape()) {
		return a, b
	}
	shape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		fault(ShapeMismatch, op, "cannot broadcast shapes %v and %v", a.Shape(), b.Shape())
	}
	return broadcastLayoutTo(op, a, shape), broadcastLayoutTo(op, b, shape)
}

// Broadcast returns views of a and b expanded to their common shape.
//
// Shapes are aligned on their trailing axes; each pair of lengths must be
// equal or contain a 1. Length-1 axes are tiled, never copied.
//
// Example:
//
//	row := ndarray.MustFromSlice([]int{1, 2, 3, 4}, Shape{1, 4})
//	col := ndarray.MustFromSlice([]int{1, 2, 3, 4}, Shape{4, 1})
//	r, c := ndarray.Broadcast(row, col) // both [4, 4]
func Broadcast[A, B any](a *NDArray[A], b *NDArray[B]) (*NDArray[A], *NDArray[B]) {
	la, lb := broadcastLayouts("broadcast", a.layout, b.layout)
	return a.view(la), b.view(lb)
}

// BroadcastTo returns a view of a expanded to shape.
func BroadcastTo[T any](a *NDArray[T], shape Shape) *NDArray[T] {
	return a.view(broadcastLayoutTo("broadcast", a.layout, shape))
}
