package ndarray

import "fmt"

// Layout maps a multi-index of a view to an offset in its buffer.
//
// It keeps every dimension of the view, including squeezed ones (fixed by an
// Index or SqueezeAxis range). Squeezed dimensions are hidden from Shape and
// fold into a constant Offset. A Layout is immutable; every transformation
// returns a new value and leaves the dimension DAG untouched.
type Layout struct {
	dims     []*Dimension
	visible  []*Dimension
	shape    Shape
	offset   int
	identity bool
}

// NewLayout returns the contiguous row-major layout of shape.
// Length-1 axes become Singular, the others Plain.
func NewLayout(shape Shape) Layout {
	strides := shape.ComputeStrides()
	dims := make([]*Dimension, len(shape))
	for i, n := range shape {
		if n == 1 {
			dims[i] = NewSingular()
		} else {
			dims[i] = NewPlain(n, strides[i])
		}
	}
	return LayoutOf(dims)
}

// LayoutOf builds a layout from an explicit dimension list, as produced by a
// view operation. The list is not copied and must not be modified afterwards.
func LayoutOf(dims []*Dimension) Layout {
	l := Layout{dims: dims}
	l.visible = make([]*Dimension, 0, len(dims))
	l.shape = make(Shape, 0, len(dims))
	for _, d := range dims {
		if d.IsSqueezed() {
			l.offset += d.MemoryOffset(0)
			continue
		}
		l.visible = append(l.visible, d)
		l.shape = append(l.shape, d.Len())
	}
	l.identity = l.computeIdentity()
	return l
}

func (l Layout) computeIdentity() bool {
	if l.offset != 0 || len(l.visible) != len(l.dims) {
		return false
	}
	strides := l.shape.ComputeStrides()
	for i, d := range l.dims {
		switch d.Kind() {
		case Singular:
		case Plain:
			if d.Len() > 1 && d.MemoryStride() != strides[i] {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Shape returns the visible shape. The caller must not modify it.
func (l Layout) Shape() Shape { return l.shape }

// Rank returns the number of visible axes.
func (l Layout) Rank() int { return len(l.visible) }

// Size returns the number of addressable elements.
func (l Layout) Size() int { return l.shape.NumElements() }

// Offset returns the constant offset contributed by squeezed dimensions.
func (l Layout) Offset() int { return l.offset }

// IsIdentity reports whether the layout addresses its buffer exactly like a
// fresh contiguous array of the same shape: only unmodified dimensions, no
// squeezed dimension, zero offset and row-major strides.
func (l Layout) IsIdentity() bool { return l.identity }

// Dimensions returns all dimensions, squeezed ones included.
func (l Layout) Dimensions() []*Dimension { return append([]*Dimension(nil), l.dims...) }

// Dimension returns the dimension behind visible axis.
func (l Layout) Dimension(axis int) *Dimension {
	return l.visible[normalizeAxis("dimension", axis, len(l.visible))]
}

// LinearIndex returns the buffer offset of a multi-index over the visible axes.
func (l Layout) LinearIndex(index []int) int {
	offset := l.offset
	for axis, d := range l.visible {
		offset += d.MemoryOffset(index[axis])
	}
	return offset
}

// checkIndex validates a full multi-index against the visible shape.
func (l Layout) checkIndex(op string, index []int) {
	if len(index) != len(l.shape) {
		fault(RangeSpecArity, op, "expected %d indices, got %d", len(l.shape), len(index))
	}
	for axis, i := range index {
		if i < 0 || i >= l.shape[axis] {
			fault(IndexOutOfRange, op, "index %d out of bounds for axis %d (size %d)", i, axis, l.shape[axis])
		}
	}
}

// expandRanges replaces the Ellipsis, if any, by All entries and checks that
// no more axes are consumed than the layout has.
func (l Layout) expandRanges(ranges []Range) []Range {
	ellipsis := -1
	consumed := 0
	for i, r := range ranges {
		switch {
		case r.kind == EllipsisRange:
			if ellipsis >= 0 {
				fault(RangeSpecArity, "subscript", "at most one ellipsis allowed, got %v", ranges)
			}
			ellipsis = i
		case r.consumesAxis():
			consumed++
		}
	}
	if consumed > l.Rank() {
		fault(RangeSpecArity, "subscript", "%d ranges for an array of rank %d", consumed, l.Rank())
	}
	if ellipsis < 0 {
		return ranges
	}

	expanded := make([]Range, 0, len(ranges)-1+l.Rank()-consumed)
	expanded = append(expanded, ranges[:ellipsis]...)
	for i := 0; i < l.Rank()-consumed; i++ {
		expanded = append(expanded, All)
	}
	return append(expanded, ranges[ellipsis+1:]...)
}

// Subscript applies ranges to the visible axes and returns the view layout.
//
// The new dimension list is built in a single pass over the old one: squeezed
// dimensions are carried over, NewAxis entries emit a Singular before the
// dimension they precede, and every consuming range replaces its dimension in
// place. Removal and insertion therefore never shift each other's positions.
// Axes without a range are kept whole.
func (l Layout) Subscript(ranges []Range) Layout {
	ranges = l.expandRanges(ranges)

	dims := make([]*Dimension, 0, len(l.dims)+len(ranges))
	next := 0
	for _, d := range l.dims {
		if d.IsSqueezed() {
			dims = append(dims, d)
			continue
		}
		for next < len(ranges) && ranges[next].kind == NewAxisRange {
			dims = append(dims, NewSingular())
			next++
		}
		if next < len(ranges) {
			dims = append(dims, ranges[next].apply(d))
			next++
			continue
		}
		dims = append(dims, d)
	}
	for ; next < len(ranges); next++ {
		// Only NewAxis can remain once every visible dimension is consumed.
		dims = append(dims, NewSingular())
	}
	return LayoutOf(dims)
}

// Transposed permutes the visible axes. An empty permutation reverses them; a
// shorter one permutes the leading axes and keeps the rest in order.
func (l Layout) Transposed(perm []int) Layout {
	rank := l.Rank()
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) > rank {
		fault(RangeSpecArity, "transpose", "permutation %v longer than rank %d", perm, rank)
	}

	used := make([]bool, rank)
	order := make([]int, 0, rank)
	for _, p := range perm {
		axis := normalizeAxis("transpose", p, rank)
		if used[axis] {
			fault(RangeSpecArity, "transpose", "axis %d repeated in permutation %v", axis, perm)
		}
		used[axis] = true
		order = append(order, axis)
	}
	for axis := range used {
		if !used[axis] {
			order = append(order, axis)
		}
	}

	dims := make([]*Dimension, 0, len(l.dims))
	for _, d := range l.dims {
		if d.IsSqueezed() {
			dims = append(dims, d)
		}
	}
	for _, axis := range order {
		dims = append(dims, l.visible[axis])
	}
	return LayoutOf(dims)
}

// Tiled wraps every axis with repetitions greater than 1 in a Tiled dimension.
// Missing trailing repetitions count as 1.
func (l Layout) Tiled(repetitions []int) Layout {
	if len(repetitions) > l.Rank() {
		fault(RangeSpecArity, "tile", "%d repetitions for rank %d", len(repetitions), l.Rank())
	}
	for _, r := range repetitions {
		if r < 1 {
			fault(IndexOutOfRange, "tile", "repetitions must be >= 1, got %v", repetitions)
		}
	}

	dims := make([]*Dimension, len(l.dims))
	axis := 0
	for i, d := range l.dims {
		dims[i] = d
		if d.IsSqueezed() {
			continue
		}
		if axis < len(repetitions) && repetitions[axis] > 1 {
			dims[i] = d.Tiled(repetitions[axis])
		}
		axis++
	}
	return LayoutOf(dims)
}

// ExpandDimensions inserts a Singular axis so that it becomes visible axis
// number axis. Negative values count from the end of the resulting shape.
func (l Layout) ExpandDimensions(axis int) Layout {
	rank := l.Rank()
	if axis < 0 {
		axis += rank + 1
	}
	if axis < 0 || axis > rank {
		fault(IndexOutOfRange, "expand", "axis %d out of range for rank %d", axis, rank+1)
	}

	ranges := make([]Range, 0, axis+1)
	for i := 0; i < axis; i++ {
		ranges = append(ranges, All)
	}
	ranges = append(ranges, NewAxis)
	return l.Subscript(ranges)
}

// Squeezed removes visible axis, which must have length 1.
func (l Layout) Squeezed(axis int) Layout {
	axis = normalizeAxis("squeeze", axis, l.Rank())
	ranges := make([]Range, axis+1)
	for i := range axis {
		ranges[i] = All
	}
	ranges[axis] = SqueezeAxis
	return l.Subscript(ranges)
}

func (l Layout) String() string {
	kinds := make([]string, len(l.dims))
	for i, d := range l.dims {
		kinds[i] = d.Kind().String()
	}
	return fmt.Sprintf("Layout%v%v+%d", l.shape, kinds, l.offset)
}
