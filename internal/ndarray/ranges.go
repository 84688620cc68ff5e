package ndarray

import "fmt"

// RangeKind tags the variants of Range.
type RangeKind uint8

// Range variants.
const (
	IndexRange RangeKind = iota
	SliceRange
	AllRange
	NewAxisRange
	SqueezeAxisRange
	EllipsisRange
	FilterRange
)

// Range selects along one axis in a subscript expression.
//
// Example:
//
//	a.Get(ndarray.Index(1), ndarray.Slice(0, 4).WithStep(2), ndarray.NewAxis)
type Range struct {
	kind     RangeKind
	index    int
	start    int
	end      int
	step     int
	hasStart bool
	hasEnd   bool
	indexes  []int
}

// Predefined ranges.
var (
	// All keeps the whole axis.
	All = Range{kind: AllRange}
	// NewAxis inserts a length-1 axis.
	NewAxis = Range{kind: NewAxisRange}
	// SqueezeAxis removes an axis of length 1.
	SqueezeAxis = Range{kind: SqueezeAxisRange}
	// Ellipsis stands for as many All as needed to cover the remaining axes.
	Ellipsis = Range{kind: EllipsisRange}
)

// Index selects a single position and removes the axis.
func Index(i int) Range {
	return Range{kind: IndexRange, index: i}
}

// Slice selects [start, end) with step 1.
func Slice(start, end int) Range {
	return Range{kind: SliceRange, start: start, end: end, step: 1, hasStart: true, hasEnd: true}
}

// SliceStep selects start, start+step, ... stopping before end.
func SliceStep(start, end, step int) Range {
	return Range{kind: SliceRange, start: start, end: end, step: step, hasStart: true, hasEnd: true}
}

// From selects [start, len).
func From(start int) Range {
	return Range{kind: SliceRange, start: start, step: 1, hasStart: true}
}

// To selects [0, end).
func To(end int) Range {
	return Range{kind: SliceRange, end: end, step: 1, hasEnd: true}
}

// Step selects the whole axis with the given step; Step(-1) reverses it.
func Step(step int) Range {
	return Range{kind: SliceRange, step: step}
}

// Filter selects the given positions, in order.
func Filter(indexes ...int) Range {
	return Range{kind: FilterRange, indexes: append([]int(nil), indexes...)}
}

// Mask selects the positions where mask is true. The mask length is checked
// against the axis when the range is applied.
func Mask(mask []bool) Range {
	indexes := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			indexes = append(indexes, i)
		}
	}
	return Range{kind: FilterRange, indexes: indexes, end: len(mask), hasEnd: true}
}

// WithStep returns a copy of a slice range with its step replaced.
// Open bounds stay open, so From(1).WithStep(-1) walks from 1 down to 0.
func (r Range) WithStep(step int) Range {
	if r.kind != SliceRange {
		fault(RangeSpecArity, "range", "WithStep on a %s range", r.kind)
	}
	r.step = step
	return r
}

// Kind returns the variant tag.
func (r Range) Kind() RangeKind { return r.kind }

// consumesAxis reports whether the range is matched against an existing axis.
func (r Range) consumesAxis() bool {
	return r.kind != NewAxisRange && r.kind != EllipsisRange
}

func (r Range) String() string {
	switch r.kind {
	case IndexRange:
		return fmt.Sprint(r.index)
	case SliceRange:
		s := ""
		if r.hasStart {
			s += fmt.Sprint(r.start)
		}
		s += ":"
		if r.hasEnd {
			s += fmt.Sprint(r.end)
		}
		if r.step != 1 {
			s += fmt.Sprintf(":%d", r.step)
		}
		return s
	case AllRange:
		return ":"
	case NewAxisRange:
		return "newaxis"
	case SqueezeAxisRange:
		return "squeeze"
	case EllipsisRange:
		return "..."
	case FilterRange:
		return fmt.Sprint(r.indexes)
	default:
		return "?"
	}
}

func (k RangeKind) String() string {
	switch k {
	case IndexRange:
		return "index"
	case SliceRange:
		return "slice"
	case AllRange:
		return "all"
	case NewAxisRange:
		return "newaxis"
	case SqueezeAxisRange:
		return "squeeze"
	case EllipsisRange:
		return "ellipsis"
	case FilterRange:
		return "filter"
	default:
		return "unknown"
	}
}

// apply resolves the range against one dimension.
func (r Range) apply(d *Dimension) *Dimension {
	switch r.kind {
	case IndexRange:
		return d.Indexed(r.index)
	case SliceRange:
		if r.step == 1 && (!r.hasStart || r.start == 0) && (!r.hasEnd || r.end == d.Len()) {
			return d
		}
		return d.slice(r.start, r.end, r.step, r.hasStart, r.hasEnd)
	case AllRange:
		return d
	case SqueezeAxisRange:
		if d.Len() != 1 {
			fault(IndexOutOfRange, "squeeze", "cannot squeeze axis of length %d", d.Len())
		}
		return d.Indexed(0)
	case FilterRange:
		// Only Mask sets hasEnd on a filter: it carries the mask length.
		if r.hasEnd && r.end != d.Len() {
			fault(ShapeMismatch, "mask", "mask of length %d for axis of length %d", r.end, d.Len())
		}
		return d.Select(r.indexes)
	default:
		panic(fmt.Sprintf("ndarray: range %s does not apply to a dimension", r.kind))
	}
}
