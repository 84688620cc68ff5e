package ndarray

// DimensionKind tags the variants of Dimension.
type DimensionKind uint8

// Dimension variants.
const (
	Plain DimensionKind = iota
	Singular
	Sliced
	Indexed
	Tiled
	Filtered
)

func (k DimensionKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Singular:
		return "singular"
	case Sliced:
		return "sliced"
	case Indexed:
		return "indexed"
	case Tiled:
		return "tiled"
	case Filtered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Dimension describes one axis of a view as a map from a virtual index to an
// index of its base. Wrapping never mutates the base, so any number of views
// may share an ancestor.
//
// Plain and Singular are the roots; Plain carries the memory stride of the
// buffer it was laid out for.
type Dimension struct {
	kind   DimensionKind
	length int
	base   *Dimension

	stride int // Plain

	start int // Sliced, Indexed
	end   int // Sliced, exclusive
	step  int // Sliced

	repetitions int   // Tiled
	indexes     []int // Filtered
}

// NewPlain returns a root dimension with identity mapping.
func NewPlain(length, memoryStride int) *Dimension {
	if length < 0 {
		fault(IndexOutOfRange, "dimension", "negative length %d", length)
	}
	return &Dimension{kind: Plain, length: length, stride: memoryStride}
}

// NewSingular returns a root dimension of length 1 that always maps to 0.
// It backs broadcast placeholders and NewAxis.
func NewSingular() *Dimension {
	return &Dimension{kind: Singular, length: 1}
}

// Kind returns the variant tag.
func (d *Dimension) Kind() DimensionKind { return d.kind }

// Len returns the number of virtual indexes of this wrapper.
func (d *Dimension) Len() int { return d.length }

// Base returns the wrapped dimension, or nil for Plain and Singular.
func (d *Dimension) Base() *Dimension { return d.base }

// MemoryStride returns the stride of a Plain dimension, 0 otherwise.
func (d *Dimension) MemoryStride() int {
	if d.kind == Plain {
		return d.stride
	}
	return 0
}

// IsSqueezed reports whether the dimension is fixed to one index and hidden
// from the visible shape.
func (d *Dimension) IsSqueezed() bool { return d.kind == Indexed }

// IsUnmodified reports whether the dimension is a root (Plain or Singular).
func (d *Dimension) IsUnmodified() bool { return d.kind == Plain || d.kind == Singular }

// RealIndex maps a virtual index to the index space of the immediate base.
func (d *Dimension) RealIndex(i int) int {
	switch d.kind {
	case Plain:
		return i
	case Singular:
		return 0
	case Sliced:
		return d.start + i*d.step
	case Indexed:
		return d.start
	case Tiled:
		return i % d.base.length
	case Filtered:
		return d.indexes[i]
	default:
		panic("ndarray: unknown dimension kind")
	}
}

// MemoryOffset follows the wrapping chain down to the root and returns the
// buffer offset contributed by virtual index i.
func (d *Dimension) MemoryOffset(i int) int {
	for {
		switch d.kind {
		case Plain:
			return i * d.stride
		case Singular:
			return 0
		}
		i = d.RealIndex(i)
		d = d.base
	}
}

// Sliced returns a view of the elements start, start+step, ... stopping before
// end. Negative bounds count from the end of the dimension.
func (d *Dimension) Sliced(start, end, step int) *Dimension {
	return d.slice(start, end, step, true, true)
}

func (d *Dimension) slice(start, end, step int, hasStart, hasEnd bool) *Dimension {
	s, e, n := resolveSlice(d.length, start, end, step, hasStart, hasEnd)
	return &Dimension{kind: Sliced, length: n, base: d, start: s, end: e, step: step}
}

// resolveSlice normalizes slice bounds against length and returns the first
// index, the exclusive stop and the resulting length.
func resolveSlice(length, start, end, step int, hasStart, hasEnd bool) (int, int, int) {
	if step == 0 {
		fault(IndexOutOfRange, "slice", "step cannot be zero")
	}

	if step > 0 {
		if !hasStart {
			start = 0
		} else if start < 0 {
			start += length
		}
		if !hasEnd {
			end = length
		} else if end < 0 {
			end += length
		}
		if start < 0 || end > length || start > end {
			fault(IndexOutOfRange, "slice", "bounds [%d:%d] out of range for length %d", start, end, length)
		}
		return start, end, ceilDiv(end-start, step)
	}

	if !hasStart {
		start = length - 1
	} else if start < 0 {
		start += length
	}
	if !hasEnd {
		end = -1
	} else if end < 0 {
		end += length
		if end < 0 {
			fault(IndexOutOfRange, "slice", "stop %d out of range for length %d", end-length, length)
		}
	}
	// end >= -1 here, so end > start also rejects start < -1.
	if start >= length || end > start {
		fault(IndexOutOfRange, "slice", "bounds [%d:%d:%d] out of range for length %d", start, end, step, length)
	}
	return start, end, ceilDiv(start-end, -step)
}

func ceilDiv(a, b int) int {
	q, r := a/b, a%b
	if r != 0 {
		q++
	}
	return q
}

// Indexed fixes the dimension to index i. The result has length 1 and is
// squeezed out of the visible shape.
func (d *Dimension) Indexed(i int) *Dimension {
	if i < 0 {
		i += d.length
	}
	if i < 0 || i >= d.length {
		fault(IndexOutOfRange, "index", "index %d out of range for length %d", i, d.length)
	}
	return &Dimension{kind: Indexed, length: 1, base: d, start: i}
}

// Tiled repeats the dimension repetitions times.
func (d *Dimension) Tiled(repetitions int) *Dimension {
	if repetitions < 1 {
		fault(IndexOutOfRange, "tile", "repetitions must be >= 1, got %d", repetitions)
	}
	if d.length == 0 {
		return d
	}
	return &Dimension{kind: Tiled, length: d.length * repetitions, base: d, repetitions: repetitions}
}

// Select picks the given indexes of the dimension, in order. Negative indexes
// count from the end.
func (d *Dimension) Select(indexes []int) *Dimension {
	normalized := make([]int, len(indexes))
	for i, idx := range indexes {
		if idx < 0 {
			idx += d.length
		}
		if idx < 0 || idx >= d.length {
			fault(IndexOutOfRange, "filter", "index %d out of range for length %d", indexes[i], d.length)
		}
		normalized[i] = idx
	}
	return &Dimension{kind: Filtered, length: len(normalized), base: d, indexes: normalized}
}

// Bounds returns the normalized start, exclusive end and step of a Sliced
// dimension.
func (d *Dimension) Bounds() (start, end, step int) {
	return d.start, d.end, d.step
}

// Repetitions returns the repetition count of a Tiled dimension, 1 otherwise.
func (d *Dimension) Repetitions() int {
	if d.kind == Tiled {
		return d.repetitions
	}
	return 1
}
