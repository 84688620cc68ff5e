package ndarray

import "iter"

// IndexSequence iterates positions [start, end) of the row-major order over
// shape, yielding each position together with its multi-index.
//
// The multi-index is advanced odometer-style from the last axis, so each step
// is amortized O(1). The yielded slice is owned by the iterator and reused:
// don't change or retain it inside the loop. The sequence can be ranged over
// any number of times; every range starts again at start.
func IndexSequence(start, end int, shape Shape) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if start >= end {
			return
		}
		rank := len(shape)
		index := make([]int, rank)
		unravel(start, shape, index)

		for pos := start; pos < end; pos++ {
			if !yield(pos, index) {
				return
			}
			for axis := rank - 1; axis >= 0; axis-- {
				index[axis]++
				if index[axis] < shape[axis] {
					break
				}
				index[axis] = 0
			}
		}
	}
}

// unravel writes the multi-index of row-major position pos into index.
func unravel(pos int, shape Shape, index []int) {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		n := shape[axis]
		if n == 0 {
			index[axis] = 0
			continue
		}
		index[axis] = pos % n
		pos /= n
	}
}

// Unravel returns the multi-index of row-major position pos in shape.
func Unravel(pos int, shape Shape) []int {
	if pos < 0 || pos >= shape.NumElements() {
		fault(IndexOutOfRange, "unravel", "position %d out of range for shape %v", pos, shape)
	}
	index := make([]int, len(shape))
	unravel(pos, shape, index)
	return index
}
