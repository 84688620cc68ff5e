package ndarray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// collect materializes a sequence, copying each reused multi-index.
func collect(start, end int, shape Shape) ([]int, [][]int) {
	var positions []int
	var indices [][]int
	for pos, index := range IndexSequence(start, end, shape) {
		positions = append(positions, pos)
		indices = append(indices, slices.Clone(index))
	}
	return positions, indices
}

func TestIndexSequence(t *testing.T) {
	t.Run("row-major order", func(t *testing.T) {
		positions, indices := collect(0, 6, Shape{2, 3})
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, positions)
		assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, indices)
	})

	t.Run("starts mid-way", func(t *testing.T) {
		positions, indices := collect(4, 9, Shape{2, 2, 3})
		assert.Equal(t, []int{4, 5, 6, 7, 8}, positions)
		assert.Equal(t, [][]int{{0, 1, 1}, {0, 1, 2}, {1, 0, 0}, {1, 0, 1}, {1, 0, 2}}, indices)
	})

	t.Run("scalar shape", func(t *testing.T) {
		positions, indices := collect(0, 1, Shape{})
		assert.Equal(t, []int{0}, positions)
		assert.Equal(t, [][]int{{}}, indices)
	})

	t.Run("empty range", func(t *testing.T) {
		positions, _ := collect(3, 3, Shape{2, 3})
		assert.Empty(t, positions)

		positions, _ = collect(0, Shape{0, 3}.NumElements(), Shape{0, 3})
		assert.Empty(t, positions)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := IndexSequence(1, 4, Shape{4})
		var first, second []int
		for pos := range seq {
			first = append(first, pos)
		}
		for pos := range seq {
			second = append(second, pos)
		}
		assert.Equal(t, []int{1, 2, 3}, first)
		assert.Equal(t, first, second)
	})

	t.Run("early break", func(t *testing.T) {
		count := 0
		for range IndexSequence(0, 100, Shape{10, 10}) {
			count++
			if count == 7 {
				break
			}
		}
		assert.Equal(t, 7, count)
	})
}

func TestUnravel(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Unravel(5, Shape{2, 3}))
	assert.Equal(t, []int{0, 0, 0}, Unravel(0, Shape{2, 3, 4}))
	assert.Equal(t, []int{1, 2, 3}, Unravel(23, Shape{2, 3, 4}))
	assert.Equal(t, []int{}, Unravel(0, Shape{}))

	requireFault(t, ErrIndexOutOfRange, func() { Unravel(6, Shape{2, 3}) })
	requireFault(t, ErrIndexOutOfRange, func() { Unravel(-1, Shape{2, 3}) })
}
