package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestReductionShapeLaw(t *testing.T) {
	a := Arange[float64](0, 24, 1).Reshape(2, 3, 4)
	shape := Shape{2, 3, 4}

	for axis := range shape {
		want := append(shape[:axis:axis], shape[axis+1:]...)
		assert.Equal(t, want, Sum(a, axis).Shape(), "axis %d", axis)
	}

	total := floats.Sum(a.ToSlice())
	assert.InDelta(t, total, Sum(a, 0, 1, 2).Scalarized(), 1e-9)
	assert.InDelta(t, total, Sum(a).Item(), 1e-9)
	assert.InDelta(t, total, Sum(a.Transposed()).Item(), 1e-9)
}

func TestSum(t *testing.T) {
	a := MustFromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	assert.Equal(t, []int{5, 7, 9}, Sum(a, 0).ToSlice())
	assert.Equal(t, []int{6, 15}, Sum(a, 1).ToSlice())
	assert.Equal(t, Sum(a, 1).ToSlice(), Sum(a, -1).ToSlice())
	assert.Equal(t, 21, Sum(a).Scalarized())
	assert.Equal(t, Shape{}, Sum(a).Shape())

	// Views reduce through their layout.
	assert.Equal(t, []int{6, 15}, Sum(a.T(), 0).ToSlice())
	assert.Equal(t, []int{4, 10}, Sum(a.Get(All, SliceStep(0, 3, 2)), 1).ToSlice())

	// An empty axis sums to zero.
	assert.Equal(t, []int{0, 0, 0}, Sum(Zeros[int](Shape{0, 3}), 0).ToSlice())

	requireFault(t, ErrRangeSpecArity, func() { Sum(a, 0, -2) })
	requireFault(t, ErrIndexOutOfRange, func() { Sum(a, 2) })
}

func TestSumFloat64Oracle(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 1e-3, 42, -7.5}
	a := MustFromSlice(data, Shape{3, 2})

	assert.InDelta(t, floats.Sum(data), Sum(a).Item(), 1e-12)

	col := make([]float64, 0, 3)
	for i := 0; i < 3; i++ {
		col = append(col, data[2*i+1])
	}
	assert.InDelta(t, floats.Sum(col), Sum(a, 0).At(1), 1e-12)
}

func TestMean(t *testing.T) {
	a := MustFromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})

	assert.Equal(t, []float64{2, 3}, Mean(a, 0).ToSlice())
	assert.Equal(t, []float64{1.5, 3.5}, Mean(a, 1).ToSlice())
	assert.InDelta(t, 2.5, Mean(a).Item(), 1e-12)
}

func TestMaxMin(t *testing.T) {
	a := MustFromSlice([]int{3, 30, 2, 20, 1, 10}, Shape{3, 2})

	assert.Equal(t, []int{30, 20, 10}, Max(a, 1).ToSlice())
	assert.Equal(t, []int{3, 30}, Max(a, 0).ToSlice())
	assert.Equal(t, []int{1, 10}, Min(a, 0).ToSlice())
	assert.Equal(t, 30, Max(a).Item())
	assert.Equal(t, 1, Min(a).Item())

	// The source keeps every handle it had before.
	require.True(t, a.IsUnique())

	requireFault(t, ErrShapeMismatch, func() { Max(Zeros[int](Shape{0, 3}), 0) })
	assert.Equal(t, Shape{0}, Max(Zeros[int](Shape{3, 0}), 0).Shape())
}

func TestReduce(t *testing.T) {
	a := MustFromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	initial := FromScalar(100)

	got := Reduce(a, []int{0}, initial, func(acc, x int) int { return acc + x })
	assert.Equal(t, []int{105, 107, 109}, got.ToSlice())
	assert.Equal(t, 100, initial.Item())

	// The accumulator type may differ from the element type.
	even := Reduce(a, []int{1}, FromScalar(0.0), func(acc float64, x int) float64 {
		if x%2 == 0 {
			return acc + 1
		}
		return acc
	})
	assert.Equal(t, []float64{1, 2}, even.ToSlice())

	// A per-position initial value.
	seeded := Reduce(a, []int{0}, FromVector([]int{0, 10, 20}), func(acc, x int) int { return acc + x })
	assert.Equal(t, []int{5, 17, 29}, seeded.ToSlice())

	// No axes folds each element once.
	same := Reduce(a, nil, FromScalar(1), func(acc, x int) int { return acc * x })
	assert.Equal(t, a.ToSlice(), same.ToSlice())

	requireFault(t, ErrShapeMismatch, func() {
		Reduce(a, []int{0}, FromVector([]int{1, 2}), func(acc, x int) int { return acc })
	})
}
