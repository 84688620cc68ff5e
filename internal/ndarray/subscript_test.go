package ndarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	a := MustFromSlice([]int{3, 30, 2, 20, 1, 10}, Shape{3, 2})

	tests := []struct {
		name   string
		ranges []Range
		shape  Shape
		want   []int
	}{
		{"column", []Range{All, Index(0)}, Shape{3}, []int{3, 2, 1}},
		{"row", []Range{Index(-1)}, Shape{2}, []int{1, 10}},
		{"reversed rows", []Range{Step(-1)}, Shape{3, 2}, []int{1, 10, 2, 20, 3, 30}},
		{"every other row", []Range{Step(2)}, Shape{2, 2}, []int{3, 30, 1, 10}},
		{"filter", []Range{Filter(2, 0), Index(1)}, Shape{2}, []int{10, 30}},
		{"mask", []Range{Mask([]bool{true, false, true})}, Shape{2, 2}, []int{3, 30, 1, 10}},
		{"new axis", []Range{NewAxis, Index(1)}, Shape{1, 2}, []int{2, 20}},
		{"ellipsis last", []Range{Ellipsis, Index(1)}, Shape{3}, []int{30, 20, 10}},
		{"no ranges", nil, Shape{3, 2}, []int{3, 30, 2, 20, 1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := a.Get(tt.ranges...)
			assert.Equal(t, tt.shape, v.Shape())
			if diff := cmp.Diff(tt.want, v.ToSlice()); diff != "" {
				t.Errorf("Get(%v) mismatch (-want +got):\n%s", tt.ranges, diff)
			}
			assert.True(t, v.SharesBuffer(a))
		})
	}
}

func TestSlicingComposition(t *testing.T) {
	a := Arange(0, 42, 1).Reshape(6, 7)

	composed := a.Get(From(0), Slice(1, 5)).Get(From(0), To(3))
	direct := a.Get(From(0), Slice(1, 4))

	require.Equal(t, direct.Shape(), composed.Shape())
	assert.Equal(t, direct.ToSlice(), composed.ToSlice())
}

func TestNegativeStride(t *testing.T) {
	a := FromVector([]int{1, 2, 3, 4, 5})

	assert.Equal(t, []int{5, 4, 3, 2, 1}, a.Get(Step(-1)).Copy().ToSlice())
	assert.Equal(t, []int{5, 3}, a.Get(SliceStep(4, 0, -2)).ToSlice())
	assert.Equal(t, []int{2, 1}, a.Get(From(1).WithStep(-1)).ToSlice())
	assert.Equal(t, []int{3, 4}, a.Get(Slice(-3, -1)).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Get(Step(-1)).Get(Step(-1)).ToSlice())
}

func TestSqueezeKeepsOriginal(t *testing.T) {
	a := MustFromSlice([]int{1, 2, 3, 4}, Shape{1, 4})

	s := a.Get(SqueezeAxis, All)

	assert.Equal(t, Shape{4}, s.Shape())
	assert.Equal(t, Shape{1, 4}, a.Shape())
	assert.Equal(t, []int{1, 2, 3, 4}, s.ToSlice())
}

func TestSet(t *testing.T) {
	t.Run("broadcast row", func(t *testing.T) {
		a := Zeros[int](Shape{3, 4})
		a.Set(FromVector([]int{1, 2, 3, 4}), All)
		assert.Equal(t, []int{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}, a.ToSlice())
	})

	t.Run("column", func(t *testing.T) {
		a := Zeros[int](Shape{3, 2})
		a.Set(FromVector([]int{7, 8, 9}), All, Index(1))
		assert.Equal(t, []int{0, 7, 0, 8, 0, 9}, a.ToSlice())
	})

	t.Run("scalar array", func(t *testing.T) {
		a := Zeros[int](Shape{2, 2})
		a.Set(FromScalar(5), Index(0))
		assert.Equal(t, []int{5, 5, 0, 0}, a.ToSlice())
	})

	t.Run("reversed self", func(t *testing.T) {
		a := FromVector([]int{1, 2, 3, 4})
		a.Set(a.Get(Step(-1)), All)
		assert.Equal(t, []int{4, 3, 2, 1}, a.ToSlice())
	})

	t.Run("through a transposed view", func(t *testing.T) {
		a := MustFromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
		tr := a.T()
		tr.Set(FromVector([]int{0, 0}), Index(1))

		assert.Equal(t, []int{1, 4, 0, 0, 3, 6}, tr.ToSlice())
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.ToSlice())
	})

	t.Run("shape mismatch", func(t *testing.T) {
		a := Zeros[int](Shape{3, 2})
		requireFault(t, ErrShapeMismatch, func() { a.Set(FromVector([]int{1, 2, 3}), Index(0)) })
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, a.ToSlice())
	})
}

func TestSetScalar(t *testing.T) {
	a := FromVector([]int{0, 0, 0, 0, 0})
	a.SetScalar(1, Filter(0, -1))
	assert.Equal(t, []int{1, 0, 0, 0, 1}, a.ToSlice())

	a.SetScalar(2, SliceStep(1, 4, 2))
	assert.Equal(t, []int{1, 2, 0, 2, 1}, a.ToSlice())

	requireFault(t, ErrIndexOutOfRange, func() { a.SetScalar(3, Index(5)) })
}

func TestSetSlice(t *testing.T) {
	a := Zeros[int](Shape{2, 3})
	a.SetSlice([]int{1, 2, 3}, Index(1))
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3}, a.ToSlice())

	a.SetSlice([]int{7, 8}, All, Index(2))
	assert.Equal(t, []int{0, 0, 7, 1, 2, 8}, a.ToSlice())

	requireFault(t, ErrShapeMismatch, func() { a.SetSlice([]int{1, 2}, Index(0)) })
}

func TestSubscriptFaults(t *testing.T) {
	a := Arange(0, 24, 1).Reshape(2, 3, 4)

	assert.Equal(t, []int{0, 4, 8, 12, 16, 20}, a.Get(Ellipsis, Index(0)).ToSlice())

	requireFault(t, ErrRangeSpecArity, func() { a.Get(Ellipsis, Index(0), Ellipsis) })
	requireFault(t, ErrRangeSpecArity, func() { a.Get(All, All, All, All) })
	requireFault(t, ErrRangeSpecArity, func() { Index(1).WithStep(2) })
	requireFault(t, ErrIndexOutOfRange, func() { a.Get(Slice(0, 3)) })
	requireFault(t, ErrIndexOutOfRange, func() { a.Get(Step(0)) })
	requireFault(t, ErrIndexOutOfRange, func() { a.Get(All, SqueezeAxis) })
	requireFault(t, ErrShapeMismatch, func() { a.Get(Mask([]bool{true})) })
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "2", Index(2).String())
	assert.Equal(t, "1:4", Slice(1, 4).String())
	assert.Equal(t, "::-1", Step(-1).String())
	assert.Equal(t, "2:", From(2).String())
	assert.Equal(t, ":", All.String())
	assert.Equal(t, "...", Ellipsis.String())
	assert.Equal(t, "[0 2]", Filter(0, 2).String())
	assert.Equal(t, SliceRange, To(3).Kind())
}
