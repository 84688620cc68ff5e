package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear returns the buffer offset of every element of l in row-major order.
func linear(l Layout) []int {
	out := make([]int, 0, l.Size())
	for _, index := range IndexSequence(0, l.Size(), l.Shape()) {
		out = append(out, l.LinearIndex(index))
	}
	return out
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(Shape{2, 3, 4})

	assert.Equal(t, Shape{2, 3, 4}, l.Shape())
	assert.Equal(t, 3, l.Rank())
	assert.Equal(t, 24, l.Size())
	assert.True(t, l.IsIdentity())
	assert.Equal(t, 23, l.LinearIndex([]int{1, 2, 3}))
	assert.Equal(t, 4, l.Dimension(1).MemoryStride())
	assert.Equal(t, 1, l.Dimension(-1).MemoryStride())

	scalar := NewLayout(Shape{})
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 1, scalar.Size())
	assert.True(t, scalar.IsIdentity())

	ones := NewLayout(Shape{4, 1})
	assert.Equal(t, Singular, ones.Dimension(1).Kind())
	assert.True(t, ones.IsIdentity())
}

func TestLayoutTransposed(t *testing.T) {
	l := NewLayout(Shape{2, 3}).Transposed(nil)
	assert.Equal(t, Shape{3, 2}, l.Shape())
	assert.False(t, l.IsIdentity())
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, linear(l))

	partial := NewLayout(Shape{2, 3, 4}).Transposed([]int{1, 0})
	assert.Equal(t, Shape{3, 2, 4}, partial.Shape())

	back := NewLayout(Shape{2, 3, 4}).Transposed([]int{2, 0, 1}).Transposed([]int{1, 2, 0})
	assert.Equal(t, Shape{2, 3, 4}, back.Shape())
	assert.True(t, back.IsIdentity())

	requireFault(t, ErrRangeSpecArity, func() { NewLayout(Shape{2, 3}).Transposed([]int{0, 0}) })
	requireFault(t, ErrRangeSpecArity, func() { NewLayout(Shape{2, 3}).Transposed([]int{0, 1, 2}) })
	requireFault(t, ErrIndexOutOfRange, func() { NewLayout(Shape{2, 3}).Transposed([]int{5}) })
}

func TestLayoutSubscript(t *testing.T) {
	base := NewLayout(Shape{3, 4})

	t.Run("index squeezes", func(t *testing.T) {
		l := base.Subscript([]Range{Index(1)})
		assert.Equal(t, Shape{4}, l.Shape())
		assert.Equal(t, 4, l.Offset())
		assert.False(t, l.IsIdentity())
		assert.Len(t, l.Dimensions(), 2)
		assert.Equal(t, []int{4, 5, 6, 7}, linear(l))
	})

	t.Run("subscript of a squeezed view", func(t *testing.T) {
		l := base.Subscript([]Range{Index(1)}).Subscript([]Range{Slice(1, 3)})
		assert.Equal(t, Shape{2}, l.Shape())
		assert.Equal(t, []int{5, 6}, linear(l))
	})

	t.Run("full slice keeps identity", func(t *testing.T) {
		l := base.Subscript([]Range{All, Slice(0, 4)})
		assert.True(t, l.IsIdentity())
	})

	t.Run("ellipsis", func(t *testing.T) {
		l := NewLayout(Shape{2, 3, 4, 5}).Subscript([]Range{Index(0), Ellipsis, Index(1)})
		assert.Equal(t, Shape{3, 4}, l.Shape())
		assert.Equal(t, 1, l.Offset())

		l = base.Subscript([]Range{Ellipsis, NewAxis})
		assert.Equal(t, Shape{3, 4, 1}, l.Shape())

		l = base.Subscript([]Range{Ellipsis})
		assert.True(t, l.IsIdentity())
	})

	t.Run("new axis", func(t *testing.T) {
		assert.Equal(t, Shape{1, 3, 4}, base.Subscript([]Range{NewAxis}).Shape())
		assert.Equal(t, Shape{3, 1, 4}, base.Subscript([]Range{All, NewAxis, All}).Shape())
		assert.Equal(t, Shape{3, 4, 1, 1}, base.Subscript([]Range{All, All, NewAxis, NewAxis}).Shape())

		l := base.Subscript([]Range{Index(2), NewAxis})
		assert.Equal(t, Shape{1, 4}, l.Shape())
		assert.Equal(t, []int{8, 9, 10, 11}, linear(l))
	})

	t.Run("squeeze axis", func(t *testing.T) {
		l := NewLayout(Shape{1, 4}).Subscript([]Range{SqueezeAxis, All})
		assert.Equal(t, Shape{4}, l.Shape())

		requireFault(t, ErrIndexOutOfRange, func() { base.Subscript([]Range{SqueezeAxis}) })
	})

	t.Run("filter and mask", func(t *testing.T) {
		l := base.Subscript([]Range{Filter(2, 0), Mask([]bool{false, true, false, true})})
		assert.Equal(t, Shape{2, 2}, l.Shape())
		assert.Equal(t, []int{9, 11, 1, 3}, linear(l))
	})

	t.Run("arity faults", func(t *testing.T) {
		requireFault(t, ErrRangeSpecArity, func() { base.Subscript([]Range{Ellipsis, Ellipsis}) })
		requireFault(t, ErrRangeSpecArity, func() { base.Subscript([]Range{All, All, All}) })
		requireFault(t, ErrRangeSpecArity, func() { base.Subscript([]Range{Index(0), Ellipsis, All, All}) })
		requireFault(t, ErrIndexOutOfRange, func() { base.Subscript([]Range{Index(3)}) })
	})
}

func TestLayoutTiled(t *testing.T) {
	l := NewLayout(Shape{1, 3}).Tiled([]int{2})
	assert.Equal(t, Shape{2, 3}, l.Shape())
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, linear(l))

	l = NewLayout(Shape{2}).Tiled([]int{3})
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1}, linear(l))
	assert.False(t, l.IsIdentity())

	requireFault(t, ErrRangeSpecArity, func() { NewLayout(Shape{2}).Tiled([]int{1, 1}) })
	requireFault(t, ErrIndexOutOfRange, func() { NewLayout(Shape{2}).Tiled([]int{0}) })
}

func TestLayoutExpandAndSqueeze(t *testing.T) {
	l := NewLayout(Shape{2, 3})

	assert.Equal(t, Shape{1, 2, 3}, l.ExpandDimensions(0).Shape())
	assert.Equal(t, Shape{2, 1, 3}, l.ExpandDimensions(1).Shape())
	assert.Equal(t, Shape{2, 3, 1}, l.ExpandDimensions(-1).Shape())
	requireFault(t, ErrIndexOutOfRange, func() { l.ExpandDimensions(4) })

	expanded := l.ExpandDimensions(1)
	squeezed := expanded.Squeezed(1)
	require.Equal(t, Shape{2, 3}, squeezed.Shape())
	assert.Equal(t, linear(l), linear(squeezed))

	requireFault(t, ErrIndexOutOfRange, func() { l.Squeezed(0) })
}

func TestLayoutCheckIndex(t *testing.T) {
	l := NewLayout(Shape{2, 3})

	assert.NoError(t, Try(func() { l.checkIndex("at", []int{1, 2}) }))
	requireFault(t, ErrRangeSpecArity, func() { l.checkIndex("at", []int{1}) })
	requireFault(t, ErrIndexOutOfRange, func() { l.checkIndex("at", []int{1, 3}) })
	requireFault(t, ErrIndexOutOfRange, func() { l.checkIndex("at", []int{-1, 0}) })
}

func TestLayoutString(t *testing.T) {
	l := NewLayout(Shape{2, 1}).Subscript([]Range{Index(1)})
	assert.Equal(t, "Layout[1][indexed singular]+1", l.String())
}
