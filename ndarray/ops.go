// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Creation functions

// FromSlice creates an array of the given shape from row-major data.
// Returns an error wrapping ErrShapeMismatch if the sizes disagree.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*NDArray[T], error) {
	return ndarray.FromSlice(data, shape)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[T any](data []T, shape Shape) *NDArray[T] {
	return ndarray.MustFromSlice(data, shape)
}

// FromVector creates a rank-1 array from data.
func FromVector[T any](data []T) *NDArray[T] {
	return ndarray.FromVector(data)
}

// FromScalar creates a rank-0 array.
func FromScalar[T any](v T) *NDArray[T] {
	return ndarray.FromScalar(v)
}

// Zeros creates an array filled with the zero value.
func Zeros[T any](shape Shape) *NDArray[T] {
	return ndarray.Zeros[T](shape)
}

// ZerosLike creates a zeroed array with the shape of a.
func ZerosLike[T any](a *NDArray[T]) *NDArray[T] {
	return ndarray.ZerosLike(a)
}

// Full creates an array filled with value.
func Full[T any](shape Shape, value T) *NDArray[T] {
	return ndarray.Full(shape, value)
}

// Ones creates an array filled with ones.
func Ones[T Number](shape Shape) *NDArray[T] {
	return ndarray.Ones[T](shape)
}

// Arange creates [start, start+step, ...) stopping before stop.
//
// Example:
//
//	ndarray.Arange(0, 10, 2) // [0 2 4 6 8]
func Arange[T Number](start, stop, step T) *NDArray[T] {
	return ndarray.Arange(start, stop, step)
}

// Layouts and ranges

// NewLayout returns the contiguous row-major layout of shape.
func NewLayout(shape Shape) Layout {
	return ndarray.NewLayout(shape)
}

// NewPlain returns a root dimension with the given memory stride.
func NewPlain(length, memoryStride int) *Dimension {
	return ndarray.NewPlain(length, memoryStride)
}

// NewSingular returns a root dimension of length 1.
func NewSingular() *Dimension {
	return ndarray.NewSingular()
}

// Index selects position i and removes the axis.
func Index(i int) Range { return ndarray.Index(i) }

// Slice selects [start, end).
func Slice(start, end int) Range { return ndarray.Slice(start, end) }

// SliceStep selects start, start+step, ... stopping before end.
func SliceStep(start, end, step int) Range { return ndarray.SliceStep(start, end, step) }

// From selects [start, len).
func From(start int) Range { return ndarray.From(start) }

// To selects [0, end).
func To(end int) Range { return ndarray.To(end) }

// Step selects the whole axis with a step; Step(-1) reverses it.
func Step(step int) Range { return ndarray.Step(step) }

// Filter selects the given positions.
func Filter(indexes ...int) Range { return ndarray.Filter(indexes...) }

// Mask selects the positions where mask is true.
func Mask(mask []bool) Range { return ndarray.Mask(mask) }

// IndexSequence iterates positions [start, end) of the row-major order over
// shape with their multi-indices. The yielded slice is reused between steps.
func IndexSequence(start, end int, shape Shape) iter.Seq2[int, []int] {
	return ndarray.IndexSequence(start, end, shape)
}

// Unravel returns the multi-index of row-major position pos in shape.
func Unravel(pos int, shape Shape) []int {
	return ndarray.Unravel(pos, shape)
}

// Broadcasting

// BroadcastShapes computes the broadcast shape of a and b.
//
// Example:
//
//	shape, needsBroadcast, err := ndarray.BroadcastShapes(
//	    ndarray.Shape{3, 1},
//	    ndarray.Shape{3, 4},
//	)
//	// shape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return ndarray.BroadcastShapes(a, b)
}

// Broadcast returns views of a and b expanded to their common shape.
func Broadcast[A, B any](a *NDArray[A], b *NDArray[B]) (*NDArray[A], *NDArray[B]) {
	return ndarray.Broadcast(a, b)
}

// BroadcastTo returns a view of a expanded to shape.
func BroadcastTo[T any](a *NDArray[T], shape Shape) *NDArray[T] {
	return ndarray.BroadcastTo(a, shape)
}

// Elementwise operations

// Map applies f to every element of a.
func Map[A, Z any](a *NDArray[A], f func(A) Z) *NDArray[Z] {
	return ndarray.Map(a, f)
}

// MapParallel is Map with the work split by s.
func MapParallel[A, Z any](s Scheduler, a *NDArray[A], f func(A) Z) *NDArray[Z] {
	return ndarray.MapParallel(s, a, f)
}

// Map2 applies f to the broadcast elements of a and b.
func Map2[A, B, Z any](a *NDArray[A], b *NDArray[B], f func(A, B) Z) *NDArray[Z] {
	return ndarray.Map2(a, b, f)
}

// Map2Parallel is Map2 with the work split by s.
func Map2Parallel[A, B, Z any](s Scheduler, a *NDArray[A], b *NDArray[B], f func(A, B) Z) *NDArray[Z] {
	return ndarray.Map2Parallel(s, a, b, f)
}

// MapInto writes f applied to a into dst.
func MapInto[A, Z any](dst *NDArray[Z], a *NDArray[A], f func(A) Z) {
	ndarray.MapInto(dst, a, f)
}

// Map2Into writes f applied to a and b into dst.
func Map2Into[A, B, Z any](dst *NDArray[Z], a *NDArray[A], b *NDArray[B], f func(A, B) Z) {
	ndarray.Map2Into(dst, a, b, f)
}

// Add returns a + b with broadcasting.
func Add[T Number](a, b *NDArray[T]) *NDArray[T] { return ndarray.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b *NDArray[T]) *NDArray[T] { return ndarray.Sub(a, b) }

// Mul returns a * b with broadcasting.
func Mul[T Number](a, b *NDArray[T]) *NDArray[T] { return ndarray.Mul(a, b) }

// Div returns a / b with broadcasting.
func Div[T Number](a, b *NDArray[T]) *NDArray[T] { return ndarray.Div(a, b) }

// Neg returns -a.
func Neg[T Number](a *NDArray[T]) *NDArray[T] { return ndarray.Neg(a) }

// AddScalar returns a + v.
func AddScalar[T Number](a *NDArray[T], v T) *NDArray[T] { return ndarray.AddScalar(a, v) }

// MulScalar returns a * v.
func MulScalar[T Number](a *NDArray[T], v T) *NDArray[T] { return ndarray.MulScalar(a, v) }

// Maximum returns the elementwise maximum.
func Maximum[T Ordered](a, b *NDArray[T]) *NDArray[T] { return ndarray.Maximum(a, b) }

// Minimum returns the elementwise minimum.
func Minimum[T Ordered](a, b *NDArray[T]) *NDArray[T] { return ndarray.Minimum(a, b) }

// Equal returns the elementwise comparison a == b.
func Equal[T comparable](a, b *NDArray[T]) *NDArray[bool] { return ndarray.Equal(a, b) }

// Cast converts every element of a to Z.
func Cast[Z, A Number](a *NDArray[A]) *NDArray[Z] { return ndarray.Cast[Z](a) }

// Reductions

// Reduce folds a along axes into an accumulator seeded from initial.
func Reduce[T, A any](a *NDArray[T], axes []int, initial *NDArray[A], f func(A, T) A) *NDArray[A] {
	return ndarray.Reduce(a, axes, initial, f)
}

// Sum adds the elements along axes; all axes when none are given.
func Sum[T Number](a *NDArray[T], axes ...int) *NDArray[T] { return ndarray.Sum(a, axes...) }

// Mean averages the elements along axes; all axes when none are given.
func Mean[T Float](a *NDArray[T], axes ...int) *NDArray[T] { return ndarray.Mean(a, axes...) }

// Max returns the largest elements along axes; all axes when none are given.
func Max[T Ordered](a *NDArray[T], axes ...int) *NDArray[T] { return ndarray.Max(a, axes...) }

// Min returns the smallest elements along axes; all axes when none are given.
func Min[T Ordered](a *NDArray[T], axes ...int) *NDArray[T] { return ndarray.Min(a, axes...) }

// Faults

// Try runs fn and returns the fault it raised, if any.
func Try(fn func()) error { return ndarray.Try(fn) }

// KindOf returns the ErrorKind of err, or 0 if err is not a fault.
func KindOf(err error) ErrorKind { return ndarray.KindOf(err) }

// Scheduling

// DefaultConfig returns a Config based on the CPU count.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// NewPool returns a Pool for cfg.
func NewPool(cfg Config) *Pool { return parallel.NewPool(cfg) }

// NewScheduler returns a Pool when cfg enables parallelism, Sequential otherwise.
func NewScheduler(cfg Config) Scheduler { return parallel.New(cfg) }
