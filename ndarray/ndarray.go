// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Type aliases for public API

// NDArray is a strided view over a shared copy-on-write buffer.
//
// Example:
//
//	a := ndarray.Zeros[float32](ndarray.Shape{2, 3})
//	b := a.Transposed() // Shape: [3, 2], no copy
type NDArray[T any] = ndarray.NDArray[T]

// Buffer is the reference-counted storage shared by views.
type Buffer[T any] = ndarray.Buffer[T]

// Shape is the visible extent of an array, one length per axis.
// Example: Shape{2, 3, 4} describes a 2×3×4 array.
type Shape = ndarray.Shape

// Layout maps multi-indices of a view to buffer offsets.
type Layout = ndarray.Layout

// Dimension describes one axis of a view.
type Dimension = ndarray.Dimension

// DimensionKind tags the variants of Dimension.
type DimensionKind = ndarray.DimensionKind

// Dimension variants.
const (
	Plain    DimensionKind = ndarray.Plain
	Singular DimensionKind = ndarray.Singular
	Sliced   DimensionKind = ndarray.Sliced
	Indexed  DimensionKind = ndarray.Indexed
	Tiled    DimensionKind = ndarray.Tiled
	Filtered DimensionKind = ndarray.Filtered
)

// Range selects along one axis in Get and Set.
type Range = ndarray.Range

// RangeKind tags the variants of Range.
type RangeKind = ndarray.RangeKind

// Range variants.
const (
	IndexRange       RangeKind = ndarray.IndexRange
	SliceRange       RangeKind = ndarray.SliceRange
	AllRange         RangeKind = ndarray.AllRange
	NewAxisRange     RangeKind = ndarray.NewAxisRange
	SqueezeAxisRange RangeKind = ndarray.SqueezeAxisRange
	EllipsisRange    RangeKind = ndarray.EllipsisRange
	FilterRange      RangeKind = ndarray.FilterRange
)

// Predefined ranges.
var (
	All         = ndarray.All
	NewAxis     = ndarray.NewAxis
	SqueezeAxis = ndarray.SqueezeAxis
	Ellipsis    = ndarray.Ellipsis
)

// DataType represents the element type of an array at runtime.
type DataType = ndarray.DataType

// Data type constants.
const (
	Other   DataType = ndarray.Other
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Int     DataType = ndarray.Int
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Uint8   DataType = ndarray.Uint8
	Bool    DataType = ndarray.Bool
)

// Number is a constraint for element types with arithmetic.
type Number = ndarray.Number

// Float is a constraint for floating-point element types.
type Float = ndarray.Float

// Ordered is a constraint for element types usable with Max and Min.
type Ordered = ndarray.Ordered

// Error is the error type carried by faults.
type Error = ndarray.Error

// ErrorKind classifies faults.
type ErrorKind = ndarray.ErrorKind

// Fault kinds.
const (
	ShapeMismatch           ErrorKind = ndarray.ShapeMismatch
	IndexOutOfRange         ErrorKind = ndarray.IndexOutOfRange
	RangeSpecArity          ErrorKind = ndarray.RangeSpecArity
	InvalidScalarConversion ErrorKind = ndarray.InvalidScalarConversion
)

// Sentinels for errors.Is.
var (
	ErrShapeMismatch           = ndarray.ErrShapeMismatch
	ErrIndexOutOfRange         = ndarray.ErrIndexOutOfRange
	ErrRangeSpecArity          = ndarray.ErrRangeSpecArity
	ErrInvalidScalarConversion = ndarray.ErrInvalidScalarConversion
)

// Scheduler splits elementwise work into chunks. See MapParallel.
type Scheduler = parallel.Scheduler

// Config controls parallel execution.
type Config = parallel.Config

// Sequential runs all work on the calling goroutine.
type Sequential = parallel.Sequential

// Pool runs work on a bounded number of goroutines.
type Pool = parallel.Pool
