// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides generic in-memory N-dimensional arrays with strided
// views, broadcasting, copy-on-write storage and reductions.
//
// # Overview
//
// An NDArray[T] is a view over a reference-counted flat buffer. The view is
// described by a Layout: one Dimension per axis, each a small mapping from a
// virtual index to the index of the dimension it wraps. This package provides:
//   - Zero-copy views: subscripting, transposition, tiling, new axes
//   - NumPy-style broadcasting
//   - Copy-on-write: a write never shows through another array
//   - Elementwise operations, sequential or on a worker pool
//   - Reductions along any set of axes
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    a := ndarray.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//
//	    col := a.Get(ndarray.All, ndarray.Index(1))     // [2 5], shares a's buffer
//	    rev := a.Get(ndarray.Step(-1))                  // rows reversed
//	    sum := ndarray.Sum(a, 0)                        // [5 7 9]
//	    out := ndarray.Add(a, ndarray.FromVector([]float64{1, 1, 1}))
//	}
//
// # Subscripts
//
// Get and Set take one Range per axis:
//
//	ndarray.Index(i)              // fix the axis at i and drop it
//	ndarray.Slice(start, end)     // [start, end), negative bounds count from the end
//	ndarray.SliceStep(s, e, step) // stepped slice, negative steps walk backwards
//	ndarray.Step(-1)              // whole axis reversed
//	ndarray.All                   // whole axis
//	ndarray.NewAxis               // insert a length-1 axis
//	ndarray.SqueezeAxis           // drop a length-1 axis
//	ndarray.Ellipsis              // as many All as needed
//	ndarray.Filter(0, 2)          // pick positions
//	ndarray.Mask(bools)           // pick positions where true
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	row := ndarray.MustFromSlice([]int{1, 2, 3, 4}, ndarray.Shape{1, 4})
//	col := ndarray.MustFromSlice([]int{1, 2, 3, 4}, ndarray.Shape{4, 1})
//	outer := ndarray.Add(row, col) // (4, 4)
//
// # Memory Management
//
// Views share their source's buffer. Each handle holds one reference on it;
// a handle writes in place only when it holds the sole reference and its
// layout is contiguous, and copies the data first otherwise. References are
// dropped by Release or when the handle is garbage collected.
//
// # Faults
//
// Misuse (bad indexes, incompatible shapes, wrong range counts) panics with an
// *Error. Try converts such a panic back into an error:
//
//	err := ndarray.Try(func() { a.At(10, 10) })
//	errors.Is(err, ndarray.ErrIndexOutOfRange) // true
package ndarray
