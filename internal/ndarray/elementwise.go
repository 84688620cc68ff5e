package ndarray

import "github.com/born-ml/ndarray/internal/parallel"

// sequential is the scheduler behind the non-parallel entry points.
var sequential parallel.Scheduler = parallel.Sequential{}

// mapRange writes f over positions [start, end) of a's row-major order.
func mapRange[A, Z any](out []Z, src []A, la Layout, f func(A) Z, start, end int) {
	if la.IsIdentity() {
		for i := start; i < end; i++ {
			out[i] = f(src[i])
		}
		return
	}
	for pos, index := range IndexSequence(start, end, la.Shape()) {
		out[pos] = f(src[la.LinearIndex(index)])
	}
}

// map2Range is mapRange for two operands already broadcast to one shape.
func map2Range[A, B, Z any](out []Z, srcA []A, la Layout, srcB []B, lb Layout, f func(A, B) Z, start, end int) {
	if la.IsIdentity() && lb.IsIdentity() {
		for i := start; i < end; i++ {
			out[i] = f(srcA[i], srcB[i])
		}
		return
	}
	for pos, index := range IndexSequence(start, end, la.Shape()) {
		out[pos] = f(srcA[la.LinearIndex(index)], srcB[lb.LinearIndex(index)])
	}
}

// Map applies f to every element of a and returns a new contiguous array.
//
// Example:
//
//	doubled := ndarray.Map(a, func(x float32) float32 { return 2 * x })
func Map[A, Z any](a *NDArray[A], f func(A) Z) *NDArray[Z] {
	return MapParallel(sequential, a, f)
}

// MapParallel is Map with the iteration range split by s.
func MapParallel[A, Z any](s parallel.Scheduler, a *NDArray[A], f func(A) Z) *NDArray[Z] {
	out := fromLayout[Z](a.layout.Shape().Clone())
	dst, src, la := out.data(), a.data(), a.layout
	s.Run(la.Size(), func(start, end int) {
		mapRange(dst, src, la, f, start, end)
	})
	return out
}

// Map2 applies f to the elements of a and b, broadcast to a common shape, and
// returns a new contiguous array.
//
// Example:
//
//	row := ndarray.MustFromSlice([]int{1, 2, 3, 4}, Shape{1, 4})
//	col := ndarray.MustFromSlice([]int{1, 2, 3, 4}, Shape{4, 1})
//	sum := ndarray.Map2(row, col, func(x, y int) int { return x + y }) // 4x4
func Map2[A, B, Z any](a *NDArray[A], b *NDArray[B], f func(A, B) Z) *NDArray[Z] {
	return Map2Parallel(sequential, a, b, f)
}

// Map2Parallel is Map2 with the iteration range split by s.
func Map2Parallel[A, B, Z any](s parallel.Scheduler, a *NDArray[A], b *NDArray[B], f func(A, B) Z) *NDArray[Z] {
	la, lb := broadcastLayouts("elementwise", a.layout, b.layout)
	out := fromLayout[Z](la.Shape().Clone())
	dst, srcA, srcB := out.data(), a.data(), b.data()
	s.Run(la.Size(), func(start, end int) {
		map2Range(dst, srcA, la, srcB, lb, f, start, end)
	})
	return out
}

// MapInto writes f applied to a into dst, whose shape must equal a's.
func MapInto[A, Z any](dst *NDArray[Z], a *NDArray[A], f func(A) Z) {
	la := a.layout
	if !dst.layout.Shape().Equal(la.Shape()) {
		fault(ShapeMismatch, "elementwise", "output shape %v, expected %v", dst.layout.Shape(), la.Shape())
	}
	src := a.data()
	dst.ensureWritable()
	mapRange(dst.data(), src, la, f, 0, la.Size())
}

// Map2Into writes f applied to a and b into dst. The broadcast shape of a and
// b must equal dst's shape.
func Map2Into[A, B, Z any](dst *NDArray[Z], a *NDArray[A], b *NDArray[B], f func(A, B) Z) {
	la, lb := broadcastLayouts("elementwise", a.layout, b.layout)
	if !dst.layout.Shape().Equal(la.Shape()) {
		fault(ShapeMismatch, "elementwise", "output shape %v, expected %v", dst.layout.Shape(), la.Shape())
	}
	srcA, srcB := a.data(), b.data()
	dst.ensureWritable()
	map2Range(dst.data(), srcA, la, srcB, lb, f, 0, la.Size())
}

// Add returns a + b with broadcasting.
func Add[T Number](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b with broadcasting.
func Mul[T Number](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b with broadcasting. Integer division by zero panics as in Go.
func Div[T Number](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return x / y })
}

// Neg returns -a.
func Neg[T Number](a *NDArray[T]) *NDArray[T] {
	return Map(a, func(x T) T { return -x })
}

// AddScalar returns a + v.
func AddScalar[T Number](a *NDArray[T], v T) *NDArray[T] {
	return Map(a, func(x T) T { return x + v })
}

// MulScalar returns a * v.
func MulScalar[T Number](a *NDArray[T], v T) *NDArray[T] {
	return Map(a, func(x T) T { return x * v })
}

// Maximum returns the elementwise maximum of a and b.
func Maximum[T Ordered](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return max(x, y) })
}

// Minimum returns the elementwise minimum of a and b.
func Minimum[T Ordered](a, b *NDArray[T]) *NDArray[T] {
	return Map2(a, b, func(x, y T) T { return min(x, y) })
}

// Equal returns the elementwise comparison a == b.
func Equal[T comparable](a, b *NDArray[T]) *NDArray[bool] {
	return Map2(a, b, func(x, y T) bool { return x == y })
}

// Cast converts every element of a to Z.
func Cast[Z, A Number](a *NDArray[A]) *NDArray[Z] {
	return Map(a, func(x A) Z { return Z(x) })
}
