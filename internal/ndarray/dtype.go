// Package ndarray provides the core strided N-dimensional array: dimensions,
// layouts, shared copy-on-write buffers, views and the iteration engine behind
// broadcasting, elementwise operations and reductions.
package ndarray

import "golang.org/x/exp/constraints"

// Number is a constraint for element types with arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is a constraint for floating-point element types.
type Float interface {
	constraints.Float
}

// Ordered is a constraint for element types usable with Max and Min.
type Ordered interface {
	constraints.Ordered
}

// DataType represents runtime type information for arrays.
type DataType int

// Known data types. Any other element type reports Other.
const (
	Other DataType = iota
	Float32
	Float64
	Int
	Int32
	Int64
	Uint8
	Bool
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int:
		return "int"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "other"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T any]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int:
		return Int
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		return Other
	}
}
