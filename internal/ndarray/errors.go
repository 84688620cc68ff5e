package ndarray

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// ErrorKind classifies usage faults raised by array operations.
type ErrorKind int

// Fault kinds.
const (
	// ShapeMismatch: element count vs declared shape, or shapes that cannot be broadcast.
	ShapeMismatch ErrorKind = iota + 1
	// IndexOutOfRange: an index, slice bound or axis outside its valid range.
	IndexOutOfRange
	// RangeSpecArity: too many range specifiers, or more than one Ellipsis.
	RangeSpecArity
	// InvalidScalarConversion: Scalarized called on a non-scalar view.
	InvalidScalarConversion
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case IndexOutOfRange:
		return "index out of range"
	case RangeSpecArity:
		return "range spec arity"
	case InvalidScalarConversion:
		return "invalid scalar conversion"
	default:
		return "unknown"
	}
}

// Error is the single error type for array usage faults.
// Use errors.Is with the Err* sentinels to match a kind.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("ndarray: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("ndarray: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrShapeMismatch           = &Error{Kind: ShapeMismatch}
	ErrIndexOutOfRange         = &Error{Kind: IndexOutOfRange}
	ErrRangeSpecArity          = &Error{Kind: RangeSpecArity}
	ErrInvalidScalarConversion = &Error{Kind: InvalidScalarConversion}
)

func newError(kind ErrorKind, op, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)})
}

// fault aborts the current call. Faults are caller bugs; Try turns them back
// into errors.
func fault(kind ErrorKind, op, format string, args ...any) {
	panic(newError(kind, op, format, args...))
}

// Try runs fn and returns the fault it raised, if any.
// Panics that are not errors are propagated unchanged.
//
// Example:
//
//	err := ndarray.Try(func() { a.Get(ndarray.Index(10)) })
//	if errors.Is(err, ndarray.ErrIndexOutOfRange) { ... }
func Try(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// KindOf extracts the ErrorKind of err, or 0 if err is not an array fault.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
