package find

import (
	"errors"
	"fmt"
)

// Sentinels matched by the structured errors below through errors.Is.
var (
	ErrUnsupportedType     = errors.New("find: unsupported element type")
	ErrUnsupportedOperator = errors.New("find: unsupported operator")
	ErrShape               = errors.New("find: array is not a valid one-dimensional view")
	ErrValue               = errors.New("find: invalid comparison value")
)

// UnsupportedTypeError reports an element type outside the supported set.
type UnsupportedTypeError struct {
	DType DType
	// Name is the Go type or the type name given by the caller when the
	// value could not be mapped to a DType.
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	if e.DType != Unknown {
		return fmt.Sprintf("%v: %s", ErrUnsupportedType, e.DType)
	}
	return fmt.Sprintf("%v: %s", ErrUnsupportedType, e.Name)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// UnsupportedOperatorError reports an operator token or code that does not
// name one of the six comparisons.
type UnsupportedOperatorError struct {
	Token string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedOperator, e.Token)
}

func (e *UnsupportedOperatorError) Unwrap() error { return ErrUnsupportedOperator }

// ShapeError reports an array that is not exactly one-dimensional, or whose
// offset, stride and length do not describe positions inside the backing
// slice.
type ShapeError struct {
	Shape  []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: shape %v: %s", ErrShape, e.Shape, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// ValueError reports a comparison value that cannot be represented exactly
// in the array's element type.
type ValueError struct {
	DType  DType
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %v (%T) for %s: %s", ErrValue, e.Value, e.Value, e.DType, e.Reason)
}

func (e *ValueError) Unwrap() error { return ErrValue }
