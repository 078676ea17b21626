package find

import "github.com/cwbudde/algo-find1st/internal/scan"

// NotFound is the result of a search without a match. It is never a valid
// index.
const NotFound = scan.NotFound

// Number is the set of element types accepted by the typed First.
type Number interface {
	scan.Number
}

// FirstIndex returns the smallest logical index i of a with
// a[i] <op> value, or NotFound.
//
// The view, element type, operator and value are all validated before any
// element is read; see Dispatch for the value rules.
func FirstIndex(a Array, op Op, value any) (int, error) {
	if err := a.Validate(); err != nil {
		return NotFound, err
	}

	routine, err := Dispatch(a.dtype, op, value)
	if err != nil {
		return NotFound, err
	}

	return routine(a), nil
}

// FirstIndexToken is FirstIndex with the operator given as a token or
// symbol (see ParseOp).
func FirstIndexToken(a Array, token string, value any) (int, error) {
	op, err := ParseOp(token)
	if err != nil {
		return NotFound, err
	}
	return FirstIndex(a, op, value)
}

// Nonzero returns the index of the first truthy element: non-zero numbers
// (NaN included) and true.
func Nonzero(a Array) (int, error) {
	return FirstIndex(a, NotEqual, nil)
}

// First searches a plain slice. It skips view validation and value
// conversion; the only error is an invalid operator.
func First[T Number](s []T, op Op, v T) (int, error) {
	if !op.Valid() {
		return NotFound, &UnsupportedOperatorError{Token: op.String()}
	}
	return scan.First(s, op.cmp(), v), nil
}
