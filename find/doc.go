// Package find locates the first element of a one-dimensional numeric array
// that satisfies a comparison, without building a boolean mask first.
//
// The supported comparisons are the six relational operators (see [Op]) and
// the "truthy" shorthand, which is [NotEqual] against zero. Arrays are
// read-only views over caller-owned Go slices and may be strided, including
// negative strides:
//
//	a := find.Of([]float64{3, 1, 4, 1, 5, 9, 2, 6})
//	i, err := find.FirstIndex(a, find.Greater, 4) // i == 4
//
//	every2nd := find.Of(samples, find.WithStride(2))
//	i, err = find.Nonzero(every2nd)
//
// # Result convention
//
// A successful search returns the smallest logical index i of the view with
// predicate(view[i], value) true. When nothing matches the result is
// [NotFound] (-1), which can never be a valid index. Elements after the
// result are never read.
//
// # Validation and dispatch
//
// All checks (view shape and bounds, element type, operator, comparison
// value) run before the first element is touched. Errors are structured:
// use errors.As with [*UnsupportedTypeError], [*UnsupportedOperatorError],
// [*ShapeError] or [*ValueError], or errors.Is with the matching Err
// sentinels.
//
// [Dispatch] resolves the (element type, operator) pair to a [Routine] once;
// the routine holds the converted comparison value, so the scan loop
// carries no per-element type switching. Unit-stride float64, float32,
// int64 and uint8 views run on the best kernel set registered for the
// current CPU (generic, AVX2 or NEON). Building with the purego tag keeps
// only the generic kernels.
//
// # NaN
//
// Floating point comparisons follow IEEE 754: NaN compares false under every
// operator except NotEqual, so FirstIndex([NaN, 1, NaN], Greater, 0) is 1.
package find
