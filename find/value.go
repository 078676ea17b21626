package find

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-find1st/internal/scan"
)

// convertValue converts a comparison value to the element type T. The
// conversion must be exact for integer types; float types accept any
// numeric value, rounded to the nearest representable value.
//
// A nil value is the truthy shorthand and is only accepted for NotEqual.
func convertValue[T scan.Number](dt DType, op Op, value any) (T, error) {
	var zero T
	if value == nil {
		if op == NotEqual {
			return zero, nil
		}
		return zero, &ValueError{DType: dt, Value: value, Reason: "comparison value required for " + op.String()}
	}

	var (
		t  T
		ok bool
	)
	switch x := value.(type) {
	case T:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case int:
		t, ok = fromInt[T](int64(x))
	case int8:
		t, ok = fromInt[T](int64(x))
	case int16:
		t, ok = fromInt[T](int64(x))
	case int32:
		t, ok = fromInt[T](int64(x))
	case int64:
		t, ok = fromInt[T](x)
	case uint:
		t, ok = fromUint[T](uint64(x))
	case uint8:
		t, ok = fromUint[T](uint64(x))
	case uint16:
		t, ok = fromUint[T](uint64(x))
	case uint32:
		t, ok = fromUint[T](uint64(x))
	case uint64:
		t, ok = fromUint[T](x)
	case uintptr:
		t, ok = fromUint[T](uint64(x))
	case float32:
		t, ok = fromFloat[T](float64(x))
	case float64:
		t, ok = fromFloat[T](x)
	default:
		return zero, &ValueError{DType: dt, Value: value, Reason: "not a numeric scalar"}
	}

	if !ok {
		return zero, &ValueError{DType: dt, Value: value, Reason: "not exactly representable"}
	}
	return t, nil
}

func isFloat[T scan.Number]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	}
	return false
}

func fromInt[T scan.Number](x int64) (T, bool) {
	t := T(x)
	if isFloat[T]() {
		return t, true
	}
	return t, int64(t) == x && (t < 0) == (x < 0)
}

func fromUint[T scan.Number](x uint64) (T, bool) {
	t := T(x)
	if isFloat[T]() {
		return t, true
	}
	return t, uint64(t) == x && !(t < 0)
}

// fromFloat rejects fractional, infinite, NaN and out-of-range values for
// integer T. The range is checked before converting: out-of-range float to
// integer conversions are implementation-defined and saturate on some
// platforms.
func fromFloat[T scan.Number](x float64) (T, bool) {
	if isFloat[T]() {
		return T(x), true
	}
	if x != math.Trunc(x) {
		return 0, false
	}
	lo, hi := intRange[T]()
	if !(x >= lo && x < hi) {
		return 0, false
	}
	return T(x), true
}

// intRange returns the half-open interval [lo, hi) of integer type T as
// float64 values; both bounds are powers of two and therefore exact.
func intRange[T scan.Number]() (lo, hi float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
	return 0, math.Ldexp(1, bits)
}

// boolValue returns the numeric value booleans are compared against;
// false and true behave as 0 and 1.
func boolValue(dt DType, op Op, value any) (float64, error) {
	if b, ok := value.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return convertValue[float64](dt, op, value)
}
