package find

import (
	"errors"
	"math"
	"testing"
)

func TestDispatchErrors(t *testing.T) {
	if _, err := Dispatch(Complex64, Equal, 0); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("complex64: %v", err)
	}
	if _, err := Dispatch(Unknown, Equal, 0); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("unknown: %v", err)
	}
	if _, err := Dispatch(Float64, Op(42), 0); !errors.Is(err, ErrUnsupportedOperator) {
		t.Fatalf("op 42: %v", err)
	}
	if _, err := Dispatch(Int8, Less, 1.5); !errors.Is(err, ErrValue) {
		t.Fatalf("1.5 as int8: %v", err)
	}
}

func TestDispatchRoutineReuse(t *testing.T) {
	routine, err := Dispatch(Int32, GreaterEqual, 10)
	if err != nil {
		t.Fatal(err)
	}

	arrays := []struct {
		a    Array
		want int
	}{
		{Of([]int32{1, 2, 30}), 2},
		{Of([]int32{10}), 0},
		{Of([]int32{}), NotFound},
		{Of([]int32{50, 1, 1, 1}, WithOffset(1)), NotFound},
		{Of([]int32{50, 1, 1, 1}, WithOffset(3), WithStride(-1)), 3},
	}
	for i, tc := range arrays {
		if err := tc.a.Validate(); err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if got := routine(tc.a); got != tc.want {
			t.Fatalf("case %d: routine() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestConvertValue(t *testing.T) {
	okCases := []struct {
		name string
		dt   DType
		v    any
		want float64
	}{
		{"int to int8", Int8, -128, -128},
		{"float to int", Int64, 3.0, 3},
		{"uint8 max", Uint8, 255, 255},
		{"uint64 to int64", Int64, uint64(math.MaxInt64), math.MaxInt64},
		{"bool true", Int16, true, 1},
		{"bool false", Float32, false, 0},
		{"float64 to float32 rounds", Float32, 0.1, float64(float32(0.1))},
		{"huge int to float32", Float32, int64(1 << 40), 1 << 40},
		{"inf to float", Float64, math.Inf(1), math.Inf(1)},
		{"uintptr", Uint, uintptr(7), 7},
		{"float32 to uint16", Uint16, float32(12), 12},
		{"min int64 from float", Int64, -0x1p63, -0x1p63},
		{"largest float below 2^64", Uint64, 0x1p64 - 0x1p11, 0x1p64 - 0x1p11},
		{"int8 low edge from float", Int8, -128.0, -128},
		{"uint8 high edge from float", Uint8, 255.0, 255},
	}
	for _, tc := range okCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := convertAny(tc.dt, tc.v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("converted %v to %v, want %v", tc.v, got, tc.want)
			}
		})
	}

	badCases := []struct {
		name string
		dt   DType
		v    any
	}{
		{"int8 overflow", Int8, 128},
		{"int8 underflow", Int8, int16(-129)},
		{"negative to uint", Uint64, -1},
		{"uint64 to int64 overflow", Int64, uint64(math.MaxInt64) + 1},
		{"fraction", Int32, 0.5},
		{"nan to int", Int32, math.NaN()},
		{"inf to int", Int64, math.Inf(-1)},
		{"float out of range", Uint8, 256.0},
		{"huge float", Int64, 1e19},
		{"2^63 to int64", Int64, 0x1p63},
		{"2^64 to uint64", Uint64, 0x1p64},
		{"below min int64", Int64, -0x1p63 - 0x1p11},
		{"128 to int8", Int8, 128.0},
		{"int16 underflow from float", Int16, -32769.0},
		{"2^64 to uint", Uint, 0x1p64},
		{"negative float to uint16", Uint16, -1.0},
		{"complex", Float64, complex(1, 0)},
		{"string", Int, "3"},
	}
	for _, tc := range badCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := convertAny(tc.dt, tc.v)
			var valueErr *ValueError
			if !errors.As(err, &valueErr) {
				t.Fatalf("expected ValueError, got %v", err)
			}
			if valueErr.DType != tc.dt {
				t.Fatalf("ValueError.DType = %s, want %s", valueErr.DType, tc.dt)
			}
		})
	}
}

// convertAny converts through the same path Dispatch uses and widens the
// result for comparison.
func convertAny(dt DType, v any) (float64, error) {
	switch dt {
	case Int8:
		x, err := convertValue[int8](dt, Equal, v)
		return float64(x), err
	case Int16:
		x, err := convertValue[int16](dt, Equal, v)
		return float64(x), err
	case Int32:
		x, err := convertValue[int32](dt, Equal, v)
		return float64(x), err
	case Int64:
		x, err := convertValue[int64](dt, Equal, v)
		return float64(x), err
	case Int:
		x, err := convertValue[int](dt, Equal, v)
		return float64(x), err
	case Uint8:
		x, err := convertValue[uint8](dt, Equal, v)
		return float64(x), err
	case Uint16:
		x, err := convertValue[uint16](dt, Equal, v)
		return float64(x), err
	case Uint64:
		x, err := convertValue[uint64](dt, Equal, v)
		return float64(x), err
	case Uint:
		x, err := convertValue[uint](dt, Equal, v)
		return float64(x), err
	case Float32:
		x, err := convertValue[float32](dt, Equal, v)
		return float64(x), err
	default:
		return convertValue[float64](dt, Equal, v)
	}
}

func TestDispatchBoolComparisons(t *testing.T) {
	x := Of([]bool{true, false, true})
	cases := []struct {
		op   Op
		v    any
		want int
	}{
		{Equal, false, 1},
		{NotEqual, true, 1},
		{Less, true, 1},
		{Less, 0, NotFound},
		{LessEqual, 0.5, 1},
		{Greater, -1, 0},
		{GreaterEqual, 2, NotFound},
		{Equal, 2, NotFound},
		{NotEqual, math.NaN(), 0},
		{Greater, math.NaN(), NotFound},
	}
	for _, tc := range cases {
		if got := mustFirst(t, x, tc.op, tc.v); got != tc.want {
			t.Fatalf("bool %s %v = %d, want %d", tc.op, tc.v, got, tc.want)
		}
	}
}

func TestBackend(t *testing.T) {
	name := Backend()
	switch name {
	case "generic", "avx2", "neon":
	default:
		t.Fatalf("unexpected backend %q", name)
	}
}
