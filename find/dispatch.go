package find

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-find1st/internal/scan/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Routine is a search bound to one element type, operator and comparison
// value. It must only be called with an Array of that element type which
// has passed Validate; FirstIndex guarantees both.
type Routine func(a Array) int

type binder func(dt DType, op Op, value any) (Routine, error)

var binders = map[DType]binder{
	Bool:    bindBool,
	Int8:    bindNumber[int8],
	Int16:   bindNumber[int16],
	Int32:   bindNumber[int32],
	Int64:   bindInt64,
	Int:     bindNumber[int],
	Uint8:   bindUint8,
	Uint16:  bindNumber[uint16],
	Uint32:  bindNumber[uint32],
	Uint64:  bindNumber[uint64],
	Uint:    bindNumber[uint],
	Float32: bindFloat32,
	Float64: bindFloat64,
}

// Dispatch selects the scan routine for (dt, op) and binds value to it.
//
// It fails with *UnsupportedTypeError for element types outside the
// supported set, *UnsupportedOperatorError for operators outside the six
// comparisons and *ValueError when value cannot be represented exactly in
// dt. A nil value is accepted only with NotEqual and means zero.
func Dispatch(dt DType, op Op, value any) (Routine, error) {
	bind, ok := binders[dt]
	if !ok {
		return nil, &UnsupportedTypeError{DType: dt, Name: dt.String()}
	}
	if !op.Valid() {
		return nil, &UnsupportedOperatorError{Token: op.String()}
	}
	return bind(dt, op, value)
}

func bindNumber[T scan.Number](dt DType, op Op, value any) (Routine, error) {
	return bindWith[T](dt, op, value, scan.First[T])
}

// The hot element types run their unit-stride scans on the selected kernel
// set.

func bindInt64(dt DType, op Op, value any) (Routine, error) {
	return bindWith[int64](dt, op, value, kernels().Int64)
}

func bindUint8(dt DType, op Op, value any) (Routine, error) {
	return bindWith[uint8](dt, op, value, kernels().Uint8)
}

func bindFloat32(dt DType, op Op, value any) (Routine, error) {
	return bindWith[float32](dt, op, value, kernels().Float32)
}

func bindFloat64(dt DType, op Op, value any) (Routine, error) {
	return bindWith[float64](dt, op, value, kernels().Float64)
}

// bindWith converts value once and returns a routine that runs contiguous
// for unit-stride views and the strided kernel otherwise.
func bindWith[T scan.Number](dt DType, op Op, value any, contiguous func([]T, scan.Cmp, T) int) (Routine, error) {
	v, err := convertValue[T](dt, op, value)
	if err != nil {
		return nil, err
	}
	c := op.cmp()

	return func(a Array) int {
		if a.length == 0 {
			return NotFound
		}
		s := a.data.([]T)
		if a.stride == 1 {
			return contiguous(s[a.offset:a.offset+a.length], c, v)
		}
		return scan.FirstStrided(s, a.offset, a.stride, a.length, c, v)
	}, nil
}

// bindBool evaluates the comparison for false (0) and true (1) once; the
// scan then only looks for the element value that makes it hold.
func bindBool(dt DType, op Op, value any) (Routine, error) {
	v, err := boolValue(dt, op, value)
	if err != nil {
		return nil, err
	}
	c := op.cmp()
	onFalse := holds(0, c, v)
	onTrue := holds(1, c, v)

	// Reduce to an equivalent boolean comparison.
	var (
		bc   scan.Cmp
		want bool
	)
	switch {
	case onFalse && onTrue:
		bc, want = scan.GreaterEqual, false // always
	case onTrue:
		bc, want = scan.Equal, true
	case onFalse:
		bc, want = scan.Equal, false
	default:
		bc, want = scan.Greater, true // never
	}

	return func(a Array) int {
		if a.length == 0 {
			return NotFound
		}
		return scan.FirstBool(a.data.([]bool), a.offset, a.stride, a.length, bc, want)
	}, nil
}

func holds(x float64, c scan.Cmp, v float64) bool {
	switch c {
	case scan.Less:
		return x < v
	case scan.LessEqual:
		return x <= v
	case scan.Equal:
		return x == v
	case scan.NotEqual:
		return x != v
	case scan.GreaterEqual:
		return x >= v
	case scan.Greater:
		return x > v
	}
	return false
}

var (
	kernelEntry    *registry.OpEntry
	kernelInitOnce sync.Once
)

func kernels() *registry.OpEntry {
	kernelInitOnce.Do(initKernels)
	return kernelEntry
}

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("find: no scan kernels registered (missing generic fallback?)")
	}

	if entry.Float64 == nil || entry.Float32 == nil || entry.Int64 == nil || entry.Uint8 == nil {
		panic(fmt.Sprintf("find: selected kernel set %q is incomplete", entry.Name))
	}

	kernelEntry = entry
}

// Backend returns the name of the kernel set used for unit-stride float64,
// float32, int64 and uint8 scans, e.g. "generic" or "avx2".
func Backend() string {
	return kernels().Name
}
