package find

import "strings"

// DType identifies the element type of an array.
type DType int

const (
	// Unknown is the tag of values that are not recognized slices.
	Unknown DType = iota

	Bool
	Int8
	Int16
	Int32
	Int64
	Int // platform-sized int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint // platform-sized uint
	Float32
	Float64

	// Complex64 and Complex128 are recognized so that errors can name them,
	// but complex values have no order and are never supported.
	Complex64
	Complex128
)

var dtypeNames = [...]string{
	Unknown:    "unknown",
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Int:        "int",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Uint:       "uint",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

var dtypeSizes = [...]int{
	Bool:       1,
	Int8:       1,
	Int16:      2,
	Int32:      4,
	Int64:      8,
	Int:        intSize / 8,
	Uint8:      1,
	Uint16:     2,
	Uint32:     4,
	Uint64:     8,
	Uint:       intSize / 8,
	Float32:    4,
	Float64:    8,
	Complex64:  8,
	Complex128: 16,
}

const intSize = 32 << (^uint(0) >> 63) // bits

// String returns the Go-style name of the type, e.g. "float64".
func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return "unknown"
	}
	return dtypeNames[d]
}

// Supported reports whether arrays of this type can be searched.
func (d DType) Supported() bool {
	return d >= Bool && d <= Float64
}

// Size returns the number of bytes per element, or 0 for Unknown.
func (d DType) Size() int {
	if d <= Unknown || int(d) >= len(dtypeSizes) {
		return 0
	}
	return dtypeSizes[d]
}

// DTypes returns every supported element type in declaration order.
func DTypes() []DType {
	out := make([]DType, 0, Float64-Bool+1)
	for d := Bool; d <= Float64; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDType parses a type name such as "int16" or "Float32".
func ParseDType(name string) (DType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d, s := range dtypeNames {
		if DType(d) != Unknown && s == n {
			return DType(d), nil
		}
	}
	return Unknown, &UnsupportedTypeError{DType: Unknown, Name: name}
}

// DTypeOf returns the tag of a slice value. Anything that is not a slice of
// a recognized element type is Unknown.
func DTypeOf(data any) DType {
	switch data.(type) {
	case []bool:
		return Bool
	case []int8:
		return Int8
	case []int16:
		return Int16
	case []int32:
		return Int32
	case []int64:
		return Int64
	case []int:
		return Int
	case []uint8:
		return Uint8
	case []uint16:
		return Uint16
	case []uint32:
		return Uint32
	case []uint64:
		return Uint64
	case []uint:
		return Uint
	case []float32:
		return Float32
	case []float64:
		return Float64
	case []complex64:
		return Complex64
	case []complex128:
		return Complex128
	default:
		return Unknown
	}
}
