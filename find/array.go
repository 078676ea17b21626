package find

import (
	"fmt"
	"unsafe"
)

// Element is the set of Go element types an Array can be built from.
type Element interface {
	bool | int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64
}

// Array is a read-only, possibly strided, one-dimensional view over a
// caller-owned slice.
//
// Logical position i of the view is backing[Offset() + i*Stride()]. Build
// views with Of, View or FromBytes; the zero value fails validation.
type Array struct {
	data    any
	backing int // len(data)
	dtype   DType

	offset int
	stride int
	length int
	shape  []int
}

type config struct {
	offset    int
	stride    int
	length    int
	hasLength bool
	shape     []int
	hasShape  bool
}

// Option configures an Array view.
type Option func(*config)

// WithOffset sets the backing index of logical position 0. Default 0.
func WithOffset(offset int) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithStride sets the distance, in elements, between consecutive logical
// positions. Negative strides walk the backing slice downward. Default 1;
// zero is rejected at validation.
func WithStride(stride int) Option {
	return func(c *config) {
		c.stride = stride
	}
}

// WithLen sets the number of logical positions. By default the view covers
// every position reachable from the offset with the stride.
func WithLen(n int) Option {
	return func(c *config) {
		c.length = n
		c.hasLength = true
	}
}

// WithShape declares the host array's shape. Only a single dimension is
// searchable; its extent becomes the view length.
func WithShape(dims ...int) Option {
	return func(c *config) {
		c.shape = append([]int(nil), dims...)
		c.hasShape = true
	}
}

// Of builds a view over data, which should be a slice of an Element type.
// Of never fails: an unsupported data value yields an Array whose search
// reports UnsupportedTypeError.
func Of(data any, opts ...Option) Array {
	return newArray(data, DTypeOf(data), sliceLen(data), opts)
}

// View is the typed form of Of.
func View[T Element](data []T, opts ...Option) Array {
	return newArray(data, DTypeOf(data), len(data), opts)
}

// FromBytes views raw as a buffer of dt elements in native byte order, the
// layout a host array library hands over (type tag, data pointer, byte
// length). Offset, stride and length options count elements, not bytes.
//
// raw is used in place when it is suitably aligned; otherwise it is copied
// once into an aligned buffer. Bool buffers are always decoded into a new
// []bool.
func FromBytes(dt DType, raw []byte, opts ...Option) (Array, error) {
	if !dt.Supported() {
		return Array{}, &UnsupportedTypeError{DType: dt, Name: dt.String()}
	}

	size := dt.Size()
	if len(raw)%size != 0 {
		return Array{}, &ShapeError{
			Shape:  []int{len(raw)},
			Reason: fmt.Sprintf("byte length %d is not a multiple of %s size %d", len(raw), dt, size),
		}
	}

	n := len(raw) / size
	if n == 0 {
		return newArray(emptyOf(dt), dt, 0, opts), nil
	}
	if uintptr(unsafe.Pointer(&raw[0]))%uintptr(size) != 0 {
		aligned := make([]uint64, (len(raw)+7)/8)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&aligned[0])), len(raw)), raw)
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&aligned[0])), len(raw))
	}

	ptr := unsafe.Pointer(&raw[0])
	var data any
	switch dt {
	case Bool:
		// Any nonzero byte is true; Go bools must hold exactly 0 or 1.
		b := make([]bool, n)
		for i, x := range raw {
			b[i] = x != 0
		}
		data = b
	case Int8:
		data = unsafe.Slice((*int8)(ptr), n)
	case Int16:
		data = unsafe.Slice((*int16)(ptr), n)
	case Int32:
		data = unsafe.Slice((*int32)(ptr), n)
	case Int64:
		data = unsafe.Slice((*int64)(ptr), n)
	case Int:
		data = unsafe.Slice((*int)(ptr), n)
	case Uint8:
		data = raw
	case Uint16:
		data = unsafe.Slice((*uint16)(ptr), n)
	case Uint32:
		data = unsafe.Slice((*uint32)(ptr), n)
	case Uint64:
		data = unsafe.Slice((*uint64)(ptr), n)
	case Uint:
		data = unsafe.Slice((*uint)(ptr), n)
	case Float32:
		data = unsafe.Slice((*float32)(ptr), n)
	case Float64:
		data = unsafe.Slice((*float64)(ptr), n)
	}
	return newArray(data, dt, n, opts), nil
}

func emptyOf(dt DType) any {
	switch dt {
	case Bool:
		return []bool{}
	case Int8:
		return []int8{}
	case Int16:
		return []int16{}
	case Int32:
		return []int32{}
	case Int64:
		return []int64{}
	case Int:
		return []int{}
	case Uint8:
		return []uint8{}
	case Uint16:
		return []uint16{}
	case Uint32:
		return []uint32{}
	case Uint64:
		return []uint64{}
	case Uint:
		return []uint{}
	case Float32:
		return []float32{}
	default:
		return []float64{}
	}
}

func newArray(data any, dt DType, backing int, opts []Option) Array {
	cfg := config{stride: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	length := cfg.length
	switch {
	case cfg.hasShape && len(cfg.shape) == 1:
		length = cfg.shape[0]
	case cfg.hasLength:
	default:
		length = reachable(backing, cfg.offset, cfg.stride)
	}

	shape := cfg.shape
	if !cfg.hasShape {
		shape = []int{length}
	}

	return Array{
		data:    data,
		backing: backing,
		dtype:   dt,
		offset:  cfg.offset,
		stride:  cfg.stride,
		length:  length,
		shape:   shape,
	}
}

// reachable counts the positions offset, offset+stride, ... inside [0, n).
func reachable(n, offset, stride int) int {
	if offset < 0 || offset >= n || stride == 0 {
		return 0
	}
	if stride > 0 {
		return (n-offset-1)/stride + 1
	}
	return offset/(-stride) + 1
}

func sliceLen(data any) int {
	switch s := data.(type) {
	case []bool:
		return len(s)
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []int:
		return len(s)
	case []uint8:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []uint64:
		return len(s)
	case []uint:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case []complex64:
		return len(s)
	case []complex128:
		return len(s)
	default:
		return 0
	}
}

// Len returns the number of logical positions.
func (a Array) Len() int { return a.length }

// DType returns the element type tag.
func (a Array) DType() DType { return a.dtype }

// Offset returns the backing index of logical position 0.
func (a Array) Offset() int { return a.offset }

// Stride returns the element step between logical positions.
func (a Array) Stride() int { return a.stride }

// Shape returns a copy of the declared shape.
func (a Array) Shape() []int { return append([]int(nil), a.shape...) }

// Validate checks the view without reading any element. It returns a
// *ShapeError for geometry problems and an *UnsupportedTypeError for
// element types that cannot be searched.
func (a Array) Validate() error {
	if len(a.shape) != 1 {
		return &ShapeError{Shape: a.Shape(), Reason: fmt.Sprintf("%d dimensions, want 1", len(a.shape))}
	}
	if !a.dtype.Supported() {
		return a.typeError()
	}
	if a.stride == 0 {
		return &ShapeError{Shape: a.Shape(), Reason: "zero stride"}
	}
	if a.length < 0 {
		return &ShapeError{Shape: a.Shape(), Reason: fmt.Sprintf("negative length %d", a.length)}
	}
	if a.length == 0 {
		return nil
	}

	if a.offset < 0 || a.offset >= a.backing || !a.spanFits() {
		return &ShapeError{
			Shape: a.Shape(),
			Reason: fmt.Sprintf("offset %d stride %d length %d exceeds backing length %d",
				a.offset, a.stride, a.length, a.backing),
		}
	}
	return nil
}

// spanFits reports whether the last position, offset + (length-1)*stride,
// lies inside the backing slice. It divides instead of multiplying, so huge
// strides or lengths cannot wrap around into range. offset must already be
// inside the backing slice.
func (a Array) spanFits() bool {
	steps := uint(a.length - 1)
	if steps == 0 {
		return true
	}

	var room, step uint
	if a.stride > 0 {
		room, step = uint(a.backing-1-a.offset), uint(a.stride)
	} else {
		room, step = uint(a.offset), uint(-a.stride) // uint(-MinInt) is 1<<63
	}
	return steps <= room/step
}

func (a Array) typeError() error {
	if a.dtype != Unknown {
		return &UnsupportedTypeError{DType: a.dtype, Name: a.dtype.String()}
	}
	return &UnsupportedTypeError{DType: Unknown, Name: fmt.Sprintf("%T", a.data)}
}
