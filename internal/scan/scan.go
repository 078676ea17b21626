// Package scan implements the first-match linear scan kernels.
//
// Every kernel walks its input from the first logical position upward and
// returns as soon as the comparison holds, so no element after the result is
// read. The comparator is resolved once per call; each comparator has its own
// loop so the hot path carries a single comparison per element.
//
// Kernels never fail and never allocate. Validation (view bounds, element
// type, comparator range) is the caller's job.
package scan

// NotFound is returned when no element satisfies the comparison.
const NotFound = -1

// Cmp selects the comparison x <op> v applied to each element x.
// The numeric codes are shared with the public find.Op values.
type Cmp int

// Comparators.
const (
	Less         Cmp = -2
	LessEqual    Cmp = -1
	Equal        Cmp = 0
	NotEqual     Cmp = 1
	GreaterEqual Cmp = 2
	Greater      Cmp = 3
)

// Valid reports whether c is one of the six comparators.
func (c Cmp) Valid() bool {
	return c >= Less && c <= Greater
}

// Number is the set of element types with a total (or IEEE partial) order.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// First returns the smallest i with s[i] <c> v, or NotFound.
//
// Floating point comparisons follow IEEE 754: a NaN element (or a NaN v)
// never satisfies any comparator except NotEqual.
func First[T Number](s []T, c Cmp, v T) int {
	switch c {
	case Less:
		for i, x := range s {
			if x < v {
				return i
			}
		}
	case LessEqual:
		for i, x := range s {
			if x <= v {
				return i
			}
		}
	case Equal:
		for i, x := range s {
			if x == v {
				return i
			}
		}
	case NotEqual:
		for i, x := range s {
			if x != v {
				return i
			}
		}
	case GreaterEqual:
		for i, x := range s {
			if x >= v {
				return i
			}
		}
	case Greater:
		for i, x := range s {
			if x > v {
				return i
			}
		}
	}
	return NotFound
}

// FirstStrided scans the n logical positions offset, offset+stride, ...
// of s and returns the logical index (not the backing index) of the first
// match, or NotFound. stride may be negative. The caller guarantees that all
// n positions lie inside s.
func FirstStrided[T Number](s []T, offset, stride, n int, c Cmp, v T) int {
	if stride == 1 {
		if n <= 0 {
			return NotFound
		}
		return First(s[offset:offset+n], c, v)
	}

	p := offset
	switch c {
	case Less:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] < v {
				return i
			}
		}
	case LessEqual:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] <= v {
				return i
			}
		}
	case Equal:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] == v {
				return i
			}
		}
	case NotEqual:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] != v {
				return i
			}
		}
	case GreaterEqual:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] >= v {
				return i
			}
		}
	case Greater:
		for i := 0; i < n; i, p = i+1, p+stride {
			if s[p] > v {
				return i
			}
		}
	}
	return NotFound
}

// FirstBool is FirstStrided for booleans, ordered false < true.
func FirstBool(s []bool, offset, stride, n int, c Cmp, v bool) int {
	// On booleans every ordering collapses to an equality test or a
	// constant: x < true  <=> !x, x < false never, x >= false always, ...
	switch c {
	case Equal:
		return firstBoolEq(s, offset, stride, n, v)
	case NotEqual:
		return firstBoolEq(s, offset, stride, n, !v)
	case Less:
		if !v {
			return NotFound
		}
		return firstBoolEq(s, offset, stride, n, false)
	case LessEqual:
		if v {
			return firstAny(n)
		}
		return firstBoolEq(s, offset, stride, n, false)
	case GreaterEqual:
		if !v {
			return firstAny(n)
		}
		return firstBoolEq(s, offset, stride, n, true)
	case Greater:
		if v {
			return NotFound
		}
		return firstBoolEq(s, offset, stride, n, true)
	}
	return NotFound
}

func firstBoolEq(s []bool, offset, stride, n int, want bool) int {
	p := offset
	for i := 0; i < n; i, p = i+1, p+stride {
		if s[p] == want {
			return i
		}
	}
	return NotFound
}

func firstAny(n int) int {
	if n > 0 {
		return 0
	}
	return NotFound
}
