package scan

// FirstUnrolled is First with the loop body unrolled four times.
//
// Elements are still tested strictly in ascending order and the scan returns
// on the first hit, so the result and the set of elements read are identical
// to First.
func FirstUnrolled[T Number](s []T, c Cmp, v T) int {
	switch c {
	case Less:
		return firstLess4(s, v)
	case LessEqual:
		return firstLessEqual4(s, v)
	case Equal:
		return firstEqual4(s, v)
	case NotEqual:
		return firstNotEqual4(s, v)
	case GreaterEqual:
		return firstGreaterEqual4(s, v)
	case Greater:
		return firstGreater4(s, v)
	}
	return NotFound
}

func firstLess4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] < v {
			return i
		}
		if s[i+1] < v {
			return i + 1
		}
		if s[i+2] < v {
			return i + 2
		}
		if s[i+3] < v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] < v {
			return i
		}
	}
	return NotFound
}

func firstLessEqual4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] <= v {
			return i
		}
		if s[i+1] <= v {
			return i + 1
		}
		if s[i+2] <= v {
			return i + 2
		}
		if s[i+3] <= v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] <= v {
			return i
		}
	}
	return NotFound
}

func firstEqual4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] == v {
			return i
		}
		if s[i+1] == v {
			return i + 1
		}
		if s[i+2] == v {
			return i + 2
		}
		if s[i+3] == v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] == v {
			return i
		}
	}
	return NotFound
}

func firstNotEqual4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] != v {
			return i
		}
		if s[i+1] != v {
			return i + 1
		}
		if s[i+2] != v {
			return i + 2
		}
		if s[i+3] != v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] != v {
			return i
		}
	}
	return NotFound
}

func firstGreaterEqual4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] >= v {
			return i
		}
		if s[i+1] >= v {
			return i + 1
		}
		if s[i+2] >= v {
			return i + 2
		}
		if s[i+3] >= v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] >= v {
			return i
		}
	}
	return NotFound
}

func firstGreater4[T Number](s []T, v T) int {
	i := 0
	n := len(s)
	for ; i+3 < n; i += 4 {
		if s[i] > v {
			return i
		}
		if s[i+1] > v {
			return i + 1
		}
		if s[i+2] > v {
			return i + 2
		}
		if s[i+3] > v {
			return i + 3
		}
	}
	for ; i < n; i++ {
		if s[i] > v {
			return i
		}
	}
	return NotFound
}
