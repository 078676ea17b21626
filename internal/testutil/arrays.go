// Package testutil provides deterministic inputs and reference answers for
// first-match tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts generates integers in [lo, hi] with a fixed seed.
// Narrow ranges produce many repeats, which is what equality tests want.
func DeterministicInts(seed, lo, hi int64, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	span := hi - lo + 1
	for i := range out {
		out[i] = lo + rng.Int63n(span)
	}
	return out
}

// SprinkleNaN returns a copy of x with every k-th element (starting at
// start) replaced by NaN.
func SprinkleNaN(x []float64, start, k int) []float64 {
	out := append([]float64(nil), x...)
	for i := start; i >= 0 && i < len(out); i += k {
		out[i] = math.NaN()
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Convert copies src into a slice of another numeric type.
func Convert[T, S ~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~float32 | ~float64](src []S) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = T(v)
	}
	return out
}

// MaskFirst is the reference answer: it materializes the full boolean mask
// pred(0..n-1) and returns the position of its first true entry, or -1.
func MaskFirst(n int, pred func(i int) bool) int {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = pred(i)
	}
	for i, m := range mask {
		if m {
			return i
		}
	}
	return -1
}
