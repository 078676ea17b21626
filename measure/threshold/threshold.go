package threshold

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-find1st/find"
	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the detectors.
var (
	ErrEmptyInput   = errors.New("threshold: input is empty")
	ErrInvalidRatio = errors.New("threshold: ratio must be in (0, 1]")
)

// minFFTSize is the smallest transform FirstBinAbove runs.
const minFFTSize = 8

// floorDB is the level assigned to curve points with no remaining energy.
const floorDB = -200

// ImpulseStart returns the first sample whose magnitude is at least ratio
// times the absolute peak of x. A signal without energy has no start and
// yields find.NotFound. NaN samples never match and do not raise the peak.
func ImpulseStart(x []float64, ratio float64) (int, error) {
	if len(x) == 0 {
		return find.NotFound, ErrEmptyInput
	}

	if !(ratio > 0 && ratio <= 1) {
		return find.NotFound, ErrInvalidRatio
	}

	energy := squared(x)

	peak := 0.0
	for _, e := range energy {
		if e > peak {
			peak = e
		}
	}

	if peak == 0 {
		return find.NotFound, nil
	}

	return first(energy, find.GreaterEqual, ratio*ratio*peak)
}

// FirstAbove returns the first sample with |x[i]| > level. A negative level
// matches the first sample that is not NaN.
func FirstAbove(x []float64, level float64) (int, error) {
	if len(x) == 0 {
		return find.NotFound, ErrEmptyInput
	}

	energy := squared(x)
	if level < 0 {
		return first(energy, find.GreaterEqual, 0)
	}

	return first(energy, find.Greater, level*level)
}

// DecayCrossing returns the first index of a decay curve in dB that is at
// or below levelDB, or find.NotFound if the curve never gets there.
func DecayCrossing(curveDB []float64, levelDB float64) int {
	return scan.First(curveDB, scan.LessEqual, levelDB)
}

// SchroederCurve computes the Schroeder backward integration of the squared
// signal, normalized to 0 dB at the first sample. Points without remaining
// energy are floored at -200 dB.
func SchroederCurve(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	curve := squared(x)

	var cumSum float64
	for i := len(curve) - 1; i >= 0; i-- {
		cumSum += curve[i]
		curve[i] = cumSum
	}

	total := curve[0]
	if total <= 0 {
		for i := range curve {
			curve[i] = floorDB
		}
		return curve, nil
	}

	for i, e := range curve {
		ratio := e / total
		if ratio <= 0 {
			curve[i] = floorDB
		} else {
			curve[i] = 10 * math.Log10(ratio)
		}
	}

	return curve, nil
}

// FirstBinAbove returns the first bin k in [0, N/2] of the frame's spectrum
// with |X[k]|^2 >= minPower. The frame is zero-padded to the next power of
// two N (at least 8). Powers are unnormalized: a full-scale sine centered on
// bin k has power (N/2)^2 there.
func FirstBinAbove(frame []float64, minPower float64) (int, error) {
	if len(frame) == 0 {
		return find.NotFound, ErrEmptyInput
	}

	n := nextPowerOf2(max(len(frame), minFFTSize))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return find.NotFound, fmt.Errorf("threshold: fft plan of size %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return find.NotFound, fmt.Errorf("threshold: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return first(power, find.GreaterEqual, minPower)
}

func squared(x []float64) []float64 {
	out := make([]float64, len(x))
	vecmath.MulBlock(out, x, x)
	return out
}

func first(s []float64, op find.Op, v float64) (int, error) {
	i, err := find.First(s, op, v)
	if err != nil {
		return find.NotFound, fmt.Errorf("threshold: %w", err)
	}
	return i, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
