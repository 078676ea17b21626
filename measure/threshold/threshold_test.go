package threshold

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-find1st/find"
	"github.com/cwbudde/algo-find1st/internal/testutil"
)

// makeExponentialDecay generates a decaying envelope reaching -60 dB after
// rt60 seconds.
func makeExponentialDecay(sampleRate, rt60, durationSec float64) []float64 {
	n := int(sampleRate * durationSec)
	x := make([]float64, n)
	decayRate := 6.9078 / rt60
	for i := range x {
		x[i] = math.Exp(-decayRate * float64(i) / sampleRate)
	}
	return x
}

// impulseStartRef is the two-pass formulation on magnitudes.
func impulseStartRef(x []float64, ratio float64) int {
	peak := 0.0
	for _, v := range x {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}
	if peak == 0 {
		return find.NotFound
	}
	return testutil.MaskFirst(len(x), func(i int) bool { return math.Abs(x[i]) >= ratio*peak })
}

func TestImpulseStart(t *testing.T) {
	leadIn := testutil.DeterministicNoise(1, 0.01, 200)
	x := append(leadIn, makeExponentialDecay(48000, 0.2, 0.05)...)
	x[199] = -0.5

	tests := []struct {
		name  string
		x     []float64
		ratio float64
		want  int
	}{
		{name: "delayed impulse", x: testutil.Impulse(64, 17), ratio: 0.1, want: 17},
		{name: "negative pre-echo", x: x, ratio: 0.1, want: 199},
		{name: "ratio one finds the peak", x: x, ratio: 1, want: 200},
		{name: "silence", x: make([]float64, 32), ratio: 0.5, want: find.NotFound},
		{name: "nan ignored", x: []float64{math.NaN(), 0.2, 1}, ratio: 0.1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImpulseStart(tt.x, tt.ratio)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("ImpulseStart() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestImpulseStartMatchesReference(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		x := testutil.DeterministicNoise(seed, 1, 513)
		for _, ratio := range []float64{0.25, 0.5, 0.75} {
			got, err := ImpulseStart(x, ratio)
			if err != nil {
				t.Fatal(err)
			}
			if want := impulseStartRef(x, ratio); got != want {
				t.Fatalf("seed %d ratio %v: got %d, want %d", seed, ratio, got, want)
			}
		}
	}
}

func TestImpulseStartErrors(t *testing.T) {
	if _, err := ImpulseStart(nil, 0.1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	for _, ratio := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := ImpulseStart([]float64{1}, ratio); !errors.Is(err, ErrInvalidRatio) {
			t.Fatalf("ratio %v: expected ErrInvalidRatio, got %v", ratio, err)
		}
	}
}

func TestFirstAbove(t *testing.T) {
	x := []float64{0.2, -0.9, 0.95, -1.2, 1.5}

	tests := []struct {
		level float64
		want  int
	}{
		{level: 1, want: 3},
		{level: 0.9, want: 2},
		{level: 0, want: 0},
		{level: 2, want: find.NotFound},
		{level: -1, want: 0},
	}

	for _, tt := range tests {
		got, err := FirstAbove(x, tt.level)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("FirstAbove(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}

	got, err := FirstAbove([]float64{math.NaN(), 0}, -1)
	if err != nil || got != 1 {
		t.Fatalf("negative level over NaN = %d, %v; want 1", got, err)
	}

	if _, err := FirstAbove(nil, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestSchroederCurveAndCrossing(t *testing.T) {
	const sampleRate = 48000.0
	x := makeExponentialDecay(sampleRate, 1.0, 2.0)

	curve, err := SchroederCurve(x)
	if err != nil {
		t.Fatal(err)
	}
	if curve[0] != 0 {
		t.Fatalf("curve[0] = %v, want 0 dB", curve[0])
	}

	for i := 1; i < len(curve); i++ {
		if curve[i] > curve[i-1] {
			t.Fatalf("curve rises at %d: %v > %v", i, curve[i], curve[i-1])
		}
	}

	// An exponential decay with RT60 = 1 s keeps its slope after
	// integration; the -20 dB point lies near one third of a second.
	i := DecayCrossing(curve, -20)
	if i == find.NotFound {
		t.Fatal("curve never reaches -20 dB")
	}
	if sec := float64(i) / sampleRate; math.Abs(sec-1.0/3) > 0.02 {
		t.Fatalf("-20 dB crossing at %.3f s, want about 0.333 s", sec)
	}

	if got := DecayCrossing(curve, -500); got != find.NotFound {
		t.Fatalf("DecayCrossing(-500) = %d, want NotFound", got)
	}
	if got := DecayCrossing(curve, 0); got != 0 {
		t.Fatalf("DecayCrossing(0) = %d, want 0", got)
	}
	if got := DecayCrossing(nil, -10); got != find.NotFound {
		t.Fatalf("DecayCrossing(nil) = %d, want NotFound", got)
	}
}

func TestSchroederCurveSilenceAndTail(t *testing.T) {
	curve, err := SchroederCurve(make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range curve {
		if v != floorDB {
			t.Fatalf("silent curve[%d] = %v, want %v", i, v, float64(floorDB))
		}
	}

	curve, err = SchroederCurve([]float64{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if curve[0] != 0 || curve[1] != floorDB || curve[2] != floorDB {
		t.Fatalf("impulse curve = %v", curve)
	}

	if _, err := SchroederCurve(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFirstBinAbove(t *testing.T) {
	const n = 64

	tests := []struct {
		name     string
		frame    []float64
		minPower float64
		want     int
	}{
		{
			name:     "sine on bin 5",
			frame:    testutil.DeterministicSine(5, n, 1, n),
			minPower: 100,
			want:     5,
		},
		{
			name:     "dc",
			frame:    []float64{1, 1, 1, 1, 1, 1, 1, 1},
			minPower: 1,
			want:     0,
		},
		{
			name:     "below threshold",
			frame:    testutil.DeterministicSine(5, n, 1, n),
			minPower: 2000,
			want:     find.NotFound,
		},
		{
			name:     "nyquist",
			frame:    []float64{1, -1, 1, -1, 1, -1, 1, -1},
			minPower: 10,
			want:     4,
		},
		{
			name:     "short frame is padded",
			frame:    []float64{0, 0, 0},
			minPower: 1e-12,
			want:     find.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstBinAbove(tt.frame, tt.minPower)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("FirstBinAbove() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := FirstBinAbove(nil, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{1, 1}, {2, 2}, {3, 4}, {8, 8}, {9, 16}, {1000, 1024}} {
		if got := nextPowerOf2(tc.in); got != tc.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
