package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bandfilter/internal/testutil"
)

func TestFirlsAllPassIsImpulse(t *testing.T) {
	// A flat unit target over [0, 1] is met exactly by a centred impulse.
	h, err := Firls(9, []float64{0, 1}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, 9)
	want[4] = 1
	testutil.RequireSliceNearlyEqual(t, h, want, 1e-12)
}

func TestFirlsLowpassIsTruncatedSinc(t *testing.T) {
	// Unit weight, no transition band: least squares reduces to the
	// truncated ideal lowpass response 2*fc*sinc(2*fc*n).
	const fc = 0.15 // cycles/sample

	h, err := Firls(21, []float64{0, 2 * fc, 2 * fc, 1}, []float64{1, 1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range h {
		n := float64(i - 10)
		want := 2 * fc * sinc(2*fc*n)
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("h[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestFirlsEvenLength(t *testing.T) {
	h, err := Firls(10, []float64{0, 0.4, 0.4, 1}, []float64{1, 1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if len(h) != 10 {
		t.Fatalf("len=%d, want 10", len(h))
	}

	for i := range h {
		if math.Abs(h[i]-h[9-i]) > 1e-15 {
			t.Fatalf("asymmetric at %d", i)
		}

		// Half-sample shifted ideal lowpass.
		n := float64(i) - 4.5
		want := 0.4 * sinc(0.4*n)
		if math.Abs(h[i]-want) > 1e-12 {
			t.Fatalf("h[%d]=%v, want %v", i, h[i], want)
		}
	}
}

func TestFirlsSlopedBand(t *testing.T) {
	// Ramp target 2f on [0, 1/2]: the DC tap integrates it to 1/4, doubled.
	h, err := Firls(31, []float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, h)

	if math.Abs(h[15]-0.5) > 1e-12 {
		t.Fatalf("centre tap %v, want 0.5", h[15])
	}

	for i := range h {
		if math.Abs(h[i]-h[30-i]) > 1e-15 {
			t.Fatalf("asymmetric at %d", i)
		}
	}
}

func TestFirlsErrors(t *testing.T) {
	tests := []struct {
		name string
		taps int
		freq []float64
		mag  []float64
		want error
	}{
		{name: "no taps", taps: 0, freq: []float64{0, 1}, mag: []float64{1, 1}, want: ErrInvalidLength},
		{name: "odd edges", taps: 5, freq: []float64{0, 0.5, 1}, mag: []float64{1, 1, 0}, want: ErrInvalidBreakpoints},
		{name: "mismatch", taps: 5, freq: []float64{0, 1}, mag: []float64{1}, want: ErrInvalidBreakpoints},
		{name: "decreasing", taps: 5, freq: []float64{0, 0.5, 0.4, 1}, mag: []float64{1, 1, 0, 0}, want: ErrInvalidBreakpoints},
		{name: "out of range", taps: 5, freq: []float64{0, 1.5}, mag: []float64{1, 1}, want: ErrInvalidBreakpoints},
		{name: "zero width", taps: 5, freq: []float64{0, 0}, mag: []float64{1, 1}, want: ErrInvalidBreakpoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Firls(tt.taps, tt.freq, tt.mag)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
