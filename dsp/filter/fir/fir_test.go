package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bandfilter/dsp/window"
	"github.com/cwbudde/algo-bandfilter/internal/testutil"
)

func TestFir1LengthAndSymmetry(t *testing.T) {
	for _, order := range []int{1, 2, 3, 10, 11, 99, 100, 306} {
		h, err := Fir1(order, 0.1, 0.3)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(h) != order+1 {
			t.Fatalf("order %d: len=%d, want %d", order, len(h), order+1)
		}

		testutil.RequireFinite(t, h)
		testutil.RequireSymmetric(t, h, 1e-12)
	}
}

func TestFir1UnityGainAtCentre(t *testing.T) {
	bands := [][2]float64{{0.1, 0.3}, {0.02, 0.04}, {0.5, 0.9}, {0.2, 0.21}}

	for _, band := range bands {
		for _, order := range []int{40, 41, 200} {
			h, err := Fir1(order, band[0], band[1])
			if err != nil {
				t.Fatalf("band %v order %d: %v", band, order, err)
			}

			centre := (band[0] + band[1]) / 2
			if g := cmplx.Abs(Response(h, centre)); math.Abs(g-1) > 1e-12 {
				t.Fatalf("band %v order %d: |H(centre)| = %v, want 1", band, order, g)
			}
		}
	}
}

func TestFir1OddEvenBoundary(t *testing.T) {
	// An even order gives an odd-length (type I) filter; order+1 gives an
	// even-length (type II) one.
	even, err := Fir1(20, 0.2, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	odd, err := Fir1(21, 0.2, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	if len(even) != 21 || len(odd) != 22 {
		t.Fatalf("lengths %d, %d; want 21, 22", len(even), len(odd))
	}

	testutil.RequireSymmetric(t, even, 1e-12)
	testutil.RequireSymmetric(t, odd, 1e-12)
}

func TestFir1Bandpass(t *testing.T) {
	h, err := Fir1(300, 0.2, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	// Zero mean: the design has a DC stopband.
	if db := MagnitudeDB(h, 0); db > -40 {
		t.Fatalf("DC magnitude %v dB, want < -40 dB", db)
	}

	if db := MagnitudeDB(h, 0.7); db > -40 {
		t.Fatalf("stopband magnitude at 0.7 = %v dB, want < -40 dB", db)
	}

	for _, w := range []float64{0.22, 0.25, 0.28} {
		if g := cmplx.Abs(Response(h, w)); math.Abs(g-1) > 0.02 {
			t.Fatalf("passband |H(%v)| = %v, want ~1", w, g)
		}
	}
}

func TestFir1Deterministic(t *testing.T) {
	a, err := Fir1(127, 0.05, 0.15)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Fir1(127, 0.05, 0.15)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("coefficient %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFir1WithWindow(t *testing.T) {
	hamming, err := Fir1(64, 0.1, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	hann, err := Fir1(64, 0.1, 0.3, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatal(err)
	}

	// Hann tapers to exactly zero at both ends.
	if hann[0] != 0 || hann[64] != 0 {
		t.Fatalf("Hann end taps %v, %v; want 0", hann[0], hann[64])
	}

	if hamming[0] == 0 {
		t.Fatal("Hamming end tap must be non-zero")
	}

	testutil.RequireSymmetric(t, hann, 1e-12)
}

func TestFir1Errors(t *testing.T) {
	tests := []struct {
		name      string
		order     int
		low, high float64
		want      error
	}{
		{name: "zero order", order: 0, low: 0.1, high: 0.2, want: ErrInvalidOrder},
		{name: "inverted band", order: 10, low: 0.3, high: 0.2, want: ErrInvalidBand},
		{name: "equal edges", order: 10, low: 0.2, high: 0.2, want: ErrInvalidBand},
		{name: "zero low", order: 10, low: 0, high: 0.2, want: ErrInvalidBand},
		{name: "nyquist high", order: 10, low: 0.2, high: 1, want: ErrInvalidBand},
		{name: "nan", order: 10, low: math.NaN(), high: 0.2, want: ErrInvalidBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fir1(tt.order, tt.low, tt.high)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFir1DegenerateNormalization(t *testing.T) {
	// Order 1 gives two taps, and a length-2 Hann window is [0, 0].
	_, err := Fir1(1, 0.2, 0.4, WithWindow(window.TypeHann))
	if !errors.Is(err, ErrDegenerateNormalization) {
		t.Fatalf("err = %v, want ErrDegenerateNormalization", err)
	}
}
