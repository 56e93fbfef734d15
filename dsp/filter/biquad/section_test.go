package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// resonator is a stable bandpass section with zeros at z = ±1.
func resonator() Coefficients {
	r, theta := 0.9, 0.3*math.Pi
	return Coefficients{B0: 1, B1: 0, B2: -1, A1: -2 * r * math.Cos(theta), A2: r * r}
}

func TestProcessSample_DFIIT(t *testing.T) {
	c := resonator()
	s := NewSection(c)

	// Reference direct form I recursion.
	input := []float64{1, 0.5, -0.25, 2, 0, 0, -1, 0.75}

	var x1, x2, y1, y2 float64
	for i, x := range input {
		want := c.B0*x + c.B1*x1 + c.B2*x2 - c.A1*y1 - c.A2*y2
		got := s.ProcessSample(x)

		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}

		x2, x1 = x1, x
		y2, y1 = y1, want
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	a := NewSection(resonator())
	b := NewSection(resonator())

	buf := make([]float64, 64)
	for i := range buf {
		buf[i] = math.Sin(0.37 * float64(i))
	}

	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}

	b.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], 1e-14) {
			t.Fatalf("index %d: block %v, sample %v", i, buf[i], want[i])
		}
	}

	if a.State() != b.State() {
		t.Fatalf("state mismatch: %v vs %v", a.State(), b.State())
	}
}

func TestReset(t *testing.T) {
	s := NewSection(resonator())
	s.ProcessSample(1)
	s.Reset()

	if s.State() != [2]float64{} {
		t.Fatalf("state after reset: %v", s.State())
	}
}

func TestPolesAndStability(t *testing.T) {
	c := resonator()
	poles := c.Poles()

	for _, p := range poles {
		if !almostEqual(cmplx.Abs(p), 0.9, 1e-12) {
			t.Fatalf("pole radius %v, want 0.9", cmplx.Abs(p))
		}
	}

	if !c.Stable() {
		t.Fatal("resonator must be stable")
	}

	unstable := Coefficients{B0: 1, A1: 0, A2: 1.01}
	if unstable.Stable() {
		t.Fatal("poles outside the unit circle reported stable")
	}
}

func TestResponseBandpassNulls(t *testing.T) {
	c := resonator()

	if m := cmplx.Abs(c.Response(0, 1000)); m > 1e-12 {
		t.Fatalf("|H(DC)| = %v, want 0", m)
	}

	if m := cmplx.Abs(c.Response(500, 1000)); m > 1e-9 {
		t.Fatalf("|H(Nyquist)| = %v, want 0", m)
	}

	// Direct evaluation of the rational function at 150 Hz.
	z := cmplx.Exp(complex(0, 2*math.Pi*150/1000))
	want := (1 - 1/(z*z)) / (1 + complex(c.A1, 0)/z + complex(c.A2, 0)/(z*z))
	if d := cmplx.Abs(c.Response(150, 1000) - want); d > 1e-12 {
		t.Fatalf("Response differs from direct evaluation by %v", d)
	}
}
