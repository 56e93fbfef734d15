package iir

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-bandfilter/internal/polyroot"
)

// ZPK is a rational transfer function in zero/pole/gain form:
//
//	H = Gain * prod(x - Zeros[i]) / prod(x - Poles[j])
//
// where x is s for analog and z for digital filters.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Polynomials expands the zeros and poles into real transfer-function
// coefficients in descending powers, b = Gain*poly(Zeros), a = poly(Poles).
// For digital filters with as many zeros as poles these are the b[k], a[k]
// multiplying z^-k.
func (f ZPK) Polynomials() (b, a []float64) {
	b = polyroot.RealPart(polyroot.FromRoots(f.Zeros), f.Gain)
	a = polyroot.RealPart(polyroot.FromRoots(f.Poles), 1)

	return b, a
}

// realTol bounds |imag| for a pole to count as real.
const realTol = 1e-12

// Sections factors a digital bandpass design into second-order sections.
//
// Every section pairs two poles with one zero at z = 1 and one at z = -1,
// which holds for designs made by [Bandpass]. Conjugate poles share a
// section; real poles are paired in ascending order. The overall gain is
// returned separately, as expected by [biquad.WithGain].
func (f ZPK) Sections() ([]biquad.Coefficients, float64) {
	var (
		upper []complex128
		reals []float64
	)

	for _, p := range f.Poles {
		switch {
		case math.Abs(imag(p)) <= realTol*math.Max(1, math.Abs(real(p))):
			reals = append(reals, real(p))
		case imag(p) > 0:
			upper = append(upper, p)
		}
	}

	sort.Float64s(reals)

	sections := make([]biquad.Coefficients, 0, len(upper)+len(reals)/2)

	for _, p := range upper {
		_, a1, a2, _ := polyroot.QuadFromRoots([2]complex128{p, complex(real(p), -imag(p))})
		sections = append(sections, biquad.Coefficients{B0: 1, B1: 0, B2: -1, A1: a1, A2: a2})
	}

	for i := 0; i+1 < len(reals); i += 2 {
		p1, p2 := reals[i], reals[i+1]
		sections = append(sections, biquad.Coefficients{B0: 1, B1: 0, B2: -1, A1: -(p1 + p2), A2: p1 * p2})
	}

	return sections, f.Gain
}

// Response evaluates a digital design at w in Nyquist units.
func (f ZPK) Response(w float64) complex128 {
	z := cmplx.Exp(complex(0, math.Pi*w))

	h := complex(f.Gain, 0)
	for _, q := range f.Zeros {
		h *= z - q
	}

	for _, p := range f.Poles {
		h /= z - p
	}

	return h
}
