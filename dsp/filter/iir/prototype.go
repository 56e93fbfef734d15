package iir

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-bandfilter/internal/polyroot"
)

// MaxBesselOrder is the highest Bessel prototype order supported.
const MaxBesselOrder = 12

// ButterworthPrototype returns the analog lowpass Butterworth prototype
// with a -3 dB cutoff of 1 rad/s.
//
// Poles lie on the unit circle at angles pi*(2k+order+1)/(2*order); for odd
// orders the real pole is exactly -1.
func ButterworthPrototype(order int) (ZPK, error) {
	if order < 1 {
		return ZPK{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	poles := make([]complex128, order)

	for k := range order {
		m := 2*k - order + 1
		if m == 0 {
			poles[k] = -1
			continue
		}

		theta := math.Pi * float64(m) / float64(2*order)
		poles[k] = complex(-math.Cos(theta), -math.Sin(theta))
	}

	return ZPK{Poles: poles, Gain: 1}, nil
}

// BesselPrototype returns the analog lowpass Bessel (Thomson) prototype,
// phase-normalised so the phase response reaches its midpoint at 1 rad/s.
//
// The poles are the roots of the reverse Bessel polynomial
//
//	theta_N(s) = sum_k (2N-k)! / (2^(N-k) k! (N-k)!) s^k
//
// scaled by ((2N-1)!!)^(-1/N). The gain gives unity DC response.
func BesselPrototype(order int) (ZPK, error) {
	if order < 1 || order > MaxBesselOrder {
		return ZPK{}, fmt.Errorf("%w: bessel order %d outside [1, %d]", ErrInvalidOrder, order, MaxBesselOrder)
	}

	poles, err := besselPoles(order)
	if err != nil {
		return ZPK{}, err
	}

	gain := complex(1, 0)
	for _, p := range poles {
		gain *= -p
	}

	return ZPK{Poles: poles, Gain: real(gain)}, nil
}

// besselPoles finds the phase-normalised poles directly: substituting
// s = c*u with c^N = theta_N(0) = (2N-1)!! makes the polynomial in u monic
// with unit constant term, which keeps the root finder well conditioned.
func besselPoles(n int) ([]complex128, error) {
	logA := func(k int) float64 {
		lg := func(x int) float64 {
			v, _ := math.Lgamma(float64(x + 1))
			return v
		}

		return lg(2*n-k) - float64(n-k)*math.Ln2 - lg(k) - lg(n-k)
	}

	logC := logA(0) / float64(n)

	// Descending powers of u.
	coeff := make([]complex128, n+1)
	for i := range coeff {
		k := n - i
		coeff[i] = complex(math.Exp(logA(k)+float64(k-n)*logC), 0)
	}

	roots, err := polyroot.DurandKerner(coeff)
	if err != nil {
		return nil, fmt.Errorf("%w: bessel order %d: %w", ErrRootFinding, n, err)
	}

	return conjugateSymmetric(roots, n)
}

// conjugateSymmetric rebuilds a root set of a real polynomial with exact
// conjugate pairs and exactly real single roots, in a deterministic order:
// pairs by ascending imaginary part, then real roots.
func conjugateSymmetric(roots []complex128, n int) ([]complex128, error) {
	const tol = 1e-9

	var (
		upper []complex128
		reals []float64
	)

	for _, r := range roots {
		switch {
		case math.Abs(imag(r)) <= tol*math.Max(1, cmplx.Abs(r)):
			reals = append(reals, real(r))
		case imag(r) > 0:
			upper = append(upper, r)
		}
	}

	if 2*len(upper)+len(reals) != n {
		return nil, fmt.Errorf("%w: %d roots do not form conjugate pairs", ErrRootFinding, len(roots))
	}

	sort.Slice(upper, func(i, j int) bool { return imag(upper[i]) < imag(upper[j]) })
	sort.Float64s(reals)

	out := make([]complex128, 0, n)
	for _, p := range upper {
		out = append(out, p, cmplx.Conj(p))
	}

	for _, r := range reals {
		out = append(out, complex(r, 0))
	}

	return out, nil
}
