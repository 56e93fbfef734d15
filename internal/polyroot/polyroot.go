// Package polyroot provides polynomial root finding and root/coefficient
// conversion shared by the IIR design packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// QuadFromRoots expands a conjugate root pair into monic second-order
// polynomial coefficients. Given roots (a+jb) and (a-jb), it returns the
// coefficients of z^2 - 2a*z + (a^2 + b^2) as (1, -2a, a^2+b^2).
func QuadFromRoots(pair [2]complex128) (float64, float64, float64, error) {
	root1 := pair[0]
	root2 := pair[1]

	if !isConjugate(root1, root2, conjugateTol) {
		return 0, 0, 0, ErrDegeneratePolynomial
	}

	a := real(root1)
	b := math.Abs(imag(root1))

	return 1.0, -2 * a, a*a + b*b, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := polyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(polyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// polyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func polyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// conjugateTol is the relative tolerance for conjugate pair matching.
const conjugateTol = 1e-7

// isConjugate checks whether a and b are complex conjugates within tolerance.
func isConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// FromRoots expands prod(z - r[i]) into descending power order coefficients.
// The result has len(roots)+1 entries and a leading 1.
func FromRoots(roots []complex128) []complex128 {
	out := make([]complex128, 1, len(roots)+1)
	out[0] = 1

	for _, r := range roots {
		out = append(out, 0)
		for i := len(out) - 1; i > 0; i-- {
			out[i] -= r * out[i-1]
		}
	}

	return out
}

// RealPart returns the real parts of coeff scaled by gain.
//
// Roots that come in exact conjugate pairs expand to real coefficients; the
// imaginary residue left by rounding is discarded.
func RealPart(coeff []complex128, gain float64) []float64 {
	out := make([]float64, len(coeff))
	for i, c := range coeff {
		out[i] = gain * real(c)
	}

	return out
}
