package zerophase

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
)

// TransferFunction holds the coefficients of
//
//	H(z) = (B[0] + B[1] z^-1 + ...) / (A[0] + A[1] z^-1 + ...)
//
// A FIR filter has A = []float64{1}.
type TransferFunction struct {
	B []float64
	A []float64
}

// FIR returns the transfer function of a FIR filter with taps b.
func FIR(b []float64) TransferFunction {
	return TransferFunction{B: b, A: []float64{1}}
}

// StateLen is the length of the filter state, max(len(B), len(A)) - 1.
func (tf TransferFunction) StateLen() int {
	return max(len(tf.B), len(tf.A)) - 1
}

// PadLen is the default edge extension of [FiltFilt], 3*max(len(B), len(A)).
func (tf TransferFunction) PadLen() int {
	return 3 * max(len(tf.B), len(tf.A))
}

// Validate reports whether tf has non-empty coefficients and a usable A[0].
func (tf TransferFunction) Validate() error {
	if len(tf.B) == 0 || len(tf.A) == 0 {
		return ErrEmptyCoefficients
	}

	if tf.A[0] == 0 || !core.IsFinite(tf.A[0]) {
		return fmt.Errorf("%w: a[0] = %v", ErrInvalidDenominator, tf.A[0])
	}

	return nil
}

// normalized returns b and a divided by a[0] and zero-padded to a common
// length.
func (tf TransferFunction) normalized() (b, a []float64) {
	n := max(len(tf.B), len(tf.A))
	b = make([]float64, n)
	a = make([]float64, n)

	a0 := tf.A[0]
	for i, v := range tf.B {
		b[i] = v / a0
	}

	for i, v := range tf.A {
		a[i] = v / a0
	}

	return b, a
}

// Lfilter filters x and returns the output together with the final state.
//
// zi is the initial state of length [TransferFunction.StateLen]; nil means
// zero. The recursion is
//
//	y[n]      = b[0] x[n] + z[0]
//	z[i]      = b[i+1] x[n] - a[i+1] y[n] + z[i+1]
//
// with b and a normalised by a[0].
func Lfilter(tf TransferFunction, x, zi []float64) (y, zf []float64, err error) {
	if err := tf.Validate(); err != nil {
		return nil, nil, err
	}

	m := tf.StateLen()
	if zi != nil && len(zi) != m {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrStateLength, len(zi), m)
	}

	b, a := tf.normalized()

	if len(tf.A) == 1 {
		y, zf = lfilterFIR(b, x, zi)
		return y, zf, nil
	}

	z := make([]float64, m+1)
	copy(z, zi)

	y = make([]float64, len(x))
	for n, xn := range x {
		yn := b[0]*xn + z[0]
		for i := range m {
			z[i] = b[i+1]*xn - a[i+1]*yn + z[i+1]
		}

		y[n] = yn
	}

	return y, z[:m], nil
}

// lfilterFIR evaluates the convolution as one dot product per output sample
// over a zero-prefixed copy of x, then folds in the initial state.
func lfilterFIR(b, x, zi []float64) (y, zf []float64) {
	taps := len(b)
	m := taps - 1

	rev := make([]float64, taps)
	copy(rev, b)
	core.Reverse(rev)

	xp := make([]float64, m+len(x))
	copy(xp[m:], x)

	y = make([]float64, len(x))
	for n := range y {
		y[n] = f64.DotProduct(rev, xp[n:n+taps])
	}

	for n := 0; n < len(zi) && n < len(y); n++ {
		y[n] += zi[n]
	}

	// z[i] after the last sample: sum_{k>i} b[k] x[N-1+i+1-k] plus any
	// initial state not yet shifted out.
	zf = make([]float64, m)
	last := len(xp) - 1

	for i := range m {
		var acc float64
		for k := i + 1; k < taps; k++ {
			acc += b[k] * xp[last+i+1-k]
		}

		if j := len(x) + i; j < len(zi) {
			acc += zi[j]
		}

		zf[i] = acc
	}

	return y, zf
}

// firZi is the steady state of an all-zero filter, zi[i] = b[i+1] + ... + b[m].
func firZi(b []float64) []float64 {
	m := len(b) - 1
	zi := make([]float64, m)

	var acc float64
	for i := m - 1; i >= 0; i-- {
		acc += b[i+1]
		zi[i] = acc
	}

	return zi
}

// LfilterZi returns the initial state for which a unit step input produces
// the steady-state output from the first sample.
//
// It solves (I - C^T) zi = b[1:] - a[1:] b[0], where C is the companion
// matrix of the normalised denominator. With A = [a0] the system is
// bidiagonal and solved by suffix sums.
func LfilterZi(tf TransferFunction) ([]float64, error) {
	if err := tf.Validate(); err != nil {
		return nil, err
	}

	b, a := tf.normalized()

	m := len(b) - 1
	if m == 0 {
		return []float64{}, nil
	}

	if len(tf.A) == 1 {
		return firZi(b), nil
	}

	// I - C^T: column 0 is e_0 + a[1:], the superdiagonal is -1.
	sys := mat.NewDense(m, m, nil)
	for i := range m {
		sys.Set(i, i, 1)
		sys.Set(i, 0, sys.At(i, 0)+a[i+1])

		if i+1 < m {
			sys.Set(i, i+1, -1)
		}
	}

	rhs := mat.NewVecDense(m, nil)
	for i := range m {
		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense

	// A finite mat.Condition error still carries a usable solution.
	err := zi.SolveVec(sys, rhs)

	var cond mat.Condition
	if err != nil && (!errors.As(err, &cond) || math.IsInf(float64(cond), 1)) {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}

	out := make([]float64, m)
	for i := range out {
		out[i] = zi.AtVec(i)
		if !core.IsFinite(out[i]) {
			return nil, fmt.Errorf("%w: non-finite state", ErrSingularSystem)
		}
	}

	return out, nil
}
