// Package freqz evaluates the frequency response of a transfer function on
// a uniform grid with one FFT per polynomial.
package freqz

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/zerophase"
)

// ErrInvalidSize is returned unless the point count is a positive power of two.
var ErrInvalidSize = errors.New("freqz: point count must be a positive power of two")

// Frequencies returns the n grid points k/n, k = 0..n-1, in Nyquist units.
func Frequencies(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k) / float64(n)
	}

	return out
}

// Response returns H(e^{j*pi*k/n}) for k = 0..n-1.
//
// Numerator and denominator are transformed with a 2n-point FFT. Sequences
// longer than 2n are folded modulo 2n first, which leaves the sampled
// response unchanged.
func Response(tf zerophase.TransferFunction, n int) ([]complex128, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	if err := tf.Validate(); err != nil {
		return nil, err
	}

	size := 2 * n

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("freqz: failed to create FFT plan: %w", err)
	}

	num, err := transform(plan, tf.B, size)
	if err != nil {
		return nil, err
	}

	den, err := transform(plan, tf.A, size)
	if err != nil {
		return nil, err
	}

	h := make([]complex128, n)
	for k := range h {
		h[k] = num[k] / den[k]
	}

	return h, nil
}

func transform(plan *algofft.Plan[complex128], coeffs []float64, size int) ([]complex128, error) {
	in := make([]complex128, size)
	for i, c := range coeffs {
		in[i%size] += complex(c, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("freqz: forward FFT: %w", err)
	}

	return out, nil
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)

	return buf.data[:n], buf.data[n:], buf
}

// Magnitude returns |h[k]| for each response point.
func Magnitude(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}

	out := make([]float64, len(h))
	re, im, buf := getScratch(len(h))

	for i, c := range h {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}

// MagnitudeDB returns 20*log10|h[k]|; exact zeros map to -Inf.
func MagnitudeDB(h []complex128) []float64 {
	out := Magnitude(h)
	for i, v := range out {
		out[i] = core.LinearToDB(v)
	}

	return out
}
