package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// normTolerance is the smallest centre-frequency magnitude Fir1 will
// normalise by.
const normTolerance = 1e-12

// Option configures [Fir1].
type Option func(*config)

type config struct {
	window  window.Type
	winOpts []window.Option
}

func defaultConfig() config {
	return config{window: window.TypeHamming}
}

// WithWindow selects the taper applied to the least-squares coefficients.
// The default is a symmetric Hamming window.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(c *config) {
		c.window = t
		c.winOpts = append([]window.Option(nil), opts...)
	}
}

// Fir1 designs a windowed linear-phase FIR bandpass of the given order.
//
// low and high are the passband edges in Nyquist units, 0 < low < high < 1.
// The result has order+1 taps and unity magnitude at (low+high)/2.
func Fir1(order int, low, high float64, opts ...Option) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if !(low > 0 && low < high && high < 1) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, low, high)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	numTaps := order + 1
	freq := []float64{0, low, low, high, high, 1}
	mag := []float64{0, 0, 1, 1, 0, 0}

	h, err := Firls(numTaps, freq, mag)
	if err != nil {
		return nil, err
	}

	window.Apply(cfg.window, h, cfg.winOpts...)

	centre := (low + high) / 2

	gain := cmplx.Abs(Response(h, centre))
	if !core.IsFinite(gain) || gain < normTolerance {
		return nil, fmt.Errorf("%w: |H| = %g at %v", ErrDegenerateNormalization, gain, centre)
	}

	vecmath.ScaleBlock(h, h, 1/gain)

	return h, nil
}

// Response evaluates the discrete-time Fourier transform of coeffs at w,
// given in Nyquist units (w = 1 is half the sample rate).
func Response(coeffs []float64, w float64) complex128 {
	var h complex128

	for n, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -math.Pi*w*float64(n)))
	}

	return h
}

// MagnitudeDB returns 20*log10|H(w)| with w in Nyquist units.
func MagnitudeDB(coeffs []float64, w float64) float64 {
	return core.LinearToDB(cmplx.Abs(Response(coeffs, w)))
}
