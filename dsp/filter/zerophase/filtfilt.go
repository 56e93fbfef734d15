package zerophase

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
)

type config struct {
	padLen    int
	padLenSet bool
}

// Option configures [FiltFilt].
type Option func(*config)

// WithPadLength sets the number of samples extended at each edge. Zero
// disables the extension. The default is [TransferFunction.PadLen].
func WithPadLength(n int) Option {
	return func(cfg *config) {
		cfg.padLen = n
		cfg.padLenSet = true
	}
}

// OddExtend returns x extended by n samples at both ends with a point
// reflection about the first and last sample:
//
//	2x[0]-x[n] ... 2x[0]-x[1], x..., 2x[N-1]-x[N-2] ... 2x[N-1]-x[N-1-n]
//
// n must be less than len(x).
func OddExtend(x []float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadLength, n)
	}

	if n > 0 && n >= len(x) {
		return nil, fmt.Errorf("%w: pad length %d, signal length %d", ErrInsufficientSamples, n, len(x))
	}

	size := len(x)
	out := make([]float64, size+2*n)

	for i := range n {
		out[i] = 2*x[0] - x[n-i]
		out[n+size+i] = 2*x[size-1] - x[size-2-i]
	}

	copy(out[n:], x)

	return out, nil
}

// Pass is a filter prepared for repeated forward-backward application.
type Pass interface {
	// Apply filters x forward and backward and returns a new slice.
	Apply(x []float64) ([]float64, error)
	// PadLen is the edge extension applied before filtering.
	PadLen() int
}

func resolvePadLen(opts []Option, def int) (int, error) {
	cfg := config{}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	padLen := def
	if cfg.padLenSet {
		padLen = cfg.padLen
	}

	if padLen < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPadLength, padLen)
	}

	return padLen, nil
}

// twoPass filters the odd extension of x with pass, reverses, filters
// again and reverses back. pass must start from the steady state scaled
// by the first sample of its input.
func twoPass(x []float64, padLen int, pass func([]float64) ([]float64, error)) ([]float64, error) {
	if padLen >= len(x) {
		return nil, fmt.Errorf("%w: pad length %d, signal length %d", ErrInsufficientSamples, padLen, len(x))
	}

	ext, err := OddExtend(x, padLen)
	if err != nil {
		return nil, err
	}

	y, err := pass(ext)
	if err != nil {
		return nil, err
	}

	core.Reverse(y)

	y, err = pass(y)
	if err != nil {
		return nil, err
	}

	core.Reverse(y)

	out := make([]float64, len(x))
	copy(out, y[padLen:padLen+len(x)])

	return out, nil
}

// Filter is a transfer function with its [LfilterZi] state solved once.
// Apply does not modify the Filter and may be called concurrently.
type Filter struct {
	tf     TransferFunction
	zi     []float64
	padLen int
}

var _ Pass = (*Filter)(nil)

// NewFilter validates tf and solves its steady state.
func NewFilter(tf TransferFunction, opts ...Option) (*Filter, error) {
	if err := tf.Validate(); err != nil {
		return nil, err
	}

	padLen, err := resolvePadLen(opts, tf.PadLen())
	if err != nil {
		return nil, err
	}

	zi, err := LfilterZi(tf)
	if err != nil {
		return nil, err
	}

	return &Filter{tf: tf, zi: zi, padLen: padLen}, nil
}

// PadLen is the number of samples extended at each edge.
func (f *Filter) PadLen() int { return f.padLen }

// State returns a copy of the unit-step steady state.
func (f *Filter) State() []float64 {
	return append([]float64(nil), f.zi...)
}

// Apply runs the filter forward and backward over x. Both passes start
// from the steady state scaled by the first sample they see and run over
// x extended with [OddExtend]. The pad length must be smaller than len(x);
// otherwise ErrInsufficientSamples is returned.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	state := make([]float64, len(f.zi))

	return twoPass(x, f.padLen, func(buf []float64) ([]float64, error) {
		vecmath.ScaleBlock(state, f.zi, buf[0])

		y, _, err := Lfilter(f.tf, buf, state)

		return y, err
	})
}

// FiltFilt applies tf forward and then backward over x and returns a new
// slice of the same length. It is [NewFilter] followed by [Filter.Apply];
// callers filtering many signals with one tf should keep the Filter.
func FiltFilt(tf TransferFunction, x []float64, opts ...Option) ([]float64, error) {
	f, err := NewFilter(tf, opts...)
	if err != nil {
		return nil, err
	}

	return f.Apply(x)
}
