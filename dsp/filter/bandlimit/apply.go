package bandlimit

import (
	"fmt"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
)

// Apply band-limits x along axis and returns a new array of the same shape.
//
// The filter is designed once for the length of axis, with its steady
// state solved once, and applied to every lane. Any failure returns a nil array.
func Apply(x *core.Array, sampleRate float64, band Band, axis int, method Method, opts ...Option) (*core.Array, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
	}

	length, err := x.Dim(axis)
	if err != nil {
		return nil, err
	}

	plan, err := Design(method, sampleRate, band, length, opts...)
	if err != nil {
		return nil, err
	}

	if plan.PadLength >= length {
		return nil, fmt.Errorf("%w: pad length %d, axis %d has %d samples",
			ErrInsufficientSamples, plan.PadLength, axis, length)
	}

	lanes, err := x.Lanes(axis)
	if err != nil {
		return nil, err
	}

	out := x.Clone()

	var buf []float64
	for _, lane := range lanes {
		buf = x.ReadLane(lane, buf)

		y, err := plan.Apply(buf)
		if err != nil {
			return nil, err
		}

		out.WriteLane(lane, y)
	}

	return out, nil
}

// ApplySlice band-limits a single 1-D signal.
func ApplySlice(x []float64, sampleRate float64, band Band, method Method, opts ...Option) ([]float64, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
	}

	plan, err := Design(method, sampleRate, band, len(x), opts...)
	if err != nil {
		return nil, err
	}

	return plan.Apply(x)
}
