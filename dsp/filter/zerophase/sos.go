package zerophase

import (
	"fmt"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/biquad"
)

// Cascade is a chain of second-order sections prepared for zero-phase
// filtering. The steady state of every section is solved once. Apply does
// not modify the Cascade and may be called concurrently.
type Cascade struct {
	sections []biquad.Coefficients
	zi       [][2]float64
	padLen   int
}

var _ Pass = (*Cascade)(nil)

// NewCascade folds gain into the first section and solves the steady state
// of the cascade.
//
// Section k starts from its own unit-step state scaled by the DC gain of
// sections 0..k-1, so a constant input passes without transient. The
// default pad length is 3*(2*len(sections)+1), less one tap for every
// trailing coefficient that is zero in all sections.
func NewCascade(sections []biquad.Coefficients, gain float64, opts ...Option) (*Cascade, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCoefficients
	}

	if !core.IsFinite(gain) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGain, gain)
	}

	folded := append([]biquad.Coefficients(nil), sections...)
	folded[0].B0 *= gain
	folded[0].B1 *= gain
	folded[0].B2 *= gain

	padLen, err := resolvePadLen(opts, cascadePadLen(folded))
	if err != nil {
		return nil, err
	}

	zi := make([][2]float64, len(folded))
	scale := 1.0

	for i, s := range folded {
		tf := TransferFunction{B: []float64{s.B0, s.B1, s.B2}, A: []float64{1, s.A1, s.A2}}

		state, err := LfilterZi(tf)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}

		zi[i] = [2]float64{scale * state[0], scale * state[1]}
		scale *= (s.B0 + s.B1 + s.B2) / (1 + s.A1 + s.A2)
	}

	return &Cascade{sections: folded, zi: zi, padLen: padLen}, nil
}

func cascadePadLen(sections []biquad.Coefficients) int {
	var zeroB2, zeroA2 int

	for _, s := range sections {
		if s.B2 == 0 {
			zeroB2++
		}

		if s.A2 == 0 {
			zeroA2++
		}
	}

	return 3 * (2*len(sections) + 1 - min(zeroB2, zeroA2))
}

// PadLen is the number of samples extended at each edge.
func (c *Cascade) PadLen() int { return c.padLen }

// Sections returns the sections with the gain folded into the first.
func (c *Cascade) Sections() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), c.sections...)
}

// State returns a copy of the per-section unit-step state.
func (c *Cascade) State() [][2]float64 {
	return append([][2]float64(nil), c.zi...)
}

// Apply runs the cascade forward and backward over x with odd extension.
// The pad length must be smaller than len(x); otherwise
// ErrInsufficientSamples is returned.
func (c *Cascade) Apply(x []float64) ([]float64, error) {
	chain := biquad.NewChain(c.sections)
	states := make([][2]float64, len(c.zi))

	return twoPass(x, c.padLen, func(buf []float64) ([]float64, error) {
		x0 := buf[0]
		for i, z := range c.zi {
			states[i] = [2]float64{z[0] * x0, z[1] * x0}
		}

		if err := chain.SetState(states); err != nil {
			return nil, err
		}

		chain.ProcessBlock(buf)

		return buf, nil
	})
}

// SOSFiltFilt is [NewCascade] followed by [Cascade.Apply].
func SOSFiltFilt(sections []biquad.Coefficients, gain float64, x []float64, opts ...Option) ([]float64, error) {
	c, err := NewCascade(sections, gain, opts...)
	if err != nil {
		return nil, err
	}

	return c.Apply(x)
}
