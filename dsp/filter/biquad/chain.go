package biquad

import "fmt"

// Chain is a cascade of sections behind an input gain. IIR bandpass
// designs factor into a Chain of one section per prototype pole.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures [NewChain].
type ChainOption func(*chainConfig)

// WithGain scales the input before the first section. The default is 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain returns a cascade with one zero-state Section per entry of
// coeffs.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample runs x through every section in order.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through the cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections is the number of sections in the cascade.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// State returns the delay lines of all sections.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState loads one delay line per section.
func (c *Chain) SetState(states [][2]float64) error {
	if len(states) != len(c.sections) {
		return fmt.Errorf("biquad: %d states for %d sections", len(states), len(c.sections))
	}

	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}

	return nil
}
