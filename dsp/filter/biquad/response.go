package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(e^jw) at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zinv := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))

	num := complex(c.B0, 0) + zinv*(complex(c.B1, 0)+zinv*complex(c.B2, 0))
	den := 1 + zinv*(complex(c.A1, 0)+zinv*complex(c.A2, 0))

	return num / den
}

// Response is the gain times the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}
