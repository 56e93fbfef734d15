package fir

import (
	"fmt"
	"math"
)

// Firls designs a linear-phase FIR filter with numTaps coefficients that
// minimises the integrated squared error against a piecewise-linear
// magnitude target.
//
// freq holds band-edge pairs in Nyquist units, non-decreasing in [0, 1];
// mag holds the desired magnitude at each edge. Consecutive pairs
// (freq[2i], freq[2i+1]) are the bands; gaps between pairs are don't-care
// regions. All bands carry unit weight.
//
// The result is symmetric: h[i] == h[numTaps-1-i].
func Firls(numTaps int, freq, mag []float64) ([]float64, error) {
	if numTaps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, numTaps)
	}

	if err := validateBreakpoints(freq, mag); err != nil {
		return nil, err
	}

	// Work in cycles/sample.
	f := make([]float64, len(freq))
	for i, v := range freq {
		f[i] = v / 2
	}

	if numTaps%2 == 1 {
		return firlsOdd(f, mag, (numTaps-1)/2), nil
	}

	return firlsEven(f, mag, numTaps/2), nil
}

// firlsOdd handles type I filters (odd length 2*half+1). Index zero is the
// DC term, integrated directly because the sinc form is singular there.
func firlsOdd(f, o []float64, half int) []float64 {
	b0 := 0.0
	b := make([]float64, half)

	for s := 0; s < len(f); s += 2 {
		m, b1 := bandLine(f, o, s)
		f0, f1 := f[s], f[s+1]

		b0 += b1*(f1-f0) + m/2*(f1*f1-f0*f0)

		for i := range b {
			b[i] += bandIntegral(float64(i+1), f0, f1, m, b1)
		}
	}

	h := make([]float64, 2*half+1)
	h[half] = 2 * b0

	for i, v := range b {
		h[half+1+i] = 2 * v
		h[half-1-i] = 2 * v
	}

	return h
}

// firlsEven handles type II filters (even length 2*half) with half-integer
// frequency indices.
func firlsEven(f, o []float64, half int) []float64 {
	b := make([]float64, half)

	for s := 0; s < len(f); s += 2 {
		m, b1 := bandLine(f, o, s)
		f0, f1 := f[s], f[s+1]

		for i := range b {
			b[i] += bandIntegral(float64(i)+0.5, f0, f1, m, b1)
		}
	}

	h := make([]float64, 2*half)
	for i, v := range b {
		h[half+i] = 2 * v
		h[half-1-i] = 2 * v
	}

	return h
}

// bandLine returns slope and intercept of the target line over band s.
func bandLine(f, o []float64, s int) (float64, float64) {
	m := (o[s+1] - o[s]) / (f[s+1] - f[s])
	return m, o[s] - m*f[s]
}

// bandIntegral is the closed-form inner product of the target line
// m*f + b1 on [f0, f1] with cos(2*pi*k*f).
func bandIntegral(k, f0, f1, m, b1 float64) float64 {
	v := m / (4 * math.Pi * math.Pi) * (math.Cos(2*math.Pi*k*f1) - math.Cos(2*math.Pi*k*f0)) / (k * k)
	v += f1*(m*f1+b1)*sinc(2*k*f1) - f0*(m*f0+b1)*sinc(2*k*f0)

	return v
}

// sinc is the normalised sinc sin(pi x)/(pi x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

func validateBreakpoints(freq, mag []float64) error {
	if len(freq) == 0 || len(freq)%2 != 0 {
		return fmt.Errorf("%w: need an even, non-zero number of edges, got %d", ErrInvalidBreakpoints, len(freq))
	}

	if len(mag) != len(freq) {
		return fmt.Errorf("%w: %d edges but %d magnitudes", ErrInvalidBreakpoints, len(freq), len(mag))
	}

	for i, v := range freq {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: edge %d = %v outside [0, 1]", ErrInvalidBreakpoints, i, v)
		}

		if i > 0 && v < freq[i-1] {
			return fmt.Errorf("%w: edges must be non-decreasing", ErrInvalidBreakpoints)
		}
	}

	for s := 0; s < len(freq); s += 2 {
		if freq[s+1] == freq[s] {
			return fmt.Errorf("%w: zero-width band at edge %d", ErrInvalidBreakpoints, s)
		}
	}

	return nil
}
