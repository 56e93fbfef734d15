package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Ramp returns offset + slope*i for i = 0..length-1.
func Ramp(offset, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = offset + slope*float64(i)
	}
	return out
}

// Quadrature projects x[from:from+n] onto sin and cos at w rad/sample and
// returns the amplitudes of both components. For a window holding a whole
// number of periods, a pure sine at w yields (amplitude, 0).
func Quadrature(x []float64, w float64, from, n int) (sinAmp, cosAmp float64) {
	for i := from; i < from+n; i++ {
		sinAmp += x[i] * math.Sin(w*float64(i))
		cosAmp += x[i] * math.Cos(w*float64(i))
	}
	return 2 * sinAmp / float64(n), 2 * cosAmp / float64(n)
}
