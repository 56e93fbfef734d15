package iir

import (
	"fmt"
	"math"
)

// Family selects the analog prototype of an IIR design.
type Family int

const (
	Butterworth Family = iota
	Bessel
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case Bessel:
		return "bessel"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Prototype returns the analog lowpass prototype of the family.
func (f Family) Prototype(order int) (ZPK, error) {
	switch f {
	case Butterworth:
		return ButterworthPrototype(order)
	case Bessel:
		return BesselPrototype(order)
	default:
		return ZPK{}, fmt.Errorf("%w: %v", ErrUnsupportedFamily, f)
	}
}

// Bandpass designs a digital bandpass of the given prototype order; the
// result has 2*order poles.
//
// low and high are the critical frequencies in Nyquist units,
// 0 < low < high < 1. They are pre-warped so that the analog band edges land
// exactly on them after the bilinear transform. For Butterworth these are
// the -3 dB points.
func Bandpass(family Family, order int, low, high float64) (ZPK, error) {
	if !(low > 0 && low < high && high < 1) {
		return ZPK{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, low, high)
	}

	proto, err := family.Prototype(order)
	if err != nil {
		return ZPK{}, err
	}

	const fs = 2.0

	wl := prewarp(low, fs)
	wh := prewarp(high, fs)

	analog := LowpassToBandpass(proto, math.Sqrt(wl*wh), wh-wl)

	return Bilinear(analog, fs), nil
}

// prewarp maps a digital frequency in Nyquist units to the analog
// frequency the bilinear transform sends onto it.
func prewarp(w, fs float64) float64 {
	return 2 * fs * math.Tan(math.Pi*w/fs)
}
