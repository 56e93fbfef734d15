package fir

import "errors"

var (
	// ErrInvalidOrder is returned for a filter order below 1.
	ErrInvalidOrder = errors.New("fir: order must be >= 1")

	// ErrInvalidLength is returned for a tap count below 1.
	ErrInvalidLength = errors.New("fir: number of taps must be >= 1")

	// ErrInvalidBand is returned unless 0 < low < high < 1 (Nyquist units).
	ErrInvalidBand = errors.New("fir: invalid band")

	// ErrInvalidBreakpoints is returned for malformed least-squares targets.
	ErrInvalidBreakpoints = errors.New("fir: invalid frequency breakpoints")

	// ErrDegenerateNormalization is returned when the designed filter has a
	// (near) null at the band centre, so unity-gain scaling is undefined.
	ErrDegenerateNormalization = errors.New("fir: degenerate gain normalization")
)
