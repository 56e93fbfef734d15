package zerophase

import "errors"

var (
	// ErrEmptyCoefficients is returned when B or A is empty.
	ErrEmptyCoefficients = errors.New("zerophase: empty coefficients")

	// ErrInvalidDenominator is returned when A[0] is zero or non-finite.
	ErrInvalidDenominator = errors.New("zerophase: invalid leading denominator coefficient")

	// ErrInvalidPadLength is returned for a negative pad length.
	ErrInvalidPadLength = errors.New("zerophase: invalid pad length")

	// ErrInsufficientSamples is returned when the pad length is not less
	// than the signal length.
	ErrInsufficientSamples = errors.New("zerophase: signal shorter than pad length")

	// ErrStateLength is returned when an initial state has the wrong length.
	ErrStateLength = errors.New("zerophase: initial state length mismatch")

	// ErrInvalidGain is returned for a non-finite cascade gain.
	ErrInvalidGain = errors.New("zerophase: invalid cascade gain")

	// ErrSingularSystem is returned when the steady-state system cannot be solved.
	ErrSingularSystem = errors.New("zerophase: singular steady-state system")
)
