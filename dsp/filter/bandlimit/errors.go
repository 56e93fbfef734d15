package bandlimit

import (
	"errors"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/fir"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/zerophase"
)

var (
	// ErrInvalidBand is returned unless 0 < Low < High < sampleRate/2.
	ErrInvalidBand = errors.New("bandlimit: invalid band")

	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("bandlimit: invalid sample rate")

	// ErrUnsupportedMethod is returned for a method outside fir, butter and bessel.
	ErrUnsupportedMethod = errors.New("bandlimit: unsupported method")

	// ErrInvalidCycles is returned when the FIR cycle count is below 1.
	ErrInvalidCycles = errors.New("bandlimit: cycles must be at least 1")

	// ErrInsufficientSamples is returned when the pad length is not less
	// than the signal length along the filtered axis.
	ErrInsufficientSamples = zerophase.ErrInsufficientSamples

	// ErrDegenerateNormalization is returned when the FIR design has no
	// usable gain at the band centre.
	ErrDegenerateNormalization = fir.ErrDegenerateNormalization
)
