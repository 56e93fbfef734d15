package bandlimit

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/iir"
)

// Method selects the filter design.
type Method int

const (
	// MethodFIR is a Hamming-windowed least-squares FIR with an order
	// derived from the signal.
	MethodFIR Method = iota
	// MethodButterworth is a Butterworth bandpass.
	MethodButterworth
	// MethodBessel is a phase-normalised Bessel bandpass.
	MethodBessel
)

// String returns the method name accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodFIR:
		return "fir"
	case MethodButterworth:
		return "butter"
	case MethodBessel:
		return "bessel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name to a Method. It accepts "fir",
// "fir1", "butter", "butterworth" and "bessel".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fir", "fir1":
		return MethodFIR, nil
	case "butter", "butterworth":
		return MethodButterworth, nil
	case "bessel":
		return MethodBessel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}

func (m Method) valid() bool {
	return m >= MethodFIR && m <= MethodBessel
}

// family maps an IIR method to its prototype family.
func (m Method) family() (iir.Family, bool) {
	switch m {
	case MethodButterworth:
		return iir.Butterworth, true
	case MethodBessel:
		return iir.Bessel, true
	default:
		return 0, false
	}
}
