package bandlimit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/fir"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/iir"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/zerophase"
)

// Band is a passband in Hz.
type Band struct {
	Low  float64
	High float64
}

// Validate reports whether 0 < Low < High < sampleRate/2.
func (b Band) Validate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	if !(b.Low > 0 && b.Low < b.High && b.High < sampleRate/2) {
		return fmt.Errorf("%w: [%v, %v] Hz at %v Hz", ErrInvalidBand, b.Low, b.High, sampleRate)
	}

	return nil
}

// normalized returns the band edges in Nyquist units.
func (b Band) normalized(sampleRate float64) (low, high float64) {
	return 2 * b.Low / sampleRate, 2 * b.High / sampleRate
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// FIROrder returns cycles*floor(sampleRate/fLow), shrunk to
// floor((length-1)/3) when the signal holds fewer than three times that
// many samples. The product is formed in floating point, so a low edge
// near zero shrinks to the signal length instead of overflowing.
func FIROrder(sampleRate float64, length int, fLow float64, cycles int) int {
	order := float64(cycles) * math.Floor(sampleRate/fLow)
	if !(3*order <= float64(length)) {
		return (length - 1) / 3
	}

	return int(order)
}

// Plan is a resolved filter: coefficients and the edge extension used by
// the zero-phase pass.
//
// Plans returned by [Design] carry the prepared pass, with its steady
// state solved, so Apply does no design work. FIR plans run the taps
// directly; IIR plans run the second-order sections of ZPK.
type Plan struct {
	Method Method
	// Order is the FIR order, or the IIR prototype order.
	Order     int
	Filter    zerophase.TransferFunction
	PadLength int
	// ZPK holds the digital zeros, poles and gain of IIR designs.
	ZPK iir.ZPK

	pass zerophase.Pass
}

// Apply filters x forward and backward and returns a new slice. A Plan
// built by hand, without [Design], runs Filter through
// [zerophase.FiltFilt].
func (p Plan) Apply(x []float64) ([]float64, error) {
	if p.pass != nil {
		return p.pass.Apply(x)
	}

	return zerophase.FiltFilt(p.Filter, x, zerophase.WithPadLength(p.PadLength))
}

// Design resolves method into a Plan for signals of the given length.
//
// FIR plans span [FIROrder] taps minus one and pad by their order. IIR
// plans pad by 3*max(len(B), len(A)), which equals the default pad of
// their section cascade.
func Design(method Method, sampleRate float64, band Band, length int, opts ...Option) (Plan, error) {
	if err := band.Validate(sampleRate); err != nil {
		return Plan{}, err
	}

	cfg := applyOptions(opts)

	low, high := band.normalized(sampleRate)

	if method == MethodFIR {
		return designFIR(cfg, sampleRate, band, length, low, high)
	}

	family, ok := method.family()
	if !ok {
		return Plan{}, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
	}

	f, err := iir.Bandpass(family, cfg.iirOrder, low, high)
	if err != nil {
		return Plan{}, fmt.Errorf("bandlimit: %v design: %w", method, err)
	}

	sections, gain := f.Sections()

	cascade, err := zerophase.NewCascade(sections, gain)
	if err != nil {
		return Plan{}, fmt.Errorf("bandlimit: %v sections: %w", method, err)
	}

	b, a := f.Polynomials()

	return Plan{
		Method:    method,
		Order:     cfg.iirOrder,
		Filter:    zerophase.TransferFunction{B: b, A: a},
		PadLength: cascade.PadLen(),
		ZPK:       f,
		pass:      cascade,
	}, nil
}

func designFIR(cfg config, sampleRate float64, band Band, length int, low, high float64) (Plan, error) {
	if cfg.cycles < 1 {
		return Plan{}, fmt.Errorf("%w: %d", ErrInvalidCycles, cfg.cycles)
	}

	order := FIROrder(sampleRate, length, band.Low, cfg.cycles)

	taps, err := fir.Fir1(order, low, high, fir.WithWindow(cfg.window, cfg.winOpts...))
	if err != nil {
		return Plan{}, fmt.Errorf("bandlimit: fir design for %d samples: %w", length, err)
	}

	tf := zerophase.FIR(taps)

	f, err := zerophase.NewFilter(tf, zerophase.WithPadLength(order))
	if err != nil {
		return Plan{}, fmt.Errorf("bandlimit: fir filter: %w", err)
	}

	return Plan{
		Method:    MethodFIR,
		Order:     order,
		Filter:    tf,
		PadLength: order,
		pass:      f,
	}, nil
}
