package bandlimit

import "github.com/cwbudde/algo-bandfilter/dsp/window"

const (
	// DefaultCycles is the number of low-edge periods an FIR spans.
	DefaultCycles = 3
	// DefaultIIROrder is the prototype order of IIR designs.
	DefaultIIROrder = 3
)

type config struct {
	cycles   int
	iirOrder int
	window   window.Type
	winOpts  []window.Option
}

func defaultConfig() config {
	return config{
		cycles:   DefaultCycles,
		iirOrder: DefaultIIROrder,
		window:   window.TypeHamming,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Option configures [Design] and [Apply].
type Option func(*config)

// WithCycles sets how many periods of the low band edge the FIR order
// covers. Only [MethodFIR] uses it.
func WithCycles(n int) Option {
	return func(c *config) { c.cycles = n }
}

// WithIIROrder sets the prototype order of Butterworth and Bessel designs.
// The digital bandpass has twice as many poles.
func WithIIROrder(n int) Option {
	return func(c *config) { c.iirOrder = n }
}

// WithFIRWindow replaces the Hamming taper of FIR designs. opts reach
// the window generator, e.g. [window.WithAlpha] for the Kaiser beta.
func WithFIRWindow(t window.Type, opts ...window.Option) Option {
	return func(c *config) {
		c.window = t
		c.winOpts = append([]window.Option(nil), opts...)
	}
}
