package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/freqz"
)

type designCmd struct {
	FilterFlags

	Rate   float64 `required:"" help:"Sample rate in Hz"`
	Length int     `default:"0" help:"Signal length used to shrink FIR orders (0 = unlimited)"`
	Points int     `default:"16" help:"Frequency response points, a power of two"`
}

func (c *designCmd) Run(g *Globals) error {
	length := c.Length
	if length <= 0 {
		length = math.MaxInt32
	}

	opts, err := c.options()
	if err != nil {
		return err
	}

	plan, err := bandlimit.Design(c.Method, c.Rate, c.band(), length, opts...)
	if err != nil {
		return err
	}

	if g.Verbose {
		log.Printf("designed %v filter, order %d, %d taps", plan.Method, plan.Order, len(plan.Filter.B))
	}

	return writeReport(os.Stdout, plan, c.Rate, c.Points)
}

// writeReport prints the plan summary, coefficients, second-order sections
// of IIR designs and the sampled magnitude response.
func writeReport(w io.Writer, plan bandlimit.Plan, sampleRate float64, points int) error {
	resp, err := freqz.Response(plan.Filter, points)
	if err != nil {
		return err
	}

	printTitle(w, fmt.Sprintf("%v bandpass", plan.Method))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "Order\t%d\n", plan.Order)
	_, _ = fmt.Fprintf(tw, "Taps\t%d\n", len(plan.Filter.B))
	_, _ = fmt.Fprintf(tw, "Pad length\t%d\n", plan.PadLength)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	printSection(w, "Coefficients")

	_, _ = fmt.Fprintf(tw, "k\tb[k]\ta[k]\n")
	_, _ = fmt.Fprintf(tw, "-\t----\t----\n")

	for k := range max(len(plan.Filter.B), len(plan.Filter.A)) {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", k, coeffAt(plan.Filter.B, k), coeffAt(plan.Filter.A, k))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write coefficients: %w", err)
	}

	var chain *biquad.Chain

	if len(plan.ZPK.Poles) > 0 {
		sections, gain := plan.ZPK.Sections()
		chain = biquad.NewChain(sections, biquad.WithGain(gain))

		printSection(w, fmt.Sprintf("Second-order sections (gain %.6e)", gain))

		_, _ = fmt.Fprintf(tw, "#\tb0\tb1\tb2\ta1\ta2\tpole radius\tstable\n")
		_, _ = fmt.Fprintf(tw, "-\t--\t--\t--\t--\t--\t-----------\t------\n")

		for i, s := range sections {
			poles := s.Poles()
			radius := math.Max(cmplx.Abs(poles[0]), cmplx.Abs(poles[1]))
			_, _ = fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%.9f\t%.9f\t%.6f\t%t\n",
				i, s.B0, s.B1, s.B2, s.A1, s.A2, radius, s.Stable())
		}

		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write sections: %w", err)
		}
	}

	printSection(w, "Magnitude response")

	db := freqz.MagnitudeDB(resp)
	nyquist := sampleRate / 2

	if chain == nil {
		_, _ = fmt.Fprintf(tw, "Frequency [Hz]\tSingle pass [dB]\tZero-phase [dB]\n")
		_, _ = fmt.Fprintf(tw, "--------------\t----------------\t---------------\n")
	} else {
		_, _ = fmt.Fprintf(tw, "Frequency [Hz]\tSingle pass [dB]\tZero-phase [dB]\tSections [dB]\n")
		_, _ = fmt.Fprintf(tw, "--------------\t----------------\t---------------\t-------------\n")
	}

	for k, f := range freqz.Frequencies(points) {
		hz := f * nyquist

		if chain == nil {
			_, _ = fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\n", hz, db[k], 2*db[k])
			continue
		}

		sos := core.LinearToDB(cmplx.Abs(chain.Response(hz, sampleRate)))
		_, _ = fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\n", hz, db[k], 2*db[k], sos)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func coeffAt(c []float64, k int) string {
	if k >= len(c) {
		return ""
	}

	return fmt.Sprintf("%.12e", c[k])
}
