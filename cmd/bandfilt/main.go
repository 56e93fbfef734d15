// Command bandfilt designs zero-phase bandpass filters and applies them to
// WAV files.
//
// Usage:
//
//	bandfilt design --rate 1024 --low 20 --high 40 --method butter
//	bandfilt design --rate 1024 --low 10 --high 20 --length 300
//	bandfilt apply --low 300 --high 3400 --method fir in.wav out.wav
//	bandfilt -v apply --low 8 --high 12 --method bessel --iir-order 4 in.wav out.wav
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandfilter/dsp/window"
)

// Globals holds flags shared by every subcommand.
type Globals struct {
	Verbose bool `short:"v" help:"Log progress to stderr"`
}

// FilterFlags are the design parameters common to design and apply.
type FilterFlags struct {
	Low        float64          `required:"" help:"Low band edge in Hz"`
	High       float64          `required:"" help:"High band edge in Hz"`
	Method     bandlimit.Method `default:"fir" help:"Filter method: fir, butter or bessel"`
	Cycles     int              `default:"3" help:"Low-edge periods spanned by FIR designs"`
	IIROrder   int              `name:"iir-order" default:"3" help:"Prototype order of IIR designs"`
	Window     string           `default:"hamming" enum:"rectangular,hann,hamming,blackman,kaiser" help:"Taper of FIR designs"`
	KaiserBeta float64          `name:"kaiser-beta" default:"8.6" help:"Beta of the kaiser taper"`
}

func (f FilterFlags) band() bandlimit.Band {
	return bandlimit.Band{Low: f.Low, High: f.High}
}

func (f FilterFlags) options() ([]bandlimit.Option, error) {
	opts := []bandlimit.Option{
		bandlimit.WithCycles(f.Cycles),
		bandlimit.WithIIROrder(f.IIROrder),
	}

	if f.Window != "" {
		t, err := window.ParseType(f.Window)
		if err != nil {
			return nil, err
		}

		var winOpts []window.Option
		if t == window.TypeKaiser {
			if f.KaiserBeta < 0 {
				return nil, fmt.Errorf("kaiser beta must be >= 0: %v", f.KaiserBeta)
			}

			winOpts = append(winOpts, window.WithAlpha(f.KaiserBeta))
		}

		opts = append(opts, bandlimit.WithFIRWindow(t, winOpts...))
	}

	return opts, nil
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Design designCmd `cmd:"" help:"Print coefficients and frequency response of a design"`
	Apply  applyCmd  `cmd:"" help:"Band-limit every channel of a WAV file"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bandfilt: ")

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("bandfilt"),
		kong.Description("Zero-phase FIR and IIR band-limiting"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli.Globals); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
