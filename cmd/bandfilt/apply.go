package main

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/bandlimit"
)

type applyCmd struct {
	FilterFlags

	Input  string `arg:"" type:"existingfile" help:"Input WAV file"`
	Output string `arg:"" type:"path" help:"Output WAV file"`
}

func (c *applyCmd) Run(g *Globals) error {
	return runApply(c.Input, c.Output, c.FilterFlags, g.Verbose)
}

// runApply band-limits every channel of the input WAV file and writes the
// result with the input's sample rate and bit depth.
func runApply(input, output string, flags FilterFlags, verbose bool) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}

	sig, err := readWAV(input)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("input: %d Hz, %d channels, %d frames, %d-bit",
			sig.sampleRate, sig.channels(), sig.frames(), sig.bitDepth)
	}

	// Channels on axis 0, time on axis 1.
	y, err := bandlimit.Apply(sig.data, float64(sig.sampleRate), flags.band(), 1, flags.Method, opts...)
	if err != nil {
		return fmt.Errorf("failed to filter %s: %w", input, err)
	}

	sig.data = y

	clipped, err := writeWAV(output, sig)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("wrote %s (%v, %d clipped samples)", output, flags.Method, clipped)
	}

	return nil
}
