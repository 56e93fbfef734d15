package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
)

// pcmSignal is a decoded WAV file with samples scaled to [-1, 1) and laid
// out as [channel][frame].
type pcmSignal struct {
	data       *core.Array
	sampleRate int
	bitDepth   int
}

func (s *pcmSignal) channels() int { return s.data.Shape()[0] }
func (s *pcmSignal) frames() int   { return s.data.Shape()[1] }

// fullScale returns the magnitude of the most negative sample at bitDepth.
func fullScale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}

func readWAV(path string) (*pcmSignal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 || len(buf.Data) < channels {
		return nil, fmt.Errorf("invalid WAV file: %s has no samples", path)
	}

	frames := len(buf.Data) / channels

	bitDepth := int(dec.BitDepth)
	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	scale := 1 / fullScale(bitDepth)

	data, err := core.NewArray(channels, frames)
	if err != nil {
		return nil, err
	}

	for i := range frames {
		for ch := range channels {
			data.Set(float64(buf.Data[i*channels+ch])*scale, ch, i)
		}
	}

	return &pcmSignal{data: data, sampleRate: buf.Format.SampleRate, bitDepth: bitDepth}, nil
}

// writeWAV encodes sig as integer PCM and returns the number of samples
// clipped to the representable range.
func writeWAV(path string, sig *pcmSignal) (int, error) {
	channels, frames := sig.channels(), sig.frames()
	scale := fullScale(sig.bitDepth)
	lo, hi := -scale, scale-1

	samples := make([]int, channels*frames)
	clipped := 0

	for i := range frames {
		for ch := range channels {
			v := math.Round(sig.data.At(ch, i) * scale)
			if v < lo || v > hi {
				v = math.Max(lo, math.Min(hi, v))
				clipped++
			}

			samples[i*channels+ch] = int(v)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sig.sampleRate, sig.bitDepth, channels, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sig.sampleRate},
		Data:           samples,
		SourceBitDepth: sig.bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to write WAV data: %w", err)
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output file: %w", err)
	}

	return clipped, nil
}
