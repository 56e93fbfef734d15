package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
	"github.com/cwbudde/algo-bandfilter/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandfilter/internal/testutil"
)

func stereoTone(t *testing.T, sampleRate, frames int) *pcmSignal {
	t.Helper()

	data, err := core.NewArray(2, frames)
	require.NoError(t, err)

	left := testutil.DeterministicSine(30, float64(sampleRate), 0.5, frames)
	right := testutil.DeterministicSine(200, float64(sampleRate), 0.5, frames)

	for i := range frames {
		data.Set(left[i], 0, i)
		data.Set(right[i], 1, i)
	}

	return &pcmSignal{data: data, sampleRate: sampleRate, bitDepth: 16}
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	sig := stereoTone(t, 1024, 2048)

	clipped, err := writeWAV(path, sig)
	require.NoError(t, err)
	assert.Zero(t, clipped)

	back, err := readWAV(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, back.sampleRate)
	assert.Equal(t, 16, back.bitDepth)
	assert.Equal(t, []int{2, 2048}, back.data.Shape())

	// Half a 16-bit quantisation step.
	diff, err := testutil.MaxAbsDiff(back.data.Values(), sig.data.Values())
	require.NoError(t, err)
	assert.LessOrEqual(t, diff, 0.5/32768)
}

func TestWriteWAVClips(t *testing.T) {
	data, err := core.FromSlice([]float64{0.5, 1.5, -2, 0.25}, 1, 4)
	require.NoError(t, err)

	clipped, err := writeWAV(filepath.Join(t.TempDir(), "clip.wav"), &pcmSignal{data: data, sampleRate: 8000, bitDepth: 16})
	require.NoError(t, err)
	assert.Equal(t, 2, clipped)
}

func TestReadWAVErrors(t *testing.T) {
	_, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")

	invalid := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalid, []byte("not a wav file"), 0o644))

	_, err = readWAV(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestRunApply(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	_, err := writeWAV(in, stereoTone(t, 1024, 4096))
	require.NoError(t, err)

	for _, m := range []bandlimit.Method{bandlimit.MethodFIR, bandlimit.MethodButterworth, bandlimit.MethodBessel} {
		flags := FilterFlags{Low: 20, High: 40, Method: m, Cycles: 3, IIROrder: 3}
		require.NoError(t, runApply(in, out, flags, false), m)

		got, err := readWAV(out)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4096}, got.data.Shape())

		var pass, stop float64
		for i := 1024; i < 3072; i++ {
			pass = math.Max(pass, math.Abs(got.data.At(0, i)))
			stop = math.Max(stop, math.Abs(got.data.At(1, i)))
		}

		assert.Greater(t, pass, 0.3, "%v passband", m)
		assert.Less(t, stop, 0.01, "%v stopband", m)
	}
}

func TestRunApplyInvalidBand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")

	_, err := writeWAV(in, stereoTone(t, 1024, 512))
	require.NoError(t, err)

	err = runApply(in, filepath.Join(dir, "out.wav"), FilterFlags{Low: 40, High: 20, Cycles: 3, IIROrder: 3}, false)
	assert.ErrorIs(t, err, bandlimit.ErrInvalidBand)
}

func TestFilterFlagsWindow(t *testing.T) {
	opts, err := FilterFlags{Cycles: 3, IIROrder: 3, Window: "hann"}.options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	_, err = FilterFlags{Window: "gauss"}.options()
	assert.Error(t, err)
}

func TestFilterFlagsKaiserBeta(t *testing.T) {
	band := bandlimit.Band{Low: 20, High: 40}

	design := func(beta float64) []float64 {
		t.Helper()

		opts, err := FilterFlags{Cycles: 3, IIROrder: 3, Window: "kaiser", KaiserBeta: beta}.options()
		require.NoError(t, err)

		plan, err := bandlimit.Design(bandlimit.MethodFIR, 1024, band, 4096, opts...)
		require.NoError(t, err)

		return plan.Filter.B
	}

	assert.NotEqual(t, design(2), design(8.6))

	_, err := FilterFlags{Window: "kaiser", KaiserBeta: -1}.options()
	assert.Error(t, err)

	// Beta only applies to the kaiser taper.
	_, err = FilterFlags{Window: "hann", KaiserBeta: -1}.options()
	assert.NoError(t, err)
}

func TestWriteReport(t *testing.T) {
	plan, err := bandlimit.Design(bandlimit.MethodButterworth, 1024, bandlimit.Band{Low: 20, High: 40}, 4096)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, plan, 1024, 8))

	out := buf.String()
	assert.Contains(t, out, "butter bandpass")
	assert.Contains(t, out, "Coefficients")
	assert.Contains(t, out, "Second-order sections")
	assert.Contains(t, out, "Magnitude response")
	assert.Contains(t, out, "448.00")
	assert.Contains(t, out, "Sections [dB]")
	assert.Contains(t, out, "true")
	assert.NotContains(t, out, "false")
}

func TestWriteReportFIRHasNoSections(t *testing.T) {
	plan, err := bandlimit.Design(bandlimit.MethodFIR, 1024, bandlimit.Band{Low: 20, High: 40}, 4096)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, plan, 1024, 16))
	assert.NotContains(t, buf.String(), "Second-order sections")

	assert.Error(t, writeReport(&buf, plan, 1024, 12))
}
