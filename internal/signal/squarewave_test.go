package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-dsp-bench/internal/testutil"
)

// TestSquareWave_Period verifies the period is 2*round(fs/f/2) samples
// for a range of frequency/rate pairs.
func TestSquareWave_Period(t *testing.T) {
	testCases := []struct {
		name       string
		frequency  float64
		sampleRate float64
	}{
		{"50Hz_48k", 50, 48000},
		{"440Hz_44k1", 440, 44100},
		{"1kHz_48k", 1000, 48000},
		{"997Hz_96k", 997, 96000},
		{"30Hz_8k", 30, 8000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(tc.frequency, tc.sampleRate)

			want := 2 * int(math.Round(tc.sampleRate/tc.frequency/2))
			assert.Equal(t, want, g.Period())
		})
	}
}

// TestSquareWave_LevelsAlternate verifies the output takes exactly the
// values +0.5 and -0.5 and flips every half period.
func TestSquareWave_LevelsAlternate(t *testing.T) {
	g := New(1000, 48000)
	half := g.Period() / 2

	buf := make([]float64, 4*g.Period())
	g.Fill(buf)

	testutil.AssertTwoLevel(t, buf, Amplitude)

	// Every run of constant level must be exactly half a period long.
	runStart := 0
	for i := 1; i <= len(buf); i++ {
		if i == len(buf) || buf[i] != buf[runStart] {
			assert.Equal(t, half, i-runStart,
				"level run starting at sample %d has wrong length", runStart)
			runStart = i
		}
	}
}

// TestSquareWave_50HzAt48kHz pins the reference scenario: half period of
// 480 samples, starting low.
func TestSquareWave_50HzAt48kHz(t *testing.T) {
	g := New(50, 48000)
	require.Equal(t, 960, g.Period())

	buf := make([]float64, 961)
	g.Fill(buf)

	for i := 0; i < 480; i++ {
		require.Equal(t, -0.5, buf[i], "sample %d should be low", i)
	}
	for i := 480; i < 960; i++ {
		require.Equal(t, 0.5, buf[i], "sample %d should be high", i)
	}
	assert.Equal(t, -0.5, buf[960], "sample 960 should flip back low")
}

// TestSquareWave_PhaseContinuityAcrossFills verifies that many small
// fills produce the same stream as one large fill.
func TestSquareWave_PhaseContinuityAcrossFills(t *testing.T) {
	const total = 4096

	whole := New(50, 48000)
	wholeBuf := make([]float64, total)
	whole.Fill(wholeBuf)

	for _, chunk := range []int{8, 64, 480, 1000} {
		chunked := New(50, 48000)
		chunkedBuf := make([]float64, 0, total)
		piece := make([]float64, chunk)

		for len(chunkedBuf) < total {
			n := min(chunk, total-len(chunkedBuf))
			chunked.Fill(piece[:n])
			chunkedBuf = append(chunkedBuf, piece[:n]...)
		}

		assert.Equal(t, wholeBuf, chunkedBuf,
			"stream generated in %d-sample chunks differs", chunk)
	}
}

// TestSquareWave_ResetMatchesFresh verifies a reset generator reproduces
// the output of a freshly constructed one.
func TestSquareWave_ResetMatchesFresh(t *testing.T) {
	g := New(50, 48000)

	first := make([]float64, 1234)
	g.Fill(first)

	g.Reset()

	second := make([]float64, 1234)
	g.Fill(second)

	fresh := New(50, 48000)
	freshBuf := make([]float64, 1234)
	fresh.Fill(freshBuf)

	assert.Equal(t, freshBuf, second, "output after reset differs from fresh generator")
	assert.Equal(t, first, second, "generator is not deterministic")
}
