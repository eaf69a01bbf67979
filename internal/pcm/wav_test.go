package pcm

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quantizationStep is the worst-case 16-bit round trip error for
// samples in [-1, 1].
const quantizationStep = 1.0 / 32767.0

// TestWAVSink_RoundTrip renders a sine to WAV and decodes it back.
func TestWAVSink_RoundTrip(t *testing.T) {
	const sampleRate = 48000

	path := filepath.Join(t.TempDir(), "out.wav")

	input := make([]float64, 2048)
	for i := range input {
		input[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/100)
	}

	sink, err := NewWAVSink(path, sampleRate)
	require.NoError(t, err)
	require.NoError(t, sink.WriteBuffer(input[:1024]))
	require.NoError(t, sink.WriteBuffer(input[1024:]))
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	require.Equal(t, 1, buf.Format.NumChannels)
	require.Equal(t, sampleRate, buf.Format.SampleRate)
	require.Len(t, buf.Data, len(input))

	for i, v := range buf.Data {
		assert.InDelta(t, input[i], float64(v)/32767.0, quantizationStep,
			"sample %d", i)
	}
}

// TestWAVSink_ClampsOutOfRange verifies samples beyond [-1, 1] are
// clamped instead of wrapping.
func TestWAVSink_ClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.wav")

	sink, err := NewWAVSink(path, 48000)
	require.NoError(t, err)
	require.NoError(t, sink.WriteBuffer([]float64{2.0, -2.0, 0}))
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	require.NoError(t, err)
	require.Len(t, buf.Data, 3)

	assert.Equal(t, 32767, buf.Data[0])
	assert.Equal(t, -32767, buf.Data[1])
	assert.Equal(t, 0, buf.Data[2])
}
