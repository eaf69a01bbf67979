package pcm

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth    = 16
	wavChannels    = 1
	wavAudioFormat = 1 // PCM

	maxInt16 = 32767.0
)

// WAVSink renders float64 samples to a 16-bit mono WAV file. Samples are
// clamped to [-1, 1] before quantization. Meant for listening checks,
// not bit-exact capture; use Writer for that.
type WAVSink struct {
	f   *os.File
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// NewWAVSink creates a WAV file at path, discarding previous contents.
func NewWAVSink(path string, sampleRate int) (*WAVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("pcm: create %s: %w", path, err)
	}

	return &WAVSink{
		f:   f,
		enc: wav.NewEncoder(f, sampleRate, wavBitDepth, wavChannels, wavAudioFormat),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: wavChannels, SampleRate: sampleRate},
			SourceBitDepth: wavBitDepth,
		},
	}, nil
}

// WriteBuffer appends one buffer of samples. The buffer is read only.
func (s *WAVSink) WriteBuffer(samples []float64) error {
	if cap(s.buf.Data) < len(samples) {
		s.buf.Data = make([]int, len(samples))
	}
	s.buf.Data = s.buf.Data[:len(samples)]

	for i, v := range samples {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		s.buf.Data[i] = int(v * maxInt16)
	}

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("pcm: wav write: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (s *WAVSink) Close() error {
	if err := s.enc.Close(); err != nil {
		_ = s.f.Close()
		return fmt.Errorf("pcm: wav close: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("pcm: close: %w", err)
	}
	return nil
}
