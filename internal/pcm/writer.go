// Package pcm writes processed sample buffers to disk, either as
// headerless float64 PCM for bit-exact capture or as 16-bit WAV for
// listening checks.
package pcm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	// 256KB write buffer keeps file I/O out of the per-buffer hot path.
	writerBufferSize = 256 * 1024

	bytesPerSample = 8
)

// Writer appends float64 samples to a headerless PCM file: raw IEEE-754
// 64-bit values in native byte order, one sample per 8 bytes, in
// generation order.
type Writer struct {
	f       *os.File
	w       *bufio.Writer
	byteBuf []byte // preallocated encoding buffer
}

// Create opens path for writing, discarding any previous contents.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("pcm: create %s: %w", path, err)
	}

	return &Writer{
		f: f,
		w: bufio.NewWriterSize(f, writerBufferSize),
	}, nil
}

// WriteBuffer appends one buffer of samples. The buffer is read only;
// its contents are never modified.
func (w *Writer) WriteBuffer(samples []float64) error {
	needed := len(samples) * bytesPerSample
	if len(w.byteBuf) < needed {
		w.byteBuf = make([]byte, needed)
	}

	buf := w.byteBuf[:needed]
	for i, s := range samples {
		binary.NativeEndian.PutUint64(buf[i*bytesPerSample:], math.Float64bits(s))
	}

	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("pcm: write: %w", err)
	}
	return nil
}

// Close flushes buffered samples and closes the file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		_ = w.f.Close()
		return fmt.Errorf("pcm: flush: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("pcm: close: %w", err)
	}
	return nil
}

// ReadFile reads a file written by Writer back into samples.
func ReadFile(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pcm: read %s: %w", path, err)
	}
	if len(data)%bytesPerSample != 0 {
		return nil, fmt.Errorf("pcm: %s: size %d is not a whole number of samples", path, len(data))
	}

	samples := make([]float64, len(data)/bytesPerSample)
	for i := range samples {
		bits := binary.NativeEndian.Uint64(data[i*bytesPerSample:])
		samples[i] = math.Float64frombits(bits)
	}
	return samples, nil
}
