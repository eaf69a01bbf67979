package dspbench

import "github.com/tphakala/simd/f64"

// BufferSink consumes fully processed buffers, one per inner-loop
// iteration. Implementations must treat the buffer as read only; the
// harness reuses it for the next iteration.
type BufferSink interface {
	// WriteBuffer consumes one processed buffer.
	WriteBuffer(samples []float64) error

	// Close releases the sink after the trial completes.
	Close() error
}

// ChecksumSink sums every sample it sees. The total is independent of
// buffer granularity (up to floating-point accumulation order), which
// makes it a cheap cross-trial consistency check, and consuming the
// output keeps the compiler from eliminating the processing loop.
type ChecksumSink struct {
	sum float64
}

// NewChecksumSink returns a sink with a zero running sum.
func NewChecksumSink() *ChecksumSink {
	return &ChecksumSink{}
}

// WriteBuffer adds the buffer's sample sum to the running total.
func (s *ChecksumSink) WriteBuffer(samples []float64) error {
	s.sum += f64.Sum(samples)
	return nil
}

// Close is a no-op; the sink holds no resources.
func (s *ChecksumSink) Close() error {
	return nil
}

// Checksum returns the running total.
func (s *ChecksumSink) Checksum() float64 {
	return s.sum
}
