package dspbench

import (
	"fmt"
	"time"
)

// TrialResult reports one complete timed run at a fixed buffer length.
type TrialResult struct {
	// BufferLen is the trial's buffer length in samples.
	BufferLen int

	// Buffers is the number of whole buffers processed:
	// TotalSamples / BufferLen.
	Buffers int

	// ProcessedSamples is Buffers * BufferLen. Less than TotalSamples
	// when BufferLen does not divide the budget evenly.
	ProcessedSamples int

	// Elapsed is the wall-clock time spent in the inner loop.
	Elapsed time.Duration

	// NsPerSamplePerFilter is the elapsed time normalized by both the
	// sample count and the section count: the cost of pushing one sample
	// through one filter.
	NsPerSamplePerFilter float64

	// RealtimeFactor is how many seconds of signal the whole pipeline
	// processes per second of wall-clock time at the configured sample
	// rate. 1.0 means exactly real time.
	RealtimeFactor float64

	// Checksum is the sink's running output sum, when the trial sink
	// reports one. Identical across buffer lengths up to accumulation
	// order, since filter output does not depend on buffer granularity.
	Checksum float64
}

// checksummer is implemented by sinks that accumulate an output sum.
type checksummer interface {
	Checksum() float64
}

// BufferLengths returns the sweep: powers of two from MinBufferLen up
// to, but excluding, MaxBufferLen.
func (b *Bench) BufferLengths() []int {
	var lengths []int
	for l := b.cfg.MinBufferLen; l < b.cfg.MaxBufferLen; l *= 2 {
		lengths = append(lengths, l)
	}
	return lengths
}

// Run executes one trial per buffer length in the sweep and returns the
// results in sweep order. The first error aborts the run.
func (b *Bench) Run() ([]TrialResult, error) {
	lengths := b.BufferLengths()
	results := make([]TrialResult, 0, len(lengths))

	for _, l := range lengths {
		res, err := b.RunTrial(l)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// RunTrial executes a single timed trial at the given buffer length.
//
// The buffer is allocated and the sink opened before the clock starts;
// the timed region covers only generate + filter + sink per iteration.
// Generator and filter state are reset first, so every trial processes
// the identical signal from a clean start.
func (b *Bench) RunTrial(bufferLen int) (TrialResult, error) {
	if bufferLen < 1 {
		return TrialResult{}, fmt.Errorf("%w: buffer length must be positive", ErrInvalidConfig)
	}

	buffers := b.cfg.TotalSamples / bufferLen
	buf := make([]float64, bufferLen)

	b.gen.Reset()
	b.cascade.Reset()

	var sink BufferSink
	if b.newSink != nil {
		s, err := b.newSink(bufferLen)
		if err != nil {
			return TrialResult{}, fmt.Errorf("%w: open sink for %d-sample buffers: %v", ErrSink, bufferLen, err)
		}
		sink = s
	}

	start := time.Now()
	for i := 0; i < buffers; i++ {
		b.gen.Fill(buf)
		b.cascade.Apply(buf)

		if sink != nil {
			if err := sink.WriteBuffer(buf); err != nil {
				_ = sink.Close()
				return TrialResult{}, fmt.Errorf("%w: %v", ErrSink, err)
			}
		}
	}
	elapsed := time.Since(start)

	res := TrialResult{
		BufferLen:        bufferLen,
		Buffers:          buffers,
		ProcessedSamples: buffers * bufferLen,
		Elapsed:          elapsed,
	}

	if sink != nil {
		if cs, ok := sink.(checksummer); ok {
			res.Checksum = cs.Checksum()
		}
		if err := sink.Close(); err != nil {
			return TrialResult{}, fmt.Errorf("%w: %v", ErrSink, err)
		}
	}

	// A buffer longer than the budget yields zero iterations; leave the
	// metrics at zero instead of dividing by zero.
	if res.ProcessedSamples > 0 {
		nsPerSample := float64(elapsed.Nanoseconds()) / float64(res.ProcessedSamples)
		res.NsPerSamplePerFilter = nsPerSample / float64(b.cfg.FilterCount)
		res.RealtimeFactor = nsPerSecond / nsPerSample / b.cfg.SampleRate
	}

	return res, nil
}
