package dspbench

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-dsp-bench/internal/biquad"
	"github.com/tphakala/go-dsp-bench/internal/signal"
)

// Common errors returned by the benchmark.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrSink indicates a sink could not be created or written to.
	// The run aborts rather than silently dropping samples.
	ErrSink = errors.New("sink failure")
)

// Config holds the benchmark parameters. All values are fixed for the
// duration of a run; the buffer length is the only swept quantity.
type Config struct {
	// SampleRate of the simulated audio stream in Hz.
	SampleRate float64

	// SignalFrequency of the generated square wave in Hz.
	// Must be below SampleRate/2.
	SignalFrequency float64

	// CenterFrequency of every peaking section in Hz.
	// Must be below SampleRate/2.
	CenterFrequency float64

	// Q is the quality factor shared by all sections.
	Q float64

	// GainDB is the per-section gain magnitude in decibels. Sections
	// alternate between +GainDB and -GainDB.
	GainDB float64

	// FilterCount is the number of cascaded biquad sections.
	FilterCount int

	// TotalSamples is the sample budget consumed by each trial. Trials
	// process TotalSamples/bufferLen whole buffers.
	TotalSamples int

	// MinBufferLen is the first buffer length in the sweep.
	// Must be a power of two.
	MinBufferLen int

	// MaxBufferLen is the exclusive upper bound of the sweep. The sweep
	// doubles from MinBufferLen while strictly below this value.
	// Must be a power of two.
	MaxBufferLen int
}

// DefaultConfig returns the standard benchmark configuration: 48 kHz,
// 100 peaking sections at +/-2 dB around 50 Hz, 524288 samples per
// trial, buffer sweep 8 to 2048.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:      DefaultSampleRate,
		SignalFrequency: DefaultSignalFrequency,
		CenterFrequency: DefaultCenterFrequency,
		Q:               DefaultQ,
		GainDB:          DefaultGainDB,
		FilterCount:     DefaultFilterCount,
		TotalSamples:    DefaultTotalSamples,
		MinBufferLen:    DefaultMinBufferLen,
		MaxBufferLen:    DefaultMaxBufferLen,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if c.SignalFrequency <= 0 || c.SignalFrequency*nyquistDivisor >= c.SampleRate {
		return fmt.Errorf("%w: signal frequency must be in (0, SampleRate/2)", ErrInvalidConfig)
	}

	if c.CenterFrequency <= 0 || c.CenterFrequency*nyquistDivisor >= c.SampleRate {
		return fmt.Errorf("%w: center frequency must be in (0, SampleRate/2)", ErrInvalidConfig)
	}

	if c.Q <= 0 {
		return fmt.Errorf("%w: Q must be positive", ErrInvalidConfig)
	}

	if c.FilterCount < 1 {
		return fmt.Errorf("%w: filter count must be at least 1", ErrInvalidConfig)
	}

	if c.TotalSamples < 1 {
		return fmt.Errorf("%w: total samples must be at least 1", ErrInvalidConfig)
	}

	if !isPowerOfTwo(c.MinBufferLen) {
		return fmt.Errorf("%w: min buffer length must be a positive power of two", ErrInvalidConfig)
	}

	if !isPowerOfTwo(c.MaxBufferLen) || c.MaxBufferLen <= c.MinBufferLen {
		return fmt.Errorf("%w: max buffer length must be a power of two above min buffer length", ErrInvalidConfig)
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SinkFactory produces a fresh sink for one buffer-length trial. Each
// trial gets its own sink so per-trial output files start empty.
type SinkFactory func(bufferLen int) (BufferSink, error)

// Bench owns the generator, the filter cascade and the trial buffers.
// Construction happens once; trials reuse the same objects after a
// state reset, keeping the hot loop allocation-free.
//
// A Bench is not safe for concurrent use; trials must run sequentially
// for the wall-clock measurement to mean anything.
type Bench struct {
	cfg     Config
	gen     *signal.SquareWave
	cascade *biquad.Cascade
	newSink SinkFactory
}

// New creates a benchmark from the configuration. The generator and the
// alternating boost/cut cascade are built here, outside any timed
// region.
func New(cfg *Config) (*Bench, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Bench{
		cfg: *cfg,
		gen: signal.New(cfg.SignalFrequency, cfg.SampleRate),
		cascade: biquad.NewAlternating(
			cfg.FilterCount, cfg.SampleRate, cfg.CenterFrequency, cfg.Q, cfg.GainDB,
		),
	}, nil
}

// SetSinkFactory installs the per-trial sink factory. Pass nil to run
// without a sink (processing only).
func (b *Bench) SetSinkFactory(f SinkFactory) {
	b.newSink = f
}

// Config returns a copy of the benchmark configuration.
func (b *Bench) Config() Config {
	return b.cfg
}
