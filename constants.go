package dspbench

// Default benchmark parameters. These mirror a typical real-time audio
// workload: a 48 kHz stream through a 100-band EQ, with roughly eleven
// seconds of signal per trial.
const (
	// DefaultSampleRate in Hz.
	DefaultSampleRate = 48000.0

	// DefaultSignalFrequency of the generated square wave in Hz.
	DefaultSignalFrequency = 50.0

	// DefaultCenterFrequency of every peaking section in Hz.
	DefaultCenterFrequency = 50.0

	// DefaultQ is deliberately broad so the sections stay stable at the
	// low center-frequency-to-sample-rate ratio used here.
	DefaultQ = 0.3

	// DefaultGainDB is the boost applied by odd sections; even sections
	// cut by the same amount.
	DefaultGainDB = 2.0

	// DefaultFilterCount is the number of cascaded sections. Many small
	// stateful stages per buffer is the overhead being measured.
	DefaultFilterCount = 100

	// DefaultTotalSamples is the per-trial sample budget (2^19).
	DefaultTotalSamples = 524288

	// DefaultMinBufferLen is the first buffer length in the sweep.
	DefaultMinBufferLen = 8

	// DefaultMaxBufferLen is the exclusive sweep bound; the largest
	// trial uses half this length.
	DefaultMaxBufferLen = 4096
)

const (
	// nyquistDivisor: a generated or filtered frequency must stay below
	// SampleRate/nyquistDivisor.
	nyquistDivisor = 2.0

	nsPerSecond = 1e9
)
