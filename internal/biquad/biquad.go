// Package biquad implements second-order IIR filter sections with
// peaking-EQ coefficient design.
//
// The coefficient formulas follow Robert Bristow-Johnson's Audio EQ
// Cookbook, normalized so the a0 coefficient is folded into the others.
// Filters run a direct-form-I recurrence over the two most recent inputs
// and outputs.
package biquad

import "math"

// Cookbook constants: A is derived from the gain in dB via 10^(dB/40),
// and the transfer function is second order.
const (
	gainDivisor = 40.0
	gainBase    = 10.0
)

// Coefficients defines a normalized direct-form-I second-order section.
// Immutable after derivation; the same value can back any number of
// Filter instances.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// PeakingEQ derives coefficients for a peaking equalizer that boosts or
// cuts gainDB decibels in a band of width centerFreq/q around
// centerFreq. All frequencies are in Hz.
//
// A1 works out to the same expression as B1 because the peaking
// numerator and denominator share the -2cos(omega) middle term; both are
// derived from the formula rather than aliased.
func PeakingEQ(sampleRate, centerFreq, q, gainDB float64) Coefficients {
	A := math.Pow(gainBase, gainDB/gainDivisor)
	omega := 2 * math.Pi * centerFreq / sampleRate
	alpha := math.Sin(omega) / (2 * q)

	a0 := 1 + alpha/A

	return Coefficients{
		B0: (1 + alpha*A) / a0,
		B1: (-2 * math.Cos(omega)) / a0,
		B2: (1 - alpha*A) / a0,
		A1: (-2 * math.Cos(omega)) / a0,
		A2: (1 - alpha/A) / a0,
	}
}

// Filter is a single biquad section with its recurrence state: the two
// most recent inputs and outputs, exactly the minimal memory a
// second-order recurrence needs.
type Filter struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewFilter creates a filter with zeroed state.
func NewFilter(c Coefficients) *Filter {
	return &Filter{Coefficients: c}
}

// ProcessSample advances the recurrence by one input sample and returns
// the corresponding output.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.B0*x + f.B1*f.x1 + f.B2*f.x2 - f.A1*f.y1 - f.A2*f.y2

	f.x2 = f.x1
	f.x1 = x
	f.y2 = f.y1
	f.y1 = y

	return y
}

// Process filters buf in place, left to right. State persists across
// calls, so consecutive buffers form one continuous stream.
func (f *Filter) Process(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the recurrence state. A reset filter produces the same
// output as a freshly constructed one.
func (f *Filter) Reset() {
	f.x1 = 0
	f.x2 = 0
	f.y1 = 0
	f.y2 = 0
}
