// Package signal provides the deterministic test-signal generator that
// feeds the benchmark pipeline.
package signal

import "math"

// Amplitude is the peak level of the generated square wave. The filtered
// output stays comfortably inside [-1, 1] for the benchmark's gain
// settings, so no headroom management is needed downstream.
const Amplitude = 0.5

const halfPeriodsPerPeriod = 2

// SquareWave generates a fixed-frequency square wave sample by sample.
// State persists across Fill calls, so the waveform is phase continuous
// at buffer boundaries; Reset starts a fresh waveform.
type SquareWave struct {
	halfPeriod int  // samples per half period
	high       bool // current output level
	elapsed    int  // samples emitted in the current half period
}

// New creates a generator for the given waveform frequency and sample
// rate, both in Hz. The half period is rounded to a whole number of
// samples, so the effective frequency is sampleRate/Period().
func New(frequency, sampleRate float64) *SquareWave {
	return &SquareWave{
		halfPeriod: int(math.Round(sampleRate / frequency / halfPeriodsPerPeriod)),
	}
}

// Reset returns the generator to its initial phase: level low, at the
// start of a half period.
func (g *SquareWave) Reset() {
	g.high = false
	g.elapsed = 0
}

// Period returns the waveform period in samples.
func (g *SquareWave) Period() int {
	return halfPeriodsPerPeriod * g.halfPeriod
}

// Fill overwrites every slot of buf with the next samples of the wave.
// The level flips whenever a half period completes, producing values of
// exactly +Amplitude or -Amplitude.
func (g *SquareWave) Fill(buf []float64) {
	for i := range buf {
		if g.elapsed == g.halfPeriod {
			g.elapsed = 0
			g.high = !g.high
		}

		if g.high {
			buf[i] = Amplitude
		} else {
			buf[i] = -Amplitude
		}
		g.elapsed++
	}
}
