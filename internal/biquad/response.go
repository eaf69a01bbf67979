package biquad

import (
	"math"
	"math/cmplx"
)

const dbPerDecade = 20.0

// Response evaluates the section's transfer function H(z) on the unit
// circle at the given frequency in Hz.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	omega := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -omega)) // z^-1
	z2 := z1 * z1                       // z^-2

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeDB returns the section's gain in decibels at freq.
func (c Coefficients) MagnitudeDB(freq, sampleRate float64) float64 {
	return dbPerDecade * math.Log10(cmplx.Abs(c.Response(freq, sampleRate)))
}

// Stable reports whether both poles lie inside the unit circle, using
// the stability triangle for the denominator z^2 + A1*z + A2:
// |A2| < 1 and |A1| < 1 + A2.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// MagnitudeDB returns the cascade's gain in decibels at freq, the sum of
// the per-section gains.
func (c *Cascade) MagnitudeDB(freq, sampleRate float64) float64 {
	var db float64
	for i := range c.filters {
		db += c.filters[i].MagnitudeDB(freq, sampleRate)
	}
	return db
}
