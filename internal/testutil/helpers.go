// Package testutil provides reusable test helper functions for the
// benchmark's DSP tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance bounds per-sample differences between two runs of
	// the same deterministic computation.
	DefaultTolerance = 1e-15

	// InverseTolerance bounds the residual after a boost/cut filter pair,
	// per the inverse-pair property.
	InverseTolerance = 1e-6

	// DBTolerance for magnitude response comparisons in decibels.
	DBTolerance = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertEqualSamples verifies that two sample streams have the same
// length and match element-wise within tolerance.
func AssertEqualSamples(t *testing.T, want, got []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance,
			"sample %d: got %g, want %g", i, got[i], want[i]) {
			return false
		}
	}
	return true
}

// AssertTwoLevel verifies that every sample is exactly +level or -level,
// with no intermediate values.
func AssertTwoLevel(t *testing.T, s []float64, level float64) bool {
	t.Helper()
	for i, v := range s {
		if v != level && v != -level {
			return assert.Fail(t, "intermediate level",
				"s[%d]=%g is neither %g nor %g", i, v, level, -level)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
