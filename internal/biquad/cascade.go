package biquad

// Cascade is an ordered chain of biquad sections applied in series.
// Section count and coefficients are fixed at construction; only the
// per-section recurrence state mutates.
type Cascade struct {
	filters []Filter
}

// NewCascade builds a cascade from explicit per-section coefficients,
// applied in slice order.
func NewCascade(coeffs []Coefficients) *Cascade {
	filters := make([]Filter, len(coeffs))
	for i, c := range coeffs {
		filters[i] = Filter{Coefficients: c}
	}
	return &Cascade{filters: filters}
}

// NewAlternating builds n peaking sections sharing centerFreq and q,
// with gain alternating +gainDB, -gainDB, ... starting positive. Mixed
// boosts and cuts keep the chain's net response near unity while still
// exercising every section, like a realistic EQ bank.
func NewAlternating(n int, sampleRate, centerFreq, q, gainDB float64) *Cascade {
	coeffs := make([]Coefficients, n)
	positive := true
	for i := range coeffs {
		g := gainDB
		if !positive {
			g = -gainDB
		}
		positive = !positive
		coeffs[i] = PeakingEQ(sampleRate, centerFreq, q, g)
	}
	return NewCascade(coeffs)
}

// Apply runs buf through every section in order, in place. The full
// cascade runs per sample, so section k+1 always consumes section k's
// freshly computed output before the next sample is touched.
func (c *Cascade) Apply(buf []float64) {
	filters := c.filters
	for i, x := range buf {
		for j := range filters {
			x = filters[j].ProcessSample(x)
		}
		buf[i] = x
	}
}

// Reset zeroes every section's state.
func (c *Cascade) Reset() {
	for i := range c.filters {
		c.filters[i].Reset()
	}
}

// Len returns the number of sections.
func (c *Cascade) Len() int {
	return len(c.filters)
}

// Section returns the coefficients of section i.
func (c *Cascade) Section(i int) Coefficients {
	return c.filters[i].Coefficients
}
