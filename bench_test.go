package dspbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero_sample_rate", func(c *Config) { c.SampleRate = 0 }, true},
		{"negative_sample_rate", func(c *Config) { c.SampleRate = -48000 }, true},
		{"signal_at_nyquist", func(c *Config) { c.SignalFrequency = c.SampleRate / 2 }, true},
		{"zero_signal_frequency", func(c *Config) { c.SignalFrequency = 0 }, true},
		{"center_above_nyquist", func(c *Config) { c.CenterFrequency = c.SampleRate }, true},
		{"zero_q", func(c *Config) { c.Q = 0 }, true},
		{"zero_filters", func(c *Config) { c.FilterCount = 0 }, true},
		{"zero_total_samples", func(c *Config) { c.TotalSamples = 0 }, true},
		{"min_not_power_of_two", func(c *Config) { c.MinBufferLen = 12 }, true},
		{"zero_min_buffer", func(c *Config) { c.MinBufferLen = 0 }, true},
		{"max_not_power_of_two", func(c *Config) { c.MaxBufferLen = 5000 }, true},
		{"max_equals_min", func(c *Config) { c.MaxBufferLen = c.MinBufferLen }, true},
		{"negative_gain_ok", func(c *Config) { c.GainDB = -3 }, false},
		{"single_filter_ok", func(c *Config) { c.FilterCount = 1 }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_CopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	bench, err := New(cfg)
	require.NoError(t, err)

	// Later mutation of the caller's config must not affect the bench.
	cfg.FilterCount = 1
	assert.Equal(t, DefaultFilterCount, bench.Config().FilterCount)
}

func TestBench_BufferLengths(t *testing.T) {
	bench, err := New(DefaultConfig())
	require.NoError(t, err)

	want := []int{8, 16, 32, 64, 128, 256, 512, 1024, 2048}
	assert.Equal(t, want, bench.BufferLengths(),
		"sweep must cover powers of two from 8 up to but excluding 4096")
}
