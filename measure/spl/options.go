package spl

import (
	"github.com/cwbudde/algo-dsp/dsp/filter/weighting"

	"github.com/cwbudde/algo-acoustics/standards/iec61672"
	"github.com/cwbudde/algo-acoustics/standards/isotr25417"
)

// Config defines a sound level measurement.
type Config struct {
	SampleRate float64

	// Weighting selects the frequency weighting curve applied before
	// integration.
	Weighting weighting.Type

	// TimeConstant is the exponential time-weighting constant in
	// seconds. Ignored when AveragingTime is set.
	TimeConstant float64

	// AveragingTime, when > 0, switches from exponential time-weighting
	// to linear block averaging with this duration in seconds.
	AveragingTime float64

	// ReferencePressure is the decibel reference in Pa.
	ReferencePressure float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the conventional meter setup: 48 kHz,
// A-weighting, FAST time-weighting, 20 uPa reference.
func DefaultConfig() Config {
	return Config{
		SampleRate:        48000,
		Weighting:         weighting.TypeA,
		TimeConstant:      iec61672.FastTimeConstant,
		ReferencePressure: isotr25417.ReferencePressure,
	}
}

// WithSampleRate sets the sample rate of the input signal.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWeighting selects the frequency weighting curve.
func WithWeighting(t weighting.Type) Option {
	return func(cfg *Config) {
		cfg.Weighting = t
	}
}

// WithTimeConstant sets the exponential time-weighting constant, e.g.
// [iec61672.FastTimeConstant] or [iec61672.SlowTimeConstant].
func WithTimeConstant(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.TimeConstant = seconds
			cfg.AveragingTime = 0
		}
	}
}

// WithAveragingTime switches the measurement to linear block averaging
// over the given duration (a time-averaged level, as for Leq series).
func WithAveragingTime(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.AveragingTime = seconds
		}
	}
}

// WithReferencePressure sets the decibel reference pressure.
func WithReferencePressure(pascal float64) Option {
	return func(cfg *Config) {
		if pascal > 0 {
			cfg.ReferencePressure = pascal
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
