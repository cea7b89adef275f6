package spl

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/weighting"

	"github.com/cwbudde/algo-acoustics/standards/iec61672"
	"github.com/cwbudde/algo-acoustics/standards/isotr25417"
)

// Levels computes the frequency-weighted sound pressure level history
// of a dynamic pressure signal. With the default config this is the
// LAF series: A-weighted, FAST time-weighted, one level per 125 ms
// block. With [WithAveragingTime] it becomes a time-averaged (Leq)
// series instead.
//
// Returns the block start times and one level per block.
func Levels(pressure []float64, opts ...Option) (times, levels []float64, err error) {
	cfg := ApplyOptions(opts...)
	weighted := weigh(pressure, cfg)

	if cfg.AveragingTime > 0 {
		return iec61672.TimeAveragedSoundLevel(weighted, cfg.SampleRate, cfg.AveragingTime, cfg.ReferencePressure)
	}

	return iec61672.TimeWeightedSoundLevel(weighted, cfg.SampleRate, cfg.TimeConstant, cfg.ReferencePressure)
}

// Equivalent computes the frequency-weighted equivalent continuous
// sound pressure level (e.g. LAeq) over the whole signal.
func Equivalent(pressure []float64, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)
	weighted := weigh(pressure, cfg)

	return isotr25417.EquivalentSoundPressureLevel(weighted, cfg.ReferencePressure)
}

// MaxLevel returns the highest level of the [Levels] series (e.g.
// LAFmax with the default config).
func MaxLevel(pressure []float64, opts ...Option) (float64, error) {
	_, levels, err := Levels(pressure, opts...)
	if err != nil {
		return 0, err
	}

	maxLevel := math.Inf(-1)
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
	}

	return maxLevel, nil
}

// weigh runs the configured weighting filter over a copy of the input.
// The filter processes in place, so the copy keeps the caller's signal
// untouched.
func weigh(pressure []float64, cfg Config) []float64 {
	out := make([]float64, len(pressure))
	copy(out, pressure)

	chain := weighting.New(cfg.Weighting, cfg.SampleRate)
	chain.ProcessBlock(out)

	return out
}
