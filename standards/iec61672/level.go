package iec61672

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// LevelsFromEnergy converts integrated or averaged energy values to
// sound pressure levels in dB: 10*log10(energy/referencePressure^2).
//
// An energy of exactly zero converts to -Inf, the level of silence.
// Negative energy returns [ErrNegativeEnergy].
func LevelsFromEnergy(energy []float64, referencePressure float64) ([]float64, error) {
	if err := validateReference(referencePressure); err != nil {
		return nil, err
	}

	ref := referencePressure * referencePressure

	out := make([]float64, len(energy))
	for i, e := range energy {
		if e < 0 {
			return nil, fmt.Errorf("block %d (%g): %w", i, e, ErrNegativeEnergy)
		}

		out[i] = core.LinearPowerToDB(e / ref)
	}

	return out, nil
}

// TimeAveragedSoundLevel computes time-averaged sound pressure levels
// of a dynamic pressure signal: the pressure is squared, block-averaged
// with [Average], and converted to dB relative to the reference
// pressure. Returns the block start times (0, T, 2T, ...) and one
// level per block.
func TimeAveragedSoundLevel(pressure []float64, sampleRate, averagingTime, referencePressure float64) (times, levels []float64, err error) {
	if err := validateReference(referencePressure); err != nil {
		return nil, nil, err
	}

	mean, err := Average(square(pressure), sampleRate, averagingTime)
	if err != nil {
		return nil, nil, err
	}

	levels, err = LevelsFromEnergy(mean, referencePressure)
	if err != nil {
		return nil, nil, err
	}

	return timeAxis(len(levels), averagingTime), levels, nil
}

// TimeWeightedSoundLevel computes exponentially time-weighted sound
// pressure levels of a dynamic pressure signal: the pressure is
// squared, integrated with [Integrate], and converted to dB relative
// to the reference pressure. Returns the block start times
// (0, tau, 2*tau, ...) and one level per block.
func TimeWeightedSoundLevel(pressure []float64, sampleRate, integrationTime, referencePressure float64) (times, levels []float64, err error) {
	if err := validateReference(referencePressure); err != nil {
		return nil, nil, err
	}

	integrated, err := Integrate(square(pressure), sampleRate, integrationTime)
	if err != nil {
		return nil, nil, err
	}

	levels, err = LevelsFromEnergy(integrated, referencePressure)
	if err != nil {
		return nil, nil, err
	}

	return timeAxis(len(levels), integrationTime), levels, nil
}

// FastLevel computes FAST (F) time-weighted sound pressure levels.
func FastLevel(pressure []float64, sampleRate, referencePressure float64) (times, levels []float64, err error) {
	return TimeWeightedSoundLevel(pressure, sampleRate, FastTimeConstant, referencePressure)
}

// SlowLevel computes SLOW (S) time-weighted sound pressure levels.
func SlowLevel(pressure []float64, sampleRate, referencePressure float64) (times, levels []float64, err error) {
	return TimeWeightedSoundLevel(pressure, sampleRate, SlowTimeConstant, referencePressure)
}

// TimeAveragedSoundLevelChannels applies [TimeAveragedSoundLevel] to
// each channel independently. All channels must have the same length
// so that they share one time axis.
func TimeAveragedSoundLevelChannels(pressure [][]float64, sampleRate, averagingTime, referencePressure float64) (times []float64, levels [][]float64, err error) {
	return convertChannels(pressure, func(ch []float64) ([]float64, []float64, error) {
		return TimeAveragedSoundLevel(ch, sampleRate, averagingTime, referencePressure)
	})
}

// TimeWeightedSoundLevelChannels applies [TimeWeightedSoundLevel] to
// each channel independently. All channels must have the same length
// so that they share one time axis.
func TimeWeightedSoundLevelChannels(pressure [][]float64, sampleRate, integrationTime, referencePressure float64) (times []float64, levels [][]float64, err error) {
	return convertChannels(pressure, func(ch []float64) ([]float64, []float64, error) {
		return TimeWeightedSoundLevel(ch, sampleRate, integrationTime, referencePressure)
	})
}

func convertChannels(pressure [][]float64, convert func([]float64) ([]float64, []float64, error)) (times []float64, levels [][]float64, err error) {
	levels = make([][]float64, len(pressure))

	for ch := range pressure {
		if len(pressure[ch]) != len(pressure[0]) {
			return nil, nil, fmt.Errorf("iec61672: channel %d has %d samples, channel 0 has %d",
				ch, len(pressure[ch]), len(pressure[0]))
		}

		t, l, err := convert(pressure[ch])
		if err != nil {
			return nil, nil, fmt.Errorf("channel %d: %w", ch, err)
		}

		if ch == 0 {
			times = t
		}

		levels[ch] = l
	}

	return times, levels, nil
}

// square returns the elementwise square of the signal in a new slice.
func square(pressure []float64) []float64 {
	energy := make([]float64, len(pressure))
	vecmath.MulBlock(energy, pressure, pressure)

	return energy
}

// timeAxis returns block start times 0, T, 2T, ...
func timeAxis(blocks int, duration float64) []float64 {
	out := make([]float64, blocks)
	for i := range out {
		out[i] = float64(i) * duration
	}

	return out
}
