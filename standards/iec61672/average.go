package iec61672

import (
	"fmt"
	"math"
)

// BlockLength returns the number of samples spanned by the given
// duration: floor(duration * sampleRate). Returns [ErrNoBlocks] if the
// duration is shorter than one sample period.
func BlockLength(sampleRate, duration float64) (int, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return 0, err
	}

	if err := validateDuration(duration); err != nil {
		return 0, err
	}

	n := int(math.Floor(duration * sampleRate))
	if n < 1 {
		return 0, fmt.Errorf("iec61672: duration %gs spans no sample at %g Hz: %w",
			duration, sampleRate, ErrNoBlocks)
	}

	return n, nil
}

// Average divides an energetic signal (squared pressure) into
// non-overlapping blocks of floor(averagingTime*sampleRate) samples
// and returns the arithmetic mean of each block.
//
// Trailing samples that do not fill a full block are silently
// discarded. Because sampleRate*averagingTime is generally not an
// integer, block boundaries drift relative to exact time multiples for
// long signals; this is accepted and not corrected.
//
// Returns [ErrNoBlocks] when the signal is shorter than one block.
func Average(energy []float64, sampleRate, averagingTime float64) ([]float64, error) {
	n, err := BlockLength(sampleRate, averagingTime)
	if err != nil {
		return nil, err
	}

	blocks := len(energy) / n
	if blocks == 0 {
		return nil, fmt.Errorf("iec61672: block of %d samples exceeds signal of %d: %w",
			n, len(energy), ErrNoBlocks)
	}

	out := make([]float64, blocks)
	for b := range out {
		var sum float64
		for _, v := range energy[b*n : (b+1)*n] {
			sum += v
		}

		out[b] = sum / float64(n)
	}

	return out, nil
}

// AverageChannels applies [Average] to each channel independently.
// Channels may differ in length; each yields its own block count.
func AverageChannels(energy [][]float64, sampleRate, averagingTime float64) ([][]float64, error) {
	out := make([][]float64, len(energy))
	for ch := range energy {
		avg, err := Average(energy[ch], sampleRate, averagingTime)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}

		out[ch] = avg
	}

	return out, nil
}
