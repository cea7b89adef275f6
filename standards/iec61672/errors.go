package iec61672

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBlocks reports an averaging or integration time that yields no
	// usable block: either floor(duration*sampleRate) is zero, or the
	// signal is shorter than a single block. Callers must not receive an
	// empty result for this case, so it is an explicit error.
	ErrNoBlocks = errors.New("iec61672: no full block fits the signal")

	// ErrNegativeEnergy reports a negative energy value in a decibel
	// conversion. Squared pressure is non-negative, so a negative block
	// indicates corrupted input. Exact zero is silence and converts to
	// -Inf without error.
	ErrNegativeEnergy = errors.New("iec61672: negative energy in level conversion")
)

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("iec61672: sample rate must be > 0: %g", sampleRate)
	}
	return nil
}

func validateDuration(duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("iec61672: averaging/integration time must be > 0: %g", duration)
	}
	return nil
}

func validateReference(referencePressure float64) error {
	if referencePressure <= 0 {
		return fmt.Errorf("iec61672: reference pressure must be > 0: %g", referencePressure)
	}
	return nil
}
