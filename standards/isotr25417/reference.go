package isotr25417

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// Reference quantities per ISO TR 25417:2007.
const (
	// ReferencePressure is the reference sound pressure in air, in Pa.
	ReferencePressure = 2.0e-5

	// ReferenceSoundExposure is the reference sound exposure in Pa^2*s.
	ReferenceSoundExposure = 4.0e-10

	// ReferencePower is the reference sound power in W.
	ReferencePower = 1.0e-12

	// ReferenceIntensity is the reference sound intensity in W/m^2.
	ReferenceIntensity = 1.0e-12

	// ReferenceEnergy is the reference sound energy in J.
	ReferenceEnergy = 1.0e-12
)

// ErrEmptySignal reports a level query on a signal with no samples.
var ErrEmptySignal = errors.New("isotr25417: empty signal")

// SoundPressureLevel returns the instantaneous sound pressure level of
// each sample: 10*log10(p^2/p0^2). A zero sample yields -Inf.
func SoundPressureLevel(pressure []float64, referencePressure float64) ([]float64, error) {
	if err := validateReference(referencePressure); err != nil {
		return nil, err
	}

	ref := referencePressure * referencePressure

	out := make([]float64, len(pressure))
	for i, p := range pressure {
		out[i] = core.LinearPowerToDB(p * p / ref)
	}

	return out, nil
}

// EquivalentSoundPressureLevel returns the equivalent continuous sound
// pressure level (Leq) over the whole signal:
// 10*log10(mean(p^2)/p0^2). A silent signal yields -Inf.
func EquivalentSoundPressureLevel(pressure []float64, referencePressure float64) (float64, error) {
	if err := validateReference(referencePressure); err != nil {
		return 0, err
	}

	if len(pressure) == 0 {
		return 0, ErrEmptySignal
	}

	var sumSq float64
	for _, p := range pressure {
		sumSq += p * p
	}

	mean := sumSq / float64(len(pressure))
	ref := referencePressure * referencePressure

	return core.LinearPowerToDB(mean / ref), nil
}

// PeakSoundPressureLevel returns the peak sound pressure level:
// 10*log10(max(p^2)/p0^2).
func PeakSoundPressureLevel(pressure []float64, referencePressure float64) (float64, error) {
	if err := validateReference(referencePressure); err != nil {
		return 0, err
	}

	if len(pressure) == 0 {
		return 0, ErrEmptySignal
	}

	var peakSq float64
	for _, p := range pressure {
		if sq := p * p; sq > peakSq {
			peakSq = sq
		}
	}

	ref := referencePressure * referencePressure

	return core.LinearPowerToDB(peakSq / ref), nil
}

func validateReference(referencePressure float64) error {
	if referencePressure <= 0 {
		return fmt.Errorf("isotr25417: reference pressure must be > 0: %g", referencePressure)
	}
	return nil
}
