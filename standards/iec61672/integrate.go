package iec61672

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
)

// Standard exponential time-weighting constants in seconds
// (IEC 61672-1 clause 5.7).
const (
	// FastTimeConstant is the FAST (F) time-weighting constant.
	FastTimeConstant = 0.125

	// SlowTimeConstant is the SLOW (S) time-weighting constant.
	SlowTimeConstant = 1.0
)

// TimeWeighting returns the digital exponential time-weighting filter
// for the given time constant, as a first-order section.
//
// The analog prototype is H(s) = 1/(s + 1/tau): a single real pole at
// -1/tau with unity numerator, the transfer function of an RC
// integrator. It is discretized with the Tustin (bilinear) transform
// at the given sample rate. The DC gain of the section is tau, so
// dividing the output by tau yields a unity-gain smoother whose
// steady-state response to a constant input is that constant.
func TimeWeighting(timeConstant, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}

	if err := validateDuration(timeConstant); err != nil {
		return biquad.Coefficients{}, err
	}

	p := 1 / timeConstant
	d := 2*sampleRate + p

	return biquad.Coefficients{
		B0: 1 / d,
		B1: 1 / d,
		A1: (p - 2*sampleRate) / d,
	}, nil
}

// Integrate applies exponential time-weighting to an energetic signal
// (squared pressure) and samples the integrator once per nominal time
// constant, emulating how an analog meter's RC circuit is read out.
//
// The signal is partitioned into blocks of
// floor(integrationTime*sampleRate) samples with the same trailing
// truncation as [Average]. Each block is filtered forward through the
// [TimeWeighting] section from zero state (the filter is reset at every
// block boundary, state never carries across blocks), and the final
// output of the block, divided by the time constant, is that block's
// integrated energy.
//
// Returns [ErrNoBlocks] when the signal is shorter than one block.
func Integrate(energy []float64, sampleRate, integrationTime float64) ([]float64, error) {
	n, err := BlockLength(sampleRate, integrationTime)
	if err != nil {
		return nil, err
	}

	blocks := len(energy) / n
	if blocks == 0 {
		return nil, fmt.Errorf("iec61672: block of %d samples exceeds signal of %d: %w",
			n, len(energy), ErrNoBlocks)
	}

	coeffs, err := TimeWeighting(integrationTime, sampleRate)
	if err != nil {
		return nil, err
	}

	section := biquad.NewSection(coeffs)

	out := make([]float64, blocks)
	for b := range out {
		section.Reset()

		var y float64
		for _, v := range energy[b*n : (b+1)*n] {
			y = section.ProcessSample(v)
		}

		out[b] = y / integrationTime
	}

	return out, nil
}

// FastIntegrate applies FAST (F) time-weighting.
func FastIntegrate(energy []float64, sampleRate float64) ([]float64, error) {
	return Integrate(energy, sampleRate, FastTimeConstant)
}

// SlowIntegrate applies SLOW (S) time-weighting.
func SlowIntegrate(energy []float64, sampleRate float64) ([]float64, error) {
	return Integrate(energy, sampleRate, SlowTimeConstant)
}

// IntegrateChannels applies [Integrate] to each channel independently,
// each with its own filter state.
func IntegrateChannels(energy [][]float64, sampleRate, integrationTime float64) ([][]float64, error) {
	out := make([][]float64, len(energy))
	for ch := range energy {
		integrated, err := Integrate(energy[ch], sampleRate, integrationTime)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}

		out[ch] = integrated
	}

	return out, nil
}
