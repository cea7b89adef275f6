package isotr25417

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-acoustics/internal/testutil"
)

func TestReferenceConstants(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"pressure", ReferencePressure, 2e-5},
		{"sound exposure", ReferenceSoundExposure, 4e-10},
		{"power", ReferencePower, 1e-12},
		{"intensity", ReferenceIntensity, 1e-12},
		{"energy", ReferenceEnergy, 1e-12},
	}

	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("reference %s: got %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestSoundPressureLevel(t *testing.T) {
	levels, err := SoundPressureLevel([]float64{ReferencePressure, 2 * ReferencePressure, 0}, ReferencePressure)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, levels[0], 0, 1e-12)
	testutil.RequireNearlyEqual(t, levels[1], 20*math.Log10(2), 1e-9)

	if !math.IsInf(levels[2], -1) {
		t.Errorf("zero pressure: got %v, want -Inf", levels[2])
	}
}

func TestEquivalentSoundPressureLevel_Sine(t *testing.T) {
	// Full cycles of a sine with amplitude a: Leq = 10*log10(a^2/2/p0^2).
	const amplitude = 1.0

	pressure := testutil.Sine(100, 8000, amplitude, 8000)

	got, err := EquivalentSoundPressureLevel(pressure, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	want := 10 * math.Log10(amplitude*amplitude/2)
	testutil.RequireNearlyEqual(t, got, want, 1e-9)
}

func TestEquivalentSoundPressureLevel_Empty(t *testing.T) {
	_, err := EquivalentSoundPressureLevel(nil, 1.0)
	if !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
}

func TestPeakSoundPressureLevel(t *testing.T) {
	got, err := PeakSoundPressureLevel([]float64{0.1, -2.0, 1.5}, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// The (negative) -2.0 sample carries the largest squared pressure.
	want := 10 * math.Log10(4.0)
	testutil.RequireNearlyEqual(t, got, want, 1e-12)
}

func TestLevels_InvalidReference(t *testing.T) {
	if _, err := SoundPressureLevel([]float64{1}, 0); err == nil {
		t.Error("SoundPressureLevel: zero reference: expected error")
	}

	if _, err := EquivalentSoundPressureLevel([]float64{1}, -1); err == nil {
		t.Error("EquivalentSoundPressureLevel: negative reference: expected error")
	}

	if _, err := PeakSoundPressureLevel([]float64{1}, 0); err == nil {
		t.Error("PeakSoundPressureLevel: zero reference: expected error")
	}
}
