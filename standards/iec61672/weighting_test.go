package iec61672

import (
	"math"
	"testing"
)

func TestTables_Length(t *testing.T) {
	if got := len(NominalFrequencies()); got != BandCount {
		t.Fatalf("nominal frequencies: got %d entries, want %d", got, BandCount)
	}

	for _, curve := range []Curve{CurveA, CurveC, CurveZ} {
		table, err := Corrections(curve)
		if err != nil {
			t.Fatalf("Corrections(%s): %v", curve, err)
		}

		if len(table) != BandCount {
			t.Errorf("%s-weighting: got %d entries, want %d", curve, len(table), BandCount)
		}
	}
}

func TestTables_FrequencyRange(t *testing.T) {
	freqs := NominalFrequencies()

	if freqs[0] != 10.0 {
		t.Errorf("first band: got %g Hz, want 10 Hz", freqs[0])
	}

	if freqs[len(freqs)-1] != 20000.0 {
		t.Errorf("last band: got %g Hz, want 20000 Hz", freqs[len(freqs)-1])
	}

	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			t.Errorf("band %d: %g Hz not above %g Hz", i, freqs[i], freqs[i-1])
		}
	}
}

func TestWeighting_ReferencePoint(t *testing.T) {
	// All curves are normalized to 0 dB at 1 kHz.
	for _, curve := range []Curve{CurveA, CurveC, CurveZ} {
		got, err := Weighting(curve, 1000.0)
		if err != nil {
			t.Fatalf("Weighting(%s, 1000): %v", curve, err)
		}

		if got != 0.0 {
			t.Errorf("%s-weighting @ 1 kHz: got %g dB, want 0 dB", curve, got)
		}
	}
}

func TestWeighting_SpotValues(t *testing.T) {
	cases := []struct {
		curve Curve
		freq  float64
		dB    float64
	}{
		{CurveA, 10.0, -70.4},
		{CurveA, 100.0, -19.1},
		{CurveA, 2500.0, 1.3},
		{CurveA, 20000.0, -9.3},
		{CurveC, 10.0, -14.3},
		{CurveC, 200.0, 0.0},
		{CurveC, 4000.0, -0.8},
		{CurveC, 20000.0, -11.2},
		{CurveZ, 10.0, 0.0},
		{CurveZ, 20000.0, 0.0},
	}

	for _, c := range cases {
		got, err := Weighting(c.curve, c.freq)
		if err != nil {
			t.Fatalf("Weighting(%s, %g): %v", c.curve, c.freq, err)
		}

		if got != c.dB {
			t.Errorf("%s-weighting @ %g Hz: got %g dB, want %g dB", c.curve, c.freq, got, c.dB)
		}
	}
}

func TestWeighting_ZIsFlat(t *testing.T) {
	table, err := Corrections(CurveZ)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range table {
		if v != 0 {
			t.Errorf("Z-weighting band %d: got %g dB, want 0 dB", i, v)
		}
	}
}

func TestWeighting_Errors(t *testing.T) {
	if _, err := Weighting(CurveA, 1001.0); err == nil {
		t.Error("Weighting(A, 1001): expected error for non-nominal frequency")
	}

	if _, err := Weighting(Curve(42), 1000.0); err == nil {
		t.Error("Weighting(42, 1000): expected error for unknown curve")
	}

	if _, err := Corrections(Curve(-1)); err == nil {
		t.Error("Corrections(-1): expected error for unknown curve")
	}
}

func TestTables_AccessorsReturnCopies(t *testing.T) {
	freqs := NominalFrequencies()
	freqs[0] = math.NaN()

	if got := NominalFrequencies()[0]; got != 10.0 {
		t.Errorf("mutating accessor result leaked into table: got %g, want 10", got)
	}

	table, err := Corrections(CurveA)
	if err != nil {
		t.Fatal(err)
	}

	table[0] = 123.0

	fresh, err := Corrections(CurveA)
	if err != nil {
		t.Fatal(err)
	}

	if fresh[0] != -70.4 {
		t.Errorf("mutating accessor result leaked into table: got %g, want -70.4", fresh[0])
	}
}

func TestCurve_String(t *testing.T) {
	cases := []struct {
		curve Curve
		want  string
	}{
		{CurveA, "A"},
		{CurveC, "C"},
		{CurveZ, "Z"},
		{Curve(99), "Unknown"},
	}

	for _, c := range cases {
		if got := c.curve.String(); got != c.want {
			t.Errorf("Curve(%d).String(): got %q, want %q", int(c.curve), got, c.want)
		}
	}
}
