package iec61672

import "fmt"

// BandCount is the number of standard one-third-octave bands between
// 10 Hz and 20 kHz covered by the weighting tables.
const BandCount = 34

// Curve identifies a frequency weighting curve. IEC 61672-1:2013
// specifies A, C, and Z; the older B-weighting was withdrawn.
type Curve int

const (
	// CurveA is the A-weighting curve, approximating the 40-phon
	// equal-loudness contour. The default for environmental and
	// occupational noise measurements.
	CurveA Curve = iota

	// CurveC is the C-weighting curve, approximating the 100-phon
	// equal-loudness contour. Used for peak levels and C-A differences.
	CurveC

	// CurveZ is the Z-weighting (zero-weighting): no correction at any
	// frequency, the flat reference replacing the old "Linear" setting.
	CurveZ
)

// String returns a human-readable name for the weighting curve.
func (c Curve) String() string {
	switch c {
	case CurveA:
		return "A"
	case CurveC:
		return "C"
	case CurveZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// nominalFrequencies holds the standard one-third-octave band center
// frequencies in Hz, 10 Hz through 20 kHz.
var nominalFrequencies = [BandCount]float64{
	10.0, 12.5, 16.0, 20.0, 25.0, 31.5, 40.0, 50.0, 63.0, 80.0,
	100.0, 125.0, 160.0, 200.0, 250.0, 315.0, 400.0, 500.0, 630.0,
	800.0, 1000.0, 1250.0, 1600.0, 2000.0, 2500.0, 3150.0, 4000.0,
	5000.0, 6300.0, 8000.0, 10000.0, 12500.0, 16000.0, 20000.0,
}

// weightingA holds the A-weighting corrections in dB per nominal
// frequency (IEC 61672-1 Table 3).
var weightingA = [BandCount]float64{
	-70.4, -63.4, -56.7, -50.5, -44.7, -39.4, -34.6, -30.2, -26.2,
	-22.5, -19.1, -16.1, -13.4, -10.9, -8.6, -6.6, -4.8, -3.2, -1.9,
	-0.8, 0.0, 0.6, 1.0, 1.2, 1.3, 1.2, 1.0, 0.5, -0.1, -1.1, -2.5,
	-4.3, -6.6, -9.3,
}

// weightingC holds the C-weighting corrections in dB per nominal
// frequency (IEC 61672-1 Table 3).
var weightingC = [BandCount]float64{
	-14.3, -11.2, -8.5, -6.2, -4.4, -3.0, -2.0, -1.3, -0.8, -0.5,
	-0.3, -0.2, -0.1, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	-0.1, -0.2, -0.3, -0.5, -0.8, -1.3, -2.0, -3.0, -4.4, -6.2, -8.5,
	-11.2,
}

// weightingZ is all zeros: Z applies no correction.
var weightingZ = [BandCount]float64{}

// NominalFrequencies returns the 34 standard one-third-octave band
// center frequencies in Hz. The returned slice is a copy and may be
// modified by the caller.
func NominalFrequencies() []float64 {
	out := make([]float64, BandCount)
	copy(out, nominalFrequencies[:])
	return out
}

// Corrections returns the decibel corrections of the given curve,
// aligned index-for-index with [NominalFrequencies]. The returned
// slice is a copy.
func Corrections(curve Curve) ([]float64, error) {
	table, err := curveTable(curve)
	if err != nil {
		return nil, err
	}

	out := make([]float64, BandCount)
	copy(out, table[:])

	return out, nil
}

// Weighting returns the tabulated decibel correction of the given
// curve at one of the nominal frequencies. Frequencies between table
// entries are not interpolated; an exact match is required.
func Weighting(curve Curve, frequency float64) (float64, error) {
	table, err := curveTable(curve)
	if err != nil {
		return 0, err
	}

	for i, f := range nominalFrequencies {
		if f == frequency {
			return table[i], nil
		}
	}

	return 0, fmt.Errorf("iec61672: %g Hz is not a nominal one-third-octave frequency", frequency)
}

func curveTable(curve Curve) (*[BandCount]float64, error) {
	switch curve {
	case CurveA:
		return &weightingA, nil
	case CurveC:
		return &weightingC, nil
	case CurveZ:
		return &weightingZ, nil
	default:
		return nil, fmt.Errorf("iec61672: unknown weighting curve %d", int(curve))
	}
}
