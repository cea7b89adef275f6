package spl_test

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/weighting"

	"github.com/cwbudde/algo-acoustics/measure/spl"
)

func ExampleLevels() {
	// One second of constant unit pressure, Z-weighted (no frequency
	// correction), averaged over 0.5 s blocks against a unit reference.
	pressure := make([]float64, 1000)
	for i := range pressure {
		pressure[i] = 1.0
	}

	times, levels, err := spl.Levels(pressure,
		spl.WithSampleRate(1000),
		spl.WithWeighting(weighting.TypeZ),
		spl.WithAveragingTime(0.5),
		spl.WithReferencePressure(1.0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := range levels {
		fmt.Printf("t=%.1fs L=%.1f dB\n", times[i], levels[i])
	}
	// Output:
	// t=0.0s L=0.0 dB
	// t=0.5s L=0.0 dB
}
