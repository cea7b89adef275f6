// Package iec61672 implements the signal-processing core of
// IEC 61672-1:2013, the performance standard for sound level meters.
//
// The standard describes two kinds of temporal integration applied to
// squared sound pressure:
//
//   - Time-averaging: the signal is divided into fixed-length blocks and
//     the mean energy of each block is taken. Integrating-averaging
//     meters use this for equivalent continuous levels (Leq).
//   - Time-weighting: the signal is passed through an exponential
//     (RC-like) low-pass filter with time constant tau, emulating the
//     ballistics of an analog meter. The FAST (125 ms) and SLOW (1 s)
//     weightings are the named instantiations.
//
// Both pipelines consume energy (squared pressure) and emit one value
// per block of floor(tau * sampleRate) samples. Trailing samples that
// do not fill a full block are silently discarded; because
// sampleRate*tau is generally not an integer, block boundaries drift
// relative to exact time multiples for long signals. This matches the
// behavior of reference implementations and is deliberate.
//
// The level converters [TimeAveragedSoundLevel] and
// [TimeWeightedSoundLevel] take dynamic pressure, square it, integrate,
// and convert to decibels relative to a reference pressure such as
// [github.com/cwbudde/algo-acoustics/standards/isotr25417.ReferencePressure].
// A block of exact silence converts to -Inf, which is a valid level,
// not an error.
//
// The package also carries the tabulated A, C, and Z frequency
// weighting corrections at the 34 standard one-third-octave nominal
// frequencies from 10 Hz to 20 kHz. Only the table values are provided
// here; realizable weighting filters live in
// [github.com/cwbudde/algo-dsp/dsp/filter/weighting].
//
// All functions are pure: inputs are never mutated, no state survives
// a call, and concurrent use needs no coordination.
package iec61672
