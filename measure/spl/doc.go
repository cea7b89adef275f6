// Package spl measures frequency-weighted sound pressure levels of
// recorded pressure signals.
//
// It composes the A, C, and Z weighting filters from
// [github.com/cwbudde/algo-dsp/dsp/filter/weighting] with the
// temporal integrators of
// [github.com/cwbudde/algo-acoustics/standards/iec61672], yielding the
// familiar sound level meter figures: LAF/LAS time histories, LAeq,
// and LAFmax. Processing is offline over a complete signal; the input
// is never modified.
package spl
