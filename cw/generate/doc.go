// Package generate synthesizes Taylor-parameterized continuous waveforms.
//
// A [Generator] samples the amplitude, instantaneous frequency and phase of
// a source on a coarse grid chosen by [taylor.EstimateResolution]. The
// result is a [Waveform] that a detector-response simulator interpolates
// onto the output grid.
package generate
