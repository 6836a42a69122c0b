// Package inject adds continuous-wave sources to an output time series.
//
// For every source record the [Injector] shifts the frequency model to the
// start of the generation span, picks a sampling resolution for the span,
// generates the waveform, simulates the detector output on the grid of the
// target series and adds it in. Records are processed one at a time in
// input order; the output series is the only state they share.
package inject
