// Package interp provides the interpolation primitives used to evaluate a
// coarsely sampled waveform on a finer output grid.
//
//   - [Linear2]:       2-point linear interpolation
//   - [PhaseQuadratic]: phase advance under linearly interpolated frequency
//   - [Locate]:        grid index and fractional offset of a time
package interp
