// Package taylor implements the Taylor-parameterized frequency model used
// for continuous-wave (quasi-periodic) signal injection.
//
// The instantaneous frequency of a source at time t seconds after its
// reference epoch is
//
//	f(t) = F0 * (1 + f1*t + f2*t^2 + ...)
//
// where the fractional spindown coefficients fk are stored in a
// [Polynomial] (index 0 holds f1). The package provides three pure numeric
// building blocks:
//
//   - [Choose]:             binomial coefficient used for re-expansion
//   - [Shift]:              move a [Model] to a new reference epoch
//   - [EstimateResolution]: safe sampling interval for waveform generation
//
// None of the functions mutate their inputs or keep state.
package taylor
