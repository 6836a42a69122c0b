// Package series provides the uniformly sampled output time series that
// injected sources are accumulated into, together with its plain-text
// file format.
//
// A [Series] is created once, zero-filled, and then mutated only by
// [Series.Accumulate]. Contributions are added sample by sample, so the
// final content does not depend on the order in which sources are added.
//
// # Text format
//
// A two-line header followed by one sample per line:
//
//	# epoch = 630720000000000000
//	# deltaT =  9.7656250000000000e-04
//	 1.234567890e+02
//	...
package series
