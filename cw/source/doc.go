// Package source reads continuous-wave source descriptions.
//
// Each non-blank line describes one source: an integer GPS epoch in
// nanoseconds at which phase, frequency and spindown are defined, followed
// by at least seven whitespace-delimited reals
//
//	aPlus aCross psi ra dec phi0 f0 [f1 f2 ...]
//
// with psi, ra, dec and phi0 in degrees, f0 in Hz and the optional
// fractional spindown coefficients fk in s^-k. Lines starting with '#' or
// '%' are comments.
//
// A [Reader] yields records lazily and stops at the first malformed line;
// everything read before that line is still valid.
package source
