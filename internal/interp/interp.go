package interp

import "math"

// Linear2 interpolates from x0 to x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// PhaseQuadratic returns the phase (radians) at elapsed seconds past a
// sample with phase phi0, when the frequency (Hz) varies linearly from f0
// at that sample to f1 one interval dt later:
//
//	phi = phi0 + 2*pi*(f0*x + (f1-f0)*x^2/(2*dt))
//
// This is exact for a linear chirp and stays anchored to the sampled phase
// at every interval, so errors do not accumulate across intervals.
func PhaseQuadratic(elapsed, dt, phi0, f0, f1 float64) float64 {
	if dt <= 0 {
		return phi0 + 2*math.Pi*f0*elapsed
	}
	return phi0 + 2*math.Pi*elapsed*(f0+0.5*(f1-f0)*elapsed/dt)
}

// Locate maps the offset t (seconds past the first sample) onto a grid of n
// samples spaced dt apart. It returns the index of the interval start and
// the fractional position within that interval. ok is false when t lies
// outside [0, (n-1)*dt].
//
// The last sample is reported as index n-2 with frac 1 so that callers can
// always read samples idx and idx+1.
func Locate(t, dt float64, n int) (idx int, frac float64, ok bool) {
	if n < 2 || dt <= 0 || t < 0 || math.IsNaN(t) {
		return 0, 0, false
	}

	pos := t / dt
	if pos > float64(n-1) {
		return 0, 0, false
	}

	idx = int(pos)
	if idx >= n-1 {
		idx = n - 2
	}
	return idx, pos - float64(idx), true
}
