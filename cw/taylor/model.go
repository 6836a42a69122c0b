package taylor

import "math"

// Polynomial holds fractional spindown coefficients. Element k multiplies
// t^(k+1), so the zero-length polynomial describes a monochromatic source.
type Polynomial []float64

// Clone returns an independent copy of p. A nil polynomial stays nil.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// IsZero reports whether every coefficient is exactly zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Multiplier returns the fractional-frequency multiplier 1 + sum fk*t^(k+1).
func (p Polynomial) Multiplier(t float64) float64 {
	m := 1.0
	tN := 1.0
	for _, c := range p {
		tN *= t
		m += c * tN
	}
	return m
}

// Model is a Taylor-parameterized frequency model anchored at some
// reference epoch: base frequency F0 (Hz), phase Phi0 (rad) and spindown
// coefficients.
type Model struct {
	F0     float64
	Phi0   float64
	Coeffs Polynomial
}

// Frequency returns the instantaneous frequency t seconds after the
// reference epoch.
func (m Model) Frequency(t float64) float64 {
	return m.F0 * m.Coeffs.Multiplier(t)
}

// Phase returns the phase t seconds after the reference epoch, in radians.
func (m Model) Phase(t float64) float64 {
	integral := 1.0
	tN := 1.0
	for k, c := range m.Coeffs {
		tN *= t
		integral += c * tN / float64(k+2)
	}
	return m.Phi0 + 2*math.Pi*m.F0*t*integral
}
