package taylor

import "math"

const nanosPerSecond = 1e9

// Shift re-expresses m about a new reference epoch t seconds after the
// current one (t may be negative).
//
// The returned model carries
//
//	Phi0' = Phi0 + 2*pi*F0*t*(1 + sum fk*t^(k+1)/(k+2))
//	F0'   = F0*(1 + sum fk*t^(k+1))
//	fi'   = (fi + sum_{j>i} C(j+1, i+1)*fj*t^(j-i)) / (F0'/F0)
//
// Every re-expanded coefficient is built from the unshifted values of the
// higher orders; normalization happens only after the whole pass. A model
// without coefficients is returned unchanged.
//
// m is not modified.
func Shift(m Model, t float64) Model {
	n := len(m.Coeffs)
	if n == 0 {
		return Model{F0: m.F0, Phi0: m.Phi0}
	}

	src := m.Coeffs
	out := make(Polynomial, n)

	tN := 1.0   // t^(i+1)
	fFac := 1.0 // fractional frequency change
	tFac := 1.0 // time integral of fFac, divided by t
	for i := 0; i < n; i++ {
		tN *= t
		fFac += src[i] * tN
		tFac += src[i] * tN / float64(i+2)

		acc := src[i]
		tM := 1.0
		for j := i + 1; j < n; j++ {
			tM *= t
			acc += float64(MustChoose(j+1, i+1)) * src[j] * tM
		}
		out[i] = acc
	}

	for i := range out {
		out[i] /= fFac
	}

	return Model{
		F0:     m.F0 * fFac,
		Phi0:   m.Phi0 + 2*math.Pi*m.F0*t*tFac,
		Coeffs: out,
	}
}

// ShiftNanos moves m from the reference epoch from to the epoch to, both
// given as integer nanoseconds on the same time scale.
func ShiftNanos(m Model, from, to int64) Model {
	return Shift(m, float64(to-from)/nanosPerSecond)
}
