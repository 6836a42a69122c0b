package taylor

import "math"

// DfDtLimit is the largest acceptable product of the per-step frequency
// change and the generation interval. Above it the generated phase may no
// longer be interpolated to well within a radian.
const DfDtLimit = 2.0

// resolutionMargin scales the estimate so that quadratic interpolation of
// the generated phase stays well under one radian of error.
const resolutionMargin = 10.0

// Resolution is the sampling plan for intermediate waveform generation.
type Resolution struct {
	// DtInv is the estimated inverse sampling interval in Hz.
	DtInv float64
	// DeltaT is the generation sampling interval in seconds.
	DeltaT float64
	// Length is the number of generation samples.
	Length int
	// Fallback is set when the frequency drift is negligible over the whole
	// span and a two-sample representation was chosen.
	Fallback bool
}

// EstimateResolution derives the generation sampling interval for m (already
// shifted to the start of the span) over duration seconds:
//
//	dtInv = 10*sqrt(|F0|) * sum sqrt((k+1)*|fk|*T^k)
//
// If dtInv < 1/T the waveform is represented by two samples spaced T apart.
// Otherwise Length = ceil(T*dtInv) + 2 and DeltaT = 1/dtInv.
func EstimateResolution(m Model, duration float64) (Resolution, error) {
	if err := validateDuration(duration); err != nil {
		return Resolution{}, err
	}

	if m.Coeffs.IsZero() {
		return Resolution{DeltaT: duration, Length: 2, Fallback: true}, nil
	}

	dtInv := 0.0
	tN := 1.0
	for k, c := range m.Coeffs {
		dtInv += math.Sqrt(float64(k+1) * math.Abs(c) * tN)
		tN *= duration
	}
	dtInv *= resolutionMargin * math.Sqrt(math.Abs(m.F0))

	if dtInv < 1/duration {
		return Resolution{
			DtInv:    dtInv,
			DeltaT:   duration,
			Length:   2,
			Fallback: true,
		}, nil
	}

	return Resolution{
		DtInv:  dtInv,
		DeltaT: 1 / dtInv,
		Length: int(math.Ceil(duration*dtInv)) + 2,
	}, nil
}
