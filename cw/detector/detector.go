package detector

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-cw/cw/generate"
	"github.com/cwbudde/algo-cw/cw/series"
	"github.com/cwbudde/algo-cw/internal/core"
	"github.com/cwbudde/algo-cw/internal/interp"
)

// SitePadding is how far (ns) the waveform span is extended on each side of
// the output when a site is set: 1.1 light travel times of one astronomical
// unit, enough to cover any barycentric delay.
const SitePadding int64 = 548_905_262_220

// Detector describes the instrument an injection is simulated for.
type Detector struct {
	// Transfer maps strain to channel output. Nil selects UnitTransfer.
	Transfer *Transfer
	// Site is the interferometer location; nil means a stationary detector
	// aligned with the wave's plus polarization.
	Site *Site
	// HeterodyneEpoch is the GPS time (ns) at which the subtracted
	// heterodyne phase is zero.
	HeterodyneEpoch int64
}

// Padding returns the extra waveform span (ns) needed on each side of the
// output grid.
func (d Detector) Padding() int64 {
	if d.Site == nil {
		return 0
	}
	return SitePadding
}

// Simulator evaluates the detector response to generated waveforms.
type Simulator struct {
	det Detector
}

// NewSimulator validates det and returns a simulator for it.
func NewSimulator(det Detector) (*Simulator, error) {
	if det.Transfer == nil {
		det.Transfer = UnitTransfer()
	}
	if err := det.Transfer.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{det: det}, nil
}

// Detector returns the simulated detector.
func (s *Simulator) Detector() Detector {
	return s.det
}

// Simulate overwrites dst.Data with the channel output produced by w on the
// grid of dst. Output samples outside the span of w are zero. When
// dst.HeterodyneFreq is non-zero the phase 2*pi*fh*(t - HeterodyneEpoch) is
// subtracted.
func (s *Simulator) Simulate(dst *series.Series, w *generate.Waveform) error {
	if w == nil || w.Len() < 2 || len(w.Phi) != w.Len() || w.DeltaT <= 0 {
		return ErrInvalidWaveform
	}
	core.Zero(dst.Data)

	start := core.Seconds(dst.Epoch - w.Epoch)
	hetStart := core.Seconds(dst.Epoch - s.det.HeterodyneEpoch)
	fh := dst.HeterodyneFreq

	fPlus, fCross := 1.0, 0.0
	site := s.det.Site
	var gmst0 float64
	if site != nil {
		gmst0 = GreenwichSiderealAngle(dst.Epoch)
	}

	for i := range dst.Data {
		off := dst.Offset(i)
		idx, frac, ok := interp.Locate(start+off, w.DeltaT, w.Len())
		if !ok {
			continue
		}

		f := interp.Linear2(frac, w.F[idx], w.F[idx+1])
		gain := s.det.Transfer.At(f)
		if gain == 0 {
			continue
		}

		phi := interp.PhaseQuadratic(frac*w.DeltaT, w.DeltaT, w.Phi[idx], w.F[idx], w.F[idx+1])
		if fh != 0 {
			phi -= 2 * math.Pi * fh * (hetStart + off)
		}
		phi += cmplx.Phase(gain)

		if site != nil {
			lst := gmst0 + EarthRotationRate*off + site.Longitude
			fPlus, fCross = site.AntennaPattern(w.RightAscension, w.Declination, w.Psi, lst)
		}

		sinPhi, cosPhi := math.Sincos(phi)
		dst.Data[i] = cmplx.Abs(gain) * (fPlus*w.APlus*cosPhi + fCross*w.ACross*sinPhi)
	}

	return nil
}

// String describes the detector for logs.
func (d Detector) String() string {
	site := "none"
	if d.Site != nil {
		site = d.Site.Name
	}
	n := 0
	if d.Transfer != nil {
		n = len(d.Transfer.Data)
	}
	return fmt.Sprintf("site=%s transfer_bins=%d heterodyne_epoch=%d", site, n, d.HeterodyneEpoch)
}
