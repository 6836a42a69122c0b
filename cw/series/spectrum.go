package series

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DominantFrequency returns the frequency (Hz, relative to HeterodyneFreq)
// of the strongest bin in the zero-padded power-of-two FFT of the samples.
// The resolution is 1/(fftSize*DeltaT).
func (s *Series) DominantFrequency() (float64, error) {
	n := len(s.Data)
	if n == 0 {
		return 0, ErrEmpty
	}

	fftSize := nextPowerOf2(max(n, 2))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("series: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range s.Data {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("series: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	best := 0
	for k := 1; k < bins; k++ {
		if mag[k] > mag[best] {
			best = k
		}
	}

	return float64(best) / (float64(fftSize) * s.DeltaT), nil
}

// Amplitude estimates the amplitude of a sinusoid at freq Hz (relative to
// HeterodyneFreq) with a single-bin Goertzel filter over all samples. freq
// must lie strictly between 0 and the Nyquist frequency; the estimate is
// exact when the series spans a whole number of cycles.
func (s *Series) Amplitude(freq float64) (float64, error) {
	n := len(s.Data)
	if n == 0 {
		return 0, ErrEmpty
	}
	nyquist := 0.5 / s.DeltaT
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) {
		return 0, fmt.Errorf("series: frequency must be in (0, %v): %v", nyquist, freq)
	}

	coeff := 2 * math.Cos(2*math.Pi*freq*s.DeltaT)
	var s0, s1 float64
	for _, x := range s.Data {
		s0, s1 = x+coeff*s0-s1, s0
	}

	power := s0*s0 + s1*s1 - coeff*s0*s1
	if power <= 0 {
		return 0, nil
	}
	return 2 * math.Sqrt(power) / float64(n), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
