package series

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cw/internal/core"
)

// Series is a uniformly sampled real time series.
type Series struct {
	// Epoch is the time of the first sample in GPS nanoseconds.
	Epoch int64
	// DeltaT is the sampling interval in seconds.
	DeltaT float64
	// HeterodyneFreq is the frequency (Hz) whose phase has been removed from
	// the samples, or 0 for raw output.
	HeterodyneFreq float64
	// Data holds the samples.
	Data []float64
}

// New returns a zero-filled series of n samples starting at epoch.
func New(epoch int64, deltaT float64, n int) (*Series, error) {
	if deltaT <= 0 || !core.IsFinite(deltaT) {
		return nil, fmt.Errorf("series: sampling interval must be finite and > 0: %v", deltaT)
	}
	if n < 0 {
		return nil, fmt.Errorf("series: length must be >= 0: %d", n)
	}

	return &Series{
		Epoch:  epoch,
		DeltaT: deltaT,
		Data:   make([]float64, n),
	}, nil
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Data)
}

// Duration returns the span covered by the samples, Len()*DeltaT seconds.
func (s *Series) Duration() float64 {
	return float64(len(s.Data)) * s.DeltaT
}

// End returns the epoch one interval past the last sample, in GPS nanoseconds.
func (s *Series) End() int64 {
	return s.Epoch + core.Nanos(s.Duration())
}

// Offset returns the time of sample i in seconds past Epoch.
func (s *Series) Offset(i int) float64 {
	return float64(i) * s.DeltaT
}

// Like returns a zero-filled series on the same grid as s.
func (s *Series) Like() *Series {
	return &Series{
		Epoch:          s.Epoch,
		DeltaT:         s.DeltaT,
		HeterodyneFreq: s.HeterodyneFreq,
		Data:           make([]float64, len(s.Data)),
	}
}

// Reset zeroes the samples and takes over the grid of ref, reusing the
// sample buffer when it is large enough.
func (s *Series) Reset(ref *Series) {
	s.Epoch = ref.Epoch
	s.DeltaT = ref.DeltaT
	s.HeterodyneFreq = ref.HeterodyneFreq
	s.Data = core.EnsureLen(s.Data, len(ref.Data))
	core.Zero(s.Data)
}

// SameGrid reports whether s and other have the same epoch, interval and
// length.
func (s *Series) SameGrid(other *Series) bool {
	return s.Epoch == other.Epoch &&
		len(s.Data) == len(other.Data) &&
		core.NearlyEqual(s.DeltaT, other.DeltaT, 1e-12)
}

// Accumulate adds contrib into s sample by sample. The two series must
// share the same grid; nothing is added otherwise.
func (s *Series) Accumulate(contrib *Series) error {
	if !s.SameGrid(contrib) {
		return fmt.Errorf("%w: epoch %d/%d, deltaT %v/%v, length %d/%d", ErrGridMismatch,
			s.Epoch, contrib.Epoch, s.DeltaT, contrib.DeltaT, len(s.Data), len(contrib.Data))
	}
	if len(s.Data) == 0 {
		return nil
	}
	vecmath.AddBlockInPlace(s.Data, contrib.Data)
	return nil
}

// Peak returns the largest absolute sample value, or 0 for an empty series.
func (s *Series) Peak() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	return vecmath.MaxAbs(s.Data)
}

// RMS returns the root-mean-square of the samples.
func (s *Series) RMS() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(s.Data, s.Data) / float64(len(s.Data)))
}
