package generate

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-cw/cw/taylor"
	"github.com/cwbudde/algo-cw/internal/core"
)

// DefaultMaxLength bounds the number of generated samples per waveform.
const DefaultMaxLength = 1 << 26

// ErrInvalidParams is returned for parameters the generator cannot sample.
var ErrInvalidParams = errors.New("generate: invalid waveform parameters")

// Params describes one waveform to generate. Model must already be shifted
// to Epoch, the time of the first generated sample.
type Params struct {
	Model          taylor.Model
	Epoch          int64
	DeltaT         float64
	Length         int
	APlus          float64
	ACross         float64
	Psi            float64
	RightAscension float64
	Declination    float64
}

// Waveform is a sampled continuous wave. F and Phi hold the instantaneous
// frequency (Hz) and phase (rad) at Epoch + i*DeltaT.
type Waveform struct {
	Epoch          int64
	DeltaT         float64
	APlus          float64
	ACross         float64
	Psi            float64
	RightAscension float64
	Declination    float64
	F              []float64
	Phi            []float64

	// MaxDfDt is the largest |F[i+1]-F[i]|*DeltaT over the waveform.
	MaxDfDt float64
}

// Len returns the number of samples.
func (w *Waveform) Len() int {
	return len(w.F)
}

// Span returns the time covered from the first to the last sample, in seconds.
func (w *Waveform) Span() float64 {
	if len(w.F) < 2 {
		return 0
	}
	return float64(len(w.F)-1) * w.DeltaT
}

// Generator samples Taylor continuous waves.
type Generator struct {
	maxLength int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxLength caps the number of samples a single waveform may request.
func WithMaxLength(n int) Option {
	return func(g *Generator) {
		if n >= 2 {
			g.maxLength = n
		}
	}
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate samples the waveform described by p.
func (g *Generator) Generate(p Params) (*Waveform, error) {
	if err := g.validate(p); err != nil {
		return nil, err
	}

	w := &Waveform{
		Epoch:          p.Epoch,
		DeltaT:         p.DeltaT,
		APlus:          p.APlus,
		ACross:         p.ACross,
		Psi:            p.Psi,
		RightAscension: p.RightAscension,
		Declination:    p.Declination,
		F:              make([]float64, p.Length),
		Phi:            make([]float64, p.Length),
	}

	for i := range w.F {
		t := float64(i) * p.DeltaT
		f := p.Model.Frequency(t)
		if f < 0 || !core.IsFinite(f) {
			return nil, fmt.Errorf("%w: frequency %v Hz at t=%v s", ErrInvalidParams, f, t)
		}
		w.F[i] = f
		w.Phi[i] = p.Model.Phase(t)

		if i > 0 {
			if dfdt := math.Abs(f-w.F[i-1]) * p.DeltaT; dfdt > w.MaxDfDt {
				w.MaxDfDt = dfdt
			}
		}
	}

	return w, nil
}

func (g *Generator) validate(p Params) error {
	if p.Length < 2 || p.Length > g.maxLength {
		return fmt.Errorf("%w: length must be in [2,%d]: %d", ErrInvalidParams, g.maxLength, p.Length)
	}
	if p.DeltaT <= 0 || !core.IsFinite(p.DeltaT) {
		return fmt.Errorf("%w: sampling interval must be finite and > 0: %v", ErrInvalidParams, p.DeltaT)
	}

	for name, v := range map[string]float64{
		"f0":     p.Model.F0,
		"phi0":   p.Model.Phi0,
		"aPlus":  p.APlus,
		"aCross": p.ACross,
		"psi":    p.Psi,
		"ra":     p.RightAscension,
		"dec":    p.Declination,
	} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, name)
		}
	}
	for k, c := range p.Model.Coeffs {
		if !core.IsFinite(c) {
			return fmt.Errorf("%w: f%d is not finite", ErrInvalidParams, k+1)
		}
	}

	return nil
}
