package generate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cw/cw/taylor"
	"github.com/cwbudde/algo-cw/internal/testutil"
)

func TestGenerateMonochromatic(t *testing.T) {
	g := NewGenerator()
	w, err := g.Generate(Params{
		Model:  taylor.Model{F0: 100, Phi0: 0.5},
		Epoch:  -1_000_000_000,
		DeltaT: 66,
		Length: 2,
		APlus:  1000,
		ACross: 1000,
	})
	require.NoError(t, err)

	require.Equal(t, 2, w.Len())
	require.Equal(t, 66.0, w.Span())
	testutil.RequireSliceNearlyEqual(t, w.F, []float64{100, 100}, 0)
	require.InDelta(t, 0.5, w.Phi[0], 1e-12)
	require.InDelta(t, 0.5+2*math.Pi*100*66, w.Phi[1], 1e-8)
	require.Zero(t, w.MaxDfDt)
	require.Equal(t, int64(-1_000_000_000), w.Epoch)
	require.Equal(t, 1000.0, w.APlus)
}

func TestGenerateLinearSpindown(t *testing.T) {
	m := taylor.Model{F0: 10, Coeffs: taylor.Polynomial{0.1}}
	w, err := NewGenerator().Generate(Params{Model: m, DeltaT: 0.5, Length: 5})
	require.NoError(t, err)

	for i := 0; i < w.Len(); i++ {
		tt := float64(i) * 0.5
		require.InDelta(t, m.Frequency(tt), w.F[i], 1e-12)
		require.InDelta(t, m.Phase(tt), w.Phi[i], 1e-9)
	}
	// df per step = 10*0.1*0.5 = 0.5 Hz, times dt = 0.25
	require.InDelta(t, 0.25, w.MaxDfDt, 1e-12)
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	base := Params{Model: taylor.Model{F0: 100}, DeltaT: 1, Length: 4}

	tests := map[string]func(p *Params){
		"short":       func(p *Params) { p.Length = 1 },
		"too-long":    func(p *Params) { p.Length = 9 },
		"zero-dt":     func(p *Params) { p.DeltaT = 0 },
		"inf-dt":      func(p *Params) { p.DeltaT = math.Inf(1) },
		"nan-f0":      func(p *Params) { p.Model.F0 = math.NaN() },
		"nan-amp":     func(p *Params) { p.APlus = math.NaN() },
		"inf-coeff":   func(p *Params) { p.Model.Coeffs = taylor.Polynomial{math.Inf(-1)} },
		"negative-f":  func(p *Params) { p.Model.Coeffs = taylor.Polynomial{-1} },
		"negative-f0": func(p *Params) { p.Model.F0 = -5 },
	}

	g := NewGenerator(WithMaxLength(8))
	for name, mutate := range tests {
		p := base
		mutate(&p)
		_, err := g.Generate(p)
		if !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%s: err = %v, want ErrInvalidParams", name, err)
		}
	}
}

func TestWithMaxLengthIgnoresInvalid(t *testing.T) {
	g := NewGenerator(WithMaxLength(1), nil)
	require.Equal(t, DefaultMaxLength, g.maxLength)
}
