package series

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cw/internal/testutil"
)

func TestNewValidates(t *testing.T) {
	_, err := New(0, 0, 4)
	require.Error(t, err)
	_, err = New(0, math.NaN(), 4)
	require.Error(t, err)
	_, err = New(0, 1, -1)
	require.Error(t, err)

	s, err := New(5, 0.5, 4)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	require.Equal(t, 2.0, s.Duration())
	require.Equal(t, int64(5+2_000_000_000), s.End())
	require.Equal(t, 1.5, s.Offset(3))
}

func TestAccumulateAdds(t *testing.T) {
	out, err := New(0, 1, 3)
	require.NoError(t, err)

	a := out.Like()
	copy(a.Data, []float64{1, 2, 3})
	b := out.Like()
	copy(b.Data, []float64{-1, 0.5, 10})

	require.NoError(t, out.Accumulate(a))
	require.NoError(t, out.Accumulate(b))
	testutil.RequireSliceNearlyEqual(t, out.Data, []float64{0, 2.5, 13}, 0)
}

func TestAccumulateGridMismatch(t *testing.T) {
	out, err := New(0, 1, 3)
	require.NoError(t, err)

	tests := map[string]*Series{
		"length": {Epoch: 0, DeltaT: 1, Data: make([]float64, 4)},
		"epoch":  {Epoch: 1, DeltaT: 1, Data: make([]float64, 3)},
		"deltaT": {Epoch: 0, DeltaT: 0.5, Data: make([]float64, 3)},
	}
	for name, contrib := range tests {
		contrib.Data[0] = 7
		err := out.Accumulate(contrib)
		if !errors.Is(err, ErrGridMismatch) {
			t.Fatalf("%s: err = %v, want ErrGridMismatch", name, err)
		}
		require.Equal(t, 0.0, out.Data[0], name)
	}
}

func TestAccumulateOrderIndependent(t *testing.T) {
	const n, sources = 257, 6
	base, err := New(0, 1.0/1024, n)
	require.NoError(t, err)

	contribs := make([]*Series, sources)
	for i := range contribs {
		c := base.Like()
		copy(c.Data, testutil.DeterministicNoise(int64(i+1), float64(i+1)*100, n))
		contribs[i] = c
	}

	forward := base.Like()
	for _, c := range contribs {
		require.NoError(t, forward.Accumulate(c))
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := base.Like()
		for _, i := range rng.Perm(sources) {
			require.NoError(t, shuffled.Accumulate(contribs[i]))
		}
		testutil.RequireSliceNearlyEqual(t, shuffled.Data, forward.Data, 1e-9)
	}
}

func TestResetReusesBuffer(t *testing.T) {
	ref, err := New(10, 0.25, 8)
	require.NoError(t, err)
	ref.HeterodyneFreq = 50

	s := &Series{Data: make([]float64, 4, 16)}
	s.Data[0] = 3
	s.Reset(ref)

	require.True(t, s.SameGrid(ref))
	require.Equal(t, 50.0, s.HeterodyneFreq)
	require.Equal(t, 16, cap(s.Data))
	for _, v := range s.Data {
		require.Zero(t, v)
	}
}

func TestPeakAndRMS(t *testing.T) {
	s := &Series{DeltaT: 1, Data: []float64{3, -4, 0, 0}}
	require.Equal(t, 4.0, s.Peak())
	require.InDelta(t, 2.5, s.RMS(), 1e-12)

	empty := &Series{DeltaT: 1}
	require.Zero(t, empty.Peak())
	require.Zero(t, empty.RMS())
}

func TestDominantFrequency(t *testing.T) {
	const sampleRate = 1024.0
	s, err := New(0, 1/sampleRate, 4096)
	require.NoError(t, err)
	copy(s.Data, testutil.DeterministicSine(100, sampleRate, 1, s.Len()))

	f, err := s.DominantFrequency()
	require.NoError(t, err)
	require.InDelta(t, 100.0, f, sampleRate/4096)

	_, err = (&Series{DeltaT: 1}).DominantFrequency()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestAmplitude(t *testing.T) {
	const sampleRate = 1024.0
	s, err := New(0, 1/sampleRate, 4096)
	require.NoError(t, err)
	low := testutil.DeterministicSine(100, sampleRate, 3, s.Len())
	high := testutil.DeterministicSine(200, sampleRate, 0.5, s.Len())
	for i := range s.Data {
		s.Data[i] = low[i] + high[i]
	}

	a, err := s.Amplitude(100)
	require.NoError(t, err)
	require.InDelta(t, 3.0, a, 1e-6)

	a, err = s.Amplitude(200)
	require.NoError(t, err)
	require.InDelta(t, 0.5, a, 1e-6)

	a, err = s.Amplitude(300)
	require.NoError(t, err)
	require.InDelta(t, 0.0, a, 1e-6)

	for _, f := range []float64{0, -1, 512, 600} {
		_, err = s.Amplitude(f)
		require.Error(t, err, "freq %v", f)
	}
}
