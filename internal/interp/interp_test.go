package interp

import (
	"math"
	"testing"
)

func TestLinear2(t *testing.T) {
	for _, tc := range []struct {
		frac, want float64
	}{
		{frac: 0, want: 2},
		{frac: 0.25, want: 2.5},
		{frac: 1, want: 4},
	} {
		if got := Linear2(tc.frac, 2, 4); got != tc.want {
			t.Fatalf("frac=%v: got %v want %v", tc.frac, got, tc.want)
		}
	}
}

func TestPhaseQuadraticExactForLinearChirp(t *testing.T) {
	// f(t) = 100 + 3t, phi(t) = 2*pi*(100t + 1.5t^2)
	phi := func(t float64) float64 { return 2 * math.Pi * (100*t + 1.5*t*t) }
	freq := func(t float64) float64 { return 100 + 3*t }

	const t0, dt = 2.0, 0.5
	for _, x := range []float64{0, 0.1, 0.25, 0.5} {
		got := PhaseQuadratic(x, dt, phi(t0), freq(t0), freq(t0+dt))
		if diff := math.Abs(got - phi(t0+x)); diff > 1e-9 {
			t.Fatalf("x=%v: got %v want %v", x, got, phi(t0+x))
		}
	}
}

func TestPhaseQuadraticDegenerateInterval(t *testing.T) {
	got := PhaseQuadratic(0.5, 0, 1, 2, 99)
	if want := 1 + 2*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		wantIdx  int
		wantFrac float64
		wantOK   bool
	}{
		{name: "start", t: 0, wantIdx: 0, wantFrac: 0, wantOK: true},
		{name: "inside", t: 2.5, wantIdx: 2, wantFrac: 0.5, wantOK: true},
		{name: "end", t: 4, wantIdx: 3, wantFrac: 1, wantOK: true},
		{name: "before", t: -0.1, wantOK: false},
		{name: "after", t: 4.01, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, frac, ok := Locate(tt.t, 1, 5)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if idx != tt.wantIdx || math.Abs(frac-tt.wantFrac) > 1e-12 {
				t.Fatalf("got (%d, %v), want (%d, %v)", idx, frac, tt.wantIdx, tt.wantFrac)
			}
		})
	}

	if _, _, ok := Locate(0, 1, 1); ok {
		t.Fatal("expected single-sample grid to be rejected")
	}
}
