package detector

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookupSite(t *testing.T) {
	s, err := LookupSite(" lho ")
	require.NoError(t, err)
	require.Equal(t, "LHO", s.Name)
	require.InDelta(t, 46.4552*math.Pi/180, s.Latitude, 1e-12)

	_, err = LookupSite("ALPHA-CENTAURI")
	if !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("err = %v, want ErrUnknownSite", err)
	}
}

func TestSiteNamesSorted(t *testing.T) {
	names := SiteNames()
	require.Len(t, names, len(sites))
	require.IsIncreasing(t, names)
}

func TestAntennaPatternBounded(t *testing.T) {
	for _, name := range SiteNames() {
		s, err := LookupSite(name)
		require.NoError(t, err)
		limit := math.Pow(math.Sin(s.ArmAngle), 2)

		for ra := 0.0; ra < 2*math.Pi; ra += 0.7 {
			for dec := -math.Pi / 2; dec <= math.Pi/2; dec += 0.3 {
				for psi := 0.0; psi < math.Pi; psi += 0.5 {
					fp, fc := s.AntennaPattern(ra, dec, psi, 1.1)
					require.LessOrEqual(t, fp*fp+fc*fc, limit+1e-12, "%s ra=%v dec=%v psi=%v", name, ra, dec, psi)
				}
			}
		}
	}
}

func TestAntennaPatternZenith(t *testing.T) {
	for _, name := range SiteNames() {
		s, err := LookupSite(name)
		require.NoError(t, err)

		// A source overhead is seen with full sensitivity for some
		// combination of the two polarizations.
		const lst = 2.3
		fp, fc := s.AntennaPattern(lst, s.Latitude, 0.4, lst)
		require.InDelta(t, math.Pow(math.Sin(s.ArmAngle), 2), fp*fp+fc*fc, 1e-12, name)
	}
}

func TestAntennaPatternPolarizationRotation(t *testing.T) {
	s, err := LookupSite("LLO")
	require.NoError(t, err)

	// Rotating psi by 45 degrees turns plus into cross.
	fp, fc := s.AntennaPattern(1, 0.2, 0, 3)
	fp45, fc45 := s.AntennaPattern(1, 0.2, math.Pi/4, 3)
	require.InDelta(t, fc, fp45, 1e-12)
	require.InDelta(t, -fp, fc45, 1e-12)
}

func TestGreenwichSiderealAngleJ2000(t *testing.T) {
	// 2000-01-01 12:00 UTC; GMST was 280.46061837 deg.
	utc := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	gps := utc.Sub(time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)) + 18*time.Second

	got := GreenwichSiderealAngle(int64(gps))
	require.InDelta(t, 280.46061837*math.Pi/180, got, 1e-5)
}

func TestGreenwichSiderealAngleRange(t *testing.T) {
	prev := GreenwichSiderealAngle(1_000_000_000_000_000_000)
	for i := 1; i <= 48; i++ {
		ns := int64(1_000_000_000_000_000_000) + int64(i)*1800*1_000_000_000
		got := GreenwichSiderealAngle(ns)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 2*math.Pi)

		// Half an hour of rotation, modulo a full turn.
		step := math.Mod(got-prev+2*math.Pi, 2*math.Pi)
		require.InDelta(t, EarthRotationRate*1800, step, 1e-6)
		prev = got
	}
}
