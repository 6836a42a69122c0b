package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-cw/cw/taylor"
	"github.com/cwbudde/algo-cw/internal/core"
)

// MinValues is the number of reals that must follow the epoch on a line.
const MinValues = 7

// ErrMalformedRecord is reported for a line that cannot be parsed as a source.
var ErrMalformedRecord = errors.New("source: malformed record")

// Record describes one continuous-wave source. Angles are in radians.
type Record struct {
	// Epoch is the GPS time (ns) at which Phi0, F0 and Coeffs are defined.
	Epoch          int64
	APlus          float64
	ACross         float64
	Psi            float64
	RightAscension float64
	Declination    float64
	Phi0           float64
	F0             float64
	Coeffs         taylor.Polynomial
}

// Model returns the frequency model of r anchored at r.Epoch. The
// coefficients are copied.
func (r Record) Model() taylor.Model {
	return taylor.Model{F0: r.F0, Phi0: r.Phi0, Coeffs: r.Coeffs.Clone()}
}

// Default returns the source injected when no source file is given: a
// monochromatic 100 Hz wave with strain amplitudes 1000, zero phase at GPS
// time zero, arriving from RA 0h, dec 0 deg.
func Default() Record {
	return Record{
		APlus:  1000,
		ACross: 1000,
		F0:     100,
	}
}

// ParseLine parses one source line.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 1+MinValues {
		return Record{}, fmt.Errorf("%w: want epoch and at least %d values, got %d fields",
			ErrMalformedRecord, MinValues, len(fields))
	}

	epoch, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: epoch %q: %v", ErrMalformedRecord, fields[0], err)
	}

	vals := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: field %d %q: %v", ErrMalformedRecord, i+2, f, err)
		}
		if !core.IsFinite(v) {
			return Record{}, fmt.Errorf("%w: field %d is not finite", ErrMalformedRecord, i+2)
		}
		vals[i] = v
	}

	rec := Record{
		Epoch:          epoch,
		APlus:          vals[0],
		ACross:         vals[1],
		Psi:            core.DegToRad(vals[2]),
		RightAscension: core.DegToRad(vals[3]),
		Declination:    core.DegToRad(vals[4]),
		Phi0:           core.DegToRad(vals[5]),
		F0:             vals[6],
	}
	if len(vals) > MinValues {
		rec.Coeffs = taylor.Polynomial(vals[MinValues:])
	}

	return rec, nil
}
