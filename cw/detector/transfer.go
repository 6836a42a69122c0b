package detector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-cw/internal/core"
	"github.com/cwbudde/algo-cw/internal/interp"
)

// UnitTransferBandwidth is the upper frequency (Hz) covered by UnitTransfer.
const UnitTransferBandwidth = 16384.0

// Transfer is a detector transfer function sampled in frequency: Data[k] is
// the complex gain from strain to output at F0 + k*DeltaF.
type Transfer struct {
	Epoch  int64
	F0     float64
	DeltaF float64
	Data   []complex128
}

// UnitTransfer returns a flat unit gain from 0 Hz to UnitTransferBandwidth,
// so that the output is raw dimensionless strain.
func UnitTransfer() *Transfer {
	return &Transfer{
		F0:     0,
		DeltaF: UnitTransferBandwidth,
		Data:   []complex128{1, 1},
	}
}

// Validate reports whether tr can be evaluated.
func (tr *Transfer) Validate() error {
	if tr == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTransfer)
	}
	if len(tr.Data) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidTransfer, len(tr.Data))
	}
	if tr.DeltaF <= 0 || !core.IsFinite(tr.DeltaF) {
		return fmt.Errorf("%w: frequency step must be finite and > 0: %v", ErrInvalidTransfer, tr.DeltaF)
	}
	if !core.IsFinite(tr.F0) {
		return fmt.Errorf("%w: start frequency is not finite", ErrInvalidTransfer)
	}
	for k, v := range tr.Data {
		if !core.IsFinite(real(v)) || !core.IsFinite(imag(v)) {
			return fmt.Errorf("%w: sample %d is not finite", ErrInvalidTransfer, k)
		}
	}
	return nil
}

// At returns the transfer function at frequency f, linearly interpolated
// between table entries. Frequencies outside the table have zero gain.
func (tr *Transfer) At(f float64) complex128 {
	idx, frac, ok := interp.Locate(f-tr.F0, tr.DeltaF, len(tr.Data))
	if !ok {
		return 0
	}
	lo, hi := tr.Data[idx], tr.Data[idx+1]
	return complex(
		interp.Linear2(frac, real(lo), real(hi)),
		interp.Linear2(frac, imag(lo), imag(hi)),
	)
}

// ReadResponse parses a response function R(f) table and returns the
// transfer function T(f) = 1/R(f). The input is a header
//
//	# epoch = <GPS ns>
//	# f0 = <Hz>
//	# deltaF = <Hz>
//
// followed by one "re im" pair per line.
func ReadResponse(r io.Reader) (*Transfer, error) {
	sc := bufio.NewScanner(r)

	epochText, err := responseHeader(sc, "# epoch =")
	if err != nil {
		return nil, err
	}
	epoch, err := strconv.ParseInt(epochText, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("detector: response epoch %q: %w", epochText, err)
	}

	f0, err := responseHeaderFloat(sc, "# f0 =")
	if err != nil {
		return nil, err
	}
	deltaF, err := responseHeaderFloat(sc, "# deltaF =")
	if err != nil {
		return nil, err
	}

	tr := &Transfer{Epoch: epoch, F0: f0, DeltaF: deltaF}
	line := 3
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("detector: response line %d: want 2 columns, got %d", line, len(fields))
		}
		re, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("detector: response line %d: %w", line, err)
		}
		im, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("detector: response line %d: %w", line, err)
		}
		resp := complex(re, im)
		if resp == 0 {
			return nil, fmt.Errorf("%w: zero response at line %d cannot be inverted", ErrInvalidTransfer, line)
		}
		tr.Data = append(tr.Data, 1/resp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("detector: read response: %w", err)
	}

	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

func responseHeader(sc *bufio.Scanner, prefix string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("detector: read response header: %w", err)
		}
		return "", fmt.Errorf("detector: response header %q missing", prefix)
	}
	text := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(text, prefix) {
		return "", fmt.Errorf("detector: response header: want %q, got %q", prefix, text)
	}
	return strings.TrimSpace(strings.TrimPrefix(text, prefix)), nil
}

func responseHeaderFloat(sc *bufio.Scanner, prefix string) (float64, error) {
	text, err := responseHeader(sc, prefix)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("detector: response header %q: %w", prefix, err)
	}
	return v, nil
}
