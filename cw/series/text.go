package series

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	epochPrefix  = "# epoch ="
	deltaTPrefix = "# deltaT ="
)

// WriteText writes s in the plain-text format described in the package
// documentation.
func (s *Series) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s %d\n", epochPrefix, s.Epoch); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%s %23.16e\n", deltaTPrefix, s.DeltaT); err != nil {
		return err
	}
	for _, v := range s.Data {
		if _, err := fmt.Fprintf(bw, "%16.9e\n", v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadText parses a series written by WriteText. Blank lines in the body
// are ignored.
func ReadText(r io.Reader) (*Series, error) {
	sc := bufio.NewScanner(r)

	epochText, err := headerValue(sc, epochPrefix)
	if err != nil {
		return nil, err
	}
	epoch, err := strconv.ParseInt(epochText, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: epoch %q: %v", ErrBadHeader, epochText, err)
	}

	dtText, err := headerValue(sc, deltaTPrefix)
	if err != nil {
		return nil, err
	}
	deltaT, err := strconv.ParseFloat(dtText, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: deltaT %q: %v", ErrBadHeader, dtText, err)
	}

	s, err := New(epoch, deltaT, 0)
	if err != nil {
		return nil, err
	}

	line := 2
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("series: line %d: %w", line, err)
		}
		s.Data = append(s.Data, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("series: read: %w", err)
	}

	return s, nil
}

func headerValue(sc *bufio.Scanner, prefix string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("series: read header: %w", err)
		}
		return "", fmt.Errorf("%w: missing %q", ErrBadHeader, prefix)
	}
	text := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(text, prefix) {
		return "", fmt.Errorf("%w: want %q, got %q", ErrBadHeader, prefix, text)
	}
	return strings.TrimSpace(strings.TrimPrefix(text, prefix)), nil
}
