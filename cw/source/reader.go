package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLength is the longest source line, in bytes, the Reader accepts.
// A longer line is reported as a malformed record.
const MaxLineLength = 1 << 20

// Reader yields source records from line-oriented text. It is not
// restartable: once Next returns false the sequence is over.
type Reader struct {
	sc   *bufio.Scanner
	rec  Record
	line int
	err  error
	done bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	return &Reader{sc: sc}
}

// Next advances to the next record. It returns false at end of input, at
// the first malformed line, or on a read error; Err tells these apart.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}

		rec, err := ParseLine(text)
		if err != nil {
			r.err = fmt.Errorf("line %d: %w", r.line, err)
			r.done = true
			return false
		}
		r.rec = rec
		return true
	}

	switch err := r.sc.Err(); {
	case errors.Is(err, bufio.ErrTooLong):
		r.err = fmt.Errorf("line %d: %w: longer than %d bytes", r.line+1, ErrMalformedRecord, MaxLineLength)
	case err != nil:
		r.err = fmt.Errorf("source: read: %w", err)
	}
	r.done = true
	return false
}

// Record returns the record read by the last successful call to Next.
func (r *Reader) Record() Record {
	return r.rec
}

// Line returns the 1-based number of the last line consumed.
func (r *Reader) Line() int {
	return r.line
}

// Err returns nil at a clean end of input. A malformed line yields an error
// wrapping ErrMalformedRecord; anything else is a read failure.
func (r *Reader) Err() error {
	return r.err
}
