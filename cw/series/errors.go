package series

import "errors"

var (
	// ErrGridMismatch is returned when two series do not share epoch, interval and length.
	ErrGridMismatch = errors.New("series: sample grids do not match")

	// ErrEmpty is returned by operations that need at least one sample.
	ErrEmpty = errors.New("series: no samples")

	// ErrBadHeader is returned by ReadText for a missing or malformed header line.
	ErrBadHeader = errors.New("series: malformed header")
)
