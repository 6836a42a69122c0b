package taylor

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidChoose is returned by Choose when a < b or either argument is negative.
	ErrInvalidChoose = errors.New("taylor: choose requires a >= b >= 0")

	// ErrChooseOverflow is returned by Choose when C(a, b) does not fit in a uint64.
	ErrChooseOverflow = errors.New("taylor: binomial coefficient overflows uint64")

	// ErrInvalidDuration is returned when a span is not a positive finite number of seconds.
	ErrInvalidDuration = errors.New("taylor: duration must be finite and > 0")
)

func validateDuration(duration float64) error {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	return nil
}
