package taylor

import (
	"fmt"
	"math/bits"
)

// Choose returns the binomial coefficient C(a, b).
//
// The value is built as a running product of ratios (a-b+i)/i for
// i = 1..b, dividing after every multiplication so the intermediate
// stays an exact integer and factorials are never formed. Products are
// taken in 128 bits, so every C(a, b) that fits in a uint64 is exact; larger
// results return ErrChooseOverflow.
func Choose(a, b int) (uint64, error) {
	if b < 0 || a < b {
		return 0, fmt.Errorf("%w: a=%d b=%d", ErrInvalidChoose, a, b)
	}

	if b > a-b {
		b = a - b
	}

	c := uint64(1)
	for i := 1; i <= b; i++ {
		hi, lo := bits.Mul64(c, uint64(a-b+i))
		if hi >= uint64(i) {
			return 0, fmt.Errorf("%w: C(%d,%d)", ErrChooseOverflow, a, b)
		}
		c, _ = bits.Div64(hi, lo, uint64(i))
	}

	return c, nil
}

// MustChoose is like Choose but panics if the precondition a >= b >= 0 is
// violated or the result overflows.
func MustChoose(a, b int) uint64 {
	c, err := Choose(a, b)
	if err != nil {
		panic(err)
	}
	return c
}
