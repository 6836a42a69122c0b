package taylor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

func TestChooseMatchesFactorialFormula(t *testing.T) {
	for a := 0; a <= 20; a++ {
		for b := 0; b <= a; b++ {
			want := factorial(a) / (factorial(b) * factorial(a-b))
			got, err := Choose(a, b)
			require.NoError(t, err)
			require.Equalf(t, want, got, "Choose(%d,%d)", a, b)
		}
	}
}

func TestChooseKnownValues(t *testing.T) {
	tests := []struct {
		a, b int
		want uint64
	}{
		{a: 5, b: 2, want: 10},
		{a: 1, b: 0, want: 1},
		{a: 0, b: 0, want: 1},
		{a: 7, b: 7, want: 1},
		{a: 10, b: 3, want: 120},
		{a: 60, b: 30, want: 118264581564861424},
		{a: 67, b: 33, want: 14226520737620288370},
		{a: 100, b: 1, want: 100},
		{a: 1000, b: 998, want: 499500},
	}

	for _, tt := range tests {
		got, err := Choose(tt.a, tt.b)
		require.NoError(t, err)
		require.Equalf(t, tt.want, got, "Choose(%d,%d)", tt.a, tt.b)
	}
}

func TestChoosePrecondition(t *testing.T) {
	for _, tc := range [][2]int{{2, 3}, {0, 1}, {4, -1}, {-1, -2}} {
		_, err := Choose(tc[0], tc[1])
		if !errors.Is(err, ErrInvalidChoose) {
			t.Fatalf("Choose(%d,%d) err = %v, want ErrInvalidChoose", tc[0], tc[1], err)
		}
	}

	require.Panics(t, func() { MustChoose(1, 2) })
}

func TestChooseOverflow(t *testing.T) {
	for _, tc := range [][2]int{{68, 34}, {100, 50}, {300, 150}} {
		_, err := Choose(tc[0], tc[1])
		require.ErrorIsf(t, err, ErrChooseOverflow, "Choose(%d,%d)", tc[0], tc[1])
	}
	require.Panics(t, func() { MustChoose(68, 34) })
}
