package taylor_test

import (
	"fmt"

	"github.com/cwbudde/algo-cw/cw/taylor"
)

func ExampleChoose() {
	c, err := taylor.Choose(5, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(c)

	// Output:
	// 10
}

func ExampleShift() {
	m := taylor.Model{F0: 10, Coeffs: taylor.Polynomial{0.5}}
	s := taylor.Shift(m, 2)

	fmt.Printf("f0=%.2f f1=%.3f\n", s.F0, s.Coeffs[0])

	// Output:
	// f0=20.00 f1=0.250
}

func ExampleEstimateResolution() {
	m := taylor.Model{F0: 4, Coeffs: taylor.Polynomial{0.25}}
	res, err := taylor.EstimateResolution(m, 3)
	if err != nil {
		panic(err)
	}
	fmt.Printf("dt=%.2f n=%d\n", res.DeltaT, res.Length)

	// Output:
	// dt=0.10 n=32
}
