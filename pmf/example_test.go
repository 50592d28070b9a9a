package pmf_test

import (
	"fmt"

	"github.com/cwbudde/algo-ptm/pmf"
)

func ExampleConvolve() {
	// Two sites that are each neutral or singly negative with equal odds.
	site := pmf.New([]float64{0.5, 0.5}, -1)

	pair, _ := pmf.Convolve(site, site)

	for i, p := range pair.Values {
		fmt.Printf("P(%+d) = %.2f\n", pair.Offset+i, p)
	}

	// Output:
	// P(-2) = 0.25
	// P(-1) = 0.50
	// P(+0) = 0.25
}

func ExamplePow() {
	site := pmf.New([]float64{0.5, 0.5}, -1)

	// Ten copies of the same site in four convolutions.
	ten, _ := pmf.Pow(site, 10, pmf.NewFFT())

	fmt.Printf("charges: %d..%d\n", ten.MinCharge(), ten.MaxCharge())
	fmt.Printf("P(-5) = %.4f\n", ten.At(-5))

	// Output:
	// charges: -10..0
	// P(-5) = 0.2461
}

func ExampleWindow() {
	p := pmf.New([]float64{0.1, 0.2, 0.4, 0.2, 0.1}, -2)

	w, _ := pmf.Window(p, -1, 1)

	for _, pt := range w.Points {
		fmt.Printf("%+d: %.1f\n", pt.Charge, pt.Probability)
	}
	fmt.Printf("tails: %.1f %.1f\n", w.TailLow, w.TailHigh)

	// Output:
	// -1: 0.2
	// +0: 0.4
	// +1: 0.2
	// tails: 0.1 0.1
}
