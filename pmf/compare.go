package pmf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Align expands a and b onto their common charge range and returns both value
// slices along with the offset of the shared first entry.
func Align(a, b PMF) (av, bv []float64, offset int) {
	if len(a.Values) == 0 && len(b.Values) == 0 {
		return nil, nil, 0
	}
	lo, hi := a.Offset, a.MaxCharge()
	switch {
	case len(a.Values) == 0:
		lo, hi = b.Offset, b.MaxCharge()
	case len(b.Values) > 0:
		lo = min(lo, b.Offset)
		hi = max(hi, b.MaxCharge())
	}

	av = make([]float64, hi-lo+1)
	bv = make([]float64, hi-lo+1)
	for c := lo; c <= hi; c++ {
		av[c-lo] = a.At(c)
		bv[c-lo] = b.At(c)
	}
	return av, bv, lo
}

// MaxAbsDiff returns the largest absolute probability difference between a
// and b over the union of their supports.
func MaxAbsDiff(a, b PMF) float64 {
	av, bv, _ := Align(a, b)
	if len(av) == 0 {
		return 0
	}
	return floats.Distance(av, bv, math.Inf(1))
}
