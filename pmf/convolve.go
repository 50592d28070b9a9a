package pmf

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Convolver combines two independent distributions into the distribution of
// their sum.
type Convolver interface {
	Convolve(a, b PMF) (PMF, error)
}

// Direct is the time-domain [Convolver].
type Direct struct{}

// Convolve implements [Convolver].
func (Direct) Convolve(a, b PMF) (PMF, error) {
	return Convolve(a, b)
}

// Convolve returns the distribution of X+Y for independent X~a and Y~b using
// direct O(len(a)*len(b)) convolution. The result has length
// len(a)+len(b)-1 and offset a.Offset+b.Offset. It is not normalized.
func Convolve(a, b PMF) (PMF, error) {
	if err := checkOperands(a, b); err != nil {
		return PMF{}, err
	}

	out := make([]float64, len(a.Values)+len(b.Values)-1)
	convolveTo(out, a.Values, b.Values)

	return PMF{Values: out, Offset: a.Offset + b.Offset}, nil
}

func checkOperands(a, b PMF) error {
	if len(a.Values) == 0 || len(b.Values) == 0 {
		return fmt.Errorf("%w: operand lengths %d and %d", ErrEmpty, len(a.Values), len(b.Values))
	}
	return nil
}

// convolveTo accumulates the linear convolution of x and y into dst, which
// must be zeroed and have length len(x)+len(y)-1.
func convolveTo(dst, x, y []float64) {
	// Iterate over the shorter operand so the vectorized inner loop is long.
	if len(y) < len(x) {
		x, y = y, x
	}

	const simdThreshold = 4
	if len(y) < simdThreshold {
		for i, xv := range x {
			if xv == 0 {
				continue
			}
			for j, yv := range y {
				dst[i+j] += xv * yv
			}
		}
		return
	}

	m := len(y)
	temp := make([]float64, m)
	for i, xv := range x {
		// Sparse site distributions carry many exact zeros.
		if xv == 0 {
			continue
		}
		vecmath.ScaleBlock(temp, y, xv)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
