package pmf

import "fmt"

// Pow returns the distribution of the sum of n independent copies of base,
// using exponentiation by squaring: O(log n) convolutions instead of n.
// A nil c selects [Direct].
//
//   - n == 0 yields [Identity]
//   - n == 1 yields a copy of base
//   - even n convolves the half power with itself
//   - odd n convolves the (n-1)th power with base
func Pow(base PMF, n int, c Convolver) (PMF, error) {
	if n < 0 {
		return PMF{}, fmt.Errorf("%w: %d", ErrNegativePower, n)
	}
	if n == 0 {
		return Identity(), nil
	}
	if len(base.Values) == 0 {
		return PMF{}, ErrEmpty
	}
	if c == nil {
		c = Direct{}
	}
	return pow(base, n, c)
}

func pow(base PMF, n int, c Convolver) (PMF, error) {
	if n == 1 {
		return base.Clone(), nil
	}
	if n%2 == 0 {
		half, err := pow(base, n/2, c)
		if err != nil {
			return PMF{}, err
		}
		return c.Convolve(half, half)
	}
	rest, err := pow(base, n-1, c)
	if err != nil {
		return PMF{}, err
	}
	return c.Convolve(rest, base)
}

// PowDirect is Pow with direct convolution.
func PowDirect(base PMF, n int) (PMF, error) {
	return Pow(base, n, Direct{})
}
