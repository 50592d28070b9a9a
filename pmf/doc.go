// Package pmf provides offset probability mass functions over integer charges
// and the operations needed to combine them.
//
// A [PMF] is a probability array plus the integer charge of its first entry:
// Values[i] is the probability of charge Offset+i. The package offers:
//
//   - Direct convolution: O(N*M) time-domain convolution, vectorized with algo-vecmath
//   - FFT convolution: zero-padded frequency-domain convolution using algo-fft plans
//   - Power-by-squaring: the distribution of n i.i.d. copies in O(log n) convolutions
//   - Windowing: a display sub-range with the probability mass of both tails
//
// # Usage
//
// Convolving two distributions yields the distribution of their sum:
//
//	site := pmf.New([]float64{0.2, 0.6, 0.2}, -1)
//	pair, err := pmf.Convolve(site, site)   // charges -2..+2
//	ten, err := pmf.Pow(site, 10, pmf.NewFFT())
//
// Convolution never normalizes its result. Call [PMF.Normalize] and
// [PMF.Prune] once at the end of a chain.
//
// # Algorithm Selection
//
// Both [Direct] and [FFT] implement [Convolver] and produce the same result
// within floating point tolerance. Direct convolution wins for the narrow
// distributions of a few sites; the FFT path wins once the accumulated
// distribution spans a few hundred charges.
package pmf
