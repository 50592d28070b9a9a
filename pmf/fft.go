package pmf

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// minFFTSize keeps tiny transforms away from degenerate plan sizes.
const minFFTSize = 16

// FFT is a frequency-domain [Convolver]. It keeps one algo-fft plan per
// transform size, so reusing a single FFT across a convolution chain avoids
// rebuilding plans.
//
// An FFT is not safe for concurrent use; give each goroutine its own.
type FFT struct {
	plans map[int]*algofft.Plan[complex128]
}

// NewFFT returns an FFT convolver with an empty plan cache.
func NewFFT() *FFT {
	return &FFT{plans: make(map[int]*algofft.Plan[complex128])}
}

// ConvolveFFT is a one-shot convenience wrapper around [FFT.Convolve].
func ConvolveFFT(a, b PMF) (PMF, error) {
	return NewFFT().Convolve(a, b)
}

// Convolve implements [Convolver]. Both operands are zero-padded to the next
// power of two >= len(a)+len(b)-1, transformed, multiplied pointwise and
// transformed back. The real part is kept; round-off below zero is clamped
// to 0 so the result stays a valid (unnormalized) distribution.
func (f *FFT) Convolve(a, b PMF) (PMF, error) {
	if err := checkOperands(a, b); err != nil {
		return PMF{}, err
	}

	resultLen := len(a.Values) + len(b.Values) - 1
	fftSize := max(nextPowerOf2(resultLen), minFFTSize)

	plan, err := f.plan(fftSize)
	if err != nil {
		return PMF{}, err
	}

	specA := padComplex(a.Values, fftSize)
	if err := plan.Forward(specA, specA); err != nil {
		return PMF{}, fmt.Errorf("pmf: forward FFT failed: %w", err)
	}

	if sameValues(a, b) {
		// Squaring step of Pow: one transform serves both operands.
		for i, v := range specA {
			specA[i] = v * v
		}
	} else {
		specB := padComplex(b.Values, fftSize)
		if err := plan.Forward(specB, specB); err != nil {
			return PMF{}, fmt.Errorf("pmf: forward FFT failed: %w", err)
		}
		for i := range specA {
			specA[i] *= specB[i]
		}
	}

	if err := plan.Inverse(specA, specA); err != nil {
		return PMF{}, fmt.Errorf("pmf: inverse FFT failed: %w", err)
	}

	out := make([]float64, resultLen)
	for i := range out {
		if v := real(specA[i]); v > 0 {
			out[i] = v
		}
	}

	return PMF{Values: out, Offset: a.Offset + b.Offset}, nil
}

func (f *FFT) plan(size int) (*algofft.Plan[complex128], error) {
	if f.plans == nil {
		f.plans = make(map[int]*algofft.Plan[complex128])
	}
	if p, ok := f.plans[size]; ok {
		return p, nil
	}
	p, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("pmf: failed to create FFT plan of size %d: %w", size, err)
	}
	f.plans[size] = p
	return p, nil
}

func padComplex(values []float64, size int) []complex128 {
	out := make([]complex128, size)
	for i, v := range values {
		out[i] = complex(v, 0)
	}
	return out
}

// sameValues reports whether a and b share the same backing values.
func sameValues(a, b PMF) bool {
	return len(a.Values) == len(b.Values) && len(a.Values) > 0 && &a.Values[0] == &b.Values[0]
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
