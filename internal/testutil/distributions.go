package testutil

import "math/rand"

// DeterministicWeights returns length random non-negative weights that sum
// to 1, generated from a fixed seed for reproducibility.
func DeterministicWeights(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	var sum float64
	for i := range out {
		out[i] = rng.Float64()
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// PointMass returns a probability vector of the given length with all mass at pos.
func PointMass(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Uniform returns a probability vector of n equal entries.
func Uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}
	return out
}
