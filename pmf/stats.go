package pmf

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the headline statistics of a charge distribution.
type Summary struct {
	Mean            float64
	Variance        float64
	StdDev          float64
	Mode            int     // most likely charge
	PeakProbability float64 // probability of Mode
	MinCharge       int     // lowest charge with non-zero probability
	MaxCharge       int     // highest charge with non-zero probability
}

// Summarize computes the moments and the mode of p. Values are used as
// weights, so p need not be normalized. A distribution without mass returns
// ErrZeroMass.
func Summarize(p PMF) (Summary, error) {
	if len(p.Values) == 0 {
		return Summary{}, ErrEmpty
	}
	if !(p.Sum() > 0) {
		return Summary{}, ErrZeroMass
	}

	mean, variance := stat.PopMeanVariance(p.charges(), p.Values)
	variance = math.Max(variance, 0)

	mode := floats.MaxIdx(p.Values)
	trimmed := p.Trim()

	return Summary{
		Mean:            mean,
		Variance:        variance,
		StdDev:          math.Sqrt(variance),
		Mode:            p.Offset + mode,
		PeakProbability: p.Values[mode],
		MinCharge:       trimmed.MinCharge(),
		MaxCharge:       trimmed.MaxCharge(),
	}, nil
}
