package combine

import (
	"math"

	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian approximates the total charge distribution of t by the central
// limit theorem. Only the mean and variance of each site are kept; the sum
// of independent sites is modelled as N(sum of means, sum of variances) and
// the density is sampled at every reachable integer charge
// [total*Min, total*Max], without continuity correction, then normalized.
//
// The approximation is meant for large copy counts. It is inaccurate for few
// sites and for skewed or multimodal site distributions.
//
// A zero total variance yields a point mass at the rounded mean. The total
// copy count is returned alongside the distribution.
func Gaussian(t site.Table, opts ...Option) (pmf.PMF, int, error) {
	o := ApplyOptions(opts...)
	ts, err := terms(t, o)
	if err != nil {
		return pmf.PMF{}, 0, err
	}

	charges := t.Range.Values()
	var mean, variance float64
	total := 0
	for _, tm := range ts {
		m, v := stat.PopMeanVariance(charges, tm.dist.Values)
		mean += float64(tm.copies) * m
		variance += float64(tm.copies) * math.Max(v, 0)
		total += tm.copies
	}

	lo := total * t.Range.Min
	values := make([]float64, total*(t.Range.Max-t.Range.Min)+1)

	sigma := math.Sqrt(variance)
	if sigma > 0 {
		normal := distuv.Normal{Mu: mean, Sigma: sigma}
		var sum float64
		for i := range values {
			values[i] = normal.Prob(float64(lo + i))
			sum += values[i]
		}
		if !(sum > 0) {
			// The density underflowed at every integer; sigma is far below 1.
			sigma = 0
		}
	}
	if sigma == 0 {
		clear(values)
		i := int(math.Round(mean)) - lo
		values[min(max(i, 0), len(values)-1)] = 1
	}

	p, err := finish(pmf.PMF{Values: values, Offset: lo}, o.Tolerance)
	return p, total, err
}
