package combine

import (
	"time"

	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
)

// Exact computes the exact total charge distribution of t by Yergeev's
// iterative convolution: every contributing site, anchored at the table's
// minimum charge, is raised to its copy count by squaring and convolved into
// the accumulator. The result is normalized and pruned at Options.Tolerance.
//
// Rows must sum to 1 within Options.SumTolerance; otherwise a *site.RowError
// is returned. A table without contributing sites yields [pmf.Identity].
func Exact(t site.Table, opts ...Option) (pmf.PMF, error) {
	o := ApplyOptions(opts...)
	return chain(t, o, func() pmf.Convolver { return pmf.Direct{} })
}

// FFT computes the same distribution as [Exact] with FFT convolution and
// reports the elapsed wall-clock time.
func FFT(t site.Table, opts ...Option) (pmf.PMF, time.Duration, error) {
	start := time.Now()
	o := ApplyOptions(opts...)
	p, err := chain(t, o, func() pmf.Convolver { return pmf.NewFFT() })
	return p, time.Since(start), err
}
