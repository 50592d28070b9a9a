package combine

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
)

// Result is the outcome of one [Select] call.
type Result struct {
	PMF         pmf.PMF
	Method      Method // the algorithm that ran; never MethodAuto
	TotalCopies int
	Elapsed     time.Duration
}

// Choose returns the algorithm MethodAuto resolves to for totalCopies.
func Choose(totalCopies int, opts ...Option) Method {
	return choose(totalCopies, ApplyOptions(opts...))
}

func choose(totalCopies int, o Options) Method {
	switch {
	case totalCopies <= o.ExactMax:
		return MethodExact
	case totalCopies <= o.FFTMax:
		return MethodFFT
	default:
		return MethodGaussian
	}
}

// Select computes the distribution of t with m. MethodAuto picks an algorithm
// from the total copy count; explicit methods run regardless of size.
// Unknown methods return ErrUnknownMethod.
func Select(t site.Table, m Method, opts ...Option) (Result, error) {
	o := ApplyOptions(opts...)
	total := t.TotalCopies()

	resolved := m
	if m == MethodAuto {
		resolved = choose(total, o)
	}
	o.Logger.Debug("combining charge distribution",
		"requested", m.String(),
		"method", resolved.String(),
		"sites", len(t.Sites),
		"total_copies", total,
	)

	start := time.Now()
	var (
		p   pmf.PMF
		err error
	)
	switch resolved {
	case MethodExact:
		p, err = Exact(t, withOptions(o))
	case MethodFFT:
		p, _, err = FFT(t, withOptions(o))
	case MethodGaussian:
		p, _, err = Gaussian(t, withOptions(o))
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{PMF: p, Method: resolved, TotalCopies: total, Elapsed: time.Since(start)}
	o.Logger.Debug("charge distribution ready",
		"method", resolved.String(),
		"charges", p.Len(),
		"elapsed", res.Elapsed,
	)
	return res, nil
}

// SelectByName is Select with a method name parsed by [ParseMethod].
func SelectByName(t site.Table, name string, opts ...Option) (Result, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return Result{}, err
	}
	return Select(t, m, opts...)
}

// withOptions replaces the defaults with an already resolved configuration.
func withOptions(resolved Options) Option {
	return func(o *Options) {
		*o = resolved
	}
}
