package combine

import (
	"log/slog"
	"time"

	"github.com/cwbudde/algo-ptm/site"
)

// Defaults used by [DefaultOptions].
const (
	DefaultTolerance        = 1e-9
	DefaultExactMax         = 50
	DefaultFFTMax           = 200
	DefaultCombinationLimit = 1e8
	DefaultTimeout          = 30 * time.Second
)

// Options configures the combination algorithms.
type Options struct {
	// Tolerance prunes result entries below it before the final
	// renormalization. 0 disables pruning.
	Tolerance float64
	// SumTolerance is the accepted deviation of a row sum from 1.
	SumTolerance float64

	// ExactMax and FFTMax are the automatic selection thresholds on total copies.
	ExactMax int
	FFTMax   int

	// CombinationLimit and Timeout bound [Enumerate].
	CombinationLimit float64
	Timeout          time.Duration

	// Workers > 1 enables the parallel tree reduction of exact chains.
	Workers int

	Logger *slog.Logger
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:        DefaultTolerance,
		SumTolerance:     site.DefaultSumTolerance,
		ExactMax:         DefaultExactMax,
		FFTMax:           DefaultFFTMax,
		CombinationLimit: DefaultCombinationLimit,
		Timeout:          DefaultTimeout,
		Workers:          1,
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// WithTolerance sets the pruning tolerance of results.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 {
			o.Tolerance = tol
		}
	}
}

// WithSumTolerance sets the accepted deviation of row sums from 1.
func WithSumTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.SumTolerance = tol
		}
	}
}

// WithThresholds sets the automatic selection thresholds. Ignored unless
// 0 <= exactMax <= fftMax.
func WithThresholds(exactMax, fftMax int) Option {
	return func(o *Options) {
		if exactMax >= 0 && exactMax <= fftMax {
			o.ExactMax = exactMax
			o.FFTMax = fftMax
		}
	}
}

// WithCombinationLimit sets the largest combination count [Enumerate] attempts.
func WithCombinationLimit(limit float64) Option {
	return func(o *Options) {
		if limit > 0 {
			o.CombinationLimit = limit
		}
	}
}

// WithTimeout sets the wall-clock budget of [Enumerate].
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithParallel reduces exact chains as a balanced tree using up to workers
// goroutines.
func WithParallel(workers int) Option {
	return func(o *Options) {
		if workers > 0 {
			o.Workers = workers
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default configuration.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
