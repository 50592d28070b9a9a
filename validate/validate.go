package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-ptm/combine"
	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
)

// EnumerationName names the enumeration entry of a report.
const EnumerationName = "enumeration"

// DefaultEnumLimit is the largest total copy count benchmarked by enumeration.
const DefaultEnumLimit = 12

// Config controls a validation run.
type Config struct {
	// EnumLimit is the largest total copy count for which enumeration is the
	// ground truth. Larger tables are benchmarked against the exact convolution.
	EnumLimit int
	// Low and High bound the comparison window.
	Low, High int
	// Methods are compared against the benchmark. MethodAuto is rejected.
	Methods []combine.Method
	// Policy is applied to the table before any method runs.
	Policy site.Policy
	// Options are passed to every method.
	Options []combine.Option
}

// DefaultConfig returns the configuration used by the benchmark command.
func DefaultConfig() Config {
	return Config{
		EnumLimit: DefaultEnumLimit,
		Low:       pmf.DefaultWindowLow,
		High:      pmf.DefaultWindowHigh,
		Methods:   combine.Methods(),
		Policy:    site.PolicyLenient,
	}
}

// Entry is one method's result within a report.
type Entry struct {
	Name      string
	PMF       pmf.PMF
	Elapsed   time.Duration
	MaxDiff   float64 // over the window; 0 for the benchmark
	Status    Status
	Benchmark bool
}

// Report is the outcome of [Run].
type Report struct {
	Benchmark   string // name of the ground-truth entry
	TotalCopies int
	Enumerable  bool // total copies within the enumeration limit
	Low, High   int
	Entries     []Entry
}

// AllAgree reports whether every compared entry matches the benchmark within
// ExactBelow.
func (r Report) AllAgree() bool {
	for _, e := range r.Entries {
		if !e.Benchmark && !e.Status.Agrees() {
			return false
		}
	}
	return true
}

// Lookup returns the entry called name.
func (r Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Run benchmarks cfg.Methods on t. The ground truth is enumeration when the
// table has at most cfg.EnumLimit copies and enumeration completes; otherwise
// the exact convolution. When enumeration is the benchmark, the methods are
// compared against it; when it is not, no enumeration is attempted.
func Run(ctx context.Context, t site.Table, cfg Config) (Report, error) {
	if cfg.Low > cfg.High {
		return Report{}, fmt.Errorf("%w: [%d, %d]", pmf.ErrInvalidWindow, cfg.Low, cfg.High)
	}
	t, err := site.Apply(t, cfg.Policy, 0)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		TotalCopies: t.TotalCopies(),
		Low:         cfg.Low,
		High:        cfg.High,
	}
	rep.Enumerable = rep.TotalCopies <= cfg.EnumLimit

	var bench Entry
	if rep.Enumerable {
		start := time.Now()
		e, err := combine.Enumerate(ctx, t, cfg.Options...)
		if err != nil {
			return Report{}, fmt.Errorf("validate: %s: %w", EnumerationName, err)
		}
		if e.Available() {
			bench = Entry{Name: EnumerationName, PMF: e.PMF, Elapsed: time.Since(start)}
		}
	}
	if bench.Name == "" {
		res, err := combine.Select(t, combine.MethodExact, cfg.Options...)
		if err != nil {
			return Report{}, fmt.Errorf("validate: %s: %w", combine.MethodExact, err)
		}
		bench = Entry{Name: combine.MethodExact.String(), PMF: res.PMF, Elapsed: res.Elapsed}
	}
	bench.Benchmark = true
	bench.Status = StatusBenchmark
	rep.Benchmark = bench.Name
	rep.Entries = append(rep.Entries, bench)

	want, err := pmf.Window(bench.PMF, cfg.Low, cfg.High)
	if err != nil {
		return Report{}, err
	}

	for _, m := range cfg.Methods {
		if m.String() == bench.Name {
			continue
		}
		if m == combine.MethodAuto {
			return Report{}, fmt.Errorf("validate: %w: auto cannot be benchmarked", combine.ErrUnknownMethod)
		}
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		res, err := combine.Select(t, m, cfg.Options...)
		if err != nil {
			return Report{}, fmt.Errorf("validate: %s: %w", m, err)
		}
		got, err := pmf.Window(res.PMF, cfg.Low, cfg.High)
		if err != nil {
			return Report{}, err
		}
		diff := maxWindowDiff(want, got)
		rep.Entries = append(rep.Entries, Entry{
			Name:    m.String(),
			PMF:     res.PMF,
			Elapsed: res.Elapsed,
			MaxDiff: diff,
			Status:  Classify(diff),
		})
	}
	return rep, nil
}

// maxWindowDiff returns the largest absolute difference between two windows
// over the same bounds.
func maxWindowDiff(a, b pmf.WindowResult) float64 {
	return pmf.MaxAbsDiff(a.PMF(), b.PMF())
}
