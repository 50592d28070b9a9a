package validate

// Status classifies an entry against the benchmark.
type Status int

const (
	StatusBenchmark Status = iota
	StatusPerfect
	StatusExact
	StatusApproximate
	StatusDiffers
)

// Classification thresholds on the maximum absolute window difference.
const (
	PerfectBelow     = 1e-10
	ExactBelow       = 1e-6
	ApproximateBelow = 1e-2
)

func (s Status) String() string {
	switch s {
	case StatusBenchmark:
		return "benchmark"
	case StatusPerfect:
		return "perfect"
	case StatusExact:
		return "exact"
	case StatusApproximate:
		return "approximate"
	case StatusDiffers:
		return "differs"
	default:
		return "unknown"
	}
}

// Agrees reports whether s counts as a match of the benchmark.
func (s Status) Agrees() bool {
	return s == StatusPerfect || s == StatusExact
}

// Classify maps a maximum absolute difference to a Status.
func Classify(diff float64) Status {
	switch {
	case diff < PerfectBelow:
		return StatusPerfect
	case diff < ExactBelow:
		return StatusExact
	case diff < ApproximateBelow:
		return StatusApproximate
	default:
		return StatusDiffers
	}
}
