package site

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSumTolerance is the accepted deviation of a row sum from 1.
const DefaultSumTolerance = 1e-6

// Policy decides what happens to rows whose probabilities do not sum to 1.
type Policy int

const (
	// PolicyStrict rejects the first offending row.
	PolicyStrict Policy = iota
	// PolicyLenient renormalizes rows, substituting a neutral point mass for
	// rows without any probability mass.
	PolicyLenient
)

func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "strict" or "lenient".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Strict returns a *RowError wrapping ErrRowSum for the first contributing
// row whose sum differs from 1 by more than tol. Rows with Copies <= 0 are
// not checked. A tol <= 0 selects DefaultSumTolerance.
func Strict(t Table, tol float64) error {
	if tol <= 0 {
		tol = DefaultSumTolerance
	}
	for i, s := range t.Sites {
		if !s.Included() {
			continue
		}
		if sum := s.Sum(); !(math.Abs(sum-1) <= tol) {
			return &RowError{Index: i, ID: s.ID, Sum: sum, Err: ErrRowSum}
		}
	}
	return nil
}

// Lenient returns a copy of t with every row divided by its sum. Rows
// without mass become a point mass on the neutral charge. t is not modified.
func Lenient(t Table) Table {
	out := Table{Range: t.Range, Sites: make([]Site, len(t.Sites))}
	neutral := t.Range.NeutralIndex()

	for i, s := range t.Sites {
		probs := make([]float64, len(s.Probs))
		if sum := s.Sum(); sum > 0 {
			for j, p := range s.Probs {
				probs[j] = p / sum
			}
		} else if neutral < len(probs) {
			probs[neutral] = 1
		}
		s.Probs = probs
		out.Sites[i] = s
	}
	return out
}

// Apply validates t and applies p. Strict returns t unchanged when every row
// passes; Lenient returns the renormalized copy.
func Apply(t Table, p Policy, tol float64) (Table, error) {
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	switch p {
	case PolicyStrict:
		if err := Strict(t, tol); err != nil {
			return Table{}, err
		}
		return t, nil
	case PolicyLenient:
		return Lenient(t), nil
	default:
		return Table{}, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
}
