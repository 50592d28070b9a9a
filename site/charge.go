package site

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ChargeRange is an inclusive, contiguous range of integer charges.
type ChargeRange struct {
	Min, Max int
}

// NewChargeRange returns the range min..max.
func NewChargeRange(min, max int) (ChargeRange, error) {
	if min > max {
		return ChargeRange{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	return ChargeRange{Min: min, Max: max}, nil
}

// Len returns the number of charge states.
func (r ChargeRange) Len() int {
	return r.Max - r.Min + 1
}

// Contains reports whether charge lies in r.
func (r ChargeRange) Contains(charge int) bool {
	return charge >= r.Min && charge <= r.Max
}

// Index returns the probability index of charge.
func (r ChargeRange) Index(charge int) int {
	return charge - r.Min
}

// Charges returns every charge of r in ascending order.
func (r ChargeRange) Charges() []int {
	out := make([]int, 0, r.Len())
	for c := r.Min; c <= r.Max; c++ {
		out = append(out, c)
	}
	return out
}

// Values returns the charges of r as float64, for moment computations.
func (r ChargeRange) Values() []float64 {
	out := make([]float64, 0, r.Len())
	for c := r.Min; c <= r.Max; c++ {
		out = append(out, float64(c))
	}
	return out
}

// NeutralIndex returns the index of charge 0, or of the charge closest to 0
// when the range does not contain it.
func (r ChargeRange) NeutralIndex() int {
	switch {
	case r.Contains(0):
		return r.Index(0)
	case r.Min > 0:
		return 0
	default:
		return r.Len() - 1
	}
}

func (r ChargeRange) String() string {
	return fmt.Sprintf("[%s, %s]", signed(r.Min), signed(r.Max))
}

// Label returns the column label of charge: "P(0)", "P(+3)" or "P(-2)".
func Label(charge int) string {
	return "P(" + signed(charge) + ")"
}

// Labels returns the column labels of every charge in r.
func Labels(r ChargeRange) []string {
	out := make([]string, 0, r.Len())
	for c := r.Min; c <= r.Max; c++ {
		out = append(out, Label(c))
	}
	return out
}

// ParseLabel parses a column label produced by [Label]. Surrounding spaces
// are ignored and the "+" of positive charges is optional.
func ParseLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "P(")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	charge, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return charge, nil
}

// RangeFromLabels parses labels in any order and returns the charge range
// they span. Duplicates and gaps are rejected.
func RangeFromLabels(labels []string) (ChargeRange, error) {
	if len(labels) == 0 {
		return ChargeRange{}, ErrNoLabels
	}

	charges := make([]int, 0, len(labels))
	for _, l := range labels {
		c, err := ParseLabel(l)
		if err != nil {
			return ChargeRange{}, err
		}
		charges = append(charges, c)
	}
	slices.Sort(charges)

	for i := 1; i < len(charges); i++ {
		switch charges[i] - charges[i-1] {
		case 0:
			return ChargeRange{}, fmt.Errorf("%w: %s", ErrDuplicateLabel, Label(charges[i]))
		case 1:
		default:
			return ChargeRange{}, fmt.Errorf("%w: gap between %s and %s",
				ErrNonContiguous, Label(charges[i-1]), Label(charges[i]))
		}
	}

	return ChargeRange{Min: charges[0], Max: charges[len(charges)-1]}, nil
}

func signed(c int) string {
	if c > 0 {
		return "+" + strconv.Itoa(c)
	}
	return strconv.Itoa(c)
}
