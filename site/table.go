package site

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Site is one PTM site: a probability for every charge of the table range,
// repeated Copies times. Sites with Copies <= 0 do not contribute.
type Site struct {
	ID     string
	Copies int
	Probs  []float64

	// Range optionally records the charge range the row was read with. When
	// set it must equal the table range.
	Range *ChargeRange
}

// Included reports whether s contributes to the total charge.
func (s Site) Included() bool {
	return s.Copies > 0
}

// Sum returns the total probability of s.
func (s Site) Sum() float64 {
	return floats.Sum(s.Probs)
}

// Table is the input of a computation: sites sharing one charge range.
// The combination algorithms read a Table and never modify it.
type Table struct {
	Range ChargeRange
	Sites []Site
}

// NewTable builds a table over r and validates its shape.
func NewTable(r ChargeRange, sites ...Site) (Table, error) {
	t := Table{Range: r, Sites: sites}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks that every row has one finite, non-negative probability
// per charge of the table range. Row sums are checked separately by the
// normalization policy.
func (t Table) Validate() error {
	if t.Range.Min > t.Range.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, t.Range.Min, t.Range.Max)
	}
	for i, s := range t.Sites {
		if s.Range != nil && *s.Range != t.Range {
			return &RowError{Index: i, ID: s.ID, Err: fmt.Errorf("%w: %v vs %v", ErrMixedRange, *s.Range, t.Range)}
		}
		if len(s.Probs) != t.Range.Len() {
			return &RowError{Index: i, ID: s.ID, Err: fmt.Errorf("%w: got %d, want %d", ErrShape, len(s.Probs), t.Range.Len())}
		}
		for j, p := range s.Probs {
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
				return &RowError{Index: i, ID: s.ID, Err: fmt.Errorf("%w: %s = %v", ErrInvalidProbability, Label(t.Range.Min+j), p)}
			}
		}
	}
	return nil
}

// States returns the number of charge states per site.
func (t Table) States() int {
	return t.Range.Len()
}

// TotalCopies returns the number of contributing site copies.
func (t Table) TotalCopies() int {
	total := 0
	for _, s := range t.Sites {
		if s.Included() {
			total += s.Copies
		}
	}
	return total
}

// Included returns the sites with Copies > 0, in table order.
func (t Table) Included() []Site {
	out := make([]Site, 0, len(t.Sites))
	for _, s := range t.Sites {
		if s.Included() {
			out = append(out, s)
		}
	}
	return out
}
