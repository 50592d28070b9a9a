package pmf

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// PMF is a discrete probability distribution over consecutive integer
// charges. Values[i] holds the probability of charge Offset+i.
//
// A PMF is treated as immutable: every operation in this package returns a
// new value and leaves its operands untouched.
type PMF struct {
	Values []float64
	Offset int
}

// Identity returns the point mass at charge 0, the neutral element of
// convolution.
func Identity() PMF {
	return PMF{Values: []float64{1}, Offset: 0}
}

// PointMass returns a distribution with all mass on charge.
func PointMass(charge int) PMF {
	return PMF{Values: []float64{1}, Offset: charge}
}

// New returns a PMF holding a copy of values, with values[0] at charge offset.
func New(values []float64, offset int) PMF {
	v := make([]float64, len(values))
	copy(v, values)
	return PMF{Values: v, Offset: offset}
}

// Len returns the number of charges covered by p.
func (p PMF) Len() int {
	return len(p.Values)
}

// MinCharge returns the charge of the first entry.
func (p PMF) MinCharge() int {
	return p.Offset
}

// MaxCharge returns the charge of the last entry.
func (p PMF) MaxCharge() int {
	return p.Offset + len(p.Values) - 1
}

// At returns the probability of charge, or 0 outside the covered range.
func (p PMF) At(charge int) float64 {
	i := charge - p.Offset
	if i < 0 || i >= len(p.Values) {
		return 0
	}
	return p.Values[i]
}

// Sum returns the total probability mass.
func (p PMF) Sum() float64 {
	return vecmath.Sum(p.Values)
}

// Mean returns the expected charge. Returns 0 for a distribution without mass.
func (p PMF) Mean() float64 {
	total := p.Sum()
	if total <= 0 {
		return 0
	}
	return vecmath.DotProduct(p.charges(), p.Values) / total
}

// Clone returns a deep copy of p.
func (p PMF) Clone() PMF {
	return New(p.Values, p.Offset)
}

// Normalize returns p scaled so that its values sum to 1.
func (p PMF) Normalize() (PMF, error) {
	if len(p.Values) == 0 {
		return PMF{}, ErrEmpty
	}
	out := p.Clone()
	if err := out.normalizeInPlace(); err != nil {
		return PMF{}, err
	}
	return out, nil
}

// Prune zeroes every entry below tol and renormalizes the remainder.
// This removes the floating point noise left behind by long convolution
// chains. A tol <= 0 only renormalizes.
func (p PMF) Prune(tol float64) (PMF, error) {
	if len(p.Values) == 0 {
		return PMF{}, ErrEmpty
	}
	out := p.Clone()
	if tol > 0 {
		for i, v := range out.Values {
			if v < tol {
				out.Values[i] = 0
			}
		}
	}
	if err := out.normalizeInPlace(); err != nil {
		return PMF{}, fmt.Errorf("pmf: prune at %g: %w", tol, err)
	}
	return out, nil
}

// Trim drops zero entries at both ends and adjusts the offset accordingly.
// A distribution without any non-zero entry is returned unchanged.
func (p PMF) Trim() PMF {
	lo, hi := 0, len(p.Values)-1
	for lo <= hi && p.Values[lo] == 0 {
		lo++
	}
	for hi >= lo && p.Values[hi] == 0 {
		hi--
	}
	if lo > hi {
		return p.Clone()
	}
	return New(p.Values[lo:hi+1], p.Offset+lo)
}

// String implements fmt.Stringer.
func (p PMF) String() string {
	return fmt.Sprintf("PMF[%d..%d]%v", p.MinCharge(), p.MaxCharge(), p.Values)
}

func (p *PMF) normalizeInPlace() error {
	total := vecmath.Sum(p.Values)
	if !(total > 0) {
		return ErrZeroMass
	}
	vecmath.ScaleBlockInPlace(p.Values, 1/total)
	return nil
}

func (p PMF) charges() []float64 {
	c := make([]float64, len(p.Values))
	for i := range c {
		c[i] = float64(p.Offset + i)
	}
	return c
}
