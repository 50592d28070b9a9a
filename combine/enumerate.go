package combine

import (
	"context"
	"math"
	"time"

	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
)

// EnumStatus tells whether an enumeration produced a distribution.
type EnumStatus int

const (
	EnumComplete EnumStatus = iota
	EnumUnavailable
)

func (s EnumStatus) String() string {
	if s == EnumComplete {
		return "complete"
	}
	return "unavailable"
}

// Reason explains an unavailable enumeration.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonTooLarge: the combination count exceeds the limit; nothing was attempted.
	ReasonTooLarge
	// ReasonTimeout: the wall-clock budget ran out mid-enumeration.
	ReasonTimeout
	// ReasonCanceled: the context was canceled.
	ReasonCanceled
)

func (r Reason) String() string {
	switch r {
	case ReasonTooLarge:
		return "too many combinations"
	case ReasonTimeout:
		return "timeout"
	case ReasonCanceled:
		return "canceled"
	default:
		return "none"
	}
}

// Enumeration is the outcome of [Enumerate]. PMF is only set when Status is
// EnumComplete.
type Enumeration struct {
	PMF          pmf.PMF
	Status       EnumStatus
	Reason       Reason
	Combinations float64 // states^total_copies, +Inf when it overflows
	Visited      int64   // traversal nodes expanded
}

// Available reports whether the enumeration completed.
func (e Enumeration) Available() bool {
	return e.Status == EnumComplete
}

// CombinationCount returns the number of charge combinations of t,
// states^total_copies. The count overflows to +Inf rather than wrapping.
func CombinationCount(t site.Table) float64 {
	total := t.TotalCopies()
	if total == 0 {
		return 1
	}
	return math.Pow(float64(t.States()), float64(total))
}

// checkInterval is the number of expansions between deadline checks.
const checkInterval = 4096

// budget bounds one enumeration by deadline and context.
type budget struct {
	ctx      context.Context
	deadline time.Time
	steps    int64
}

// spend records one expansion and reports why the traversal must stop, if it must.
func (b *budget) spend() Reason {
	b.steps++
	if b.steps%checkInterval != 0 {
		return ReasonNone
	}
	if b.ctx.Err() != nil {
		return ReasonCanceled
	}
	if time.Now().After(b.deadline) {
		return ReasonTimeout
	}
	return ReasonNone
}

// frame is a partial assignment: every site copy before copy rep of ts[pos]
// is fixed and their state indices sum to shift.
type frame struct {
	pos   int
	rep   int
	shift int
	prob  float64
}

// next returns the variable following f's in ts.
func (f frame) next(ts []term) (pos, rep int) {
	if f.rep+1 < ts[f.pos].copies {
		return f.pos, f.rep + 1
	}
	return f.pos + 1, 0
}

// Enumerate computes the exact distribution of t by visiting every
// combination of charge states of every site copy. It is a validation
// oracle for small tables only.
//
// When states^total_copies exceeds Options.CombinationLimit nothing is
// attempted and an EnumUnavailable result is returned. The traversal also
// gives up, with EnumUnavailable, once Options.Timeout elapses or ctx is
// canceled. Only invalid rows produce an error.
func Enumerate(ctx context.Context, t site.Table, opts ...Option) (Enumeration, error) {
	o := ApplyOptions(opts...)
	ts, err := terms(t, o)
	if err != nil {
		return Enumeration{}, err
	}

	count := CombinationCount(t)
	if count > o.CombinationLimit {
		return Enumeration{Status: EnumUnavailable, Reason: ReasonTooLarge, Combinations: count}, nil
	}

	n := t.TotalCopies()
	if n == 0 {
		return Enumeration{PMF: pmf.Identity(), Status: EnumComplete, Combinations: count}, nil
	}
	if t.States() == 1 {
		// A single charge state leaves one combination.
		return Enumeration{PMF: pmf.PointMass(n * t.Range.Min), Status: EnumComplete, Combinations: count}, nil
	}

	if ctx.Err() != nil {
		return Enumeration{Status: EnumUnavailable, Reason: ReasonCanceled, Combinations: count}, nil
	}

	b := &budget{ctx: ctx, deadline: time.Now().Add(o.Timeout)}
	var mass []float64 // allocated at the first leaf, after n budgeted expansions
	stack := []frame{{prob: 1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r := b.spend(); r != ReasonNone {
			return Enumeration{Status: EnumUnavailable, Reason: r, Combinations: count, Visited: b.steps}, nil
		}

		if f.pos == len(ts) {
			if mass == nil {
				mass = make([]float64, n*(t.Range.Len()-1)+1)
			}
			mass[f.shift] += f.prob
			continue
		}
		pos, rep := f.next(ts)
		for k, p := range ts[f.pos].dist.Values {
			if p > 0 {
				stack = append(stack, frame{pos: pos, rep: rep, shift: f.shift + k, prob: f.prob * p})
			}
		}
	}

	p, err := pmf.PMF{Values: mass, Offset: n * t.Range.Min}.Normalize()
	if err != nil {
		return Enumeration{}, err
	}
	return Enumeration{PMF: p, Status: EnumComplete, Combinations: count, Visited: b.steps}, nil
}
