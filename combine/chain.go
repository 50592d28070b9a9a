package combine

import (
	"fmt"

	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
	"golang.org/x/sync/errgroup"
)

// term is one contributing site: its distribution anchored at the table's
// minimum charge and its copy count.
type term struct {
	row    int
	dist   pmf.PMF
	copies int
}

// terms validates t and returns its contributing sites in table order.
func terms(t site.Table, o Options) ([]term, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := site.Strict(t, o.SumTolerance); err != nil {
		return nil, err
	}

	out := make([]term, 0, len(t.Sites))
	for i, s := range t.Sites {
		if !s.Included() {
			continue
		}
		out = append(out, term{
			row:    i,
			dist:   pmf.PMF{Values: s.Probs, Offset: t.Range.Min},
			copies: s.Copies,
		})
	}
	return out, nil
}

// convolverFactory returns a fresh convolver. FFT convolvers cache plans and
// must not be shared between goroutines.
type convolverFactory func() pmf.Convolver

// chain runs the exact algorithm over t with convolvers from newConv.
func chain(t site.Table, o Options, newConv convolverFactory) (pmf.PMF, error) {
	ts, err := terms(t, o)
	if err != nil {
		return pmf.PMF{}, err
	}

	var acc pmf.PMF
	if o.Workers > 1 && len(ts) > 1 {
		acc, err = reduceTree(ts, newConv, o.Workers)
	} else {
		acc, err = reduceSequential(ts, newConv())
	}
	if err != nil {
		return pmf.PMF{}, err
	}
	return finish(acc, o.Tolerance)
}

func reduceSequential(ts []term, c pmf.Convolver) (pmf.PMF, error) {
	acc := pmf.Identity()
	for _, tm := range ts {
		p, err := pmf.Pow(tm.dist, tm.copies, c)
		if err != nil {
			return pmf.PMF{}, fmt.Errorf("combine: row %d: %w", tm.row, err)
		}
		acc, err = c.Convolve(acc, p)
		if err != nil {
			return pmf.PMF{}, fmt.Errorf("combine: row %d: %w", tm.row, err)
		}
	}
	return acc, nil
}

// reduceTree raises every site to its copy count concurrently, then combines
// neighbours pairwise until one distribution remains. Convolution is
// associative and commutative, so the result equals the sequential chain up
// to rounding.
func reduceTree(ts []term, newConv convolverFactory, workers int) (pmf.PMF, error) {
	parts := make([]pmf.PMF, len(ts))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, tm := range ts {
		g.Go(func() error {
			p, err := pmf.Pow(tm.dist, tm.copies, newConv())
			if err != nil {
				return fmt.Errorf("combine: row %d: %w", tm.row, err)
			}
			parts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pmf.PMF{}, err
	}

	for len(parts) > 1 {
		next := make([]pmf.PMF, (len(parts)+1)/2)
		if len(parts)%2 == 1 {
			next[len(next)-1] = parts[len(parts)-1]
		}

		var level errgroup.Group
		level.SetLimit(workers)
		for i := 0; i < len(parts)/2; i++ {
			level.Go(func() error {
				p, err := newConv().Convolve(parts[2*i], parts[2*i+1])
				if err != nil {
					return fmt.Errorf("combine: tree reduction: %w", err)
				}
				next[i] = p
				return nil
			})
		}
		if err := level.Wait(); err != nil {
			return pmf.PMF{}, err
		}
		parts = next
	}

	if len(parts) == 0 {
		return pmf.Identity(), nil
	}
	return parts[0], nil
}

// finish normalizes acc, prunes entries below tol and renormalizes.
func finish(acc pmf.PMF, tol float64) (pmf.PMF, error) {
	p, err := acc.Normalize()
	if err != nil {
		return pmf.PMF{}, fmt.Errorf("combine: %w", err)
	}
	p, err = p.Prune(tol)
	if err != nil {
		return pmf.PMF{}, fmt.Errorf("combine: %w", err)
	}
	return p, nil
}
