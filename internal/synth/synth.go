// Package synth generates reproducible synthetic site tables for benchmarks
// and tests.
package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-ptm/site"
	"gonum.org/v1/gonum/stat/distmv"
)

// ErrInvalidConfig is returned for configurations that describe no table.
var ErrInvalidConfig = errors.New("synth: invalid config")

// Config describes a random table: Sites rows whose probabilities are drawn
// from a symmetric Dirichlet(Alpha) over Range, each with a copy count drawn
// uniformly from [MinCopies, MaxCopies].
type Config struct {
	Sites     int
	MinCopies int
	MaxCopies int
	Range     site.ChargeRange
	Alpha     float64
	Seed      uint64
}

// DefaultConfig returns five single-copy sites over -2..+2 with a flat
// Dirichlet prior.
func DefaultConfig() Config {
	return Config{
		Sites:     5,
		MinCopies: 1,
		MaxCopies: 1,
		Range:     site.ChargeRange{Min: -2, Max: 2},
		Alpha:     1,
		Seed:      42,
	}
}

func (c Config) validate() error {
	switch {
	case c.Sites < 0:
		return fmt.Errorf("%w: %d sites", ErrInvalidConfig, c.Sites)
	case c.MinCopies < 1 || c.MaxCopies < c.MinCopies:
		return fmt.Errorf("%w: copies [%d, %d]", ErrInvalidConfig, c.MinCopies, c.MaxCopies)
	case c.Range.Min > c.Range.Max:
		return fmt.Errorf("%w: range %v", ErrInvalidConfig, c.Range)
	case !(c.Alpha > 0):
		return fmt.Errorf("%w: alpha %v", ErrInvalidConfig, c.Alpha)
	}
	return nil
}

// Table draws a table from cfg. Equal configs yield equal tables.
func Table(cfg Config) (site.Table, error) {
	if err := cfg.validate(); err != nil {
		return site.Table{}, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	alpha := make([]float64, cfg.Range.Len())
	for i := range alpha {
		alpha[i] = cfg.Alpha
	}
	dir := distmv.NewDirichlet(alpha, rng)

	sites := make([]site.Site, cfg.Sites)
	for i := range sites {
		sites[i] = site.Site{
			ID:     fmt.Sprintf("Site_%d", i+1),
			Copies: cfg.MinCopies + rng.IntN(cfg.MaxCopies-cfg.MinCopies+1),
			Probs:  dir.Rand(nil),
		}
	}
	return site.NewTable(cfg.Range, sites...)
}

// Repeat returns a table of n identical single-copy sites with probs over r.
func Repeat(r site.ChargeRange, probs []float64, n int) (site.Table, error) {
	sites := make([]site.Site, n)
	for i := range sites {
		p := make([]float64, len(probs))
		copy(p, probs)
		sites[i] = site.Site{ID: fmt.Sprintf("Site_%d", i+1), Copies: 1, Probs: p}
	}
	return site.NewTable(r, sites...)
}
