package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-ptm/combine"
	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
	"github.com/spf13/cobra"
)

type computeOptions struct {
	sites     []string
	labels    string
	min, max  int
	method    string
	policy    string
	low, high int
	tolerance float64
	parallel  int
}

func newComputeCmd(g *globalOptions) *cobra.Command {
	o := &computeOptions{}

	c := &cobra.Command{
		Use:   "compute",
		Short: "Compute the net charge distribution of a set of sites",
		Long: `Compute the total net charge distribution from per-site charge probabilities.

Every --site lists one probability per charge of the table range, lowest
charge first.

Examples:
  # Two sites over charges -2..+2
  ptmcharge compute --site "pS12:1:0,0.3,0.7,0,0" --site "K5:2:0,0,0.4,0.6,0"

  # Column labels instead of --min/--max
  ptmcharge compute --labels "P(-1),P(0),P(+1)" --site "A:4:0.2,0.5,0.3"

  # Rows that do not sum to 1 are renormalized
  ptmcharge compute --policy lenient --site "A:1:1,2,4,2,1"`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCompute(c, g, o)
		},
	}

	c.Flags().StringArrayVar(&o.sites, "site", nil, `Site as "id:copies:p1,p2,..." (repeatable, required)`)
	c.Flags().StringVar(&o.labels, "labels", "", `Comma-separated charge labels, e.g. "P(-1),P(0),P(+1)"; overrides --min/--max`)
	c.Flags().IntVar(&o.min, "min", -2, "Lowest charge of the table range")
	c.Flags().IntVar(&o.max, "max", 2, "Highest charge of the table range")
	c.Flags().StringVar(&o.method, "method", "auto", "Algorithm: auto, exact, fft, gaussian")
	c.Flags().StringVar(&o.policy, "policy", "strict", "Rows not summing to 1: strict (reject) or lenient (renormalize)")
	c.Flags().IntVar(&o.low, "low", pmf.DefaultWindowLow, "Lowest charge to report")
	c.Flags().IntVar(&o.high, "high", pmf.DefaultWindowHigh, "Highest charge to report")
	c.Flags().Float64Var(&o.tolerance, "tolerance", combine.DefaultTolerance, "Prune result probabilities below this value")
	c.Flags().IntVar(&o.parallel, "parallel", 1, "Goroutines for the exact reduction")
	_ = c.MarkFlagRequired("site")

	return c
}

func runCompute(c *cobra.Command, g *globalOptions, o *computeOptions) error {
	r, err := chargeRange(o.labels, o.min, o.max)
	if err != nil {
		return err
	}
	policy, err := site.ParsePolicy(o.policy)
	if err != nil {
		return err
	}

	sites := make([]site.Site, 0, len(o.sites))
	for _, arg := range o.sites {
		s, err := parseSite(arg)
		if err != nil {
			return err
		}
		sites = append(sites, s)
	}
	tbl, err := site.NewTable(r, sites...)
	if err != nil {
		return err
	}
	tbl, err = site.Apply(tbl, policy, site.DefaultSumTolerance)
	if err != nil {
		return err
	}

	res, err := combine.SelectByName(tbl, o.method,
		combine.WithTolerance(o.tolerance),
		combine.WithParallel(o.parallel),
		combine.WithLogger(g.logger),
	)
	if err != nil {
		return err
	}
	w, err := pmf.Window(res.PMF, o.low, o.high)
	if err != nil {
		return err
	}
	sum, err := pmf.Summarize(res.PMF)
	if err != nil {
		return err
	}

	g.logger.Info("computed charge distribution",
		"method", res.Method.String(),
		"sites", len(tbl.Included()),
		"total_copies", res.TotalCopies,
		"elapsed", res.Elapsed,
	)
	return printResult(c.OutOrStdout(), tbl, res, w, sum)
}

func printResult(out io.Writer, tbl site.Table, res combine.Result, w pmf.WindowResult, s pmf.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Method:\t%s\n", res.Method.Description())
	fmt.Fprintf(tw, "Sites:\t%d (%d copies)\n", len(tbl.Included()), res.TotalCopies)
	fmt.Fprintf(tw, "Charge range:\t%v\n", tbl.Range)
	fmt.Fprintf(tw, "Elapsed:\t%v\n", res.Elapsed)
	fmt.Fprintf(tw, "Mean charge:\t%.4f\n", s.Mean)
	fmt.Fprintf(tw, "Std. dev.:\t%.4f\n", s.StdDev)
	fmt.Fprintf(tw, "Most likely:\t%+d (%.4f)\n", s.Mode, s.PeakProbability)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Charge\tProbability")
	fmt.Fprintf(tw, "<%+d\t%.6g\n", w.Low, w.TailLow)
	for _, pt := range w.Points {
		fmt.Fprintf(tw, "%+d\t%.6g\n", pt.Charge, pt.Probability)
	}
	fmt.Fprintf(tw, ">%+d\t%.6g\n", w.High, w.TailHigh)

	return tw.Flush()
}
