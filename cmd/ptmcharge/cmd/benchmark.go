package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-ptm/internal/synth"
	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/validate"
	"github.com/spf13/cobra"
)

type benchmarkOptions struct {
	synth     synth.Config
	enumLimit int
	low, high int
}

func newBenchmarkCmd(g *globalOptions) *cobra.Command {
	o := &benchmarkOptions{synth: synth.DefaultConfig()}

	c := &cobra.Command{
		Use:   "benchmark",
		Short: "Compare all algorithms on a synthetic table",
		Long: `Generate a random table with Dirichlet distributed site probabilities and
compare every algorithm against a ground truth.

Tables with at most --enum-limit copies are benchmarked against exhaustive
enumeration, larger ones against the exact convolution.

Examples:
  ptmcharge benchmark
  ptmcharge benchmark --sites 40 --max-copies 10 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runBenchmark(c, g, o)
		},
	}

	c.Flags().IntVar(&o.synth.Sites, "sites", o.synth.Sites, "Number of sites")
	c.Flags().IntVar(&o.synth.MinCopies, "min-copies", o.synth.MinCopies, "Smallest copy count per site")
	c.Flags().IntVar(&o.synth.MaxCopies, "max-copies", o.synth.MaxCopies, "Largest copy count per site")
	c.Flags().IntVar(&o.synth.Range.Min, "min", o.synth.Range.Min, "Lowest charge of the table range")
	c.Flags().IntVar(&o.synth.Range.Max, "max", o.synth.Range.Max, "Highest charge of the table range")
	c.Flags().Float64Var(&o.synth.Alpha, "alpha", o.synth.Alpha, "Dirichlet concentration of site probabilities")
	c.Flags().Uint64Var(&o.synth.Seed, "seed", o.synth.Seed, "Random seed")
	c.Flags().IntVar(&o.enumLimit, "enum-limit", validate.DefaultEnumLimit, "Largest total copy count benchmarked by enumeration")
	c.Flags().IntVar(&o.low, "low", pmf.DefaultWindowLow, "Lowest charge compared")
	c.Flags().IntVar(&o.high, "high", pmf.DefaultWindowHigh, "Highest charge compared")

	return c
}

func runBenchmark(c *cobra.Command, g *globalOptions, o *benchmarkOptions) error {
	tbl, err := synth.Table(o.synth)
	if err != nil {
		return err
	}

	cfg := validate.DefaultConfig()
	cfg.EnumLimit = o.enumLimit
	cfg.Low, cfg.High = o.low, o.high

	g.logger.Info("running benchmark", "sites", len(tbl.Sites), "total_copies", tbl.TotalCopies(), "seed", o.synth.Seed)
	rep, err := validate.Run(c.Context(), tbl, cfg)
	if err != nil {
		return err
	}
	return printReport(c.OutOrStdout(), rep)
}

func printReport(out io.Writer, rep validate.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Total copies:\t%d\n", rep.TotalCopies)
	fmt.Fprintf(tw, "Benchmark:\t%s\n", rep.Benchmark)
	fmt.Fprintf(tw, "Window:\t[%+d, %+d]\n", rep.Low, rep.High)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Method\tTime\tMax diff\tStatus")
	for _, e := range rep.Entries {
		diff := "-"
		if !e.Benchmark {
			diff = fmt.Sprintf("%.2e", e.MaxDiff)
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", e.Name, e.Elapsed, diff, e.Status)
	}
	fmt.Fprintln(tw)

	if rep.AllAgree() {
		fmt.Fprintln(tw, "All methods match the benchmark.")
	} else {
		fmt.Fprintln(tw, "Some methods differ from the benchmark; the Gaussian approximation is expected to.")
	}
	return tw.Flush()
}
