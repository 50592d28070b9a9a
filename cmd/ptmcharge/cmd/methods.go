package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-ptm/combine"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Name\tAlgorithm\tExact\tAuto range (copies)")

			lo := 0
			for _, m := range combine.Methods() {
				auto := fmt.Sprintf("> %d", lo)
				switch m {
				case combine.MethodExact:
					auto = fmt.Sprintf("0-%d", combine.DefaultExactMax)
					lo = combine.DefaultExactMax
				case combine.MethodFFT:
					auto = fmt.Sprintf("%d-%d", lo+1, combine.DefaultFFTMax)
					lo = combine.DefaultFFTMax
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", m, m.Description(), m.IsExact(), auto)
			}
			fmt.Fprintf(tw, "%s\t%s\t-\t-\n", combine.MethodAuto, combine.MethodAuto.Description())
			return tw.Flush()
		},
	}
}
