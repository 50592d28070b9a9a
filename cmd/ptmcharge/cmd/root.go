// Package cmd provides the ptmcharge command implementations.
package cmd

import (
	"log/slog"

	"github.com/cwbudde/algo-ptm/internal/logging"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCmd builds the ptmcharge command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "ptmcharge",
		Short: "ptmcharge - PTM net charge distribution calculator",
		Long: `ptmcharge combines per-site charge probabilities of post-translational
modifications into the probability distribution of the total net charge.

Available algorithms:
- exact:    iterative convolution (Yergeev), best up to 50 copies
- fft:      FFT-accelerated convolution, exact, best up to 200 copies
- gaussian: central limit approximation for larger proteins
- auto:     picks one of the above from the total copy count`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			g.logger = logging.Setup(c.ErrOrStderr(), g.logLevel, g.logFormat)
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newComputeCmd(g))
	root.AddCommand(newBenchmarkCmd(g))
	root.AddCommand(newMethodsCmd())
	return root
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
