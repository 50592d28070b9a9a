// Command ptmcharge computes the total net charge distribution of a protein
// from per-site post-translational modification charge probabilities.
//
// Usage:
//
//	ptmcharge compute --site "id:copies:p1,p2,..." [--site ...] [flags]
//	ptmcharge benchmark [flags]
//	ptmcharge methods
//
// Examples:
//
//	ptmcharge compute --min -2 --max 2 --site "pS12:1:0,0.3,0.7,0,0" --site "K5:2:0,0,0.4,0.6,0"
//	ptmcharge compute --method gaussian --site "pY:300:0,0.5,0.5,0,0"
//	ptmcharge benchmark --sites 5 --max-copies 2 --seed 7
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-ptm/cmd/ptmcharge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
