// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timegraph/graph"
)

var (
	elapsedAsserts []string
	elapsedEffort  int
)

var elapsedCmd = &cobra.Command{
	Use:   "elapsed <a1> <a2>",
	Short: "Query the [min,max] elapsed-seconds bound between two points after applying --assert lines",
	Args:  cobra.ExactArgs(2),
	Run:   runElapsed,
}

func init() {
	elapsedCmd.Flags().StringArrayVar(&elapsedAsserts, "assert", nil,
		`an "enter ..." or "duration ..." line to apply before querying (repeatable)`)
	elapsedCmd.Flags().IntVar(&elapsedEffort, "effort", 0,
		"search effort passed to Elapsed (0 = local only, >0 widens cross-chain search)")
}

func runElapsed(cmd *cobra.Command, args []string) {
	g, err := buildGraph(elapsedAsserts)
	if err != nil {
		HandleError(err, "building graph")
	}
	min, max, err := g.Elapsed(graph.Name(args[0]), graph.Name(args[1]), elapsedEffort)
	if err != nil {
		HandleError(err, "elapsed")
	}
	fmt.Printf("%g %g\n", min, max)
}
