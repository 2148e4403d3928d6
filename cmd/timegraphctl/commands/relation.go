// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timegraph/graph"
)

var (
	relationAsserts []string
	relationEffort  int
)

var relationCmd = &cobra.Command{
	Use:   "relation <a1> <a2>",
	Short: "Query the relation between two points after applying --assert lines",
	Args:  cobra.ExactArgs(2),
	Run:   runRelation,
}

func init() {
	relationCmd.Flags().StringArrayVar(&relationAsserts, "assert", nil,
		`an "enter ..." or "duration ..." line to apply before querying (repeatable)`)
	relationCmd.Flags().IntVar(&relationEffort, "effort", 0,
		"search effort passed to Relation (0 = local only, >0 widens cross-chain search)")
}

func runRelation(cmd *cobra.Command, args []string) {
	g, err := buildGraph(relationAsserts)
	if err != nil {
		HandleError(err, "building graph")
	}
	rel, err := g.Relation(graph.Name(args[0]), graph.Name(args[1]), relationEffort)
	if err != nil {
		HandleError(err, "relation")
	}
	fmt.Println(rel)
}
