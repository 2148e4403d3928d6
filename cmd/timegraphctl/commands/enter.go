// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timegraph/graph"
)

var enterCmd = &cobra.Command{
	Use:   "enter <a1> <predicate> <a2> [a3]",
	Short: "Assert a single temporal relation into a fresh graph",
	Long: `enter builds a fresh graph, applies exactly one assertion, and
prints "ok" when it is accepted. It does not report whether the core
silently softened the assertion to equality (the check_inconsistent
recovery described in the core package).`,
	Args: cobra.RangeArgs(3, 4),
	Run:  runEnter,
}

func runEnter(cmd *cobra.Command, args []string) {
	g := graph.NewGraph()
	if err := applyEnter(g, args); err != nil {
		HandleError(err, "enter failed")
	}
	fmt.Println("ok")
}
