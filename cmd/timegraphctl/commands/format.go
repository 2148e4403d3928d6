// SPDX-License-Identifier: MIT
package commands

import (
	"os"

	"github.com/spf13/cobra"

	tgformat "github.com/katalvlaran/timegraph/format"
)

var (
	formatAsserts []string
	formatPoint   string
	formatVerbose bool
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Render a graph built from --assert lines as colorized tables",
	Run:   runFormat,
}

func init() {
	formatCmd.Flags().StringArrayVar(&formatAsserts, "assert", nil,
		`an "enter ..." or "duration ..." line to apply before rendering (repeatable)`)
	formatCmd.Flags().StringVar(&formatPoint, "point", "",
		"render only this point's row instead of the full dump")
	formatCmd.Flags().BoolVarP(&formatVerbose, "verbose", "v", false,
		"include ancestor/descendant link-list columns")
}

func runFormat(cmd *cobra.Command, args []string) {
	g, err := buildGraph(formatAsserts)
	if err != nil {
		HandleError(err, "building graph")
	}
	if formatPoint != "" {
		if err := tgformat.Point(os.Stdout, g, formatPoint); err != nil {
			HandleError(err, "format")
		}
		return
	}
	tgformat.Timegraph(os.Stdout, g, formatVerbose)
}
