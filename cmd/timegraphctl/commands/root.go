// SPDX-License-Identifier: MIT

// Package commands implements timegraphctl's cobra command tree: one-shot
// subcommands (enter, relation, elapsed, format) plus an interactive repl,
// all built on top of the exported graph/format APIs. Nothing in graph or
// format imports this package — it is strictly an outer layer, matching
// spectre's cmd/spectre/commands package.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is timegraphctl's own version, independent of the module's.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "timegraphctl",
	Short: "timegraphctl - a command-line front end for the timegraph library",
	Long: `timegraphctl builds a temporal constraint graph from a sequence of
"enter"/"duration" assertions and queries it for relations, elapsed-time
bounds, and a tabular dump. Each one-shot subcommand accepts repeatable
--assert flags to build its graph before running; the repl subcommand keeps
a single graph alive across a line-oriented interactive session.`,
	Version: Version,
}

// Execute runs the root command, returning any error cobra reports.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(relationCmd)
	rootCmd.AddCommand(elapsedCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(replCmd)
}

// HandleError prints msg and err to stderr and exits 1, matching spectre's
// commands.HandleError.
func HandleError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}
