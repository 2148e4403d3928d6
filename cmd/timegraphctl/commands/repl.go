// SPDX-License-Identifier: MIT
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timegraph/graph"
	tgformat "github.com/katalvlaran/timegraph/format"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session holding one graph across commands",
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func runRepl() {
	fmt.Println("=== timegraphctl interactive mode ===")
	fmt.Println("Commands:")
	fmt.Println("  .help                     - show this message")
	fmt.Println("  .exit                     - exit")
	fmt.Println("  enter <a1> <p> <a2> [a3]  - assert a relation")
	fmt.Println("  duration <a1> <s> <a2> <secs> - assert a duration-constrained relation")
	fmt.Println("  relation <a1> <a2> [effort]   - query the relation between two points")
	fmt.Println("  elapsed <a1> <a2> [effort]    - query the elapsed-seconds bound")
	fmt.Println("  format [verbose]          - dump the whole graph")
	fmt.Println("  point <name>              - dump a single point")
	fmt.Println()

	g := graph.NewGraph()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case line == ".exit":
			return

		case line == ".help":
			fmt.Println("see the command list printed at startup")

		case fields[0] == "enter":
			if err := applyEnter(g, fields[1:]); err != nil {
				fmt.Printf("enter error: %v\n", err)
				continue
			}
			fmt.Println("ok")

		case fields[0] == "duration":
			if err := applyDuration(g, fields[1:]); err != nil {
				fmt.Printf("duration error: %v\n", err)
				continue
			}
			fmt.Println("ok")

		case fields[0] == "relation":
			runReplRelation(g, fields[1:])

		case fields[0] == "elapsed":
			runReplElapsed(g, fields[1:])

		case fields[0] == "format":
			verbose := len(fields) > 1 && fields[1] == "verbose"
			tgformat.Timegraph(os.Stdout, g, verbose)

		case fields[0] == "point":
			if len(fields) != 2 {
				fmt.Println("usage: point <name>")
				continue
			}
			if err := tgformat.Point(os.Stdout, g, fields[1]); err != nil {
				fmt.Printf("point error: %v\n", err)
			}

		default:
			fmt.Println("Unknown command. Use .help for the command list.")
		}
	}
}

func runReplRelation(g *graph.TimeGraph, args []string) {
	if len(args) != 2 && len(args) != 3 {
		fmt.Println("usage: relation <a1> <a2> [effort]")
		return
	}
	effort, err := replEffort(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	rel, err := g.Relation(graph.Name(args[0]), graph.Name(args[1]), effort)
	if err != nil {
		fmt.Printf("relation error: %v\n", err)
		return
	}
	fmt.Println(rel)
}

func runReplElapsed(g *graph.TimeGraph, args []string) {
	if len(args) != 2 && len(args) != 3 {
		fmt.Println("usage: elapsed <a1> <a2> [effort]")
		return
	}
	effort, err := replEffort(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	min, max, err := g.Elapsed(graph.Name(args[0]), graph.Name(args[1]), effort)
	if err != nil {
		fmt.Printf("elapsed error: %v\n", err)
		return
	}
	fmt.Printf("%g %g\n", min, max)
}

func replEffort(args []string) (int, error) {
	if len(args) != 3 {
		return 0, nil
	}
	effort, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, fmt.Errorf("invalid effort %q: %w", args[2], err)
	}
	return effort, nil
}
