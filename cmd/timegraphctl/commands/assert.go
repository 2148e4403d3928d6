// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/timegraph/abstime"
	"github.com/katalvlaran/timegraph/graph"
	"github.com/katalvlaran/timegraph/predicate"
)

// Assertion lines have one of two forms:
//
//	enter <a1> <predicate> <a2> [<a3>]
//	duration <a1> <stem> <a2> <seconds>
//
// Each <aN> is either a bare name (resolved or created as a TimePoint/Event)
// or an absolute-time literal "@Y,M,D,H,Mi,S" with "?" marking an unknown
// slot, matching abstime.FromTuple's tolerant parsing.

// buildGraph applies asserts in order to a fresh graph and returns it.
func buildGraph(asserts []string) (*graph.TimeGraph, error) {
	g := graph.NewGraph()
	for i, line := range asserts {
		if err := applyLine(g, line); err != nil {
			return nil, fmt.Errorf("assert %d (%q): %w", i, line, err)
		}
	}
	return g, nil
}

func applyLine(g *graph.TimeGraph, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "enter":
		return applyEnter(g, fields[1:])
	case "duration":
		return applyDuration(g, fields[1:])
	default:
		return fmt.Errorf(`unrecognized assertion kind %q (want "enter" or "duration")`, fields[0])
	}
}

func applyEnter(g *graph.TimeGraph, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return fmt.Errorf("enter wants 3 or 4 arguments (a1 predicate a2 [a3]), got %d", len(args))
	}
	a1, err := parseArg(args[0])
	if err != nil {
		return err
	}
	a2, err := parseArg(args[2])
	if err != nil {
		return err
	}
	predicateStr := args[1]
	if len(args) == 4 {
		a3, err := parseArg(args[3])
		if err != nil {
			return err
		}
		_, err = g.Enter(a1, predicateStr, a2, a3)
		return err
	}
	_, err = g.Enter(a1, predicateStr, a2)
	return err
}

func applyDuration(g *graph.TimeGraph, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("duration wants 4 arguments (a1 stem a2 seconds), got %d", len(args))
	}
	a1, err := parseArg(args[0])
	if err != nil {
		return err
	}
	a2, err := parseArg(args[2])
	if err != nil {
		return err
	}
	seconds, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[3], err)
	}
	_, err = g.EnterDuration(a1, predicate.Stem(args[1]), a2, seconds)
	return err
}

// parseArg resolves a single command-line token into a graph.TimeArg: an
// "@Y,M,D,H,Mi,S" literal becomes an Abs, anything else becomes a Name.
func parseArg(tok string) (graph.TimeArg, error) {
	if !strings.HasPrefix(tok, "@") {
		return graph.Name(tok), nil
	}
	parts := strings.Split(strings.TrimPrefix(tok, "@"), ",")
	if len(parts) != 6 {
		return graph.TimeArg{}, fmt.Errorf("absolute-time literal %q needs 6 comma-separated slots (year,month,day,hour,minute,second)", tok)
	}
	var tuple [6]string
	copy(tuple[:], parts)
	abs, err := abstime.FromTuple(tuple)
	if err != nil {
		return graph.TimeArg{}, err
	}
	return graph.Abs(abs), nil
}
