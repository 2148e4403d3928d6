// SPDX-License-Identifier: MIT
package format

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/timegraph/graph"
)

// Formatter renders a graph.TimeGraph's Points/Chains/Events snapshots as
// colorized grid tables, mirroring timegraph.py's format_timegraph section
// layout ("Points:", "Chains:", "Events:") while borrowing its table
// rendering and color conventions from table_formatter.go and
// annotations/output.go.
type Formatter struct {
	useColor bool
}

// NewFormatter builds a Formatter, auto-detecting color support the same
// way annotations.NewOutputFormatter does: only real terminal files get
// colorized, anything else (a file, a buffer, a pipe) gets plain text.
func NewFormatter(w io.Writer) *Formatter {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isTerminal(f.Fd())
	}
	return &Formatter{useColor: useColor}
}

func isTerminal(fd uintptr) bool {
	return fd == uintptr(1) || fd == uintptr(2)
}

// Timegraph renders g's full Points/Chains/Events dump to w. When verbose is
// true, each point's four link-list columns are included.
func Timegraph(w io.Writer, g *graph.TimeGraph, verbose bool) {
	f := NewFormatter(w)
	f.writeSectionHeader(w, "Points")
	f.writePointsTable(w, g.Points(), verbose)
	f.writeSectionHeader(w, "Chains")
	f.writeChainsTable(w, g.Chains())
	f.writeSectionHeader(w, "Events")
	f.writeEventsTable(w, g.Events())
}

// Point renders a single named point's row (plus its link lists) to w. It
// returns an error if name does not resolve to any known point.
func Point(w io.Writer, g *graph.TimeGraph, name string) error {
	for _, p := range g.Points() {
		if p.Name != name {
			continue
		}
		f := NewFormatter(w)
		f.writePointsTable(w, []graph.PointView{p}, true)
		return nil
	}
	return fmt.Errorf("format: point %q not found", name)
}

func (f *Formatter) writeSectionHeader(w io.Writer, title string) {
	if f.useColor {
		fmt.Fprintln(w, color.New(color.FgCyan, color.Bold).Sprint(title+":"))
		return
	}
	fmt.Fprintln(w, title+":")
}

func (f *Formatter) writePointsTable(w io.Writer, points []graph.PointView, verbose bool) {
	if len(points) == 0 {
		fmt.Fprintln(w, "_no points_")
		return
	}
	headers := []string{"name", "chain", "pseudo", "min", "max", "abs_min", "abs_max"}
	if verbose {
		headers = append(headers, "ancestors", "descendants", "xancestors", "xdescendants")
	}
	table := newTable(w, headers)
	for _, p := range points {
		row := []string{
			f.colorizeName(p.Name),
			fmt.Sprintf("%d", p.Chain),
			fmt.Sprintf("%d", p.Pseudo),
			fmt.Sprintf("%d", p.MinPseudo),
			fmt.Sprintf("%d", p.MaxPseudo),
			p.AbsoluteMin,
			p.AbsoluteMax,
		}
		if verbose {
			row = append(row,
				joinOrNone(p.Ancestors),
				joinOrNone(p.Descendants),
				joinOrNone(p.XAncestors),
				joinOrNone(p.XDescendants),
			)
		}
		table.Append(row)
	}
	table.Render()
}

func (f *Formatter) writeChainsTable(w io.Writer, chains []graph.ChainView) {
	if len(chains) == 0 {
		fmt.Fprintln(w, "_no chains_")
		return
	}
	table := newTable(w, []string{"number", "first", "connections"})
	for _, c := range chains {
		table.Append([]string{
			fmt.Sprintf("%d", c.Number),
			f.colorizeName(c.First),
			fmt.Sprintf("%d", c.Connections),
		})
	}
	table.Render()
}

func (f *Formatter) writeEventsTable(w io.Writer, events []graph.EventView) {
	if len(events) == 0 {
		fmt.Fprintln(w, "_no events_")
		return
	}
	table := newTable(w, []string{"name", "start", "end"})
	for _, e := range events {
		table.Append([]string{f.colorizeName(e.Name), e.Start, e.End})
	}
	table.Render()
}

func (f *Formatter) colorizeName(name string) string {
	if !f.useColor || name == "" {
		return name
	}
	return color.YellowString(name)
}

func joinOrNone(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	if len(sorted) == 0 {
		return "(none)"
	}
	return strings.Join(sorted, ", ")
}

// newTable builds a markdown-rendered grid table with headers, the same
// renderer and alignment convention table_formatter.go's formatTable uses.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	alignment := make([]tw.Align, len(headers))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(headers)
	return table
}
