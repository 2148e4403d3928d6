// SPDX-License-Identifier: MIT
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders a human-readable dump of the graph in stable key order
// (points by name, then chains by number, then events by name), matching
// §6's format(verbose) -> string. When verbose is true, each point's four
// link lists are also rendered; otherwise only its own fields are shown.
// This is the core's own minimal dump — the format package provides a
// colorized, tabular rendering on top of the same data for interactive use.
func (g *TimeGraph) Format(verbose bool) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Points:\n")
	for _, name := range g.sortedPointNames() {
		p := g.point(g.names[name])
		if p.Name != name {
			continue // alternate name; the canonical entry already covers it
		}
		g.formatPoint(&b, p, verbose)
	}
	b.WriteString("Chains:\n")
	for _, c := range g.chains {
		fmt.Fprintf(&b, "  chain %d: first=%s connections=%d\n", c.ID, g.safeName(c.First), len(c.Connections))
	}
	b.WriteString("Events:\n")
	names := make([]string, 0, len(g.events))
	for name := range g.events {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ev := g.events[name]
		fmt.Fprintf(&b, "  %s: start=%s end=%s\n", name, g.point(ev.Start).Name, g.point(ev.End).Name)
	}
	return b.String()
}

func (g *TimeGraph) sortedPointNames() []string {
	names := make([]string, 0, len(g.names))
	for name := range g.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *TimeGraph) safeName(id PointID) string {
	if id == NoPoint {
		return "<none>"
	}
	return g.point(id).Name
}

func (g *TimeGraph) formatPoint(b *strings.Builder, p *TimePoint, verbose bool) {
	fmt.Fprintf(b, "  %s: chain=%d pseudo=%d min_pseudo=%d max_pseudo=%d abs_min=%s abs_max=%s\n",
		p.Name, p.Chain, p.Pseudo, p.MinPseudo, p.MaxPseudo, p.AbsoluteMin.String(), p.AbsoluteMax.String())
	if !verbose {
		return
	}
	fmt.Fprintf(b, "    ancestors: %s\n", g.formatLinkList(p.Ancestors))
	fmt.Fprintf(b, "    descendants: %s\n", g.formatLinkList(p.Descendants))
	fmt.Fprintf(b, "    xancestors: %s\n", g.formatLinkList(p.XAncestors))
	fmt.Fprintf(b, "    xdescendants: %s\n", g.formatLinkList(p.XDescendants))
}

func (g *TimeGraph) formatLinkList(list TimeLinkList) string {
	parts := make([]string, 0, len(list))
	for _, lid := range list {
		l := g.link(lid)
		arrow := "->"
		if l.Strict {
			arrow = "=>"
		}
		parts = append(parts, fmt.Sprintf("%s%s%s", g.point(l.From).Name, arrow, g.point(l.To).Name))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}
