// SPDX-License-Identifier: MIT
package graph

import "sort"

// PointView is a read-only snapshot of a TimePoint, exported for rendering
// layers (the format package, cmd/timegraphctl) that must not reach into the
// arena directly.
type PointView struct {
	Name  string
	Chain int

	Pseudo, MinPseudo, MaxPseudo int64

	AbsoluteMin, AbsoluteMax string

	Ancestors, Descendants   []string
	XAncestors, XDescendants []string
}

// ChainView is a read-only snapshot of a Chain.
type ChainView struct {
	Number      int
	First       string
	Connections int
}

// EventView is a read-only snapshot of an EventPoint.
type EventView struct {
	Name  string
	Start string
	End   string
}

// Points returns a snapshot of every canonically-named point, sorted by
// name, for rendering layers. Alternate names collapsed via equal are
// omitted — look them up through the graph instead of expecting a row each.
func (g *TimeGraph) Points() []PointView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	views := make([]PointView, 0, len(g.names))
	for _, name := range g.sortedPointNames() {
		p := g.point(g.names[name])
		if p.Name != name {
			continue
		}
		views = append(views, g.pointView(p))
	}
	return views
}

func (g *TimeGraph) pointView(p *TimePoint) PointView {
	linkNames := func(list TimeLinkList) []string {
		out := make([]string, 0, len(list))
		for _, lid := range list {
			l := g.link(lid)
			out = append(out, g.point(l.From).Name+"->"+g.point(l.To).Name)
		}
		return out
	}
	return PointView{
		Name:          p.Name,
		Chain:         int(p.Chain),
		Pseudo:        p.Pseudo,
		MinPseudo:     p.MinPseudo,
		MaxPseudo:     p.MaxPseudo,
		AbsoluteMin:   p.AbsoluteMin.String(),
		AbsoluteMax:   p.AbsoluteMax.String(),
		Ancestors:     linkNames(p.Ancestors),
		Descendants:   linkNames(p.Descendants),
		XAncestors:    linkNames(p.XAncestors),
		XDescendants:  linkNames(p.XDescendants),
	}
}

// Chains returns a snapshot of every chain, in creation order.
func (g *TimeGraph) Chains() []ChainView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	views := make([]ChainView, 0, len(g.chains))
	for _, c := range g.chains {
		views = append(views, ChainView{
			Number:      int(c.ID),
			First:       g.safeName(c.First),
			Connections: len(c.Connections),
		})
	}
	return views
}

// Events returns a snapshot of every registered event, sorted by name.
func (g *TimeGraph) Events() []EventView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.events))
	for name := range g.events {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]EventView, 0, len(names))
	for _, name := range names {
		ev := g.events[name]
		views = append(views, EventView{
			Name:  name,
			Start: g.point(ev.Start).Name,
			End:   g.point(ev.End).Name,
		})
	}
	return views
}
