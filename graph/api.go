// SPDX-License-Identifier: MIT
package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/timegraph/abstime"
)

// point, link and chain are the arena accessors every other file in this
// package uses instead of touching the slices directly. They panic on an
// out-of-range ID, which can only happen from a bug inside this package
// (every exported entry point validates names before producing IDs) — never
// from caller input.
func (g *TimeGraph) point(id PointID) *TimePoint {
	return g.points[id]
}

func (g *TimeGraph) link(id LinkID) *TimeLink {
	return g.links[id]
}

func (g *TimeGraph) chain(id ChainID) *Chain {
	return g.chains[id]
}

// newChain appends a fresh Chain with no members yet and returns its ID.
// Constructing a new, empty TimeLinkList here (rather than sharing one
// across chains) is the fix for the mutable-default-argument bug the
// Design Notes flag in the source's MetaNode constructor.
func (g *TimeGraph) newChain() ChainID {
	id := ChainID(len(g.chains))
	g.chains = append(g.chains, &Chain{ID: id, First: NoPoint, Connections: nil})
	return id
}

// newPoint appends a fresh, unlinked TimePoint on the given chain and
// registers name in the name dictionary.
func (g *TimeGraph) newPoint(name string, chainID ChainID, pseudo int64) *TimePoint {
	id := PointID(len(g.points))
	p := &TimePoint{
		ID:             id,
		Name:           name,
		Chain:          chainID,
		Pseudo:         pseudo,
		MinPseudo:      minInt64,
		MaxPseudo:      maxInt64,
		AbsoluteMin:    abstime.Unknown(),
		AbsoluteMax:    abstime.Unknown(),
		AlternateNames: map[string]struct{}{name: {}},
	}
	g.points = append(g.points, p)
	g.names[name] = id
	return p
}

// newLink appends a fresh TimeLink and returns its ID. It does not insert
// the link into any TimeLinkList — callers decide which lists (ancestors,
// descendants, xancestors, xdescendants, chain connections) it belongs to.
func (g *TimeGraph) newLink(from, to PointID, strict bool) *TimeLink {
	id := LinkID(len(g.links))
	l := &TimeLink{ID: id, From: from, To: to, Strict: strict, DMin: 0, DMax: posInf}
	g.links = append(g.links, l)
	return l
}

// resolvePoint looks up name in the name dictionary. ok is false if name has
// never been seen.
func (g *TimeGraph) resolvePoint(name string) (PointID, bool) {
	id, ok := g.names[name]
	return id, ok
}

// AddSingle creates a new chain containing a single, freshly-named point and
// returns its name. If name already exists, AddSingle is a no-op returning
// the existing point's canonical name (its first-seen name, which may
// differ from name if name was collapsed into another point via Enter's
// equal handling).
func (g *TimeGraph) AddSingle(name string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addSingle(name)
}

func (g *TimeGraph) addSingle(name string) string {
	if id, ok := g.resolvePoint(name); ok {
		return g.point(id).Name
	}
	chainID := g.newChain()
	p := g.newPoint(name, chainID, g.cfg.PseudoInit)
	g.chain(chainID).First = p.ID
	return p.Name
}

// RegisterEvent creates an EventPoint named name, with start/end TimePoints
// named name+"start" and name+"end" (created via AddSingle if not already
// present), matching the naming convention confirmed by the Python original.
func (g *TimeGraph) RegisterEvent(name string) *EventPoint {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ev, ok := g.events[name]; ok {
		return ev
	}
	startName := g.addSingle(name + "start")
	endName := g.addSingle(name + "end")
	startID, _ := g.resolvePoint(startName)
	endID, _ := g.resolvePoint(endName)
	// Establish start <= end immediately, per EventPoint's documented
	// invariant ("maintained by every operation that touches it") — without
	// this, a freshly registered event's start/end are two unrelated
	// single-point chains and Relation(start, end) reports "unknown" until
	// some later Enter call happens to link them.
	g.linkPoints(startID, endID, false)
	ev := &EventPoint{Name: name, Start: startID, End: endID}
	g.events[name] = ev
	return ev
}

// StartOf returns the canonical name of event name's start point.
func (g *TimeGraph) StartOf(name string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ev, ok := g.events[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrEventNotFound, name)
	}
	return g.point(ev.Start).Name, nil
}

// EndOf returns the canonical name of event name's end point.
func (g *TimeGraph) EndOf(name string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ev, ok := g.events[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrEventNotFound, name)
	}
	return g.point(ev.End).Name, nil
}

const (
	minInt64 = -1 << 62
	maxInt64 = 1<<62 - 1
)

var posInf = math.Inf(1)
