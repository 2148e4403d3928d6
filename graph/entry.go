// SPDX-License-Identifier: MIT
package graph

import (
	"github.com/katalvlaran/timegraph/predicate"
)

// Enter asserts a temporal relation between a1 and a2 (and, for the
// "between" family, a3), translating it into point-level relations per the
// rewrite table in the originating specification §4.6. It returns whether
// the relation was accepted — true whenever the returned error is nil.
// Failures (an unsupported predicate, a between without its third argument,
// an argument of the wrong kind) are surfaced as an error with false.
//
// A relation that contradicts an already-derivable one is never rejected
// outright: check_inconsistent (§4.6/§7) softens it to equality first. That
// softening is silent by design; callers who want to observe it should pass
// a logger via WithLogger, which receives a Warningf call when it happens.
func (g *TimeGraph) Enter(a1 TimeArg, reln string, a2 TimeArg, a3 ...TimeArg) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	pred, err := predicate.Split(reln)
	if err != nil {
		return false, wrapf(ErrUnsupportedPredicate, "Enter(%q): %v", reln, err)
	}

	if pred.Stem == predicate.StemBetween {
		if len(a3) == 0 {
			return false, wrapf(ErrMissingPoint, "between requires a third argument")
		}
		return g.enterBetweenArgs(a1, a2, a3[0])
	}

	// before/after create a missing endpoint adjacent to the existing one
	// (chain minimisation), so they resolve lazily rather than through the
	// generic auto-create-a-fresh-chain path below — but only when both
	// sides are points/events; before/after against a literal AbsTime has
	// no endpoint to create and falls through to enterAbsolute instead.
	if (pred.Stem == predicate.StemBefore || pred.Stem == predicate.StemAfter) &&
		a1.kind != kindAbs && a2.kind != kindAbs {
		return g.enterBeforeAfterArgs(pred, a1, a2)
	}

	r1, err := g.resolve(a1, true)
	if err != nil {
		return false, err
	}
	r2, err := g.resolve(a2, true)
	if err != nil {
		return false, err
	}

	if r1.kind == resolvedAbs || r2.kind == resolvedAbs {
		return g.enterAbsolute(pred, r1, r2)
	}

	if predicate.IsEquiv(pred.Stem) {
		return g.enterEqualArgs(r1, r2)
	}

	return g.enterIntervalArgs(pred, r1, r2)
}

// enterBetweenArgs handles the point-level and event-level "between" stem:
// a2 precedes a1 (middle) precedes a3, read "a1 between a2 and a3" per §4.6.
func (g *TimeGraph) enterBetweenArgs(a1, a2, a3 TimeArg) (bool, error) {
	r1, err := g.resolve(a1, true)
	if err != nil {
		return false, err
	}
	r2, err := g.resolve(a2, true)
	if err != nil {
		return false, err
	}
	r3, err := g.resolve(a3, true)
	if err != nil {
		return false, err
	}
	if r1.kind == resolvedEvent || r2.kind == resolvedEvent || r3.kind == resolvedEvent {
		_, e1, err := startEnd(r1)
		if err != nil {
			return false, err
		}
		_, e2, err := startEnd(r2)
		if err != nil {
			return false, err
		}
		s3, _, err := startEnd(r3)
		if err != nil {
			return false, err
		}
		// a1.end between a2.end & a3.start, per the rewrite table.
		g.addBetween(e1, e2, s3)
		return true, nil
	}
	g.addBetween(r1.point, r2.point, r3.point)
	return true, nil
}

// enterBeforeAfterArgs links a1/a2 per the before/after rewrite. When either
// side is an Event, it rewrites to the event's start/end per §4.6's "applied
// between an event's start/end names" ("a1 before a2" becomes "a1.end before
// a2.start", "a1 after a2" becomes "a2.end before a1.start") rather than
// falling into the name-based path, which only ever looks names up in the
// point dictionary and would silently miss a registered event entirely.
// Otherwise both sides resolve lazily by name (creating a missing endpoint
// adjacent to the existing one, per chain minimisation).
func (g *TimeGraph) enterBeforeAfterArgs(pred predicate.Predicate, a1, a2 TimeArg) (bool, error) {
	strict := pred.S1 == predicate.Strict

	if g.isEventArg(a1) || g.isEventArg(a2) {
		r1, err := g.resolve(a1, true)
		if err != nil {
			return false, err
		}
		r2, err := g.resolve(a2, true)
		if err != nil {
			return false, err
		}
		s1, e1, err := startEnd(r1)
		if err != nil {
			return false, err
		}
		s2, e2, err := startEnd(r2)
		if err != nil {
			return false, err
		}
		if pred.Stem == predicate.StemBefore {
			g.linkPoints(e1, s2, strict)
		} else {
			g.linkPoints(e2, s1, strict)
		}
		return true, nil
	}

	name1, ok1 := g.argName(a1)
	name2, ok2 := g.argName(a2)
	if !ok1 || !ok2 {
		return false, wrapf(ErrInvalidArgument, "before/after requires named points or events")
	}
	if pred.Stem == predicate.StemBefore {
		g.linkNamed(name1, name2, strict)
	} else {
		g.linkNamed(name2, name1, strict)
	}
	return true, nil
}

func (g *TimeGraph) argName(a TimeArg) (string, bool) {
	if a.kind != kindName {
		return "", false
	}
	return a.name, true
}

// isEventArg reports whether a names an already-registered Event, without
// creating anything — used to route before/after to the event rewrite
// before the plain-point lazy-creation path runs.
func (g *TimeGraph) isEventArg(a TimeArg) bool {
	if a.kind != kindName {
		return false
	}
	_, ok := g.events[a.name]
	return ok
}

// enterAbsolute handles a predicate between a point/event and a literal
// AbsTime, updating only the appropriate bound on the point side — e.g.
// "before abs" tightens the point's absolute-maximum, per §4.6's closing
// paragraph.
func (g *TimeGraph) enterAbsolute(pred predicate.Predicate, r1, r2 resolved) (bool, error) {
	pointSide, abs, pointIsFirst := r1, r2.abs, true
	if r1.kind == resolvedAbs {
		pointSide, abs, pointIsFirst = r2, r1.abs, false
	}
	start, end, err := startEnd(pointSide)
	if err != nil {
		return false, err
	}
	switch pred.Stem {
	case predicate.StemEqual, predicate.StemSameTime, predicate.StemAt, predicate.StemExactly:
		g.updateAbsoluteMin(g.point(start), abs)
		g.updateAbsoluteMax(g.point(start), abs)
		if end != start {
			g.updateAbsoluteMin(g.point(end), abs)
			g.updateAbsoluteMax(g.point(end), abs)
		}
	case predicate.StemBefore:
		if pointIsFirst {
			g.updateAbsoluteMax(g.point(end), abs)
		} else {
			g.updateAbsoluteMin(g.point(start), abs)
		}
	case predicate.StemAfter:
		if pointIsFirst {
			g.updateAbsoluteMin(g.point(start), abs)
		} else {
			g.updateAbsoluteMax(g.point(end), abs)
		}
	default:
		return false, wrapf(ErrInvalidArgument, "predicate %q not supported against a literal absolute time", pred.Stem)
	}
	return true, nil
}

// enterEqualArgs implements check_equal: aliasing a new name onto an
// existing point, or collapsing two existing points (same chain or
// different chains) into one, per §4.6.
func (g *TimeGraph) enterEqualArgs(r1, r2 resolved) (bool, error) {
	if r1.kind == resolvedEvent || r2.kind == resolvedEvent {
		s1, e1, err := startEnd(r1)
		if err != nil {
			return false, err
		}
		s2, e2, err := startEnd(r2)
		if err != nil {
			return false, err
		}
		g.checkEqual(s1, s2)
		g.checkEqual(e1, e2)
		return true, nil
	}
	g.checkEqual(r1.point, r2.point)
	return true, nil
}

// enterIntervalArgs implements the containment/sequence rewrite table
// (during/contains/overlaps/overlapped-by) for two interval-like arguments
// (events, or bare points treated as degenerate zero-width intervals).
func (g *TimeGraph) enterIntervalArgs(pred predicate.Predicate, r1, r2 resolved) (bool, error) {
	s1, e1, err := startEnd(r1)
	if err != nil {
		return false, err
	}
	s2, e2, err := startEnd(r2)
	if err != nil {
		return false, err
	}
	switch pred.Stem {
	case predicate.StemDuring:
		g.addBetween(s1, s2, e2)
		g.addBetween(e1, s1, e2)
	case predicate.StemContains:
		g.linkPoints(s1, s2, pred.S1 == predicate.Strict)
		g.linkPoints(e2, e1, pred.S2 == predicate.Strict)
	case predicate.StemOverlaps:
		g.addBetween(e1, s2, e2)
		g.linkPoints(s1, s2, pred.S1 == predicate.Strict)
	case predicate.StemOverlappedBy:
		g.addBetween(s1, s2, e2)
		g.linkPoints(e2, e1, pred.S1 == predicate.Strict)
	default:
		return false, wrapf(ErrUnsupportedPredicate, "%q", pred.Stem)
	}
	return true, nil
}

// startEnd returns the (start, end) point-ID pair for a resolved argument:
// an EventPoint's own start/end, or a bare point treated as a degenerate
// interval with start == end.
func startEnd(r resolved) (start, end PointID, err error) {
	switch r.kind {
	case resolvedEvent:
		return r.event.Start, r.event.End, nil
	case resolvedPoint:
		return r.point, r.point, nil
	default:
		return NoPoint, NoPoint, wrapf(ErrInvalidArgument, "expected a point or event, got a literal absolute time")
	}
}

// linkNamed resolves two names (creating a missing one adjacent to the
// other, per chain minimisation) and links them fromName -> toName.
func (g *TimeGraph) linkNamed(fromName, toName string, strict bool) {
	fromID, fromExists := g.resolvePoint(fromName)
	toID, toExists := g.resolvePoint(toName)
	switch {
	case fromExists && toExists:
	case fromExists && !toExists:
		toID = g.newAdjacent(toName, fromID, true)
	case !fromExists && toExists:
		fromID = g.newAdjacent(fromName, toID, false)
	default:
		from := g.addSingle(fromName)
		fromID, _ = g.resolvePoint(from)
		toID = g.newAdjacent(toName, fromID, true)
	}
	g.linkPoints(fromID, toID, strict)
}

// newAdjacent creates a new point on anchor's chain, immediately before or
// after it (after == true places the new point later in pseudo-time), when
// anchor is the last (after) or first (before) point of its chain. When
// anchor already has an in-chain neighbour on that side, the new point
// starts a chain of its own instead.
func (g *TimeGraph) newAdjacent(name string, anchor PointID, after bool) PointID {
	a := g.point(anchor)
	if (after && len(a.Descendants) > 0) || (!after && len(a.Ancestors) > 0) {
		id, _ := g.resolvePoint(g.addSingle(name))
		return id
	}
	var pseudo int64
	if after {
		pseudo = g.pseudoAfter(a)
	} else {
		pseudo = g.pseudoBefore(a)
	}
	p := g.newPoint(name, a.Chain, pseudo)
	g.updateFirst(a.Chain, p)
	return p.ID
}

// linkPoints is the point-level primitive behind before/after: ensure a
// TimeLink from -> to exists (creating one if absent), with check_inconsistent
// consulted first, then chain-aware list bookkeeping and strictness
// propagation.
func (g *TimeGraph) linkPoints(fromID, toID PointID, strict bool) {
	if fromID == toID {
		return
	}
	if g.checkInconsistent(fromID, toID, strict) {
		return
	}
	from, to := g.point(fromID), g.point(toID)
	l := g.newLink(fromID, toID, strict)
	if from.Chain == to.Chain {
		g.insertLink(&from.Descendants, l.ID)
		g.insertLink(&to.Ancestors, l.ID)
		if strict {
			g.addStrictness(from, to)
		}
	} else {
		g.insertLink(&from.XDescendants, l.ID)
		g.insertLink(&to.XAncestors, l.ID)
		g.insertLink(&g.chain(from.Chain).Connections, l.ID)
	}
	g.updateAbsoluteMax(from, to.AbsoluteMax)
	g.updateAbsoluteMin(to, from.AbsoluteMin)
}

// checkInconsistent consults the cheap pseudo-time-only relation between
// fromID and toID (when on the same chain) and, if asserting "fromID before
// toID" would contradict an already-derivable "toID before fromID",
// silently weakens the new assertion to equality instead of linking, per
// §4.6/§7. It returns true if it handled the assertion (by softening),
// false if the caller should proceed with a normal link.
func (g *TimeGraph) checkInconsistent(fromID, toID PointID, strict bool) bool {
	from, to := g.point(fromID), g.point(toID)
	if from.Chain != to.Chain {
		return false
	}
	existing := g.findPseudo(to, from)
	if existing.Stem != predicate.StemBefore {
		return false
	}
	g.log.Warningf("graph: softening contradictory before(%s,%s) to equal", from.Name, to.Name)
	g.checkEqual(fromID, toID)
	return true
}

// checkEqual collapses bID into aID: every name of bID becomes an alias of
// aID, bounds are tightened to the stricter of the two, and (for different
// chains) bID's links are repointed onto aID.
func (g *TimeGraph) checkEqual(aID, bID PointID) {
	if aID == bID {
		return
	}
	survivor, collapsed := g.point(aID), g.point(bID)
	if survivor.Chain == collapsed.Chain {
		g.collapseSameChain(survivor, collapsed)
		return
	}
	g.collapseCrossChain(survivor, collapsed)
}

func (g *TimeGraph) collapseSameChain(survivor, collapsed *TimePoint) {
	g.mergeBoundsInto(survivor, collapsed)
	g.remapName(collapsed, survivor)
}

func (g *TimeGraph) collapseCrossChain(survivor, collapsed *TimePoint) {
	wasFirst := g.chain(collapsed.Chain).First == collapsed.ID
	// Read the in-chain successor now: the relinking below empties
	// collapsed.Descendants.
	nextFirst := NoPoint
	if next := collapsed.Descendants.first(); next != NoLink {
		nextFirst = g.link(next).To
	}
	g.mergeBoundsInto(survivor, collapsed)

	for _, lid := range append(append(TimeLinkList{}, collapsed.Ancestors...), collapsed.XAncestors...) {
		l := g.link(lid)
		g.unlinkFromChainLists(l)
		l.To = survivor.ID
		g.relinkIntoChainLists(l, survivor)
	}
	for _, lid := range append(append(TimeLinkList{}, collapsed.Descendants...), collapsed.XDescendants...) {
		l := g.link(lid)
		g.unlinkFromChainLists(l)
		l.From = survivor.ID
		g.relinkIntoChainLists(l, survivor)
	}

	if wasFirst {
		g.chain(collapsed.Chain).First = nextFirst
	}
	g.remapName(collapsed, survivor)
}

// unlinkFromChainLists removes l from whichever same-chain or cross-chain
// lists it is currently filed under, per its endpoints' chains as they
// stand right now. Called before an endpoint gets repointed during a
// collapse, so the link isn't left behind in its old (now stale) list once
// relinkIntoChainLists re-files it under its post-collapse classification.
func (g *TimeGraph) unlinkFromChainLists(l *TimeLink) {
	from, to := g.point(l.From), g.point(l.To)
	if from.Chain == to.Chain {
		g.removeLink(&from.Descendants, l.ID)
		g.removeLink(&to.Ancestors, l.ID)
	} else {
		g.removeLink(&from.XDescendants, l.ID)
		g.removeLink(&to.XAncestors, l.ID)
		g.removeLink(&g.chain(from.Chain).Connections, l.ID)
	}
}

// relinkIntoChainLists re-files a link whose endpoint was just repointed to
// survivor, since whether it counts as in-chain or cross-chain may have
// changed.
func (g *TimeGraph) relinkIntoChainLists(l *TimeLink, survivor *TimePoint) {
	from, to := g.point(l.From), g.point(l.To)
	if from.Chain == to.Chain {
		g.insertLink(&from.Descendants, l.ID)
		g.insertLink(&to.Ancestors, l.ID)
	} else {
		g.insertLink(&from.XDescendants, l.ID)
		g.insertLink(&to.XAncestors, l.ID)
		g.insertLink(&g.chain(from.Chain).Connections, l.ID)
	}
}

func (g *TimeGraph) mergeBoundsInto(survivor, collapsed *TimePoint) {
	if collapsed.MinPseudo > survivor.MinPseudo {
		survivor.MinPseudo = collapsed.MinPseudo
	}
	if collapsed.MaxPseudo < survivor.MaxPseudo {
		survivor.MaxPseudo = collapsed.MaxPseudo
	}
	g.updateAbsoluteMin(survivor, collapsed.AbsoluteMin)
	g.updateAbsoluteMax(survivor, collapsed.AbsoluteMax)
	for alt := range collapsed.AlternateNames {
		survivor.AlternateNames[alt] = struct{}{}
	}
}

// remapName points every name collapsed.AlternateNames maps to at survivor
// instead, so future lookups of any of collapsed's former names resolve to
// the survivor.
func (g *TimeGraph) remapName(collapsed, survivor *TimePoint) {
	for alt := range collapsed.AlternateNames {
		g.names[alt] = survivor.ID
	}
	g.names[collapsed.Name] = survivor.ID
}

// addBetween places midID between fromID and toID, linking both halves.
// When fromID and toID are adjacent on the same chain, pseudoBetween
// subdivides the gap between them (renumbering first if the gap is too
// tight); otherwise the two links are added without attempting to move
// midID onto either chain.
func (g *TimeGraph) addBetween(midID, fromID, toID PointID) {
	from, to, mid := g.point(fromID), g.point(toID), g.point(midID)
	adjacent := from.Chain == to.Chain && from.Pseudo < to.Pseudo
	for _, p := range g.points {
		if adjacent && p.Chain == from.Chain && g.names[p.Name] == p.ID &&
			p.Pseudo > from.Pseudo && p.Pseudo < to.Pseudo {
			adjacent = false
		}
	}
	if adjacent && mid.Chain != from.Chain {
		mid.Chain = from.Chain
		mid.Pseudo = g.pseudoBetween(from.Chain, from, to)
		mid.MinPseudo, mid.MaxPseudo = minInt64, maxInt64
	}
	g.linkPoints(fromID, midID, false)
	g.linkPoints(midID, toID, false)
}
