// SPDX-License-Identifier: MIT
package graph

import (
	"math"

	"github.com/katalvlaran/timegraph/abstime"
	"github.com/katalvlaran/timegraph/predicate"
)

// Relation resolves a1 and a2 (points, events, or literal absolute times)
// and returns the strongest predicate string derivable between them, per
// §4.7. effort == 0 restricts the search to O(1) pseudo-time/bound
// comparisons; effort > 0 additionally tries a bounded cross-chain path
// search. Relation never errors on missing information — it returns
// "unknown" — but does error (ErrPointNotFound wrapped) if a name was never
// registered at all.
func (g *TimeGraph) Relation(a1 TimeArg, a2 TimeArg, effort int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r1, err := g.resolve(a1, false)
	if err != nil {
		return "", err
	}
	r2, err := g.resolve(a2, false)
	if err != nil {
		return "", err
	}

	if r1.kind == resolvedAbs && r2.kind == resolvedAbs {
		return orderToPredicateString(abstime.Compare(r1.abs, r2.abs)), nil
	}
	if r1.kind == resolvedAbs || r2.kind == resolvedAbs {
		return g.relationAgainstAbs(r1, r2)
	}
	if r1.kind == resolvedEvent || r2.kind == resolvedEvent {
		return g.relationIntervals(r1, r2, effort)
	}

	pred := g.findReln(g.point(r1.point), g.point(r2.point), effort, map[relKey]predicate.Predicate{})
	s, err := predicate.Build(pred.Stem, pred.S1, pred.S2)
	if err != nil {
		return "unknown", nil
	}
	return s, nil
}

// Elapsed returns the minimum and maximum number of seconds that may have
// elapsed from a1 to a2 (for an event, from a1's end and to a2's start).
// The bound derived from absolute times is a nonnegative magnitude in
// either order; the link search at effort > 0 only follows links from a1
// toward a2, so a2 preceding a1 gets no tightening from it.
func (g *TimeGraph) Elapsed(a1, a2 TimeArg, effort int) (min, max float64, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r1, err := g.resolve(a1, false)
	if err != nil {
		return 0, 0, err
	}
	r2, err := g.resolve(a2, false)
	if err != nil {
		return 0, 0, err
	}
	if r1.kind == resolvedAbs && r2.kind == resolvedAbs {
		return abstime.DurationMin(r1.abs, r2.abs), abstime.DurationMax(r1.abs, r2.abs), nil
	}
	_, e1, err := startEnd(r1)
	if err != nil {
		return 0, 0, err
	}
	s2, _, err := startEnd(r2)
	if err != nil {
		return 0, 0, err
	}
	return g.calcDuration(g.point(e1), g.point(s2), effort)
}

func orderToPredicateString(o abstime.Order) string {
	switch o {
	case abstime.OrderEqual:
		return "equal"
	case abstime.OrderBefore:
		return "before-1"
	case abstime.OrderAfter:
		return "after-1"
	default:
		return "unknown"
	}
}

// relationAgainstAbs tightens/compares a point or event's bounds against a
// literal AbsTime, per §4.7's "one AbsTime, other point/event" case.
func (g *TimeGraph) relationAgainstAbs(r1, r2 resolved) (string, error) {
	pointSide, abs, pointFirst := r1, r2.abs, true
	if r1.kind == resolvedAbs {
		pointSide, abs, pointFirst = r2, r1.abs, false
	}
	start, end, err := startEnd(pointSide)
	if err != nil {
		return "", err
	}
	s, e := g.point(start), g.point(end)
	beforeAll := abstime.Compare(e.AbsoluteMax, abs)
	afterAll := abstime.Compare(s.AbsoluteMin, abs)
	switch {
	case beforeAll == abstime.OrderBefore:
		if pointFirst {
			return "before-1", nil
		}
		return "after-1", nil
	case afterAll == abstime.OrderAfter:
		if pointFirst {
			return "after-1", nil
		}
		return "before-1", nil
	case beforeAll == abstime.OrderEqual && afterAll == abstime.OrderEqual:
		return "same-time", nil
	default:
		return "unknown", nil
	}
}

// relationIntervals computes the four underlying point relations between
// two interval-like arguments (end1-start2, start1-end2, start1-start2,
// end1-end2) and classifies them into one of the containment/sequence
// predicates, carrying each underlying relation's strictness into the
// result. Arguments that
// don't fit any of the recognized shapes return "unknown" rather than an
// error, matching §7's "queries never raise on missing data."
func (g *TimeGraph) relationIntervals(r1, r2 resolved, effort int) (string, error) {
	s1, e1, err := startEnd(r1)
	if err != nil {
		return "", err
	}
	s2, e2, err := startEnd(r2)
	if err != nil {
		return "", err
	}
	relTable := map[relKey]predicate.Predicate{}
	endStart := g.findReln(g.point(e1), g.point(s2), effort, relTable)
	startEndR := g.findReln(g.point(s1), g.point(e2), effort, relTable)
	startStart := g.findReln(g.point(s1), g.point(s2), effort, relTable)
	endEnd := g.findReln(g.point(e1), g.point(e2), effort, relTable)

	isBefore := func(p predicate.Predicate) bool { return p.Stem == predicate.StemBefore }
	isAfter := func(p predicate.Predicate) bool { return p.Stem == predicate.StemAfter }
	isSame := func(p predicate.Predicate) bool { return p.Stem == predicate.StemSameTime }

	switch {
	case isBefore(endStart):
		return buildOrUnknown(predicate.StemBefore, endStart.S1, predicate.Unknown)
	case isAfter(startEndR):
		return buildOrUnknown(predicate.StemAfter, startEndR.S1, predicate.Unknown)
	case isSame(startStart) && isSame(endEnd):
		return "same-time", nil
	case isBefore(startStart) && isAfter(endEnd):
		return buildOrUnknown(predicate.StemContains, startStart.S1, endEnd.S1)
	case isAfter(startStart) && isBefore(endEnd):
		return buildOrUnknown(predicate.StemDuring, startStart.S1, endEnd.S1)
	case isBefore(startStart) && !isBefore(endStart) && isBefore(endEnd):
		return buildOrUnknown(predicate.StemOverlaps, startStart.S1, endEnd.S1)
	case isAfter(startStart) && isAfter(endEnd):
		return buildOrUnknown(predicate.StemOverlappedBy, startStart.S1, endEnd.S1)
	default:
		return "unknown", nil
	}
}

func buildOrUnknown(stem predicate.Stem, s1, s2 predicate.Strictness) (string, error) {
	s, err := predicate.Build(stem, s1, s2)
	if err != nil {
		return "unknown", nil
	}
	return s, nil
}

// findReln returns the strongest derivable predicate between p and q, per
// §4.7's five-step algorithm. relTable is the per-top-level-call
// memoization table (never stored on TimeGraph, per the Design Notes'
// "rel_table as instance state is a concurrency hazard; make it a per-call
// argument").
func (g *TimeGraph) findReln(p, q *TimePoint, effort int, relTable map[relKey]predicate.Predicate) predicate.Predicate {
	if p.ID == q.ID {
		return predicate.Predicate{Stem: predicate.StemSameTime}
	}
	if p.Chain == q.Chain {
		return g.findPseudo(p, q)
	}
	backup := g.compareAbsolute(p, q)
	if backup.Stem == predicate.StemSameTime && effort <= 0 {
		return backup
	}
	if effort > 0 {
		if found, ok := g.searchPath(p, q, relTable); ok {
			return found
		}
		if found, ok := g.searchPath(q, p, relTable); ok {
			return predicate.Inverse(found)
		}
	}
	if backup.Stem != predicate.StemUnknown {
		return backup
	}
	return predicate.Predicate{Stem: predicate.StemUnknown}
}

// hasAbsoluteInfo reports whether p carries any absolute-time constraint at
// all. Guards compareAbsolute against points that have never had an
// absolute bound asserted: abstime.Compare(Unknown, Unknown) is OrderEqual
// (agreement on every slot being unknown), which would otherwise let two
// completely unconstrained points vacuously compare as same-time or
// meeting.
func hasAbsoluteInfo(p *TimePoint) bool {
	return p.AbsoluteMin != abstime.Unknown() || p.AbsoluteMax != abstime.Unknown()
}

// compareAbsolute compares p and q by absolute-time bounds alone, used both
// as findReln's step 3 and as a fallback when path search finds nothing.
func (g *TimeGraph) compareAbsolute(p, q *TimePoint) predicate.Predicate {
	if !hasAbsoluteInfo(p) || !hasAbsoluteInfo(q) {
		return predicate.Predicate{Stem: predicate.StemUnknown}
	}
	if abstime.Compare(p.AbsoluteMax, q.AbsoluteMin) == abstime.OrderBefore {
		return predicate.Predicate{Stem: predicate.StemBefore, S1: predicate.Strict}
	}
	if abstime.Compare(p.AbsoluteMin, q.AbsoluteMax) == abstime.OrderAfter {
		return predicate.Predicate{Stem: predicate.StemAfter, S1: predicate.Strict}
	}
	if abstime.Compare(p.AbsoluteMin, q.AbsoluteMin) == abstime.OrderEqual &&
		abstime.Compare(p.AbsoluteMax, q.AbsoluteMax) == abstime.OrderEqual {
		return predicate.Predicate{Stem: predicate.StemSameTime}
	}
	// "Meets" case, per §4.1: p's latest possible instant exactly equals q's
	// earliest (or vice versa) without the rest of the bounds coinciding.
	// That is a legitimately derivable non-strict before/after, not unknown.
	if abstime.Compare(p.AbsoluteMax, q.AbsoluteMin) == abstime.OrderEqual {
		return predicate.Predicate{Stem: predicate.StemBefore, S1: predicate.Equal}
	}
	if abstime.Compare(p.AbsoluteMin, q.AbsoluteMax) == abstime.OrderEqual {
		return predicate.Predicate{Stem: predicate.StemAfter, S1: predicate.Equal}
	}
	return predicate.Predicate{Stem: predicate.StemUnknown}
}

// searchPath is the top-level entry to the bounded cross-chain DFS,
// initializing the visited-chain set with p's own chain.
func (g *TimeGraph) searchPath(p, q *TimePoint, relTable map[relKey]predicate.Predicate) (predicate.Predicate, bool) {
	visited := map[ChainID]bool{p.Chain: true}
	return g.searchMeta(p, q, visited, predicate.Predicate{Stem: predicate.StemSameTime}, relTable)
}

// relKey memoizes searchMeta by the (source, target) pair it was computed
// for — keying by source alone would let a relation cached while searching
// toward one target get reused for a later search from the same source
// toward a different target.
type relKey struct {
	from, to PointID
}

// searchMeta performs the depth-first search over chain.Connections
// described in §4.7. It returns the first strict path it finds
// immediately; a non-strict path is remembered and search continues,
// hoping to upgrade it, until every connection has been tried.
func (g *TimeGraph) searchMeta(p, q *TimePoint, visited map[ChainID]bool, sofar predicate.Predicate, relTable map[relKey]predicate.Predicate) (predicate.Predicate, bool) {
	key := relKey{from: p.ID, to: q.ID}
	if cached, ok := relTable[key]; ok {
		return cached, true
	}
	var best predicate.Predicate
	found := false
	for _, lid := range g.chain(p.Chain).Connections {
		l := g.link(lid)
		u, v := g.point(l.From), g.point(l.To)
		path1 := g.findPseudo(p, u)
		if !(path1.Stem == predicate.StemSameTime || path1.Stem == predicate.StemBefore) {
			continue
		}
		legStrict := predicate.CombineStrict(combinedStrictness(sofar), combinedStrictness(path1))
		if l.Strict {
			legStrict = predicate.Strict
		}
		newSofar := predicate.Predicate{Stem: predicate.StemBefore, S1: legStrict}

		if v.Chain == q.Chain {
			path2 := g.findPseudo(v, q)
			if path2.Stem != predicate.StemSameTime && path2.Stem != predicate.StemBefore {
				continue
			}
			combined := predicate.Predicate{
				Stem: predicate.StemBefore,
				S1:   predicate.CombineStrict(legStrict, combinedStrictness(path2)),
			}
			if combined.S1 == predicate.Strict {
				relTable[key] = combined
				return combined, true
			}
			best, found = combined, true
			continue
		}
		if visited[v.Chain] {
			continue
		}
		visited[v.Chain] = true
		sub, ok := g.searchMeta(v, q, visited, newSofar, relTable)
		if !ok {
			continue
		}
		if sub.S1 == predicate.Strict {
			relTable[key] = sub
			return sub, true
		}
		best, found = sub, true
	}
	if found {
		relTable[key] = best
	}
	return best, found
}

// combinedStrictness reads the strictness a "before"/"same-time" leg
// predicate carries, treating same-time as Equal.
func combinedStrictness(p predicate.Predicate) predicate.Strictness {
	if p.Stem == predicate.StemSameTime {
		return predicate.Equal
	}
	return p.S1
}

// calcDuration returns the tightest known (min, max) duration bound between
// p and q, per §4.7's calc_duration: start from the bound absolute times
// imply, then (if loose and effort allows) deepen with a descendant-link
// path search.
func (g *TimeGraph) calcDuration(p, q *TimePoint, effort int) (min, max float64, err error) {
	min = abstime.DurationMin(p.AbsoluteMax, q.AbsoluteMin)
	max = abstime.DurationMax(p.AbsoluteMin, q.AbsoluteMax)
	if effort > 0 && (min == 0 || math.IsInf(max, 1)) {
		if sMin, sMax, ok := g.searchForDuration(p, q, map[PointID]bool{p.ID: true}); ok {
			if sMin > min {
				min = sMin
			}
			if sMax < max {
				max = sMax
			}
		}
	}
	return min, max, nil
}

// searchForDuration depth-first enumerates descendant and cross-chain
// descendant links out of p, summing each link's best-known duration bound,
// looking for q. It keeps the tightest (max-of-mins, min-of-maxes) across
// every path found; a point is never visited twice within one path, but may
// be reached again along a different path.
func (g *TimeGraph) searchForDuration(p, q *TimePoint, visited map[PointID]bool) (min, max float64, found bool) {
	min, max = 0, math.Inf(1)
	found = false
	consider := func(lid LinkID) {
		l := g.link(lid)
		if visited[l.To] {
			return
		}
		to := g.point(l.To)
		legMin, legMax := g.bestDuration(l)
		if to.ID == q.ID {
			if !found || legMin > min {
				min = legMin
			}
			if !found || legMax < max {
				max = legMax
			}
			found = true
			return
		}
		visited[to.ID] = true
		subMin, subMax, ok := g.searchForDuration(to, q, visited)
		visited[to.ID] = false
		if !ok {
			return
		}
		totalMin, totalMax := legMin+subMin, legMax+subMax
		if !found || totalMin > min {
			min = totalMin
		}
		if !found || totalMax < max {
			max = totalMax
		}
		found = true
	}
	for _, lid := range p.Descendants {
		consider(lid)
	}
	for _, lid := range p.XDescendants {
		consider(lid)
	}
	return min, max, found
}

// bestDuration returns link's best-known duration bound: the tighter of its
// stored (DMin, DMax) and the bound implied by comparing its endpoints'
// absolute times, matching get_best_duration.
func (g *TimeGraph) bestDuration(l *TimeLink) (min, max float64) {
	from, to := g.point(l.From), g.point(l.To)
	absMin := abstime.DurationMin(from.AbsoluteMax, to.AbsoluteMin)
	absMax := abstime.DurationMax(from.AbsoluteMin, to.AbsoluteMax)
	min = l.DMin
	if absMin > min {
		min = absMin
	}
	max = l.DMax
	if absMax < max {
		max = absMax
	}
	return min, max
}
