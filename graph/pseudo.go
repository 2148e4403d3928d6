// SPDX-License-Identifier: MIT
package graph

import "github.com/katalvlaran/timegraph/predicate"

// pseudoAnchor returns p's pseudo-time to use as the base for an allocation
// relative to p, special-casing a chain's first point: per the Python
// original's pseudo_before/pseudo_after/pseudo_between, a point whose pseudo
// equals the chain's PseudoInit is treated as if its current pseudo were 0,
// so its immediate neighbors land exactly at +/-Step rather than
// PseudoInit+/-Step.
func (g *TimeGraph) pseudoAnchor(p *TimePoint) int64 {
	if p.Pseudo == g.cfg.PseudoInit {
		return 0
	}
	return p.Pseudo
}

// pseudoBefore allocates the pseudo-time for a new point placed immediately
// before y on y's chain.
func (g *TimeGraph) pseudoBefore(y *TimePoint) int64 {
	return g.pseudoAnchor(y) - g.cfg.Step
}

// pseudoAfter allocates the pseudo-time for a new point placed immediately
// after y on y's chain.
func (g *TimeGraph) pseudoAfter(y *TimePoint) int64 {
	return g.pseudoAnchor(y) + g.cfg.Step
}

// pseudoBetween allocates the pseudo-time for a new point placed between
// adjacent same-chain points y1 (earlier) and y2 (later), renumbering the
// chain first if the gap is too tight to subdivide.
func (g *TimeGraph) pseudoBetween(chainID ChainID, y1, y2 *TimePoint) int64 {
	if y2.Pseudo-y1.Pseudo < 10 {
		g.renumber(chainID)
		// y1/y2 may have moved; re-read their pseudo through the arena.
		y1, y2 = g.point(y1.ID), g.point(y2.ID)
	}
	gap := y2.Pseudo - y1.Pseudo
	return g.pseudoAnchor(y1) + int64(0.9*float64(gap))
}

// renumber resets chainID's pseudo-times to PseudoInit, PseudoInit+Step,
// PseudoInit+2*Step, ... walking only the first in-chain descendant at each
// step (transitive branches, if any, are left to a later renumber), per the
// supplemented-features note carried from MetaNode.renumber.
func (g *TimeGraph) renumber(chainID ChainID) {
	c := g.chain(chainID)
	if c.First == NoPoint {
		return
	}
	g.log.Infof("graph: renumbering chain %d", chainID)
	pseudo := g.cfg.PseudoInit
	cur := c.First
	for cur != NoPoint {
		p := g.point(cur)
		p.Pseudo = pseudo
		pseudo += g.cfg.Step
		next := p.Descendants.first()
		if next == NoLink {
			break
		}
		cur = g.link(next).To
	}
}

// updateFirst updates chainID's First pointer if p turns out to precede the
// chain's currently recorded first point, per TimePoint.update_first.
func (g *TimeGraph) updateFirst(chainID ChainID, p *TimePoint) {
	c := g.chain(chainID)
	if c.First == NoPoint || p.Pseudo < g.point(c.First).Pseudo {
		c.First = p.ID
	}
}

// addStrictness tightens p and q's pseudo bounds when p is known to be
// strictly before q on the same chain, and propagates the tightening along
// the chain in both directions, per §4.3. Propagation stops as soon as a
// step fails to tighten anything further (monotonicity guarantees
// termination).
func (g *TimeGraph) addStrictness(p, q *TimePoint) {
	if q.MinPseudo < p.Pseudo {
		q.MinPseudo = p.Pseudo
		g.propagateMinPseudoForward(q)
	}
	if p.MaxPseudo > q.Pseudo {
		p.MaxPseudo = q.Pseudo
		g.propagateMaxPseudoBackward(p)
	}
}

// propagateMinPseudoForward pushes start's MinPseudo forward along
// descendant links with a work-queue rather than recursion, per the Design
// Notes' call for iterative propagation (§9): every point whose MinPseudo
// is actually tightened is enqueued once, so a point with many converging
// paths is only ever requeued when a later path tightens it further.
func (g *TimeGraph) propagateMinPseudoForward(start *TimePoint) {
	queue := []*TimePoint{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, lid := range p.Descendants {
			succ := g.point(g.link(lid).To)
			if succ.MinPseudo >= p.MinPseudo {
				continue
			}
			succ.MinPseudo = p.MinPseudo
			queue = append(queue, succ)
		}
	}
}

// propagateMaxPseudoBackward is the mirror of propagateMinPseudoForward,
// pushing start's MaxPseudo backward along ancestor links.
func (g *TimeGraph) propagateMaxPseudoBackward(start *TimePoint) {
	queue := []*TimePoint{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, lid := range p.Ancestors {
			pred := g.point(g.link(lid).From)
			if pred.MaxPseudo <= p.MaxPseudo {
				continue
			}
			pred.MaxPseudo = p.MaxPseudo
			queue = append(queue, pred)
		}
	}
}

// findPseudo compares p and q, which must be on the same chain, by
// pseudo-time alone: equal pseudo is same-time; otherwise before/after,
// qualified strict ("-1") unless the looser point's bound range still
// leaves room for equality.
func (g *TimeGraph) findPseudo(p, q *TimePoint) predicate.Predicate {
	switch {
	case p.Pseudo == q.Pseudo:
		return predicate.Predicate{Stem: predicate.StemSameTime}
	case p.Pseudo < q.Pseudo:
		if q.Pseudo < p.MaxPseudo {
			return predicate.Predicate{Stem: predicate.StemBefore}
		}
		return predicate.Predicate{Stem: predicate.StemBefore, S1: predicate.Strict}
	default:
		if p.Pseudo < q.MaxPseudo {
			return predicate.Predicate{Stem: predicate.StemAfter}
		}
		return predicate.Predicate{Stem: predicate.StemAfter, S1: predicate.Strict}
	}
}
