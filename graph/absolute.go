// SPDX-License-Identifier: MIT
package graph

import "github.com/katalvlaran/timegraph/abstime"

// absBoundWork is one pending tightening in updateAbsoluteMin/Max's
// work-queue: candidate is the new bound to merge into point.
type absBoundWork struct {
	point     *TimePoint
	candidate abstime.AbsTime
}

// updateAbsoluteMin tightens p's AbsoluteMin to the pointwise-tighter of its
// current value and candidate (clamped to stay <= AbsoluteMax), and, if that
// strictly tightened the bound, propagates the change to p's first in-chain
// descendant and every cross-chain descendant, per §4.5. Propagation uses an
// explicit work-queue rather than recursion, per the Design Notes' call for
// iterative propagation (§9); it terminates because a point is only
// requeued when a step actually tightens its bound further, and bounds only
// ever tighten.
func (g *TimeGraph) updateAbsoluteMin(p *TimePoint, candidate abstime.AbsTime) {
	queue := []absBoundWork{{point: p, candidate: candidate}}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		tightened := abstime.MergeMax(w.candidate, w.point.AbsoluteMin) // pointwise max: never loosen below the old min
		merged := abstime.MergeMin(tightened, w.point.AbsoluteMax)      // clamp: never exceed the paired max
		if merged == w.point.AbsoluteMin {
			continue // no change: MergeMax/MergeMin only ever tighten, so equality means nothing moved
		}
		w.point.AbsoluteMin = merged

		if first := w.point.Descendants.first(); first != NoLink {
			queue = append(queue, g.absMinAcrossLink(w.point, first))
		}
		for _, lid := range w.point.XDescendants {
			queue = append(queue, g.absMinAcrossLink(w.point, lid))
		}
	}
}

// updateAbsoluteMax is the mirror of updateAbsoluteMin for the upper bound,
// propagating backward along ancestors instead of forward along
// descendants.
func (g *TimeGraph) updateAbsoluteMax(p *TimePoint, candidate abstime.AbsTime) {
	queue := []absBoundWork{{point: p, candidate: candidate}}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		tightened := abstime.MergeMin(w.candidate, w.point.AbsoluteMax) // pointwise min: never loosen above the old max
		merged := abstime.MergeMax(tightened, w.point.AbsoluteMin)      // clamp: never fall below the paired min
		if merged == w.point.AbsoluteMax {
			continue // no change: MergeMin/MergeMax only ever tighten, so equality means nothing moved
		}
		w.point.AbsoluteMax = merged

		if first := w.point.Ancestors.first(); first != NoLink {
			queue = append(queue, g.absMaxAcrossLink(w.point, first))
		}
		for _, lid := range w.point.XAncestors {
			queue = append(queue, g.absMaxAcrossLink(w.point, lid))
		}
	}
}

// absMinAcrossLink computes the work item tightening the absolute-min bound
// of lid's "to" endpoint given p's (the "from" endpoint's) newly tightened
// absolute bounds and the link's duration-minimum, using re_calc_abs_min.
func (g *TimeGraph) absMinAcrossLink(p *TimePoint, lid LinkID) absBoundWork {
	l := g.link(lid)
	to := g.point(l.To)
	return absBoundWork{point: to, candidate: abstime.RecalcMin(p.AbsoluteMin, to.AbsoluteMax, l.DMin)}
}

// absMaxAcrossLink is the mirror of absMinAcrossLink for absolute-max
// propagation along ancestor links.
func (g *TimeGraph) absMaxAcrossLink(p *TimePoint, lid LinkID) absBoundWork {
	l := g.link(lid)
	from := g.point(l.From)
	return absBoundWork{point: from, candidate: abstime.RecalcMax(p.AbsoluteMax, from.AbsoluteMin, l.DMin)}
}
