// SPDX-License-Identifier: MIT
package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timegraph/abstime"
)

func TestAddSingleIsIdempotent(t *testing.T) {
	g := NewGraph()
	first := g.AddSingle("a")
	second := g.AddSingle("a")
	assert.Equal(t, first, second)
	assert.Len(t, g.points, 1)
}

func TestLinearChainOrdering(t *testing.T) {
	g := NewGraph()
	ok, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = g.Enter(Name("b"), "before", Name("c"))
	require.NoError(t, err)
	require.True(t, ok)

	rel, err := g.Relation(Name("a"), Name("c"), 0)
	require.NoError(t, err)
	assert.Equal(t, "before", rel)

	rel, err = g.Relation(Name("c"), Name("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, "after", rel)
}

func TestBeforeCreatesAdjacentOnSameChain(t *testing.T) {
	g := NewGraph()
	g.AddSingle("b")
	_, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)

	pa, pb := g.point(g.names["a"]), g.point(g.names["b"])
	assert.Equal(t, pa.Chain, pb.Chain)
	assert.Less(t, pa.Pseudo, pb.Pseudo)
}

func TestBetweenSubdividesGap(t *testing.T) {
	g := NewGraph()
	_, err := g.Enter(Name("a"), "before", Name("c"))
	require.NoError(t, err)
	_, err = g.Enter(Name("b"), "between", Name("a"), Name("c"))
	require.NoError(t, err)

	pa, pb, pc := g.point(g.names["a"]), g.point(g.names["b"]), g.point(g.names["c"])
	assert.Equal(t, pa.Chain, pb.Chain)
	assert.Less(t, pa.Pseudo, pb.Pseudo)
	assert.Less(t, pb.Pseudo, pc.Pseudo)
}

func TestEqualCollapsesSinglePointIntoChainMember(t *testing.T) {
	g := NewGraph()
	_, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)
	g.AddSingle("x")
	_, err = g.Enter(Name("x"), "equal", Name("a"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("x"), Name("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, "same-time", rel)
	assert.Equal(t, g.names["x"], g.names["a"])
}

func TestEqualCollapsesAcrossChains(t *testing.T) {
	g := NewGraph()
	g.AddSingle("a")
	g.AddSingle("b")
	pa, pb := g.point(g.names["a"]), g.point(g.names["b"])
	require.NotEqual(t, pa.Chain, pb.Chain)

	_, err := g.Enter(Name("a"), "equal", Name("b"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("a"), Name("b"), 0)
	require.NoError(t, err)
	assert.Equal(t, "same-time", rel)
}

func TestInconsistentAssertionSoftensToEqual(t *testing.T) {
	g := NewGraph()
	_, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)

	_, err = g.Enter(Name("b"), "before", Name("a"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("a"), Name("b"), 0)
	require.NoError(t, err)
	assert.Equal(t, "same-time", rel)
}

func TestCrossChainPathSearch(t *testing.T) {
	g := NewGraph()
	_, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)
	_, err = g.Enter(Name("c"), "before", Name("d"))
	require.NoError(t, err)
	_, err = g.Enter(Name("b"), "before", Name("c"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("a"), Name("d"), 0)
	require.NoError(t, err)
	assert.Equal(t, "unknown", rel, "effort 0 never crosses chains")

	rel, err = g.Relation(Name("a"), Name("d"), 1)
	require.NoError(t, err)
	assert.Equal(t, "before-0", rel, "non-strict legs combine to a non-strict overall path")
}

func TestEventContainment(t *testing.T) {
	g := NewGraph()
	g.RegisterEvent("outer")
	g.RegisterEvent("inner")

	_, err := g.Enter(Name("outer"), "contains", Name("inner"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("inner"), Name("outer"), 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "during"), "expected a during-family predicate, got %q", rel)
}

func TestEnterBeforeBetweenEventsRewritesToStartEnd(t *testing.T) {
	g := NewGraph()
	g.RegisterEvent("e1")
	g.RegisterEvent("e2")

	_, err := g.Enter(Name("e1"), "before", Name("e2"))
	require.NoError(t, err)

	rel, err := g.Relation(Name("e1"), Name("e2"), 1)
	require.NoError(t, err)
	assert.Equal(t, "before-0", rel, "e1.end before e2.start should make e1 derivably before e2, not unknown")
}

func TestCompareAbsoluteMeetsAtTouchingBoundary(t *testing.T) {
	g := NewGraph()
	g.AddSingle("a")
	g.AddSingle("b")
	boundary := mkAbs(2024, 1, 1, 0, 0, 0)

	_, err := g.Enter(Name("a"), "before", Abs(boundary))
	require.NoError(t, err)
	_, err = g.Enter(Name("b"), "after", Abs(boundary))
	require.NoError(t, err)

	rel, err := g.Relation(Name("a"), Name("b"), 0)
	require.NoError(t, err)
	assert.Equal(t, "before-0", rel, "a's max exactly meeting b's min should resolve, not fall through to unknown")
}

func TestRelationAgainstAbsoluteTime(t *testing.T) {
	g := NewGraph()
	g.AddSingle("a")
	early := mkAbs(2020, 1, 1, 0, 0, 0)
	late := mkAbs(2030, 1, 1, 0, 0, 0)

	_, err := g.Enter(Name("a"), "equal", Abs(early))
	require.NoError(t, err)

	rel, err := g.Relation(Name("a"), Abs(late), 0)
	require.NoError(t, err)
	assert.Equal(t, "before-1", rel)
}

func TestEnterDurationConstrainsElapsed(t *testing.T) {
	g := NewGraph()
	_, err := g.Enter(Name("a"), "before", Name("b"))
	require.NoError(t, err)
	ok, err := g.EnterDuration(Name("a"), "at-most-before", Name("b"), 3600)
	require.NoError(t, err)
	require.True(t, ok)

	min, max, err := g.Elapsed(Name("a"), Name("b"), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 3600.0, max)
}

func TestStartEndOfRegisteredEvent(t *testing.T) {
	g := NewGraph()
	g.RegisterEvent("meeting")
	start, err := g.StartOf("meeting")
	require.NoError(t, err)
	end, err := g.EndOf("meeting")
	require.NoError(t, err)
	assert.Equal(t, "meetingstart", start)
	assert.Equal(t, "meetingend", end)
}

func TestUnknownPointNameErrors(t *testing.T) {
	g := NewGraph()
	_, err := g.Relation(Name("nope"), Name("also-nope"), 0)
	assert.ErrorIs(t, err, ErrPointNotFound)
}

func TestFormatDoesNotPanicOnEmptyGraph(t *testing.T) {
	g := NewGraph()
	assert.NotPanics(t, func() {
		_ = g.Format(true)
	})
}

func mkAbs(y, mo, d, h, mi, s int) abstime.AbsTime {
	return abstime.AbsTime{
		Year:   abstime.Known(y),
		Month:  abstime.Known(mo),
		Day:    abstime.Known(d),
		Hour:   abstime.Known(h),
		Minute: abstime.Known(mi),
		Second: abstime.Known(s),
	}
}
