package abstime_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/timegraph/abstime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownIsAllUnknownSlots(t *testing.T) {
	u := abstime.Unknown()
	assert.Equal(t, abstime.Unknown(), u)
	assert.False(t, u.Year.Known)
	assert.False(t, u.Second.Known)
}

func TestCompareConcrete(t *testing.T) {
	a := abstime.AbsTime{Year: abstime.Known(2024), Month: abstime.Known(1), Day: abstime.Known(1)}
	b := abstime.AbsTime{Year: abstime.Known(2024), Month: abstime.Known(6), Day: abstime.Known(1)}
	assert.Equal(t, abstime.OrderBefore, abstime.Compare(a, b))
	assert.Equal(t, abstime.OrderAfter, abstime.Compare(b, a))
	assert.Equal(t, abstime.OrderEqual, abstime.Compare(a, a))
}

func TestCompareUnknownSlotBlocksDecision(t *testing.T) {
	a := abstime.AbsTime{Year: abstime.Known(2024)}
	b := abstime.AbsTime{Year: abstime.Known(2024), Month: abstime.Known(3)}
	// a.Month is unknown, b.Month is known: undecided at this slot.
	assert.Equal(t, abstime.OrderUnknown, abstime.Compare(a, b))
}

func TestCompareBothUnknownContinues(t *testing.T) {
	a := abstime.AbsTime{Year: abstime.Known(2024), Day: abstime.Known(5)}
	b := abstime.AbsTime{Year: abstime.Known(2024), Day: abstime.Known(9)}
	// Month unknown on both sides; Day decides.
	assert.Equal(t, abstime.OrderBefore, abstime.Compare(a, b))
}

func TestMergeMinTightensTowardCeiling(t *testing.T) {
	newMin := abstime.AbsTime{Year: abstime.Known(2024)}
	currentMax := abstime.AbsTime{Year: abstime.Known(2020)}
	merged := abstime.MergeMin(newMin, currentMax)
	assert.Equal(t, abstime.Known(2020), merged.Year)
}

func TestMergeMinFillsFromEitherSide(t *testing.T) {
	newMin := abstime.AbsTime{Year: abstime.Known(2024)}
	currentMax := abstime.AbsTime{Month: abstime.Known(6)}
	merged := abstime.MergeMin(newMin, currentMax)
	assert.Equal(t, abstime.Known(2024), merged.Year)
	assert.Equal(t, abstime.Known(6), merged.Month)
}

func TestMergeMaxLoosensTowardFloor(t *testing.T) {
	newMax := abstime.AbsTime{Year: abstime.Known(2020)}
	currentMin := abstime.AbsTime{Year: abstime.Known(2024)}
	merged := abstime.MergeMax(newMax, currentMin)
	assert.Equal(t, abstime.Known(2024), merged.Year)
}

func concrete(y, mo, d, h, mi, s int) abstime.AbsTime {
	return abstime.AbsTime{
		Year: abstime.Known(y), Month: abstime.Known(mo), Day: abstime.Known(d),
		Hour: abstime.Known(h), Minute: abstime.Known(mi), Second: abstime.Known(s),
	}
}

func TestDurationConcrete(t *testing.T) {
	a := concrete(2024, 1, 1, 0, 0, 0)
	b := concrete(2024, 1, 1, 1, 0, 0)
	assert.Equal(t, 3600.0, abstime.DurationMin(a, b))
	assert.Equal(t, 3600.0, abstime.DurationMax(a, b))
}

func TestDurationUnknownIsConservative(t *testing.T) {
	a := concrete(2024, 1, 1, 0, 0, 0)
	b := abstime.Unknown()
	assert.Equal(t, 0.0, abstime.DurationMin(a, b))
	assert.True(t, math.IsInf(abstime.DurationMax(a, b), 1))
}

func TestAddSubDurationRoundTrip(t *testing.T) {
	a := concrete(2024, 1, 1, 0, 0, 0)
	shifted := a.AddDuration(3600)
	assert.Equal(t, abstime.Known(1), shifted.Hour)
	back := shifted.SubDuration(3600)
	assert.Equal(t, a, back)
}

func TestAddDurationPreservesUnknown(t *testing.T) {
	a := abstime.AbsTime{Year: abstime.Known(2024)}
	shifted := a.AddDuration(3600)
	assert.Equal(t, a, shifted)
}

func TestRecalcMinTightensNeighbor(t *testing.T) {
	base := concrete(2024, 1, 1, 0, 0, 0)
	currentMax := abstime.Unknown()
	recalced := abstime.RecalcMin(base, currentMax, 3600)
	assert.Equal(t, abstime.Known(1), recalced.Hour)
}

func TestLowerUpperBoundDefaulting(t *testing.T) {
	a := abstime.AbsTime{Year: abstime.Known(2024)}
	lo := a.LowerBound()
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), lo)

	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	hi := a.UpperBound(now)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), hi)
}

func TestFromTupleParsesVariablesAsUnknown(t *testing.T) {
	got, err := abstime.FromTuple([6]string{"2024", "?mo", "1", "0", "0", "0"})
	require.NoError(t, err)
	assert.Equal(t, abstime.Known(2024), got.Year)
	assert.False(t, got.Month.Known)
}

func TestFromRecordRoundTrip(t *testing.T) {
	record := []string{"$", "date+time", ":year", "2024", ":month", "?mo", ":day", "1", ":hour", "0", ":minute", "0", ":sec", "0"}
	got, err := abstime.FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, abstime.Known(2024), got.Year)
	assert.False(t, got.Month.Known)
	assert.Equal(t, abstime.Known(1), got.Day)
}

func TestFromRecordRejectsMalformed(t *testing.T) {
	_, err := abstime.FromRecord([]string{"$", "wrong-tag"})
	assert.ErrorIs(t, err, abstime.ErrMalformedRecord)
}
