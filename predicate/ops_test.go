package predicate_test

import (
	"testing"

	"github.com/katalvlaran/timegraph/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBuildRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want predicate.Predicate
	}{
		{"bare before", "before", predicate.Predicate{Stem: predicate.StemBefore}},
		{"strict before", "before-1", predicate.Predicate{Stem: predicate.StemBefore, S1: predicate.Strict}},
		{"nonstrict after", "after-0", predicate.Predicate{Stem: predicate.StemAfter, S1: predicate.Equal}},
		{"during both slots", "during-1-0", predicate.Predicate{Stem: predicate.StemDuring, S1: predicate.Strict, S2: predicate.Equal}},
		{"same-time stem with hyphen", "same-time", predicate.Predicate{Stem: predicate.StemSameTime}},
		{"overlapped-by stem with hyphen", "overlapped-by-1-1", predicate.Predicate{Stem: predicate.StemOverlappedBy, S1: predicate.Strict, S2: predicate.Strict}},
		{"at-least-before with strictness", "at-least-before-1", predicate.Predicate{Stem: predicate.StemAtLeastBefore, S1: predicate.Strict}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := predicate.Split(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := predicate.Build(tc.want.Stem, tc.want.S1, tc.want.S2)
			require.NoError(t, err)
			assert.Equal(t, tc.in, back)
		})
	}
}

func TestSplitUnsupported(t *testing.T) {
	_, err := predicate.Split("frobnicates")
	assert.ErrorIs(t, err, predicate.ErrUnsupportedPredicate)
}

func TestSplitBadArity(t *testing.T) {
	_, err := predicate.Split("before-1-1")
	assert.ErrorIs(t, err, predicate.ErrInvalidStrictness)
}

func TestBuildRejectsGapInSlots(t *testing.T) {
	_, err := predicate.Build(predicate.StemBefore, predicate.Unknown, predicate.Strict)
	assert.ErrorIs(t, err, predicate.ErrInvalidStrictness)
}

func TestInverse(t *testing.T) {
	before := predicate.Predicate{Stem: predicate.StemBefore, S1: predicate.Strict}
	assert.Equal(t, predicate.Predicate{Stem: predicate.StemAfter, S1: predicate.Strict}, predicate.Inverse(before))

	during := predicate.Predicate{Stem: predicate.StemDuring, S1: predicate.Strict, S2: predicate.Equal}
	assert.Equal(t, predicate.Predicate{Stem: predicate.StemContains, S1: predicate.Equal, S2: predicate.Strict}, predicate.Inverse(during))

	eq := predicate.Predicate{Stem: predicate.StemSameTime}
	assert.Equal(t, eq, predicate.Inverse(eq))
}

func TestCombineStrict(t *testing.T) {
	assert.Equal(t, predicate.Strict, predicate.CombineStrict(predicate.Strict, predicate.Equal))
	assert.Equal(t, predicate.Strict, predicate.CombineStrict(predicate.Equal, predicate.Strict))
	assert.Equal(t, predicate.Equal, predicate.CombineStrict(predicate.Equal, predicate.Equal))
	assert.Equal(t, predicate.Unknown, predicate.CombineStrict(predicate.Unknown, predicate.Unknown))
}

func TestClassification(t *testing.T) {
	assert.True(t, predicate.IsEquiv(predicate.StemSameTime))
	assert.True(t, predicate.IsSequence(predicate.StemAfter))
	assert.True(t, predicate.IsContainment(predicate.StemOverlaps))
	assert.False(t, predicate.IsContainment(predicate.StemBetween))
}
