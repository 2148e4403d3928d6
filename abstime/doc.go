// Package abstime implements AbsTime, the symbolic absolute-datetime bound
// used as an interval endpoint throughout the timegraph: a six-slot
// year/month/day/hour/minute/second record where every slot is either a
// concrete integer or explicitly unknown.
//
// Unlike a time.Time, an AbsTime can be partially specified — "sometime in
// March 2024" is a legal value with year and month concrete and the rest
// unknown. Compare, MergeMin, MergeMax and the duration/shift operations all
// treat unknown slots conservatively rather than defaulting them away, per
// the Design Notes in the originating specification: a nil/None bound is
// never used in this package, only Unknown().
package abstime
