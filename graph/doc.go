// SPDX-License-Identifier: MIT

// Package graph is the timegraph core: TimePoint, TimeLink, Chain
// (MetaNode), EventPoint, and TimeGraph itself, together with the pseudo-time
// allocation, absolute-bound propagation, entry, and query algorithms that
// make a TimeGraph useful.
//
// TimeGraph is an arena: it owns every TimePoint, TimeLink, and Chain in
// three slices indexed by stable PointID/LinkID/ChainID values. Points,
// links and chains refer to each other only through these IDs, never through
// pointers — the representation would otherwise need point→link→point and
// chain→first-point reference cycles, which Go's garbage collector handles
// fine but which make the "collapse a point into another" and "renumber a
// chain" operations (both of which reassign identity, not value) far harder
// to reason about than reassigning an integer in a slice.
//
// The package is synchronous and single-threaded by design: a TimeGraph's
// exported methods take an internal RWMutex for safety under accidental
// concurrent use, but callers performing a multi-step interaction (several
// Enter calls that must be seen atomically by a concurrent reader) must
// still serialize those themselves. No method blocks on I/O; none accepts a
// context.Context, because none of them can be meaningfully cancelled
// mid-algorithm — each terminates by monotonicity (every step tightens a
// bound or inserts a link exactly once).
package graph
