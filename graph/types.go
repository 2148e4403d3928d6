// SPDX-License-Identifier: MIT
package graph

import (
	"sync"

	"github.com/katalvlaran/timegraph/abstime"
	"github.com/katalvlaran/timegraph/internal/tglog"
)

// PointID, LinkID and ChainID index TimeGraph's three arenas. "Absent" is
// spelled NoPoint/NoLink/NoChain (-1), never a valid index; the zero value
// is the first arena slot, so an unset field must be initialised to the
// sentinel explicitly.
type (
	PointID int
	LinkID  int
	ChainID int
)

// NoPoint, NoLink and NoChain are the sentinel "absent" values for the three
// ID types. Valid IDs are always >= 0, assigned in arena-append order.
const (
	NoPoint PointID = -1
	NoLink  LinkID  = -1
	NoChain ChainID = -1
)

// TimePoint is an instantaneous time: a node in the timegraph. See the
// originating specification §3 for the full invariant list; in short,
// MinPseudo <= Pseudo <= MaxPseudo always, and Pseudo strictly totally
// orders same-chain points.
type TimePoint struct {
	ID   PointID
	Name string // primary (first-seen) name; lookups also reach this point via AlternateNames

	Chain ChainID
	Pseudo,
	MinPseudo,
	MaxPseudo int64

	AbsoluteMin, AbsoluteMax abstime.AbsTime

	Ancestors, Descendants   TimeLinkList // in-chain links
	XAncestors, XDescendants TimeLinkList // cross-chain links

	AlternateNames map[string]struct{} // names collapsed into this point via equal
}

// TimeLink is a directed edge from From to To: From precedes To, strictly if
// Strict, with the true duration To.time - From.time bounded by [DMin,DMax].
type TimeLink struct {
	ID LinkID

	From, To PointID
	Strict   bool
	DMin     float64 // seconds, >= 0
	DMax     float64 // seconds, >= DMin; math.Inf(1) when unconstrained
}

// Chain is the originating specification's MetaNode: a maximal set of
// points totally ordered by pseudo-time, plus the outgoing cross-chain links
// from any of its members.
type Chain struct {
	ID          ChainID
	First       PointID      // the point with the minimum pseudo-time in the chain
	Connections TimeLinkList // outgoing cross-chain links, from any member of this chain
}

// EventPoint is an interval: a (start, end) pair of point IDs, with the
// invariant start <= end maintained by every operation that touches it.
type EventPoint struct {
	Name       string
	Start, End PointID
}

// Config collects the timegraph's pure configuration constants — pseudo-time
// initialisation and step size — into one immutable structure per the
// originating specification's Design Notes ("global/module constants ...
// belong to a single immutable config structure consulted by the graph").
type Config struct {
	PseudoInit int64
	Step       int64
}

// defaultConfig matches the originating specification's PSEUDO_INIT=1,
// STEP=1000.
func defaultConfig() Config {
	return Config{PseudoInit: 1, Step: 1000}
}

// Option configures a TimeGraph at construction time, following the
// teacher's functional-options convention (core/types.go's GraphOption).
type Option func(*TimeGraph)

// WithLogger installs a diagnostic logger used for the two behaviors the
// originating specification calls out as otherwise silent: inconsistency
// softening (§4.6) and chain renumbering (§4.3). The default is
// tglog.Noop — the core logs nothing unless a caller opts in.
func WithLogger(l tglog.Logger) Option {
	return func(g *TimeGraph) { g.log = l }
}

// WithStep overrides the pseudo-time step size (default 1000).
func WithStep(step int64) Option {
	return func(g *TimeGraph) { g.cfg.Step = step }
}

// WithPseudoInit overrides the first pseudo-time value assigned to a new
// chain's first point (default 1).
func WithPseudoInit(v int64) Option {
	return func(g *TimeGraph) { g.cfg.PseudoInit = v }
}

// TimeGraph owns every TimePoint, TimeLink, and Chain created through it,
// plus the name -> point and name -> event dictionaries. It is the arena
// the Design Notes call for: all cross-references between points, links,
// and chains are IDs into these slices, never pointers.
type TimeGraph struct {
	mu sync.RWMutex

	points []*TimePoint
	links  []*TimeLink
	chains []*Chain

	names  map[string]PointID
	events map[string]*EventPoint

	cfg Config
	log tglog.Logger
}

// NewGraph constructs an empty TimeGraph ready to accept AddSingle,
// RegisterEvent and Enter calls.
func NewGraph(opts ...Option) *TimeGraph {
	g := &TimeGraph{
		names:  make(map[string]PointID),
		events: make(map[string]*EventPoint),
		cfg:    defaultConfig(),
		log:    tglog.Noop,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
