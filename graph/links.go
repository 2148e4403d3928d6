// SPDX-License-Identifier: MIT
package graph

import "sort"

// TimeLinkList is a link-ID list kept sorted by the key described in the
// originating specification §4.4: (From.Chain, From.Pseudo, To.Chain,
// To.Pseudo). It replaces the source's recursive cons-list insertion with an
// iterative sorted-slice insert, per the Design Notes' "recursive list
// insertion ... should become iterative loops on the list's backing
// storage".
type TimeLinkList []LinkID

// linkKey is the four-tuple TimeLinkList orders by.
type linkKey struct {
	fromChain, toChain ChainID
	fromPseudo, toPseudo int64
}

func (g *TimeGraph) keyOf(id LinkID) linkKey {
	l := g.link(id)
	from, to := g.point(l.From), g.point(l.To)
	return linkKey{
		fromChain:   from.Chain,
		fromPseudo:  from.Pseudo,
		toChain:     to.Chain,
		toPseudo:    to.Pseudo,
	}
}

func (k linkKey) less(other linkKey) bool {
	if k.fromChain != other.fromChain {
		return k.fromChain < other.fromChain
	}
	if k.fromPseudo != other.fromPseudo {
		return k.fromPseudo < other.fromPseudo
	}
	if k.toChain != other.toChain {
		return k.toChain < other.toChain
	}
	return k.toPseudo < other.toPseudo
}

func (k linkKey) equal(other linkKey) bool {
	return k == other
}

// insertLink inserts id into list in key order. If an existing entry has an
// identical key (same endpoints' chain+pseudo — i.e. the same logical edge),
// insertion is idempotent: the existing entry stays in the list, its Strict
// flag raised if the incoming link is strict, and the incoming link is not
// added to this list (it stays in the arena), per "insertion is idempotent
// on equal keys; on collision the most-strict flag survives."
func (g *TimeGraph) insertLink(list *TimeLinkList, id LinkID) {
	key := g.keyOf(id)
	s := *list
	idx := sort.Search(len(s), func(i int) bool {
		return !g.keyOf(s[i]).less(key)
	})
	if idx < len(s) && g.keyOf(s[idx]).equal(key) {
		existing := g.link(s[idx])
		incoming := g.link(id)
		if incoming.Strict && !existing.Strict {
			existing.Strict = true
		}
		return
	}
	s = append(s, NoLink)
	copy(s[idx+1:], s[idx:])
	s[idx] = id
	*list = s
}

// removeLink deletes the first entry of list identified by id (identity,
// not key — two distinct links can share a key only transiently during
// collapse, so identity removal is the only safe option).
func (g *TimeGraph) removeLink(list *TimeLinkList, id LinkID) {
	s := *list
	for i, cur := range s {
		if cur == id {
			*list = append(s[:i], s[i+1:]...)
			return
		}
	}
}

// first returns the first link in the list (lowest key), or NoLink if the
// list is empty. renumber, absolute-bound propagation and cross-chain
// collapse use this to find "the first in-chain descendant" of a point.
func (list TimeLinkList) first() LinkID {
	if len(list) == 0 {
		return NoLink
	}
	return list[0]
}
