// SPDX-License-Identifier: MIT
package graph

import "github.com/katalvlaran/timegraph/abstime"

// argKind distinguishes the four shapes a TimeArg can carry, replacing the
// source's untyped "this could be a name, a TimePoint, an EventPoint, or an
// AbsTime" argument per the Design Notes.
type argKind int

const (
	kindName argKind = iota
	kindAbs
)

// TimeArg is an argument to Enter or Relation: either a name (resolved to a
// TimePoint or EventPoint by lookup) or a literal AbsTime. The source's
// polymorphism is resolved once, here, instead of being re-checked at every
// call site downstream.
type TimeArg struct {
	kind argKind
	name string
	abs  abstime.AbsTime
}

// Name wraps a point or event name as a TimeArg.
func Name(name string) TimeArg { return TimeArg{kind: kindName, name: name} }

// Abs wraps a literal AbsTime as a TimeArg.
func Abs(a abstime.AbsTime) TimeArg { return TimeArg{kind: kindAbs, abs: a} }

// resolved is what a TimeArg turns into after being looked up against a
// TimeGraph: exactly one of point/event/abs is meaningful, selected by kind.
type resolved struct {
	kind  resolvedKind
	point PointID // valid when kind == resolvedPoint
	event *EventPoint
	abs   abstime.AbsTime
}

type resolvedKind int

const (
	resolvedPoint resolvedKind = iota
	resolvedEvent
	resolvedAbs
)

// resolve turns a TimeArg into a resolved reference, creating a new
// single-point chain for an unseen name (matching the Open Question
// resolution: a fresh point's absolute bound belongs to its own new chain)
// only when createIfMissing is true.
func (g *TimeGraph) resolve(arg TimeArg, createIfMissing bool) (resolved, error) {
	switch arg.kind {
	case kindAbs:
		return resolved{kind: resolvedAbs, abs: arg.abs}, nil
	case kindName:
		if ev, ok := g.events[arg.name]; ok {
			return resolved{kind: resolvedEvent, event: ev}, nil
		}
		if id, ok := g.resolvePoint(arg.name); ok {
			return resolved{kind: resolvedPoint, point: id}, nil
		}
		if createIfMissing {
			name := g.addSingle(arg.name)
			id, _ := g.resolvePoint(name)
			return resolved{kind: resolvedPoint, point: id}, nil
		}
		return resolved{}, errPointNotFoundf(arg.name)
	default:
		return resolved{}, errInvalidArgumentf("unrecognized TimeArg")
	}
}

func errPointNotFoundf(name string) error {
	return wrapf(ErrPointNotFound, "%q", name)
}

func errInvalidArgumentf(msg string) error {
	return wrapf(ErrInvalidArgument, "%s", msg)
}
