package abstime

import (
	"strconv"
	"strings"
	"time"
)

// Slot is one field of an AbsTime: either a concrete integer or unknown.
// The source represents "unknown" with a variable symbol string (e.g.
// "?y"); Slot replaces that overload with an explicit Known flag so a
// zero-value Slot{} can never be mistaken for a concrete zero.
type Slot struct {
	Known bool
	Value int
}

// Unk is the zero-value unknown slot, spelled out for readability at call
// sites that build an AbsTime literal with some concrete slots.
var Unk = Slot{}

// Known returns a concrete slot holding v.
func Known(v int) Slot { return Slot{Known: true, Value: v} }

// AbsTime is a symbolic absolute-datetime bound: six slots, each either a
// concrete integer or unknown, in year/month/day/hour/minute/second order.
type AbsTime struct {
	Year, Month, Day, Hour, Minute, Second Slot
}

// Unknown returns the fully-unspecified AbsTime: every slot unknown. This is
// the value every TimePoint's absolute_min/absolute_max bound is initialised
// to; the core never uses a nil/None bound (see Design Notes).
func Unknown() AbsTime {
	return AbsTime{}
}

// slots returns the six slots in comparison order, to let Compare and the
// merge/duration helpers iterate generically instead of repeating the same
// six-field switch six times.
func (a AbsTime) slots() [6]Slot {
	return [6]Slot{a.Year, a.Month, a.Day, a.Hour, a.Minute, a.Second}
}

// fromSlots rebuilds an AbsTime from a slots() array, mirroring slots() so
// the two stay in lockstep.
func fromSlots(s [6]Slot) AbsTime {
	return AbsTime{Year: s[0], Month: s[1], Day: s[2], Hour: s[3], Minute: s[4], Second: s[5]}
}

// lowerDefault and upperDefault are the per-slot fill-in values used when an
// AbsTime with unknown slots must be materialized as a concrete time.Time —
// lowerDefault for computing the earliest instant the bound could denote,
// upperDefault for the latest. Year's upper default is resolved against the
// current year at call time (there is no fixed "maximum year").
var lowerDefault = [6]int{1, 1, 1, 0, 0, 0}

func upperDefault(nowYear int) [6]int {
	return [6]int{nowYear, 12, 31, 23, 59, 59}
}

// Order classifies the outcome of Compare.
type Order int

const (
	// OrderUnknown means the two AbsTimes cannot be ordered: a slot pair
	// differed in knownness before any concrete slot decided the order.
	OrderUnknown Order = iota
	// OrderEqual means every slot matched (both concrete and equal, or
	// both unknown) all the way through.
	OrderEqual
	// OrderBefore means a ordered before b.
	OrderBefore
	// OrderAfter means a ordered after b.
	OrderAfter
)

func (o Order) String() string {
	switch o {
	case OrderEqual:
		return "equal"
	case OrderBefore:
		return "before"
	case OrderAfter:
		return "after"
	default:
		return "unknown"
	}
}

// String renders a as "Y-Mo-D-H-Mi-S", with "?" standing in for each
// unknown slot, mirroring the originating Python source's
// tuple_from_time_pair formatting.
func (a AbsTime) String() string {
	parts := make([]string, 6)
	for i, s := range a.slots() {
		if s.Known {
			parts[i] = strconv.Itoa(s.Value)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, "-")
}

// epoch converts a fully-concrete set of six slot values into a time.Time
// for duration arithmetic. It is only ever called with slots that have
// already been defaulted, so every field is meaningful.
func epoch(y, mo, d, h, mi, s int) time.Time {
	return time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC)
}
