package abstime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// LowerBound materializes a as the earliest time.Time it could denote,
// filling unknown slots with their minimum valid value.
func (a AbsTime) LowerBound() time.Time {
	s := a.slots()
	vals := [6]int{}
	for i, slot := range s {
		if slot.Known {
			vals[i] = slot.Value
		} else {
			vals[i] = lowerDefault[i]
		}
	}
	return epoch(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
}

// UpperBound materializes a as the latest time.Time it could denote, filling
// unknown slots with their maximum valid value. now is the current instant,
// used only to default an unknown year (there is no fixed upper year).
func (a AbsTime) UpperBound(now time.Time) time.Time {
	s := a.slots()
	def := upperDefault(now.Year())
	vals := [6]int{}
	for i, slot := range s {
		if slot.Known {
			vals[i] = slot.Value
		} else {
			vals[i] = def[i]
		}
	}
	return epoch(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
}

// fullyKnown reports whether every slot of a is concrete.
func (a AbsTime) fullyKnown() bool {
	for _, s := range a.slots() {
		if !s.Known {
			return false
		}
	}
	return true
}

// Compare performs the slot-wise lexicographic comparison described for
// AbsTime: year, month, day, hour, minute, second, in that order. The first
// slot pair that is both concrete and differs decides the order (always
// Strict, since the values genuinely differ). A slot pair where either side
// is unknown, reached before any decision, makes the order OrderUnknown —
// the lexicographic position where the two bounds might differ is itself
// unknowable. Reaching the end with every slot tied (concrete-equal or
// both-unknown) yields OrderEqual.
func Compare(a, b AbsTime) Order {
	as, bs := a.slots(), b.slots()
	for i := range as {
		sa, sb := as[i], bs[i]
		switch {
		case sa.Known && sb.Known:
			switch {
			case sa.Value < sb.Value:
				return OrderBefore
			case sa.Value > sb.Value:
				return OrderAfter
			default:
				continue
			}
		case !sa.Known && !sb.Known:
			continue
		default:
			return OrderUnknown
		}
	}
	return OrderEqual
}

// MergeMin tightens a candidate lower bound newMin against the ceiling
// currentMax, slot by slot: where both are concrete the tighter (smaller)
// of the two wins, since a lower bound can never validly exceed the upper
// bound it is paired with; where only one side is concrete, that side wins;
// where neither is concrete, the slot stays unknown.
func MergeMin(newMin, currentMax AbsTime) AbsTime {
	return mergeSlots(newMin, currentMax, func(x, y int) int {
		if x < y {
			return x
		}
		return y
	})
}

// MergeMax tightens a candidate upper bound newMax against the floor
// currentMin, slot by slot: where both are concrete the looser (larger) of
// the two wins, since an upper bound can never validly fall below the lower
// bound it is paired with.
func MergeMax(newMax, currentMin AbsTime) AbsTime {
	return mergeSlots(newMax, currentMin, func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
}

func mergeSlots(a, b AbsTime, pick func(x, y int) int) AbsTime {
	as, bs := a.slots(), b.slots()
	var out [6]Slot
	for i := range as {
		switch {
		case as[i].Known && bs[i].Known:
			out[i] = Known(pick(as[i].Value, bs[i].Value))
		case as[i].Known:
			out[i] = as[i]
		case bs[i].Known:
			out[i] = bs[i]
		default:
			out[i] = Unk
		}
	}
	return fromSlots(out)
}

// DurationMin returns the minimum possible number of seconds between a and
// b, treating any unknown slot on either side conservatively: 0, since the
// true instants might coincide.
func DurationMin(a, b AbsTime) float64 {
	if !a.fullyKnown() || !b.fullyKnown() {
		return 0
	}
	return math.Abs(a.LowerBound().Sub(b.LowerBound()).Seconds())
}

// DurationMax returns the maximum possible number of seconds between a and
// b, treating any unknown slot on either side conservatively: +Inf, since
// the true instants might be arbitrarily far apart.
func DurationMax(a, b AbsTime) float64 {
	if !a.fullyKnown() || !b.fullyKnown() {
		return math.Inf(1)
	}
	return math.Abs(a.LowerBound().Sub(b.LowerBound()).Seconds())
}

// AddDuration shifts a forward by d seconds. If a has any unknown slot the
// shift cannot be computed precisely, so a is returned unchanged — an
// uncertain bound shifted by a known amount is still exactly as uncertain.
func (a AbsTime) AddDuration(d float64) AbsTime {
	if !a.fullyKnown() {
		return a
	}
	return fromConcreteTime(a.LowerBound().Add(time.Duration(d * float64(time.Second))))
}

// SubDuration shifts a backward by d seconds, with the same unknown-slot
// behavior as AddDuration.
func (a AbsTime) SubDuration(d float64) AbsTime {
	if !a.fullyKnown() {
		return a
	}
	return fromConcreteTime(a.LowerBound().Add(-time.Duration(d * float64(time.Second))))
}

func fromConcreteTime(t time.Time) AbsTime {
	return AbsTime{
		Year:   Known(t.Year()),
		Month:  Known(int(t.Month())),
		Day:    Known(t.Day()),
		Hour:   Known(t.Hour()),
		Minute: Known(t.Minute()),
		Second: Known(t.Second()),
	}
}

// RecalcMin tightens a neighbour's absolute minimum bound given this point's
// absolute value base, the neighbour's current absolute maximum
// currentMax, and the minimum duration durationMin (seconds) of the link
// connecting them: the neighbour cannot occur before base+durationMin.
func RecalcMin(base, currentMax AbsTime, durationMin float64) AbsTime {
	return MergeMin(base.AddDuration(durationMin), currentMax)
}

// RecalcMax tightens a neighbour's absolute maximum bound symmetrically to
// RecalcMin: the neighbour cannot occur after base-durationMin.
func RecalcMax(base, currentMin AbsTime, durationMin float64) AbsTime {
	return MergeMax(base.SubDuration(durationMin), currentMin)
}

// FromTuple builds an AbsTime from six slot strings in
// year/month/day/hour/minute/second order, each either a decimal integer or
// a non-digit "variable" symbol (e.g. "?y") meaning unknown.
func FromTuple(parts [6]string) (AbsTime, error) {
	var out [6]Slot
	for i, p := range parts {
		if p == "" {
			return AbsTime{}, fmt.Errorf("%w: empty slot %d", ErrInvalidSlot, i)
		}
		if n, err := strconv.Atoi(p); err == nil {
			out[i] = Known(n)
			continue
		}
		out[i] = Unk
	}
	return fromSlots(out), nil
}

// recordKeys is the fixed key sequence a "$ date+time" record alternates
// with its values, per the ULF record shape in the originating source.
var recordKeys = []string{":year", ":month", ":day", ":hour", ":minute", ":second"}

// FromRecord builds an AbsTime from a ULF-style date+time record:
// ["$", "date+time", ":year", Y, ":month", M, ":day", D, ":hour", H,
// ":minute", Mi, ":sec", S]. Each key must appear in order with a value
// slot following it.
func FromRecord(record []string) (AbsTime, error) {
	if len(record) != 14 || record[0] != "$" || record[1] != "date+time" {
		return AbsTime{}, fmt.Errorf("%w: expected 14-element date+time record, got %d elements", ErrMalformedRecord, len(record))
	}
	var parts [6]string
	for i, key := range recordKeys {
		gotKey := record[2+2*i]
		if !strings.HasPrefix(gotKey, ":") {
			return AbsTime{}, fmt.Errorf("%w: slot %d key %q missing leading colon", ErrMalformedRecord, i, gotKey)
		}
		if !strings.EqualFold(gotKey, key) && !(i == 5 && gotKey == ":sec") {
			return AbsTime{}, fmt.Errorf("%w: slot %d expected key %q, got %q", ErrMalformedRecord, i, key, gotKey)
		}
		parts[i] = record[3+2*i]
	}
	return FromTuple(parts)
}
