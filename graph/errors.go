// SPDX-License-Identifier: MIT
package graph

import (
	"errors"
	"fmt"
)

// Error policy mirrors builder/errors.go in the teacher repo: only sentinel
// package-level errors are exported, callers branch with errors.Is, and
// every sentinel is wrapped with %w at the call site that has the context
// (the offending name, the predicate string) to add.

// ErrPointNotFound is returned when a name does not resolve to any known
// TimePoint (and the operation does not create one implicitly).
var ErrPointNotFound = errors.New("graph: point not found")

// ErrEventNotFound is returned when a name does not resolve to any
// registered EventPoint.
var ErrEventNotFound = errors.New("graph: event not found")

// ErrUnsupportedPredicate is returned by Enter when the predicate string
// does not parse or names a stem Enter cannot apply, and by EnterDuration
// when the stem is not duration-constrained. The underlying predicate
// package error, if any, appears in the message text only; it is not
// wrapped.
var ErrUnsupportedPredicate = errors.New("graph: unsupported predicate")

// ErrInvalidArgument is returned when an operation receives an argument of
// the wrong kind — an AbsTime where a point-only operation needs a point,
// or vice versa.
var ErrInvalidArgument = errors.New("graph: invalid argument")

// ErrInvalidAbsTime names a malformed AbsTime literal (tuple or record
// form). No function in this package returns it: literals arrive already
// parsed, and the abstime package reports its own ErrInvalidSlot or
// ErrMalformedRecord.
var ErrInvalidAbsTime = errors.New("graph: invalid absolute-time literal")

// ErrMissingPoint is returned by Enter when the "between" predicate is
// given no third argument.
var ErrMissingPoint = errors.New("graph: missing required point")

// wrapf wraps sentinel with a formatted context message, matching the
// teacher's "Sentinels are NEVER wrapped with formatted strings at
// definition site; attach context with %w at call sites" policy.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
}

// Inconsistent is deliberately NOT a sentinel error: per the original
// specification §4.6/§7, check_inconsistent recovers locally by weakening
// strictness to equality and the caller never observes an error for it. It
// is documented here only as an internal state transition, not a surfaced
// failure mode.
