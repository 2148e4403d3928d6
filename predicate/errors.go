package predicate

import "errors"

// ErrUnsupportedPredicate is returned by Split (and by any caller rejecting
// an unrecognized predicate string) when the stem does not match any entry
// in Stems. Callers SHOULD use errors.Is to branch on this sentinel; it is
// never wrapped with %w at the definition site, only at call sites that add
// context (the offending string, the operation name).
var ErrUnsupportedPredicate = errors.New("predicate: unsupported predicate stem")

// ErrInvalidStrictness is returned by Build when more strictness slots are
// set than the stem's arity allows, or s2 is set while s1 is Unknown; and by
// Split when a suffix digit is not 0 or 1, or there are more digits than the
// stem's arity allows.
var ErrInvalidStrictness = errors.New("predicate: invalid strictness for stem arity")
