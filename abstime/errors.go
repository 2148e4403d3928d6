package abstime

import "errors"

// ErrInvalidSlot is returned by FromRecord and FromTuple when a slot value is
// empty. Any other value that does not parse as an integer is taken as the
// unknown marker; integers are not range-checked against their field.
var ErrInvalidSlot = errors.New("abstime: invalid slot value")

// ErrMalformedRecord is returned by FromRecord when the input does not match
// the six-slot "$ date+time" record shape.
var ErrMalformedRecord = errors.New("abstime: malformed date+time record")
