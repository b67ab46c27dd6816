package lanes

import "errors"

// Every failure the package reports wraps one of these sentinels, so callers
// can classify with errors.Is. Operations never partially apply: either a
// fully valid new value is returned or an error is, and existing values are
// untouched.
var (
	// ErrOutOfRange reports a lane index or an array/buffer offset outside
	// the valid range.
	ErrOutOfRange = errors.New("lanes: index out of range")

	// ErrShapeMismatch reports operands whose species or shapes are not
	// compatible, or an invalid species construction.
	ErrShapeMismatch = errors.New("lanes: species mismatch")

	// ErrUnsupportedConversion reports a cast or reshape involving a lane
	// representation the package does not recognize.
	ErrUnsupportedConversion = errors.New("lanes: unsupported lane conversion")

	// ErrBadShuffle reports a shuffle descriptor with a lane index outside
	// [0, length).
	ErrBadShuffle = errors.New("lanes: shuffle index out of range")
)
