package bitarray

import "errors"

// Sentinel errors returned by bitarray operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, bitarray.ErrOutOfRange) {
//	    // index was out of bounds
//	}
var (
	// ErrTypeMismatch indicates an argument of an unsupported kind, e.g. a
	// non-int bit value, raw bytes passed to [BitArray.Extend], or an
	// unknown endian value.
	ErrTypeMismatch = errors.New("bitarray: type mismatch")

	// ErrOutOfRange indicates an index outside [0, n) after negative-wrap.
	ErrOutOfRange = errors.New("bitarray: index out of range")

	// ErrBadValue indicates a bit value not in {0,1}, an unparsable '0'/'1'
	// character, a zero slice step, a length-mismatched extended slice
	// assignment, [BitArray.Pop] from an empty array, or
	// [BitArray.Remove]/[BitArray.Index] of an absent value.
	ErrBadValue = errors.New("bitarray: bad value")

	// ErrOverflow indicates a [BitArray.Repeat] product that exceeds the
	// platform integer limit.
	ErrOverflow = errors.New("bitarray: overflow")
)
