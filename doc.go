// Package bitarray provides a mutable, byte-packed bit-sequence container.
//
// A [BitArray] is an ordered sequence of single-bit values backed by a []byte
// buffer, addressable bit-by-bit under either of two intra-byte bit orderings
// ([Little] or [Big]). It supports indexing, slicing with arbitrary step,
// splicing, bulk mutation, search, counting, comparison, and conversion
// to/from raw bytes and '0'/'1' strings.
//
// # Basic Usage
//
//	a, _ := bitarray.New("1101", bitarray.Little)
//	a.Extend("0011")
//	a.ToBytes()                    // []byte{203}, pad bits zeroed
//	a.CountSlice(1, 0, a.Len(), 1) // 5
//
// # Bit Order
//
// Endian only affects the order bits are packed within a byte, never byte
// order: with [Big], bit 0 of a byte is its most significant bit; with
// [Little], bit 0 is its least significant bit. The process-wide default
// ([DefaultEndian] / [SetDefaultEndian]) is read once, at construction time,
// by any [BitArray] built with the [DefaultEndianSentinel] endian value.
//
// # Error Handling
//
// Operations that can fail return an error wrapping one of four sentinels:
// [ErrTypeMismatch], [ErrOutOfRange], [ErrBadValue], or [ErrOverflow].
// Callers classify with [errors.Is], not by inspecting the error string:
//
//	if _, err := a.Pop(-1); errors.Is(err, bitarray.ErrBadValue) {
//	    // array was empty
//	}
//
// # Concurrency
//
// A [BitArray] is not safe for concurrent use; all mutating and observing
// methods assume a single goroutine owns the receiver. The one process-wide
// piece of shared state, the default endian, is safe to read and write
// concurrently with construction of unrelated [BitArray] values.
package bitarray
