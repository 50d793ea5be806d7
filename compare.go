package bitarray

import "bytes"

// Equal reports whether a and b hold the same logical bit sequence. Equal
// endian and length take a byte-compare fast path (bytes.Equal on the fully
// used bytes, plus comparing zeroedLastByte for any partial final byte);
// otherwise (including mismatched endian) it falls back to a bit-by-bit
// comparison by logical index, so cross-endian BitArrays with the same bits
// still compare equal.
func (a *BitArray) Equal(b *BitArray) bool {
	if a.n != b.n {
		return false
	}
	if a.endian == b.endian {
		full := a.n / 8
		if !bytes.Equal(a.buf[:full], b.buf[:full]) {
			return false
		}
		if a.n%8 != 0 {
			return zeroedLastByte(a.buf, a.n, a.endian) == zeroedLastByte(b.buf, b.n, b.endian)
		}
		return true
	}
	for i := 0; i < a.n; i++ {
		if a.get(i) != b.get(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by bit index, with length as a
// tiebreaker (a shorter prefix sorts before a longer array that extends
// it). Returns a negative number, zero, or a positive number as a < b,
// a == b, or a > b.
func (a *BitArray) Compare(b *BitArray) int {
	n := a.n
	if b.n < n {
		n = b.n
	}
	for i := 0; i < n; i++ {
		av, bv := a.get(i), b.get(i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b (see Compare).
func (a *BitArray) Less(b *BitArray) bool { return a.Compare(b) < 0 }

// ByteReverse replaces each byte in byte-range [lo, hi) with its
// bit-reversal. lo and hi are byte indices, not bit indices; both must lie
// in [0, len(ToBytes())].
func (a *BitArray) ByteReverse(lo, hi int) error {
	nbytes := (a.n + 7) / 8
	if lo < 0 || hi < lo || hi > nbytes {
		return ErrOutOfRange
	}
	byteReverse(a.buf, lo, hi)
	return nil
}
