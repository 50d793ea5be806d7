package bitarray

import "testing"

func TestEqual(t *testing.T) {
	a := mustNewFromString(t, "1011001", Little)
	b := mustNewFromString(t, "1011001", Little)
	if !a.Equal(b) {
		t.Fatalf("Equal should be true for identical same-endian arrays")
	}

	c := mustNewFromString(t, "1011000", Little)
	if a.Equal(c) {
		t.Fatalf("Equal should be false for differing arrays")
	}

	d := mustNewFromString(t, "1011001", Big)
	if !a.Equal(d) {
		t.Fatalf("Equal should compare by logical bit, independent of endian")
	}

	e := mustNewFromString(t, "10110010", Little)
	if a.Equal(e) {
		t.Fatalf("Equal should be false for differing lengths")
	}
}

func TestCompareLess(t *testing.T) {
	a := mustNewFromString(t, "100", Little)
	b := mustNewFromString(t, "101", Little)
	if a.Compare(b) >= 0 || !a.Less(b) {
		t.Fatalf("100 should sort before 101")
	}

	c := mustNewFromString(t, "10", Little)
	d := mustNewFromString(t, "100", Little)
	if c.Compare(d) >= 0 || !c.Less(d) {
		t.Fatalf("10 (shorter prefix) should sort before 100")
	}

	if a.Compare(a) != 0 {
		t.Fatalf("Compare(a, a) should be 0")
	}
}

func TestByteReverseMethod(t *testing.T) {
	a := mustNewFromString(t, "10000000"+"00001111", Little)
	if err := a.ByteReverse(0, 2); err != nil {
		t.Fatalf("ByteReverse: %v", err)
	}
	if a.To01() != "00000001"+"11110000" {
		t.Fatalf("ByteReverse result = %s", a.To01())
	}

	if err := a.ByteReverse(-1, 2); err == nil {
		t.Fatalf("ByteReverse(-1, 2) should error")
	}
	if err := a.ByteReverse(0, 3); err == nil {
		t.Fatalf("ByteReverse(0, 3) should error: only 2 bytes backing a 16-bit array")
	}
}
