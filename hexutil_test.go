package rngkit

import (
	"bytes"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		bytes.Repeat([]byte{0x5A}, 333),
	}
	for _, c := range cases {
		decoded, err := FromHex(ToHex(c))
		if err != nil {
			t.Fatalf("FromHex(ToHex(%v)) failed: %v", c, err)
		}
		if !bytes.Equal(decoded, c) {
			t.Errorf("Round trip changed %v to %v", c, decoded)
		}
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, s := range []string{"zz", "abc", "0x12"} {
		if _, err := FromHex(s); err == nil {
			t.Errorf("FromHex(%q) succeeded, want error", s)
		}
	}
}

func TestConstantTimeEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	c := []byte{1, 2, 3, 5}
	d := []byte{1, 2, 3}

	if !ConstantTimeEqual(a, b) {
		t.Error("Equal slices compared unequal")
	}
	if ConstantTimeEqual(a, c) {
		t.Error("Different slices compared equal")
	}
	if ConstantTimeEqual(a, d) {
		t.Error("Different-length slices compared equal")
	}
	if !ConstantTimeEqual(nil, []byte{}) {
		t.Error("Empty slices should compare equal")
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte("some key material"))
	if len(fp) != 16 {
		t.Errorf("Fingerprint length = %d, want 16", len(fp))
	}
	if fp != Fingerprint([]byte("some key material")) {
		t.Error("Fingerprint is not deterministic")
	}
	if fp == Fingerprint([]byte("other key material")) {
		t.Error("Distinct inputs produced the same fingerprint")
	}
}
