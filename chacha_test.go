package rngkit

import (
	"bytes"
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// TestChaCha20KeystreamMatchesReference cross-checks the hand-written
// block function against golang.org/x/crypto/chacha20 for the same key
// and nonce (both constructions start the block counter at zero).
func TestChaCha20KeystreamMatchesReference(t *testing.T) {
	var key [chachaKeySize]byte
	var nonce [chachaNonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(0x40 + i)
	}

	g := NewChaCha20(key, nonce)
	got, err := g.NextBytes(4 * chachaBlockSize)
	if err != nil {
		t.Fatalf("NextBytes failed: %v", err)
	}

	ref, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		t.Fatalf("Failed to build reference cipher: %v", err)
	}
	want := make([]byte, 4*chachaBlockSize)
	ref.XORKeyStream(want, want)

	if !bytes.Equal(got, want) {
		t.Fatalf("Keystream mismatch\n got: %s\nwant: %s", ToHex(got), ToHex(want))
	}
}

// TestChaCha20NextConsumesKeystream verifies Next is defined over the
// same keystream NextBytes drains: four little-endian bytes per draw.
func TestChaCha20NextConsumesKeystream(t *testing.T) {
	var key [chachaKeySize]byte
	var nonce [chachaNonceSize]byte
	key[0] = 0xAB

	a := NewChaCha20(key, nonce)
	b := NewChaCha20(key, nonce)

	raw, err := a.NextBytes(8)
	if err != nil {
		t.Fatalf("NextBytes failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		want := float64(binary.LittleEndian.Uint32(raw[4*i:])) / 4294967296.0
		if got := b.Next(); got != want {
			t.Fatalf("Draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestChaCha20SeededDeterminism(t *testing.T) {
	a := NewChaCha20Seeded(0xDEADBEEF)
	b := NewChaCha20Seeded(0xDEADBEEF)

	for i := 0; i < 10000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("Draw %d diverged: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Draw %d out of [0,1): %v", i, va)
		}
	}
}

// TestChaCha20Entropy requires the raw keystream to measure above 7.5
// bits/byte of Shannon entropy, the "high" threshold.
func TestChaCha20Entropy(t *testing.T) {
	g := NewChaCha20Seeded(1)
	out, err := g.NextBytes(4096)
	if err != nil {
		t.Fatalf("NextBytes failed: %v", err)
	}
	if h := ShannonEntropy(out); h <= entropyHighThreshold {
		t.Errorf("Keystream entropy = %v bits/byte, want > %v", h, entropyHighThreshold)
	}
}

func TestChaCha20Auto(t *testing.T) {
	g, err := NewChaCha20Auto()
	if err != nil {
		t.Fatalf("NewChaCha20Auto failed: %v", err)
	}
	if g.Variant() != VariantChaCha20 {
		t.Errorf("Variant = %v, want %v", g.Variant(), VariantChaCha20)
	}

	// Two auto-keyed instances must not share a keystream.
	h, err := NewChaCha20Auto()
	if err != nil {
		t.Fatalf("NewChaCha20Auto failed: %v", err)
	}
	ga, _ := g.NextBytes(32)
	ha, _ := h.NextBytes(32)
	if bytes.Equal(ga, ha) {
		t.Error("Independent auto-keyed generators produced identical keystreams")
	}
}

func TestChaCha20InvalidArguments(t *testing.T) {
	g := NewChaCha20Seeded(2)
	if _, err := g.NextBytes(-1); !IsInvalidArgument(err) {
		t.Errorf("NextBytes(-1) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := g.NextInt(0); !IsInvalidArgument(err) {
		t.Errorf("NextInt(0) error = %v, want ErrInvalidArgument", err)
	}
}
