package rngkit

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/go-i2p/common/base32"
)

// Byte/hex conversion and comparison helpers for callers that move
// samples, seeds and keys around as text.

// ToHex encodes bytes as a lowercase hex string. An empty or nil slice
// encodes to the empty string.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hex string produced by ToHex (or any valid hex).
// FromHex(ToHex(b)) round-trips exactly, including the empty slice.
func FromHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("rngkit: invalid hex input: %w", err)
	}
	return data, nil
}

// ConstantTimeEqual compares two byte slices in time independent of
// their contents. Slices of different lengths compare unequal without
// leaking where they differ.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Fingerprint returns a short base32 rendering of the SHA-256 digest of
// data, suitable for identifying a key or seed in logs without exposing
// the material itself.
func Fingerprint(data []byte) string {
	hash := sha256.Sum256(data)
	b32Encoded := base32.EncodeToString(hash[:])
	if len(b32Encoded) > 16 {
		b32Encoded = b32Encoded[:16]
	}
	return b32Encoded
}
