// Package rngkit implements deterministic random-bit generators with
// bit-exact recurrences and a statistical pipeline for assessing how
// close their output is to ideal uniform randomness.
//
// Four generator variants are provided, from the deliberately weak
// linear congruential baseline up to a 20-round ARX stream generator,
// all behind one Generator contract. The Stats functions (entropy,
// chi-square uniformity, runs test) quantify output quality and are
// pure: they depend only on the sequence handed to them.
//
// Every generator instance exclusively owns its state. Instances are
// not safe for concurrent use without external synchronization, but
// independent instances share nothing and may run in parallel freely.
package rngkit

import (
	"encoding/binary"
	"time"
)

// Variant identifies one of the closed set of generator algorithms.
// Adding a variant is a closed-set extension: New, NewSeeded and
// String must all learn about it.
type Variant int

const (
	// VariantLCG is the Numerical-Recipes linear congruential generator,
	// the deliberately weak teaching baseline.
	VariantLCG Variant = iota
	// VariantMT19937 is the standard 624-word Mersenne Twister.
	VariantMT19937
	// VariantChaCha20 is the 20-round ARX stream generator, the variant
	// positioned as secure in contrast to the others.
	VariantChaCha20
	// VariantXorShift128Plus is the 128-bit xorshift+ generator.
	VariantXorShift128Plus
)

// String returns the conventional name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantLCG:
		return "lcg"
	case VariantMT19937:
		return "mt19937"
	case VariantChaCha20:
		return "chacha20"
	case VariantXorShift128Plus:
		return "xorshift128+"
	default:
		return "unknown"
	}
}

// Generator is the capability contract every variant satisfies.
//
// Next advances the state exactly one step and returns a float in
// [0,1). NextInt and NextBytes are derived from Next (or, for the
// stream variant, from the same keystream Next consumes) so no variant
// has an independent output path with different statistics.
type Generator interface {
	// Next returns the next value in [0,1), mutating internal state
	// exactly once.
	Next() float64

	// NextInt returns an integer in [0, maxExclusive). It fails with
	// ErrInvalidArgument when maxExclusive <= 0.
	NextInt(maxExclusive int) (int, error)

	// NextBytes returns count bytes of generator output. It fails with
	// ErrInvalidArgument when count < 0. NextBytes(0) returns an empty
	// slice without advancing state.
	NextBytes(count int) ([]byte, error)

	// Variant reports which algorithm this instance runs.
	Variant() Variant
}

// New constructs an auto-seeded generator of the given variant.
//
// The weak variants draw their seed from an unshared EntropyPool (LCG
// from the masked low-resolution time source its recurrence specifies);
// the ChaCha variant prefers the operating system's secure source and
// falls back to the pool only if that fails.
func New(v Variant) (Generator, error) {
	switch v {
	case VariantLCG:
		return NewLCG(timeSeed32()), nil
	case VariantMT19937:
		seed, err := poolSeed32()
		if err != nil {
			return nil, err
		}
		return NewMT19937(seed), nil
	case VariantChaCha20:
		return NewChaCha20Auto()
	case VariantXorShift128Plus:
		s0, s1, err := poolSeed128()
		if err != nil {
			return nil, err
		}
		return NewXorShift128Plus(s0, s1), nil
	default:
		return nil, ErrUnknownVariant
	}
}

// NewSeeded constructs a deterministically seeded generator: identical
// (variant, seed) pairs produce identical infinite output sequences.
// Seeds wider than the variant's natural seed width are expanded with
// splitmix64.
func NewSeeded(v Variant, seed uint64) (Generator, error) {
	switch v {
	case VariantLCG:
		return NewLCG(uint32(seed)), nil
	case VariantMT19937:
		return NewMT19937(uint32(seed)), nil
	case VariantChaCha20:
		return NewChaCha20Seeded(seed), nil
	case VariantXorShift128Plus:
		sm := splitmix64{state: seed}
		return NewXorShift128Plus(sm.next(), sm.next()), nil
	default:
		return nil, ErrUnknownVariant
	}
}

// nextIntFrom derives the shared NextInt semantics from a unit draw.
func nextIntFrom(next func() float64, maxExclusive int) (int, error) {
	if maxExclusive <= 0 {
		return 0, wrapInvalidArgument("nextInt bound must be positive, got %d", maxExclusive)
	}
	n := int(next() * float64(maxExclusive))
	if n >= maxExclusive {
		// next() is closed at 1.0 for the word/0xFFFFFFFF scalings;
		// keep the contract half-open.
		n = maxExclusive - 1
	}
	return n, nil
}

// nextBytesFrom derives the shared NextBytes semantics from a unit
// draw, one state step per output byte.
func nextBytesFrom(next func() float64, count int) ([]byte, error) {
	if count < 0 {
		return nil, wrapInvalidArgument("nextBytes count must be non-negative, got %d", count)
	}
	out := make([]byte, count)
	for i := range out {
		b := int(next() * 256)
		if b > 255 {
			b = 255
		}
		out[i] = byte(b)
	}
	return out, nil
}

// splitmix64 expands a single 64-bit seed into an arbitrary number of
// well-mixed words. Used only for seeding; never as an output path.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += splitmixGamma
	z := s.state
	z = (z ^ (z >> 30)) * splitmixMultA
	z = (z ^ (z >> 27)) * splitmixMultB
	return z ^ (z >> 31)
}

// timeSeed32 derives a 32-bit seed from a low-resolution monotonic
// time source. Explicitly weak; it seeds the weak baseline only.
func timeSeed32() uint32 {
	return uint32(time.Now().UnixMilli() & 0xFFFFFFFF)
}

// poolSeed32 draws a 32-bit seed from a fresh, unshared entropy pool.
func poolSeed32() (uint32, error) {
	pool := NewEntropyPool()
	b, err := pool.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// poolSeed128 draws two 64-bit seed words from a fresh, unshared
// entropy pool.
func poolSeed128() (uint64, uint64, error) {
	pool := NewEntropyPool()
	b, err := pool.Bytes(16)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}
