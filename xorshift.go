package rngkit

// XorShift128Plus holds 128 bits of state as two 64-bit words that are
// never both zero (the all-zero state is a fixed point of the
// recurrence). Each step shifts state through the standard
// xorshift128+ transform and outputs the sum of the new words.
type XorShift128Plus struct {
	s0, s1 uint64
}

// NewXorShift128Plus creates a generator from two 64-bit seed words.
// An all-zero seed is repaired by substituting a fixed non-zero
// constant rather than rejected.
func NewXorShift128Plus(s0, s1 uint64) *XorShift128Plus {
	if s0 == 0 && s1 == 0 {
		Warning("xorshift128+ seeded all-zero, substituting repair constant")
		s0 = xorshiftZeroRepair
	}
	Debug("constructing xorshift128+ generator")
	return &XorShift128Plus{s0: s0, s1: s1}
}

// step advances the recurrence once and returns the 64-bit output word
// (the sum of the new state halves, mod 2^64).
func (g *XorShift128Plus) step() uint64 {
	t := g.s1
	t ^= t << 23
	newS0 := t ^ g.s0 ^ (t >> 18) ^ (g.s0 >> 5)
	g.s1 = g.s0
	g.s0 = newS0
	return g.s0 + g.s1
}

// Next returns the next output word scaled by 2^64-1. The scaling is
// closed at 1.0 in the extreme; NextInt guards the half-open contract.
func (g *XorShift128Plus) Next() float64 {
	return float64(g.step()) / float64(^uint64(0))
}

// NextInt returns an integer in [0, maxExclusive) derived from Next.
func (g *XorShift128Plus) NextInt(maxExclusive int) (int, error) {
	return nextIntFrom(g.Next, maxExclusive)
}

// NextBytes returns count bytes, one recurrence step per byte.
func (g *XorShift128Plus) NextBytes(count int) ([]byte, error) {
	return nextBytesFrom(g.Next, count)
}

// Variant reports VariantXorShift128Plus.
func (g *XorShift128Plus) Variant() Variant {
	return VariantXorShift128Plus
}
