package rngkit

// LCG is the Numerical-Recipes linear congruential generator:
//
//	state' = (1664525*state + 1013904223) mod 2^32
//
// It is deterministic and explicitly insecure — the weak baseline the
// statistical pipeline is meant to expose. State is a single 32-bit
// word exclusively owned by the instance.
type LCG struct {
	state uint32
}

// NewLCG creates an LCG from any 32-bit seed.
func NewLCG(seed uint32) *LCG {
	Debug("constructing lcg generator, seed=%08x", seed)
	return &LCG{state: seed}
}

// Next advances the recurrence once and returns state'/2^32, a value
// in [0,1).
func (g *LCG) Next() float64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return float64(g.state) / 4294967296.0
}

// NextInt returns an integer in [0, maxExclusive) derived from Next.
func (g *LCG) NextInt(maxExclusive int) (int, error) {
	return nextIntFrom(g.Next, maxExclusive)
}

// NextBytes returns count bytes, one recurrence step per byte.
func (g *LCG) NextBytes(count int) ([]byte, error) {
	return nextBytesFrom(g.Next, count)
}

// Variant reports VariantLCG.
func (g *LCG) Variant() Variant {
	return VariantLCG
}
