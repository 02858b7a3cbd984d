package rngkit

// MT19937 is the standard Mersenne Twister. State is a 624-word array
// of 32-bit words plus an index cursor; generation is batched, with all
// 624 words recomputed by the twist transform when the cursor runs off
// the end. Seeded with 5489 it reproduces the canonical reference
// output sequence bit-for-bit.
type MT19937 struct {
	mt  [mtStateSize]uint32
	mti int
}

// NewMT19937 creates a Mersenne Twister from a 32-bit seed using the
// standard initialization recurrence
//
//	mt[i] = (1812433253 * (mt[i-1] ^ (mt[i-1] >> 30)) + i) mod 2^32
func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.mt[0] = seed
	for i := 1; i < mtStateSize; i++ {
		g.mt[i] = mtSeedMult*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = mtStateSize
	Debug("constructing mt19937 generator, seed=%08x", seed)
	return g
}

// twist recomputes all 624 state words in place and resets the cursor.
func (g *MT19937) twist() {
	var y uint32
	mag01 := [2]uint32{0, mtMatrixA}

	var kk int
	for kk = 0; kk < mtStateSize-mtShiftSize; kk++ {
		y = (g.mt[kk] & mtUpperMask) | (g.mt[kk+1] & mtLowerMask)
		g.mt[kk] = g.mt[kk+mtShiftSize] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtStateSize-1; kk++ {
		y = (g.mt[kk] & mtUpperMask) | (g.mt[kk+1] & mtLowerMask)
		g.mt[kk] = g.mt[kk+(mtShiftSize-mtStateSize)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (g.mt[mtStateSize-1] & mtUpperMask) | (g.mt[0] & mtLowerMask)
	g.mt[mtStateSize-1] = g.mt[mtShiftSize-1] ^ (y >> 1) ^ mag01[y&1]

	g.mti = 0
}

// Uint32 returns the next raw tempered 32-bit word.
func (g *MT19937) Uint32() uint32 {
	if g.mti >= mtStateSize {
		g.twist()
	}

	y := g.mt[g.mti]
	g.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & mtTemperingMaskB
	y ^= (y << 15) & mtTemperingMaskC
	y ^= y >> 18

	return y
}

// Next returns the next tempered word scaled by 0xFFFFFFFF. The scaling
// is closed at 1.0 with probability 2^-32; NextInt guards the half-open
// contract.
func (g *MT19937) Next() float64 {
	return float64(g.Uint32()) / 4294967295.0
}

// NextInt returns an integer in [0, maxExclusive) derived from Next.
func (g *MT19937) NextInt(maxExclusive int) (int, error) {
	return nextIntFrom(g.Next, maxExclusive)
}

// NextBytes returns count bytes, one tempered draw per byte.
func (g *MT19937) NextBytes(count int) ([]byte, error) {
	return nextBytesFrom(g.Next, count)
}

// Variant reports VariantMT19937.
func (g *MT19937) Variant() Variant {
	return VariantMT19937
}
