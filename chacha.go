package rngkit

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
)

// ChaCha20 is the 20-round ARX stream generator, the variant positioned
// as secure in contrast to the others.
//
// The 16-word working state follows the IETF layout: words 0-3 are the
// "expand 32-byte k" constants, words 4-11 the 256-bit key (little-endian),
// word 12 the block counter starting at 0 (carrying into word 13 on
// overflow), words 13-15 the 96-bit nonce. Each block applies 10 double
// rounds (column then diagonal quarter-rounds, rotations 16/12/8/7),
// feed-forward adds the pre-round state, and serializes the 16 words
// little-endian into a 64-byte keystream buffer. Output is drawn from
// the buffer one byte at a time, refilling when the cursor reaches 64.
type ChaCha20 struct {
	state [16]uint32
	buf   [chachaBlockSize]byte
	cur   int
}

// NewChaCha20 creates a stream generator from an explicit 256-bit key
// and 96-bit nonce. Identical (key, nonce) pairs produce identical
// keystreams.
func NewChaCha20(key [chachaKeySize]byte, nonce [chachaNonceSize]byte) *ChaCha20 {
	g := &ChaCha20{}
	g.state[0] = chachaSigma[0]
	g.state[1] = chachaSigma[1]
	g.state[2] = chachaSigma[2]
	g.state[3] = chachaSigma[3]
	for i := 0; i < 8; i++ {
		g.state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	g.state[12] = 0
	g.state[13] = binary.LittleEndian.Uint32(nonce[0:])
	g.state[14] = binary.LittleEndian.Uint32(nonce[4:])
	g.state[15] = binary.LittleEndian.Uint32(nonce[8:])
	g.cur = chachaBlockSize // first draw forces a block
	Debug("constructing chacha20 generator, key fingerprint=%s", Fingerprint(key[:]))
	return g
}

// NewChaCha20Auto creates a stream generator keyed from the operating
// system's secure source, falling back to an entropy pool if that
// source is unavailable.
func NewChaCha20Auto() (*ChaCha20, error) {
	var key [chachaKeySize]byte
	var nonce [chachaNonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		Warning("secure source unavailable (%v), falling back to entropy pool", err)
		pool := NewEntropyPool()
		kb, perr := pool.Bytes(chachaKeySize + chachaNonceSize)
		if perr != nil {
			return nil, perr
		}
		copy(key[:], kb[:chachaKeySize])
		copy(nonce[:], kb[chachaKeySize:])
		return NewChaCha20(key, nonce), nil
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return NewChaCha20(key, nonce), nil
}

// NewChaCha20Seeded expands a single 64-bit seed into a key and nonce
// with splitmix64. Deterministic; meant for reproducible experiments,
// not for keying anything that matters.
func NewChaCha20Seeded(seed uint64) *ChaCha20 {
	sm := splitmix64{state: seed}
	s := NewStream(make([]byte, 0, chachaKeySize+16))
	for i := 0; i < 6; i++ {
		s.WriteUint64LE(sm.next())
	}
	material := s.Bytes()

	var key [chachaKeySize]byte
	var nonce [chachaNonceSize]byte
	copy(key[:], material[:chachaKeySize])
	copy(nonce[:], material[chachaKeySize:chachaKeySize+chachaNonceSize])
	return NewChaCha20(key, nonce)
}

// quarterRound performs the add-rotate-xor sequence on four state words
// with the fixed rotation schedule 16, 12, 8, 7.
func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 16)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 12)

	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 8)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 7)
}

// block runs the 20-round block function over the current state,
// refills the keystream buffer and advances the block counter.
func (g *ChaCha20) block() {
	x := g.state

	for i := 0; i < chachaRounds/2; i++ {
		// Column rounds
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)
		// Diagonal rounds
		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	s := NewStream(make([]byte, 0, chachaBlockSize))
	for i := 0; i < 16; i++ {
		// Errors are impossible on an in-memory buffer; ignore per
		// bytes.Buffer's contract.
		_ = s.WriteUint32LE(x[i] + g.state[i])
	}
	copy(g.buf[:], s.Bytes())

	g.state[12]++
	if g.state[12] == 0 {
		g.state[13]++
	}
	g.cur = 0
}

// nextByte consumes one keystream byte, refilling the buffer when the
// cursor reaches the end of a block.
func (g *ChaCha20) nextByte() byte {
	if g.cur >= chachaBlockSize {
		g.block()
	}
	b := g.buf[g.cur]
	g.cur++
	return b
}

// Next assembles a little-endian 32-bit word from four keystream bytes
// and scales it by 2^32, yielding a value in [0,1).
func (g *ChaCha20) Next() float64 {
	var w [4]byte
	for i := range w {
		w[i] = g.nextByte()
	}
	return float64(binary.LittleEndian.Uint32(w[:])) / 4294967296.0
}

// NextInt returns an integer in [0, maxExclusive) derived from Next.
func (g *ChaCha20) NextInt(maxExclusive int) (int, error) {
	return nextIntFrom(g.Next, maxExclusive)
}

// NextBytes returns count raw keystream bytes, one buffer consumption
// per byte. This is the same keystream Next is defined over.
func (g *ChaCha20) NextBytes(count int) ([]byte, error) {
	if count < 0 {
		return nil, wrapInvalidArgument("nextBytes count must be non-negative, got %d", count)
	}
	out := make([]byte, count)
	for i := range out {
		out[i] = g.nextByte()
	}
	return out, nil
}

// Variant reports VariantChaCha20.
func (g *ChaCha20) Variant() Variant {
	return VariantChaCha20
}
