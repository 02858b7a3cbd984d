package rngkit

// Generator Algorithm Constants
//
// This file contains the fixed numeric parameters of each generator
// recurrence. These values are part of the output contract: two builds
// of this library seeded identically must produce identical sequences,
// so none of them is configurable.

// Linear congruential generator parameters (Numerical Recipes).
// state' = (lcgMultiplier*state + lcgIncrement) mod 2^32
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Mersenne Twister (MT19937) parameters.
const (
	mtStateSize             = 624
	mtShiftSize             = 397
	mtSeedMult       uint32 = 1812433253
	mtMatrixA        uint32 = 0x9908B0DF
	mtUpperMask      uint32 = 0x80000000 // most significant bit
	mtLowerMask      uint32 = 0x7FFFFFFF // least significant 31 bits
	mtTemperingMaskB uint32 = 0x9D2C5680
	mtTemperingMaskC uint32 = 0xEFC60000
)

// ChaCha20-style stream generator layout.
//
// The 16-word working state is laid out per the IETF construction:
// words 0-3 constants, 4-11 key, 12 block counter, 13-15 nonce.
const (
	chachaKeySize   = 32 // bytes
	chachaNonceSize = 12 // bytes
	chachaBlockSize = 64 // bytes of keystream per block
	chachaRounds    = 20 // 10 double rounds
)

// The "expand 32-byte k" sigma constants occupying words 0-3.
var chachaSigma = [4]uint32{0x61707865, 0x3320646E, 0x79622D32, 0x6B206574}

// XorShift128+ parameters. An all-zero 128-bit state is a fixed point of
// the recurrence, so zero seeds are repaired with this arbitrary odd
// constant rather than rejected.
const xorshiftZeroRepair uint64 = 0x9E3779B97F4A7C15

// splitmix64 constants, used only to expand a single 64-bit seed into
// wider deterministic generator state (MT and ChaCha word fill).
const (
	splitmixGamma uint64 = 0x9E3779B97F4A7C15
	splitmixMultA uint64 = 0xBF58476D1CE4E5B9
	splitmixMultB uint64 = 0x94D049BB133111EB
)

// EntropyPool sizing. The pool is a bounded FIFO; overflow evicts the
// oldest sample so the newest timing data always lands.
const (
	entropyPoolCapacity    = 256
	entropyFreshPerExtract = 8 // fresh low-grade samples folded in per Bytes call
)

// StatisticalAssessor policy constants.
const (
	// DefaultChiSquareBuckets is the bin count used by Assess and by
	// ChiSquareUniformity callers that have no reason to choose otherwise.
	DefaultChiSquareBuckets = 10

	// chiSquareAlpha is the significance level for the uniformity test.
	chiSquareAlpha = 0.05

	// runsZCritical is the two-sided 5% critical value of the standard
	// normal distribution used by the runs test.
	runsZCritical = 1.96

	// Byte-entropy thresholds on the 0-8 bits/byte scale.
	entropyHighThreshold     = 7.5
	entropyModerateThreshold = 6.5
)

// Composite score weights. Each passing sub-test contributes its full
// weight; entropy contributes half weight at the moderate threshold.
// Weights sum to 100 and the score is monotonic in passing sub-tests.
const (
	scoreWeightChiSquare = 35
	scoreWeightRuns      = 35
	scoreWeightEntropy   = 30
)

// Qualitative label cutoffs applied to the 0-100 composite score.
const (
	scoreExcellent = 85
	scoreGood      = 65
	scoreFair      = 40
)

// Logger Level Constants
const (
	DEBUG   = 1 << 4
	INFO    = 1 << 5
	WARNING = 1 << 6
	ERROR   = 1 << 7
	FATAL   = 1 << 8
)
