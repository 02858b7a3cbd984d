package rngkit

import (
	"os"
	"sync"
	"time"
)

// EntropyPool is a small bounded mixing buffer that folds low-grade
// timing and numeric samples into a byte stream. It exists only to seed
// the non-secure generators when the caller supplies no seed; it makes
// no claim of cryptographic quality. The stream generator prefers the
// operating system's secure source and uses this pool as a fallback.
//
// The pool is a FIFO of at most 256 byte samples; the oldest sample is
// evicted on overflow. Extraction mixes across the entire live pool, so
// state carries forward between extractions rather than restarting from
// a snapshot.
//
// Constructors hand each entropy-consuming generator its own pool, so
// no synchronization is required by default, but all methods take the
// internal mutex anyway so a deliberately shared pool is also safe.
type EntropyPool struct {
	mu      sync.Mutex
	samples []byte
	counter uint64
}

// NewEntropyPool creates an empty pool primed with the process id and
// the current time, the two cheapest samples available.
func NewEntropyPool() *EntropyPool {
	p := &EntropyPool{
		samples: make([]byte, 0, entropyPoolCapacity),
	}
	pid := os.Getpid()
	p.AddSample(byte(pid))
	p.AddSample(byte(pid >> 8))
	p.AddSample(timingSample())
	return p
}

// AddSample appends one byte sample, evicting the oldest if the pool is
// at capacity.
func (p *EntropyPool) AddSample(b byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addLocked(b)
}

// Len reports the number of samples currently held. Never exceeds the
// fixed capacity of 256.
func (p *EntropyPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.samples)
}

func (p *EntropyPool) addLocked(b byte) {
	if len(p.samples) >= entropyPoolCapacity {
		copy(p.samples, p.samples[1:])
		p.samples = p.samples[:len(p.samples)-1]
	}
	p.samples = append(p.samples, b)
}

// weakSample is the pool's weak numeric source: a multiplied step
// counter. Predictable on purpose; it only perturbs, never carries the
// pool on its own.
func (p *EntropyPool) weakSample() byte {
	p.counter = p.counter*6364136223846793005 + 1442695040888963407
	return byte(p.counter >> 33)
}

// Bytes extracts count mixed bytes from the pool. Each call first folds
// in a fixed number of fresh timing and weak numeric samples, then for
// each output byte runs a position-weighted multiply-xor accumulator
// across the entire current pool, XORs in one more fresh timing sample,
// and folds the result back in so the next extraction sees it.
//
// Fails with ErrInvalidArgument when count < 0. Bytes(0) still folds
// the fresh samples in.
func (p *EntropyPool) Bytes(count int) ([]byte, error) {
	if count < 0 {
		return nil, wrapInvalidArgument("entropy byte count must be non-negative, got %d", count)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < entropyFreshPerExtract; i++ {
		p.addLocked(timingSample())
		p.addLocked(p.weakSample())
	}

	out := make([]byte, count)
	for i := range out {
		acc := uint32(i)*2654435761 + 2166136261
		for j, b := range p.samples {
			acc = acc*16777619 ^ uint32(b)*uint32(j+1)
		}
		mixed := byte(acc^(acc>>8)^(acc>>16)^(acc>>24)) ^ timingSample()
		p.addLocked(mixed)
		out[i] = mixed
	}
	return out, nil
}

// timingSample derives one byte from the wall clock's lowest bits.
func timingSample() byte {
	return byte(time.Now().UnixNano())
}
