package rngkit

import (
	"sync"
	"sync/atomic"
)

// Collector defines the interface for collecting generator usage
// metrics. It allows applications to plug in custom implementations
// (Prometheus, StatsD, logging) when generators feed long-running
// experiments.
//
// All methods must be safe for concurrent use and should be
// non-blocking.
type Collector interface {
	// IncrementDraws increments the count of Next calls by variant.
	IncrementDraws(v Variant)

	// AddBytesProduced adds to the total output byte counter by variant.
	AddBytesProduced(v Variant, n uint64)

	// IncrementError increments the error counter by error category
	// (e.g. "invalid_argument").
	IncrementError(category string)
}

// InMemoryMetrics provides a simple in-memory implementation of
// Collector. Suitable for development, testing and applications that
// want basic counters without external dependencies.
//
// All operations are thread-safe using atomic operations and minimal
// locking.
type InMemoryMetrics struct {
	draws [4]uint64
	bytes [4]uint64

	mu     sync.Mutex
	errors map[string]uint64
}

// NewInMemoryMetrics creates a zeroed in-memory collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		errors: make(map[string]uint64),
	}
}

// IncrementDraws implements Collector.
func (m *InMemoryMetrics) IncrementDraws(v Variant) {
	if v >= 0 && int(v) < len(m.draws) {
		atomic.AddUint64(&m.draws[v], 1)
	}
}

// AddBytesProduced implements Collector.
func (m *InMemoryMetrics) AddBytesProduced(v Variant, n uint64) {
	if v >= 0 && int(v) < len(m.bytes) {
		atomic.AddUint64(&m.bytes[v], n)
	}
}

// IncrementError implements Collector.
func (m *InMemoryMetrics) IncrementError(category string) {
	m.mu.Lock()
	m.errors[category]++
	m.mu.Unlock()
}

// Draws returns the Next-call count recorded for a variant.
func (m *InMemoryMetrics) Draws(v Variant) uint64 {
	if v < 0 || int(v) >= len(m.draws) {
		return 0
	}
	return atomic.LoadUint64(&m.draws[v])
}

// BytesProduced returns the output byte count recorded for a variant.
func (m *InMemoryMetrics) BytesProduced(v Variant) uint64 {
	if v < 0 || int(v) >= len(m.bytes) {
		return 0
	}
	return atomic.LoadUint64(&m.bytes[v])
}

// Errors returns the count recorded for an error category.
func (m *InMemoryMetrics) Errors(category string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[category]
}

// instrumentedGenerator wraps a Generator and reports usage to a
// Collector. It adds no synchronization of its own: like every
// generator, a wrapped instance is single-caller.
type instrumentedGenerator struct {
	g Generator
	c Collector
}

// Instrument wraps g so every draw, produced byte and argument error is
// reported to c. A nil collector returns g unwrapped.
func Instrument(g Generator, c Collector) Generator {
	if c == nil {
		return g
	}
	return &instrumentedGenerator{g: g, c: c}
}

func (ig *instrumentedGenerator) Next() float64 {
	ig.c.IncrementDraws(ig.g.Variant())
	return ig.g.Next()
}

func (ig *instrumentedGenerator) NextInt(maxExclusive int) (int, error) {
	n, err := ig.g.NextInt(maxExclusive)
	if err != nil {
		ig.c.IncrementError("invalid_argument")
		return n, err
	}
	ig.c.IncrementDraws(ig.g.Variant())
	return n, nil
}

func (ig *instrumentedGenerator) NextBytes(count int) ([]byte, error) {
	b, err := ig.g.NextBytes(count)
	if err != nil {
		ig.c.IncrementError("invalid_argument")
		return b, err
	}
	ig.c.AddBytesProduced(ig.g.Variant(), uint64(len(b)))
	return b, nil
}

func (ig *instrumentedGenerator) Variant() Variant {
	return ig.g.Variant()
}
