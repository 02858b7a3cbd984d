package rngkit

import (
	"bytes"
	"testing"
)

// TestEntropyPoolCapacity floods the pool and verifies it never grows
// past its fixed capacity while still accepting the newest samples.
func TestEntropyPoolCapacity(t *testing.T) {
	p := NewEntropyPool()

	for i := 0; i < entropyPoolCapacity*4; i++ {
		p.AddSample(byte(i))
		if p.Len() > entropyPoolCapacity {
			t.Fatalf("Pool grew to %d samples, capacity is %d", p.Len(), entropyPoolCapacity)
		}
	}
	if p.Len() != entropyPoolCapacity {
		t.Errorf("Pool holds %d samples after flooding, want %d", p.Len(), entropyPoolCapacity)
	}
}

func TestEntropyPoolBytesCount(t *testing.T) {
	p := NewEntropyPool()

	b, err := p.Bytes(32)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("Bytes(32) returned %d bytes", len(b))
	}

	empty, err := p.Bytes(0)
	if err != nil {
		t.Fatalf("Bytes(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Bytes(0) returned %d bytes", len(empty))
	}

	if _, err := p.Bytes(-1); !IsInvalidArgument(err) {
		t.Errorf("Bytes(-1) error = %v, want ErrInvalidArgument", err)
	}
}

// TestEntropyPoolStateCarriesForward verifies extraction mutates the
// live pool: consecutive extractions must not repeat each other.
func TestEntropyPoolStateCarriesForward(t *testing.T) {
	p := NewEntropyPool()

	a, err := p.Bytes(16)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	b, err := p.Bytes(16)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("Consecutive extractions produced identical bytes; pool state did not carry forward")
	}
}

func TestEntropyPoolFoldsFreshSamples(t *testing.T) {
	p := NewEntropyPool()
	before := p.Len()

	if _, err := p.Bytes(0); err != nil {
		t.Fatalf("Bytes(0) failed: %v", err)
	}
	if p.Len() <= before {
		t.Errorf("Pool length %d after extraction, want > %d (fresh samples folded in)", p.Len(), before)
	}
}
