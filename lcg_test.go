package rngkit

import "testing"

// TestLCGDeterminism verifies that two separately constructed instances
// with the same seed yield identical floating values to full precision.
func TestLCGDeterminism(t *testing.T) {
	a := NewLCG(12345)
	b := NewLCG(12345)

	for i := 0; i < 10000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("Draw %d diverged: %v != %v", i, va, vb)
		}
	}
}

func TestLCGFirstDraw(t *testing.T) {
	g := NewLCG(12345)
	// state' = (1664525*12345 + 1013904223) mod 2^32 = 87628868
	want := float64(87628868) / 4294967296.0
	if got := g.Next(); got != want {
		t.Errorf("First draw = %v, want %v", got, want)
	}
}

func TestLCGRange(t *testing.T) {
	g := NewLCG(42)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestLCGNextInt(t *testing.T) {
	g := NewLCG(7)
	for i := 0; i < 10000; i++ {
		n, err := g.NextInt(37)
		if err != nil {
			t.Fatalf("NextInt failed: %v", err)
		}
		if n < 0 || n >= 37 {
			t.Fatalf("NextInt(37) out of range: %d", n)
		}
	}

	if _, err := g.NextInt(0); !IsInvalidArgument(err) {
		t.Errorf("NextInt(0) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := g.NextInt(-3); !IsInvalidArgument(err) {
		t.Errorf("NextInt(-3) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLCGNextBytes(t *testing.T) {
	g := NewLCG(7)

	b, err := g.NextBytes(16)
	if err != nil {
		t.Fatalf("NextBytes failed: %v", err)
	}
	if len(b) != 16 {
		t.Errorf("NextBytes(16) returned %d bytes", len(b))
	}

	empty, err := g.NextBytes(0)
	if err != nil {
		t.Fatalf("NextBytes(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("NextBytes(0) returned %d bytes", len(empty))
	}

	if _, err := g.NextBytes(-1); !IsInvalidArgument(err) {
		t.Errorf("NextBytes(-1) error = %v, want ErrInvalidArgument", err)
	}
}
