package rngkit

import "testing"

// Benchmark Generator Throughput
// Tests the performance of the per-draw and bulk-byte output paths

func BenchmarkLCG_Next(b *testing.B) {
	g := NewLCG(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Next()
	}
}

func BenchmarkMT19937_Next(b *testing.B) {
	g := NewMT19937(5489)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Next()
	}
}

func BenchmarkChaCha20_Next(b *testing.B) {
	g := NewChaCha20Seeded(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Next()
	}
}

func BenchmarkXorShift128Plus_Next(b *testing.B) {
	g := NewXorShift128Plus(1, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Next()
	}
}

func BenchmarkChaCha20_NextBytes(b *testing.B) {
	g := NewChaCha20Seeded(1)
	b.SetBytes(chachaBlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.NextBytes(chachaBlockSize); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShannonEntropy(b *testing.B) {
	g := NewChaCha20Seeded(1)
	data, err := g.NextBytes(4096)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ShannonEntropy(data)
	}
}

func BenchmarkChiSquareUniformity(b *testing.B) {
	g := NewMT19937(5489)
	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = g.Next()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ChiSquareUniformity(samples, DefaultChiSquareBuckets); err != nil {
			b.Fatal(err)
		}
	}
}
