package noise

import "testing"

// Benchmarks mirror the shapes a terrain generator asks for: full chunks
// of 2D heightmaps and 3D density volumes.

func BenchmarkSimplex2D(b *testing.B) {
	n := Simplex(UniformFrequency(0.01), 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate2D(0, 0, 256, 256)
	}
}

func BenchmarkPerlin2D(b *testing.B) {
	n := Perlin(UniformFrequency(0.01), 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate2D(0, 0, 256, 256)
	}
}

func BenchmarkSimplex3D(b *testing.B) {
	n := Simplex(UniformFrequency(0.02), 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate3D(0, 0, 0, 32, 32, 32)
	}
}

func BenchmarkFbm2D(b *testing.B) {
	n := Simplex(UniformFrequency(0.005), 42).Fbm(5, 0.5, 2.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate2D(0, 0, 256, 256)
	}
}

func BenchmarkFbm3D(b *testing.B) {
	n := Perlin(UniformFrequency(0.01), 42).Fbm(4, 0.5, 2.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate3D(0, 0, 0, 32, 32, 32)
	}
}

func BenchmarkCombinatorChain(b *testing.B) {
	n := Simplex(UniformFrequency(0.01), 1).
		Fbm(5, 0.5, 2.0).
		Abs().
		MulValue(2).
		Clamp(0, 1.5).
		Add(Constant(0.5))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.Generate2D(0, 0, 256, 256)
	}
}
