package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF32Energy measures direct SIMD call overhead for the
// self-dot energy kernel.
func BenchmarkDirectF32Energy(b *testing.B) {
	frame := make([]float32, 1024)
	for i := range frame {
		frame[i] = float32(i) * 0.001
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = f32.DotProductUnsafe(frame, frame)
	}
}

// BenchmarkIndirectF32Energy measures the indirect call through the Ops
// struct; with PGO the difference should be negligible.
func BenchmarkIndirectF32Energy(b *testing.B) {
	ops := For[float32]()
	frame := make([]float32, 1024)
	for i := range frame {
		frame[i] = float32(i) * 0.001
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(frame, frame)
	}
}

// BenchmarkDirectF64Energy measures direct SIMD call overhead.
func BenchmarkDirectF64Energy(b *testing.B) {
	frame := make([]float64, 1024)
	for i := range frame {
		frame[i] = float64(i) * 0.001
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(frame, frame)
	}
}

// BenchmarkIndirectF64Energy measures indirect call through Ops struct.
func BenchmarkIndirectF64Energy(b *testing.B) {
	ops := For[float64]()
	frame := make([]float64, 1024)
	for i := range frame {
		frame[i] = float64(i) * 0.001
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(frame, frame)
	}
}
