// Package feature computes the scalar frame statistics behind quality
// classification: RMS energy, zero-crossing rate, and peak amplitude.
//
// All kernels are single-pass, read-only, and stateless. They operate on
// whatever the caller hands them; an empty frame yields NaN from the
// rate computations (zero divided by a zero count), which callers must
// handle according to their own empty-input policy.
package feature

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-quality/internal/simdops"
)

// Float is the type constraint for supported sample types.
type Float = simdops.Float

// Energy returns the sum of squared samples using the SIMD dot-product
// kernel (a frame dotted with itself). Accumulation happens in the
// frame's own precision.
func Energy[F Float](frame []F) float64 {
	if len(frame) == 0 {
		return 0
	}
	return float64(simdops.For[F]().DotProductUnsafe(frame, frame))
}

// EnergyScalar is the pure-Go fallback for Energy. The float64 path
// delegates to gonum's dot product; the float32 path accumulates in
// float64 for headroom.
func EnergyScalar[F Float](frame []F) float64 {
	switch s := any(frame).(type) {
	case []float64:
		return floats.Dot(s, s)
	case []float32:
		var sum float64
		for _, x := range s {
			sum += float64(x) * float64(x)
		}
		return sum
	default:
		return 0
	}
}

// RMS returns the root-mean-square of the frame: sqrt(energy / count).
// An empty frame divides zero by zero and returns NaN.
func RMS[F Float](frame []F, useSIMD bool) float64 {
	var energy float64
	if useSIMD {
		energy = Energy(frame)
	} else {
		energy = EnergyScalar(frame)
	}
	return math.Sqrt(energy / float64(len(frame)))
}

// ZCR returns the zero-crossing rate: the fraction of adjacent sample
// pairs whose signs differ, with zero counted as non-negative. A
// single-sample frame has no pairs and returns 0; an empty frame
// returns NaN.
func ZCR[F Float](frame []F) float64 {
	var crossings int
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] < 0) != (frame[i] < 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame))
}

// Peak returns the largest absolute sample value in the frame,
// or 0 for an empty frame.
func Peak[F Float](frame []F) float64 {
	var peak float64
	for _, x := range frame {
		if a := math.Abs(float64(x)); a > peak {
			peak = a
		}
	}
	return peak
}
