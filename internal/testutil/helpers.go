// Package testutil provides reusable test helpers for frame
// classification tests: deterministic frame generators and common
// assertions.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for statistic comparisons.
const (
	DefaultTolerance = 1e-6
	RMSTolerance     = 1e-4
)

// SilenceFrame returns n zero samples.
func SilenceFrame(n int) []float32 {
	return make([]float32, n)
}

// DCFrame returns n copies of value.
func DCFrame(n int, value float32) []float32 {
	frame := make([]float32, n)
	for i := range frame {
		frame[i] = value
	}
	return frame
}

// AlternatingFrame returns n samples alternating +amp, -amp, +amp, ...
// Every adjacent pair is a zero crossing, so ZCR approaches 1 for
// large n.
func AlternatingFrame(n int, amp float32) []float32 {
	frame := make([]float32, n)
	for i := range frame {
		if i%2 == 0 {
			frame[i] = amp
		} else {
			frame[i] = -amp
		}
	}
	return frame
}

// ToneFrame returns n samples of a sine tone at the given frequency and
// sample rate, scaled to amp.
func ToneFrame(n int, freq, rate float64, amp float32) []float32 {
	frame := make([]float32, n)
	for i := range frame {
		frame[i] = amp * float32(math.Sin(2*math.Pi*freq*float64(i)/rate))
	}
	return frame
}

// NoiseFrame returns n uniform random samples in [-amp, amp] from a
// fixed-seed source, so tests are reproducible.
func NoiseFrame(n int, amp float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	frame := make([]float32, n)
	for i := range frame {
		frame[i] = amp * float32(2*rng.Float64()-1)
	}
	return frame
}

// ToFloat64 widens a float32 frame for the float64 entry points.
func ToFloat64(frame []float32) []float64 {
	out := make([]float64, len(frame))
	for i, x := range frame {
		out[i] = float64(x)
	}
	return out
}

// AssertAllInRange verifies that all samples are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, frame []float32, minVal, maxVal float32) bool {
	t.Helper()
	for i, v := range frame {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "sample out of range",
				"frame[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNaN verifies that a computed statistic is NaN.
func AssertNaN(t *testing.T, v float64, msgAndArgs ...any) bool {
	t.Helper()
	if !math.IsNaN(v) {
		return assert.Fail(t, "expected NaN", msgAndArgs...)
	}
	return true
}
