package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-audio-quality/internal/testutil"
)

// naiveEnergy is the straightforward reference the kernels are checked
// against.
func naiveEnergy(frame []float32) float64 {
	var sum float64
	for _, x := range frame {
		sum += float64(x) * float64(x)
	}
	return sum
}

func TestRMS(t *testing.T) {
	tests := []struct {
		name  string
		frame []float32
		want  float64
	}{
		{"all_zero", testutil.SilenceFrame(128), 0},
		{"all_ones", testutil.DCFrame(64, 1.0), 1.0},
		{"all_neg_ones", testutil.DCFrame(64, -1.0), 1.0},
		{"half_amplitude_square", testutil.AlternatingFrame(64, 0.5), 0.5},
		{"single_sample", []float32{-0.25}, 0.25},
		{"quiet_frame", []float32{0.005, -0.003, 0.002}, math.Sqrt(38e-6 / 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RMS(tt.frame, true), testutil.RMSTolerance, "simd path")
			assert.InDelta(t, tt.want, RMS(tt.frame, false), testutil.RMSTolerance, "scalar path")
		})
	}
}

func TestRMSEmptyFrameIsNaN(t *testing.T) {
	testutil.AssertNaN(t, RMS([]float32{}, true), "simd path")
	testutil.AssertNaN(t, RMS([]float32{}, false), "scalar path")
	testutil.AssertNaN(t, RMS([]float64{}, false), "float64 scalar path")
}

func TestRMSSIMDMatchesScalar(t *testing.T) {
	for _, n := range []int{1, 3, 16, 127, 1024} {
		frame := testutil.NoiseFrame(n, 0.8, int64(n))
		simd := RMS(frame, true)
		scalar := RMS(frame, false)
		assert.InDelta(t, scalar, simd, testutil.RMSTolerance, "n=%d", n)
		assert.InDelta(t, math.Sqrt(naiveEnergy(frame)/float64(n)), scalar,
			testutil.RMSTolerance, "n=%d vs naive", n)
	}
}

func TestRMSFloat64(t *testing.T) {
	frame := testutil.ToFloat64(testutil.NoiseFrame(512, 0.5, 7))
	var want float64
	for _, x := range frame {
		want += x * x
	}
	want = math.Sqrt(want / float64(len(frame)))
	assert.InDelta(t, want, RMS(frame, true), testutil.DefaultTolerance)
	assert.InDelta(t, want, RMS(frame, false), testutil.DefaultTolerance)
}

func TestZCR(t *testing.T) {
	tests := []struct {
		name  string
		frame []float32
		want  float64
	}{
		// Alternating signs: every adjacent pair crosses.
		{"alternating_4", testutil.AlternatingFrame(4, 1.0), 3.0 / 4.0},
		{"alternating_8", testutil.AlternatingFrame(8, 0.5), 7.0 / 8.0},
		// No pairs to compare.
		{"single_sample", []float32{0.7}, 0},
		// Constant sign never crosses.
		{"dc_positive", testutil.DCFrame(16, 0.3), 0},
		{"dc_negative", testutil.DCFrame(16, -0.3), 0},
		// Zero counts as non-negative: 0 -> -1 crosses, 0 -> +1 does not.
		{"zero_to_negative", []float32{0, -1}, 1.0 / 2.0},
		{"zero_to_positive", []float32{0, 1}, 0},
		{"negative_to_zero", []float32{-1, 0}, 1.0 / 2.0},
		{"mixed", []float32{0.2, 0.1, -0.1, -0.2, 0.3}, 2.0 / 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ZCR(tt.frame), testutil.DefaultTolerance)
		})
	}
}

func TestZCREmptyFrameIsNaN(t *testing.T) {
	testutil.AssertNaN(t, ZCR([]float32{}))
}

func TestPeak(t *testing.T) {
	assert.Equal(t, 0.0, Peak([]float32{}))
	assert.InDelta(t, 0.9, Peak([]float32{0.1, -0.9, 0.5}), testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, Peak(testutil.AlternatingFrame(32, 1.0)), testutil.DefaultTolerance)
}

func BenchmarkRMS(b *testing.B) {
	frame := testutil.NoiseFrame(1024, 0.5, 42)

	b.Run("simd", func(b *testing.B) {
		b.SetBytes(int64(len(frame) * 4))
		for b.Loop() {
			_ = RMS(frame, true)
		}
	})

	b.Run("scalar", func(b *testing.B) {
		b.SetBytes(int64(len(frame) * 4))
		for b.Loop() {
			_ = RMS(frame, false)
		}
	})
}

func BenchmarkZCR(b *testing.B) {
	frame := testutil.NoiseFrame(1024, 0.5, 42)
	b.SetBytes(int64(len(frame) * 4))
	for b.Loop() {
		_ = ZCR(frame)
	}
}
