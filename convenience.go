package quality

// Package-level classifiers for the one-shot helpers. Both configs are
// static and always valid, so construction cannot fail.
var (
	defaultRefined  = &Classifier{cfg: *DefaultConfig()}
	defaultBaseline = &Classifier{cfg: func() Config {
		cfg := *DefaultConfig()
		cfg.Variant = VariantBaseline
		return cfg
	}()}
)

// ClassifyFrame classifies a single frame using the canonical refined
// cascade with default thresholds. For repeated use with custom
// thresholds, construct a Classifier with New.
func ClassifyFrame(frame []float32) (Code, error) {
	return defaultRefined.Classify(frame)
}

// ClassifyFrameFloat64 is like ClassifyFrame but for float64 samples.
func ClassifyFrameFloat64(frame []float64) (Code, error) {
	return defaultRefined.ClassifyFloat64(frame)
}

// ClassifyFrameBaseline classifies a single frame using the RMS-only
// baseline cascade. It never returns Noisy; frames in the good energy
// band are Good regardless of zero-crossing rate. Kept for hosts that
// depend on the pre-ZCR behavior.
func ClassifyFrameBaseline(frame []float32) (Code, error) {
	return defaultBaseline.Classify(frame)
}

// MeasureFrame returns the statistics and code for a single frame using
// the refined defaults.
func MeasureFrame(frame []float32) (Report, error) {
	return defaultRefined.Measure(frame)
}
