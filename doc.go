// Package quality classifies single audio frames into quality categories
// in pure Go.
//
// A frame is a buffer of 32-bit (or 64-bit) floating-point PCM samples.
// Each call computes two scalar statistics over the frame (RMS energy and
// zero-crossing rate) and maps them through a fixed-priority threshold
// cascade to one of four codes:
//
//	0 Silence   RMS below the silence threshold (default 0.01)
//	1 Good      in the usable band
//	2 Clipping  RMS above the clipping threshold (default 0.9)
//	3 Noisy     zero-crossing rate above the noise threshold (default 0.35)
//
// Priority is fixed: silence wins over clipping, clipping wins over noisy.
//
// # Quick Start
//
// For one-shot classification with the default thresholds:
//
//	code, err := quality.ClassifyFrame(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code) // e.g. "good"
//
// For repeated use or custom thresholds, construct a reusable classifier:
//
//	c, err := quality.New(&quality.Config{
//	    Variant:     quality.VariantRefined,
//	    SilenceRMS:  0.02,
//	    ClippingRMS: 0.9,
//	    NoisyZCR:    0.35,
//	    EnableSIMD:  true,
//	})
//	code, err := c.Classify(frame)
//
// [Classifier.Measure] additionally returns the measured RMS, ZCR and peak
// alongside the code, for hosts that drive meters or adaptive gain.
//
// # Variants
//
// Two cascades exist and are explicitly versioned. [VariantRefined] is the
// canonical superset: it evaluates the zero-crossing rate and can return
// Noisy. [VariantBaseline] is the original RMS-only cascade with no Noisy
// category, kept for hosts calibrated against the older behavior. The same
// alternating ±1.0 frame returns Noisy under the refined cascade and Good
// under the baseline.
//
// # Foreign-Call Boundary
//
// The boundary subpackage exposes the classifier across a raw
// pointer-and-length calling convention (allocate, classify, deallocate)
// for hosts that share memory with this module rather than Go slices. See
// that package's documentation for the ownership contract and its hazards.
//
// # Empty Frames
//
// A zero-length frame makes the RMS computation divide zero by zero; the
// resulting NaN compares false against every threshold and the cascade
// falls through to Good. The checked entry points ([Classifier.Classify],
// [ClassifyFrame]) reject empty frames with [ErrEmptyFrame] instead. Only
// [Classifier.ClassifyRaw] and the raw boundary call preserve the NaN
// fallthrough, for bit-compatibility with existing hosts.
//
// # Thread Safety
//
// Classification is stateless. A single [Classifier] is safe for
// concurrent use on distinct buffers; concurrent access to the same
// buffer must be serialized by the caller, as the module performs no
// synchronization over sample memory.
package quality
