package quality

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-quality/internal/feature"
)

// Default decision thresholds. The values are part of the established
// classification contract; hosts that tuned behavior against them rely
// on these exact constants.
const (
	// DefaultSilenceRMS is the RMS level below which a frame is Silence.
	DefaultSilenceRMS = 0.01

	// DefaultClippingRMS is the RMS level above which a frame is Clipping.
	DefaultClippingRMS = 0.9

	// DefaultNoisyZCR is the zero-crossing rate above which an
	// in-band frame is Noisy (refined variant only).
	DefaultNoisyZCR = 0.35
)

// Variant selects which decision cascade the classifier applies.
type Variant int

const (
	// VariantRefined applies the full cascade (RMS plus zero-crossing
	// rate) and can produce all four codes. This is the canonical
	// variant and the zero value.
	VariantRefined Variant = iota

	// VariantBaseline applies the RMS-only cascade. It never produces
	// Noisy: frames in the good energy band are Good regardless of
	// zero-crossing rate.
	VariantBaseline
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantRefined:
		return "refined"
	case VariantBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ErrEmptyFrame is returned by the checked classification entry points
// when the frame contains no samples. The raw entry points instead let
// the NaN statistics fall through the cascade to Good.
var ErrEmptyFrame = errors.New("empty frame")

// Config holds classification parameters.
type Config struct {
	// Variant selects the baseline (RMS-only) or refined (RMS + ZCR)
	// decision cascade.
	Variant Variant

	// SilenceRMS is the silence threshold. Frames with RMS strictly
	// below it classify as Silence.
	SilenceRMS float64

	// ClippingRMS is the clipping threshold. Frames with RMS strictly
	// above it classify as Clipping.
	ClippingRMS float64

	// NoisyZCR is the noise threshold. In the refined variant, in-band
	// frames with a zero-crossing rate strictly above it classify as
	// Noisy. Ignored by the baseline variant.
	NoisyZCR float64

	// EnableSIMD allows the use of SIMD kernels for the energy
	// computation. Set to false to force the pure Go implementation.
	EnableSIMD bool
}

// DefaultConfig returns a Config with the canonical refined cascade and
// the default thresholds.
func DefaultConfig() *Config {
	return &Config{
		Variant:     VariantRefined,
		SilenceRMS:  DefaultSilenceRMS,
		ClippingRMS: DefaultClippingRMS,
		NoisyZCR:    DefaultNoisyZCR,
		EnableSIMD:  true,
	}
}

// validate checks threshold ordering.
func (c *Config) validate() error {
	switch c.Variant {
	case VariantRefined, VariantBaseline:
	default:
		return fmt.Errorf("unknown variant %d", int(c.Variant))
	}
	if c.SilenceRMS < 0 {
		return fmt.Errorf("silence threshold must be non-negative, got %g", c.SilenceRMS)
	}
	if c.ClippingRMS <= c.SilenceRMS {
		return fmt.Errorf("clipping threshold %g must exceed silence threshold %g",
			c.ClippingRMS, c.SilenceRMS)
	}
	if c.Variant == VariantRefined && c.NoisyZCR <= 0 {
		return fmt.Errorf("noise threshold must be positive, got %g", c.NoisyZCR)
	}
	return nil
}

// Classifier classifies single audio frames by RMS energy and
// zero-crossing rate. It holds no per-frame state: every call is
// independent, reads the frame without mutating it, and a single
// Classifier is safe for concurrent use on distinct frames. Concurrent
// calls on the same underlying buffer require the caller to serialize
// writes against reads.
type Classifier struct {
	cfg Config
}

// New creates a Classifier. A nil config selects DefaultConfig.
func New(config *Config) (*Classifier, error) {
	cfg := *DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Classifier{cfg: cfg}, nil
}

// Variant returns the decision cascade this classifier applies.
func (c *Classifier) Variant() Variant {
	return c.cfg.Variant
}

// Classify returns the quality code for a frame of float32 samples.
// Empty frames are rejected with ErrEmptyFrame rather than letting NaN
// statistics degrade silently.
func (c *Classifier) Classify(frame []float32) (Code, error) {
	if len(frame) == 0 {
		return 0, ErrEmptyFrame
	}
	return classifyFrame(c.cfg, frame), nil
}

// ClassifyFloat64 is like Classify but for float64 samples.
func (c *Classifier) ClassifyFloat64(frame []float64) (Code, error) {
	if len(frame) == 0 {
		return 0, ErrEmptyFrame
	}
	return classifyFrame(c.cfg, frame), nil
}

// ClassifyRaw classifies without validating the frame. An empty frame
// produces NaN statistics, which compare false against every threshold
// and fall through the cascade to Good. This preserves the inherited
// foreign-call behavior; hosts that want a defined empty-frame policy
// should use Classify.
func (c *Classifier) ClassifyRaw(frame []float32) Code {
	return classifyFrame(c.cfg, frame)
}

// Report carries the measured frame statistics alongside the code.
type Report struct {
	Code   Code
	RMS    float64
	ZCR    float64
	Peak   float64
	Length int
}

// Measure classifies a frame and returns the underlying statistics.
// Hosts that drive level meters or adaptive gain want the measured RMS
// and ZCR, not only the category.
func (c *Classifier) Measure(frame []float32) (Report, error) {
	if len(frame) == 0 {
		return Report{}, ErrEmptyFrame
	}
	rms := feature.RMS(frame, c.cfg.EnableSIMD)
	zcr := feature.ZCR(frame)
	return Report{
		Code:   c.decide(rms, zcr),
		RMS:    rms,
		ZCR:    zcr,
		Peak:   feature.Peak(frame),
		Length: len(frame),
	}, nil
}

// classifyFrame runs the kernels and the cascade for either precision.
func classifyFrame[F feature.Float](cfg Config, frame []F) Code {
	rms := feature.RMS(frame, cfg.EnableSIMD)
	if rms < cfg.SilenceRMS {
		return Silence
	}
	if rms > cfg.ClippingRMS {
		return Clipping
	}
	if cfg.Variant == VariantRefined && feature.ZCR(frame) > cfg.NoisyZCR {
		return Noisy
	}
	return Good
}

// decide applies the threshold cascade to already-computed statistics.
// Priority order is fixed: silence, then clipping, then noise.
func (c *Classifier) decide(rms, zcr float64) Code {
	if rms < c.cfg.SilenceRMS {
		return Silence
	}
	if rms > c.cfg.ClippingRMS {
		return Clipping
	}
	if c.cfg.Variant == VariantRefined && zcr > c.cfg.NoisyZCR {
		return Noisy
	}
	return Good
}
