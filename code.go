package quality

import "fmt"

// Code is the four-way quality classification of a single audio frame.
//
// The integer values are part of the foreign-call contract (see the
// boundary package) and must not be reordered.
type Code int32

const (
	// Silence indicates the frame's RMS energy is below the silence
	// threshold (too quiet to carry usable signal).
	Silence Code = 0

	// Good indicates the frame is within the usable energy band and,
	// in the refined variant, below the noise threshold.
	Good Code = 1

	// Clipping indicates the frame's RMS energy is above the clipping
	// threshold (too loud, likely distorted).
	Clipping Code = 2

	// Noisy indicates the frame's zero-crossing rate is above the noise
	// threshold while its energy is otherwise in the good band.
	// Only produced by the refined variant.
	Noisy Code = 3
)

// String returns the human-readable name of the code.
func (c Code) String() string {
	switch c {
	case Silence:
		return "silence"
	case Good:
		return "good"
	case Clipping:
		return "clipping"
	case Noisy:
		return "noisy"
	default:
		return fmt.Sprintf("Code(%d)", int32(c))
	}
}
