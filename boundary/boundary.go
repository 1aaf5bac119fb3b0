// Package boundary exposes frame classification across a raw
// pointer-and-length calling convention, for hosts that share memory
// with this module instead of passing Go slices.
//
// The surface is three calls: [Alloc] hands a block of float32 sample
// storage to the host, [ProcessFrame] classifies a frame the host has
// filled, and [Free] reclaims the block. Ownership of allocated memory
// sits entirely with the host between calls: the module keeps no
// reference beyond an internal pin that stops the garbage collector
// from reclaiming the block while the host still holds its address.
// The pin is keyed by address and adds no allocation header, so the
// pointer a host receives is the raw start of the sample memory.
//
// # Contract and hazards
//
// Blocks are not self-describing. The host must remember the count it
// passed to [Alloc] and pass the same count back to [Free]; passing the
// count of samples actually written, or any other value, violates the
// contract. Likewise [ProcessFrame] trusts the pointer and count it is
// given. These are inherited properties of the calling convention, kept
// for bit-compatibility with existing hosts, and they are only
// appropriate when the host is fully trusted. The checked entry points
// ([ProcessFrameChecked], [FreeChecked]) report the misuse this side of
// the boundary can detect, and are the recommended surface for new
// hosts.
//
// Alloc and Free must never race on the same pointer; that is a host
// invariant this package cannot enforce. Classifying distinct blocks
// from multiple goroutines is safe.
package boundary

import (
	"errors"
	"sync"
	"unsafe"

	quality "github.com/tphakala/go-audio-quality"
)

// Errors reported by the checked entry points. The raw entry points
// never report anything; contract violations there are undefined
// behavior.
var (
	// ErrNilPointer indicates a nil frame or block pointer.
	ErrNilPointer = errors.New("nil pointer")

	// ErrInvalidLength indicates a non-positive count, or a count that
	// exceeds what is known to have been allocated at that address.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnknownPointer indicates a pointer this module never handed
	// out, or one that was already freed.
	ErrUnknownPointer = errors.New("unknown pointer")
)

// allocation records a live block handed to the host.
type allocation struct {
	block []float32
	count int // count requested at Alloc time
}

// The pin table keeps host-held blocks reachable. Keyed by the address
// of the first sample; holds nothing else, so the memory layout seen by
// the host is a bare float32 array.
var (
	mu   sync.Mutex
	live = make(map[uintptr]allocation)
)

// classifier applies the canonical refined cascade with default
// thresholds. Hosts that need the baseline behavior call the quality
// package directly.
var classifier = func() *quality.Classifier {
	c, err := quality.New(nil)
	if err != nil {
		panic(err)
	}
	return c
}()

// Alloc reserves storage for count float32 samples, uninitialized from
// the host's point of view, and returns the address of the first
// element. Ownership passes to the caller at return; the caller must
// remember count and present it again to Free.
func Alloc(count int) unsafe.Pointer {
	n := count
	if n < 1 {
		// A zero-length allocation still needs a real, distinct
		// address to hand out and later free.
		n = 1
	}
	block := make([]float32, n)
	ptr := unsafe.Pointer(unsafe.SliceData(block))
	mu.Lock()
	live[uintptr(ptr)] = allocation{block: block, count: count}
	mu.Unlock()
	return ptr
}

// Free releases the block at ptr, which must have been returned by
// Alloc. count must be the value originally passed to Alloc, not the
// number of samples written; the pin table does not consult it, but
// hosts must not rely on that. Freeing a pointer twice, or a pointer
// Alloc never returned, is caller error with undefined consequences.
func Free(ptr unsafe.Pointer, count int) {
	mu.Lock()
	delete(live, uintptr(ptr))
	mu.Unlock()
}

// FreeChecked is like Free but reports the misuse the pin table can
// detect: a nil pointer, an unknown or already-freed pointer, or a
// count that does not match the original allocation.
func FreeChecked(ptr unsafe.Pointer, count int) error {
	if ptr == nil {
		return ErrNilPointer
	}
	mu.Lock()
	defer mu.Unlock()
	a, ok := live[uintptr(ptr)]
	if !ok {
		return ErrUnknownPointer
	}
	if count != a.count {
		return ErrInvalidLength
	}
	delete(live, uintptr(ptr))
	return nil
}

// ProcessFrame classifies count samples starting at ptr and returns the
// quality code as an int32: 0 silence, 1 good, 2 clipping, 3 noisy.
// The frame is read without taking ownership and without mutation.
//
// Nothing is validated: ptr must reference at least count valid
// samples. A zero count produces NaN statistics, which fall through the
// threshold cascade to 1 (good); that inherited degenerate result is
// kept here for bit-compatibility. Use ProcessFrameChecked for a
// defined policy.
func ProcessFrame(ptr unsafe.Pointer, count int) int32 {
	frame := unsafe.Slice((*float32)(ptr), count)
	return int32(classifier.ClassifyRaw(frame))
}

// ProcessFrameChecked classifies count samples starting at ptr,
// rejecting a nil pointer and a non-positive count instead of
// propagating NaN. If ptr is a block this module allocated, count is
// additionally validated against the allocation size.
func ProcessFrameChecked(ptr unsafe.Pointer, count int) (quality.Code, error) {
	if ptr == nil {
		return 0, ErrNilPointer
	}
	if count <= 0 {
		return 0, ErrInvalidLength
	}
	mu.Lock()
	a, known := live[uintptr(ptr)]
	mu.Unlock()
	if known && count > len(a.block) {
		return 0, ErrInvalidLength
	}
	frame := unsafe.Slice((*float32)(ptr), count)
	return classifier.ClassifyRaw(frame), nil
}

// Live returns the number of blocks currently pinned, i.e. allocated
// and not yet freed. Useful in host-side leak checks.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(live)
}
