// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"fmt"
	"math"
)

// MaxOutputSamples caps the length of a single produced slice, counted in
// samples of one channel or of the whole interleaved buffer.
const MaxOutputSamples = math.MaxInt32

// Region describes how a buffer is extended. All values are in frames.
type Region struct {
	// Start is the first frame of the loop body.
	Start int
	// End is one past the last frame of the loop body.
	End int
	// Repeat is how many times the body is played.
	Repeat int
	// Fade is the length of the faded outro.
	Fade int
}

// ShouldProcess reports whether looping is in effect for the given loop
// markers. Missing markers decode as zero and therefore disable looping.
func ShouldProcess(start, end int, requested bool) bool {
	return requested && end > start
}

// Active reports whether the region describes a non-empty loop body.
func (r Region) Active() bool { return r.End > r.Start }

// Len is the loop body length in frames.
func (r Region) Len() int {
	if !r.Active() {
		return 0
	}
	return r.End - r.Start
}

// OutputLen is the length in frames of the buffer produced for r.
func (r Region) OutputLen() int {
	return r.Start + r.Len()*r.Repeat + r.Fade
}

// Validate checks r against a source of the given number of frames.
func (r Region) Validate(frames int) error {
	return r.validate(frames, 1)
}

// validate also bounds the output, where every frame spans stride samples.
func (r Region) validate(frames, stride int) error {
	switch {
	case r.Repeat < 0:
		return fmt.Errorf("%w: %d", ErrNegativeRepeat, r.Repeat)
	case r.Fade < 0:
		return fmt.Errorf("%w: %d", ErrNegativeFade, r.Fade)
	case r.Start < 0 || r.End > frames:
		return fmt.Errorf("%w: [%d, %d) with %d frames", ErrRegionOutOfRange, r.Start, r.End, frames)
	case r.Start+r.Fade > frames:
		return fmt.Errorf("%w: %d frames from %d with %d frames", ErrFadeOverrun, r.Fade, r.Start, frames)
	case r.tooLong(stride):
		return fmt.Errorf("%w: %s with %d samples per frame", ErrOutputTooLong, r, stride)
	}

	return nil
}

// tooLong reports whether OutputLen()*stride exceeds MaxOutputSamples,
// without computing the possibly overflowing product.
func (r Region) tooLong(stride int) bool {
	room := MaxOutputSamples/stride - r.Start - r.Fade
	if room < 0 {
		return true
	}
	return r.Len() > 0 && r.Repeat > room/r.Len()
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d) x%d fade %d", r.Start, r.End, r.Repeat, r.Fade)
}
