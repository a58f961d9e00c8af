// SPDX-License-Identifier: EPL-2.0

package loop

import "fmt"

// Apply extends a single channel according to r. An inactive region returns
// src itself. Otherwise the result is a new slice of r.OutputLen() samples
// and src is left untouched.
func Apply(src []int16, r Region) ([]int16, error) {
	return applyStrided(src, 1, r)
}

// ApplyChannels runs [Apply] on every channel with the same region, so all
// channels fade at the same rate. Channels must have equal length.
func ApplyChannels(r Region, channels ...[]int16) ([][]int16, error) {
	out := make([][]int16, len(channels))
	for i, ch := range channels {
		if len(ch) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLengthMismatch, i, len(ch), len(channels[0]))
		}
	}

	for i, ch := range channels {
		processed, err := Apply(ch, r)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = processed
	}

	return out, nil
}

// ApplyInterleaved extends an interleaved buffer holding the given number of
// channels. r stays in frames; every position of a frame gets the same fade
// factor.
func ApplyInterleaved(src []int16, channels int, r Region) ([]int16, error) {
	if channels <= 0 || len(src)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedBuffer, len(src), channels)
	}
	return applyStrided(src, channels, r)
}

// applyStrided builds intro, body repeats and outro where one frame spans
// stride consecutive samples.
func applyStrided(src []int16, stride int, r Region) ([]int16, error) {
	if !r.Active() {
		return src, nil
	}
	if err := r.validate(len(src)/stride, stride); err != nil {
		return nil, err
	}

	start := r.Start * stride
	end := r.End * stride
	fade := r.Fade * stride

	out := make([]int16, r.OutputLen()*stride)

	pos := copy(out, src[:start])
	body := src[start:end]
	for range r.Repeat {
		pos += copy(out[pos:], body)
	}

	outro := out[pos : pos+fade]
	head := src[start : start+fade]
	for f := range r.Fade {
		scale := Scale(f, r.Fade)
		for c := range stride {
			i := f*stride + c
			outro[i] = attenuate(head[i], scale)
		}
	}

	return out, nil
}
