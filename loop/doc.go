// SPDX-License-Identifier: EPL-2.0

// Package loop extends a decoded waveform into a longer, seamless one by
// repeating a loop body and closing it with a linear fade to silence.
//
// # Layout of the output
//
// Given a [Region] with loop points [Start, End), a repeat count and a fade
// length, the produced buffer is:
//
//	intro   src[0:Start]                       played once, never faded
//	body    src[Start:End] x Repeat            exact copies, no partial repeat
//	outro   src[Start:Start+Fade] * Scale(i)   the head of the body, faded out
//
// and its length is always Start + (End-Start)*Repeat + Fade.
//
// # Units
//
// Region values are frames: one sample instant across all channels. [Apply]
// and [ApplyChannels] take de-interleaved channel slices, where a frame is a
// single slice element. [ApplyInterleaved] takes one interleaved slice and
// multiplies every index by the channel count, so both samples of a stereo
// frame share the same fade factor.
//
// # Degraded loop points
//
// A region whose End is not after Start is inactive: the source is returned
// untouched. This covers files without loop markers (both zero) as well as
// nonsensical markers. Use [ShouldProcess] to combine that rule with a user
// switch.
//
// # Fade rounding
//
// Faded samples are computed as int16(float64(s) * scale), truncating toward
// zero instead of rounding, so outputs stay bit-compatible with earlier
// renders of the same source.
//
// # Example
//
//	r := loop.Region{Start: 2, End: 6, Repeat: 2, Fade: 2}
//	out, _ := loop.Apply([]int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, r)
//	// out == [1 2 3 4 5 6 3 4 5 6 3 2]
package loop
