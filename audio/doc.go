// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream plumbing between container decoders,
// the loop processor and the encoders.
//
// # Sources
//
// Every decoder produces a [Source]: an interleaved float32 stream in
// [-1, 1] with a fixed sample rate and channel count. Sources that know
// about loop markers also implement [LoopPointer].
//
// # Layers
//
// Multi-track game music often stores several stereo mixes side by side in
// one file, e.g. a 6 channel file holding three layers. [LayerSelector]
// narrows such a source to a single pair:
//
//	layer 0 -> channels 0, 1
//	layer 1 -> channels 2, 3
//	layer 2 -> channels 4, 5
//
// A mono source has one layer, duplicated to both sides.
//
// # Buffers
//
// [Collect] drains a stereo source into a [Buffer], two parallel int16
// channels. Buffers are what the loop processor and the encoders consume:
//
//	sel, err := audio.NewLayerSelector(src, layer)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Collect(sel)
//
// # Resampling
//
// [Resampler] converts any Source to another rate using cubic
// interpolation, with a simple low-pass filter when downsampling.
// [Resample] applies it to a whole Buffer.
//
// # Registry
//
// [Registry] maps format keys to decoders and encoders, and
// [FormatFromPath] picks the key from a file extension.
package audio
