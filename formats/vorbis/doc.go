// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files using github.com/jfreymuth/oggvorbis.
//
// Besides the samples, the decoder reads the loop markers that game engines
// store in the Vorbis comment header:
//
//	LoopStart=441000
//	LoopEnd=2646000
//
// Both are frame indexes. A missing marker reads as 0, which leaves looping
// disabled downstream; a marker that is not a non-negative integer fails the
// decode with ErrInvalidLoopMarker.
//
// # Decoding
//
//	file, _ := os.Open("bgm.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	start, end := audio.LoopPoints(src)
//
// Samples are interleaved float32 in [-1, 1] in Vorbis channel order, so a
// 6 channel file carries three stereo layers side by side.
package vorbis
