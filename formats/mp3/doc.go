// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's own sample
// rate, normalized to [-1, 1). Mono MP3 files come out with both channels
// equal, so layer 0 is the only layer an MP3 input offers.
//
// Re-encoding a looped track back to MP3 is handled by the lame package.
package mp3
