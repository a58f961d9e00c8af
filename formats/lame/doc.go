// SPDX-License-Identifier: EPL-2.0

// Package lame encodes stereo PCM to MP3 through libmp3lame (cgo).
//
// Streams are joint stereo, VBR (mtrh) at preset V2 unless told otherwise,
// and start with a LAME tag frame carrying the final stream length:
//
//	f, _ := os.Create("out.mp3")
//	defer f.Close()
//	err := lame.NewCodec(lame.WithPreset(lame.V0)).Encode(f, buf)
//
// Building requires the libmp3lame headers; on Linux they are located with
// pkg-config (package mp3lame), on macOS under /opt/homebrew.
package lame
