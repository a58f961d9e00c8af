// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding uses github.com/go-audio/wav and accepts 16, 24 and 32-bit
// integer PCM. When the file carries a sampler (smpl) chunk, its first loop
// is exposed through audio.LoopPoints as a half-open frame range, so a WAV
// with loop points can be extended just like an Ogg Vorbis file with
// LoopStart/LoopEnd comments.
//
// Encoding always produces 16-bit stereo:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.Encoder{}.Encode(f, buf)
//
// Writers that cannot seek (pipes, network connections) are served by
// WriteStereo16, which computes the header from the buffer length before
// streaming the samples.
package wav
