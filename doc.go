// SPDX-License-Identifier: EPL-2.0

// Package audloop turns a game-style looping track into a finite recording:
// the intro plays once, the loop body is repeated and the track ends with a
// fade-out taken from the start of the loop.
//
// The pipeline has three steps, each usable on its own:
//
//	t, err := audloop.Decode(in, vorbis.Decoder{}, 0) // layer 1
//	res, err := audloop.Render(t, audloop.DefaultOptions())
//	err = audloop.Encode(out, lame.NewCodec(), res.Buffer)
//
// or in one call:
//
//	res, err := audloop.Convert(ctx, in, out, vorbis.Decoder{}, lame.NewCodec(), 0, opts)
//
// Loop markers come from the input container: LoopStart/LoopEnd comments in
// Ogg Vorbis, the sampler chunk in WAV. Inputs without markers are
// re-encoded unchanged. The looping itself lives in package loop and can be
// applied to raw PCM directly.
package audloop
