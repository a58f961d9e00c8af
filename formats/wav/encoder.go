// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audloop/audio"
)

// Encoder writes 16-bit stereo PCM WAV files. Seekable sinks go through the
// go-audio encoder; other writers get a header computed up front.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, b *audio.Buffer) error {
	if len(b.Left) != len(b.Right) {
		return audio.ErrChannelLengthMismatch
	}

	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return WriteStereo16(w, b.SampleRate, b.Left, b.Right)
	}

	enc := wav.NewEncoder(ws, b.SampleRate, 16, 2, wavFormatPCM)

	data := make([]int, 2*b.Frames())
	for i := range b.Left {
		data[2*i] = int(b.Left[i])
		data[2*i+1] = int(b.Right[i])
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: b.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}

	return nil
}
