// SPDX-License-Identifier: EPL-2.0

package lame

import (
	"fmt"
	"io"

	"github.com/ik5/audloop/audio"
)

// Codec adapts Encoder to audio.Encoder.
//
// Sinks that cannot seek get the whole stream buffered in memory first, so
// the LAME tag is always final.
type Codec struct {
	opts []EncoderOption
}

func NewCodec(opts ...EncoderOption) Codec {
	return Codec{opts: opts}
}

func (c Codec) Encode(w io.Writer, b *audio.Buffer) error {
	if _, ok := w.(io.WriteSeeker); ok {
		return c.encode(w, b)
	}

	var mem seekBuffer
	if err := c.encode(&mem, b); err != nil {
		return err
	}
	if _, err := w.Write(mem.data); err != nil {
		return fmt.Errorf("writing mp3 data: %w", err)
	}
	return nil
}

func (c Codec) encode(w io.Writer, b *audio.Buffer) error {
	enc, err := NewEncoder(w, b.SampleRate, c.opts...)
	if err != nil {
		return err
	}

	if err := enc.EncodeChannels(b.Left, b.Right); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// seekBuffer is an in-memory io.WriteSeeker.
type seekBuffer struct {
	data []byte
	pos  int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	if end := s.pos + len(p); end > len(s.data) {
		s.data = append(s.data, make([]byte, end-len(s.data))...)
	}
	n := copy(s.data[s.pos:], p)
	s.pos += n
	return n, nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	pos := int(offset)
	switch whence {
	case io.SeekCurrent:
		pos += s.pos
	case io.SeekEnd:
		pos += len(s.data)
	}
	if pos < 0 {
		return 0, fmt.Errorf("lame: seek to negative offset %d", pos)
	}
	s.pos = pos
	return int64(pos), nil
}
