// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer PCM decoders to audio.Source.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audloop/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams normalized float samples out of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	buf        *goaudio.IntBuffer

	// LoopStart and LoopEnd are reported through LoopPoints.
	LoopStart, LoopEnd int
}

func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int              { return s.sampleRate }
func (s *Source) Channels() int                { return s.channels }
func (s *Source) Close() error                 { return nil }
func (s *Source) BufSize() int                 { return 4096 * s.channels }
func (s *Source) LoopPoints() (start, end int) { return s.LoopStart, s.LoopEnd }

// ReadSamples reports io.EOF as soon as the decoder returns a short read.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < whole {
		s.buf = &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			Data:   make([]int, whole),
		}
	}
	s.buf.Data = s.buf.Data[:whole]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}

	for i := range n {
		dst[i] = utils.IntToFloat32(s.buf.Data[i], s.bitDepth)
	}

	if n < whole || err != nil {
		return n, io.EOF
	}
	return n, nil
}

// ReadSeeker returns r as an io.ReadSeeker, buffering it in memory when
// it cannot seek. go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bytes.NewReader(data), nil
}
