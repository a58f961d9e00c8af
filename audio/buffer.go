// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audloop/utils"
)

// Buffer is a decoded stereo layer: two parallel 16-bit channels of equal
// length. It is treated as immutable once built.
type Buffer struct {
	Left       []int16
	Right      []int16
	SampleRate int
}

// NewBuffer validates that both channels have the same length.
func NewBuffer(left, right []int16, sampleRate int) (*Buffer, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d != %d", ErrChannelLengthMismatch, len(left), len(right))
	}

	return &Buffer{Left: left, Right: right, SampleRate: sampleRate}, nil
}

// Frames is the number of stereo frames.
func (b *Buffer) Frames() int { return len(b.Left) }

// Interleaved returns the samples as [L0, R0, L1, R1, ...].
func (b *Buffer) Interleaved() []int16 {
	out := make([]int16, 2*len(b.Left))
	for i := range b.Left {
		out[2*i] = b.Left[i]
		out[2*i+1] = b.Right[i]
	}
	return out
}

// Source exposes the buffer as a stereo Source, e.g. to feed a Resampler.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return 2 }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/2, s.buf.Frames()-s.pos)
	for f := range frames {
		dst[2*f] = utils.Int16ToFloat32(s.buf.Left[s.pos+f])
		dst[2*f+1] = utils.Int16ToFloat32(s.buf.Right[s.pos+f])
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * 2, io.EOF
	}
	return frames * 2, nil
}
