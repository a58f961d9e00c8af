// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/timing"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values decoded, a multiple of Channels.
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	loopStart  int
	loopEnd    int
	comments   []string
}

func (s *source) SampleRate() int              { return s.sampleRate }
func (s *source) Channels() int                { return s.channels }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return 4096 * s.channels }
func (s *source) LoopPoints() (start, end int) { return s.loopStart, s.loopEnd }

// Comments returns the raw KEY=value comments of the stream.
func (s *source) Comments() []string { return s.comments }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:whole])
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams. Loop points come from the LoopStart
// and LoopEnd comments.
type Decoder struct {
	// Logger receives the "comments" phase timing. Nil uses slog.Default().
	Logger *slog.Logger
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(d.Logger, dec, dec.CommentHeader().Comments)
}

func newSource(log *slog.Logger, dec oggReader, comments []string) (*source, error) {
	if dec.Channels() < 1 {
		return nil, ErrNoChannels
	}

	sw := timing.Start(log, "comments")
	start, end, err := ParseLoopMarkers(comments)
	sw.Stop()
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		loopStart:  start,
		loopEnd:    end,
		comments:   comments,
	}, nil
}
