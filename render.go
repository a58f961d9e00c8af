// SPDX-License-Identifier: EPL-2.0

package audloop

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/timing"
	"github.com/ik5/audloop/loop"
	"golang.org/x/sync/errgroup"
)

// Options controls Render.
type Options struct {
	// Process enables looping. Tracks without a loop are passed through
	// regardless.
	Process bool
	// FadeSeconds is the fade-out length, converted to frames at the
	// track's sample rate.
	FadeSeconds float64
	// Loops is how many times the loop body is played.
	Loops int
	// SampleRate resamples the result when positive and different from the
	// track's rate.
	SampleRate int
	// Logger receives phase timings at debug level. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions plays the loop twice and fades out over ten seconds.
func DefaultOptions() Options {
	return Options{Process: true, FadeSeconds: 10, Loops: 2}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Result is a rendered track.
type Result struct {
	Buffer *audio.Buffer
	// Region is the loop that was applied; zero when Processed is false.
	Region loop.Region
	// Processed reports whether the loop was applied.
	Processed bool
}

// Render extends t by its loop, or passes it through when looping is
// disabled or the track has no loop. Left and right are processed
// concurrently.
func Render(t *Track, opts Options) (*Result, error) {
	if t == nil || t.Buffer == nil {
		return nil, ErrNilTrack
	}
	if opts.Loops < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLoops, opts.Loops)
	}

	log := opts.logger()
	res := &Result{Buffer: t.Buffer}

	if loop.ShouldProcess(t.LoopStart, t.LoopEnd, opts.Process) {
		r := loop.Region{
			Start:  t.LoopStart,
			End:    t.LoopEnd,
			Repeat: opts.Loops,
			Fade:   loop.FadeFrames(opts.FadeSeconds, t.Buffer.SampleRate),
		}

		b, err := applyLoop(log, t.Buffer, r)
		if err != nil {
			return nil, err
		}
		res.Buffer, res.Region, res.Processed = b, r, true
	} else {
		log.Debug("passing track through",
			slog.Bool("requested", opts.Process),
			slog.Int("loop_start", t.LoopStart),
			slog.Int("loop_end", t.LoopEnd),
		)
	}

	if opts.SampleRate > 0 && opts.SampleRate != res.Buffer.SampleRate {
		sw := timing.Start(log, "resample")
		b, err := audio.Resample(res.Buffer, opts.SampleRate)
		sw.Stop()
		if err != nil {
			return nil, err
		}
		res.Buffer = b
	}

	return res, nil
}

func applyLoop(log *slog.Logger, b *audio.Buffer, r loop.Region) (*audio.Buffer, error) {
	sw := timing.Start(log, "loop")
	defer sw.Stop()

	if err := r.Validate(b.Frames()); err != nil {
		return nil, fmt.Errorf("track of %d frames, loop %s: %w", b.Frames(), r, err)
	}

	var (
		g           errgroup.Group
		left, right []int16
	)
	g.Go(func() error {
		var err error
		left, err = loop.Apply(b.Left, r)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = loop.Apply(b.Right, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("applying loop %s: %w", r, err)
	}

	log.Debug("applied loop", slog.String("region", r.String()), slog.Int("frames", len(left)))
	return audio.NewBuffer(left, right, b.SampleRate)
}

// Encode writes b to w with enc.
func Encode(w io.Writer, enc audio.Encoder, b *audio.Buffer) error {
	return encode(slog.Default(), w, enc, b)
}

func encode(log *slog.Logger, w io.Writer, enc audio.Encoder, b *audio.Buffer) error {
	sw := timing.Start(log, "encode")
	defer sw.Stop()

	if err := enc.Encode(w, b); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
