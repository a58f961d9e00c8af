// SPDX-License-Identifier: EPL-2.0

package audloop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/audiotest"
	"github.com/ik5/audloop/loop"
	"github.com/ik5/audloop/utils"
)

// mockDecoder hands out a prepared source and ignores the reader.
type mockDecoder struct {
	src *audiotest.MockSource
	err error
}

func (d mockDecoder) Decode(io.Reader) (audio.Source, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.src, nil
}

// recordEncoder keeps the last buffer it was asked to encode.
type recordEncoder struct {
	got *audio.Buffer
	err error
}

func (e *recordEncoder) Encode(w io.Writer, b *audio.Buffer) error {
	if e.err != nil {
		return e.err
	}
	e.got = b
	_, err := w.Write([]byte("ok"))
	return err
}

func rampTrack(frames, start, end, rate int) *Track {
	return &Track{
		Buffer: &audio.Buffer{
			Left:       audiotest.Ramp(1, frames),
			Right:      audiotest.Negate(audiotest.Ramp(1, frames)),
			SampleRate: rate,
		},
		LoopStart: start,
		LoopEnd:   end,
	}
}

func TestDecode_Layers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		channels  int
		layer     int
		wantLeft  int
		wantRight int
		wantErr   error
	}{
		{name: "mono duplicated", channels: 1, layer: 0, wantLeft: 0, wantRight: 0},
		{name: "stereo", channels: 2, layer: 0, wantLeft: 0, wantRight: 1},
		{name: "second layer of six", channels: 6, layer: 1, wantLeft: 2, wantRight: 3},
		{name: "third layer of six", channels: 6, layer: 2, wantLeft: 4, wantRight: 5},
		{name: "mono has one layer", channels: 1, layer: 1, wantErr: audio.ErrMonoLayer},
		{name: "layer out of range", channels: 4, layer: 2, wantErr: audio.ErrLayerOutOfRange},
		{name: "negative layer", channels: 2, layer: -1, wantErr: audio.ErrNegativeLayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewChannelTagSource(8000, tt.channels, 100)
			src.LoopStart, src.LoopEnd = 10, 60

			track, err := Decode(nil, mockDecoder{src: src}, tt.layer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if !src.Closed {
				t.Error("Decode() did not close the source")
			}
			if tt.wantErr != nil {
				return
			}

			b := track.Buffer
			if b.Frames() != 100 || b.SampleRate != 8000 {
				t.Fatalf("decoded %d frames @ %d Hz, want 100 @ 8000", b.Frames(), b.SampleRate)
			}
			wantL := utils.Float32ToInt16(audiotest.ChannelTag(tt.wantLeft))
			wantR := utils.Float32ToInt16(audiotest.ChannelTag(tt.wantRight))
			if b.Left[50] != wantL || b.Right[50] != wantR {
				t.Errorf("frame 50 = (%d, %d), want (%d, %d)", b.Left[50], b.Right[50], wantL, wantR)
			}
			if track.LoopStart != 10 || track.LoopEnd != 60 {
				t.Errorf("loop = [%d, %d), want [10, 60)", track.LoopStart, track.LoopEnd)
			}
		})
	}
}

func TestDecode_DecoderError(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad header")
	if _, err := Decode(nil, mockDecoder{err: errBad}, 0); !errors.Is(err, errBad) {
		t.Errorf("Decode() error = %v, want %v", err, errBad)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		track         *Track
		opts          Options
		wantProcessed bool
		wantFrames    int
		wantRegion    loop.Region
	}{
		{
			name:          "loop applied",
			track:         rampTrack(100, 20, 60, 10),
			opts:          Options{Process: true, FadeSeconds: 1.5, Loops: 2},
			wantProcessed: true,
			wantFrames:    20 + 40*2 + 15,
			wantRegion:    loop.Region{Start: 20, End: 60, Repeat: 2, Fade: 15},
		},
		{
			name:       "processing disabled",
			track:      rampTrack(100, 20, 60, 10),
			opts:       Options{Process: false, FadeSeconds: 1, Loops: 2},
			wantFrames: 100,
		},
		{
			name:       "no loop markers",
			track:      rampTrack(100, 0, 0, 10),
			opts:       DefaultOptions(),
			wantFrames: 100,
		},
		{
			name:       "end before start",
			track:      rampTrack(100, 60, 20, 10),
			opts:       DefaultOptions(),
			wantFrames: 100,
		},
		{
			name:          "zero loops keeps intro and fade",
			track:         rampTrack(100, 20, 60, 10),
			opts:          Options{Process: true, FadeSeconds: 0.5, Loops: 0},
			wantProcessed: true,
			wantFrames:    20 + 5,
			wantRegion:    loop.Region{Start: 20, End: 60, Repeat: 0, Fade: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Render(tt.track, tt.opts)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if res.Processed != tt.wantProcessed {
				t.Errorf("Processed = %v, want %v", res.Processed, tt.wantProcessed)
			}
			if res.Buffer.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", res.Buffer.Frames(), tt.wantFrames)
			}
			if res.Region != tt.wantRegion {
				t.Errorf("Region = %v, want %v", res.Region, tt.wantRegion)
			}

			if !tt.wantProcessed {
				if res.Buffer != tt.track.Buffer {
					t.Error("pass-through did not return the decoded buffer")
				}
				return
			}

			wantL, _ := loop.Apply(tt.track.Buffer.Left, tt.wantRegion)
			wantR, _ := loop.Apply(tt.track.Buffer.Right, tt.wantRegion)
			if !slices.Equal(res.Buffer.Left, wantL) || !slices.Equal(res.Buffer.Right, wantR) {
				t.Error("rendered channels differ from loop.Apply")
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		track   *Track
		opts    Options
		wantErr error
	}{
		{name: "nil track", track: nil, opts: DefaultOptions(), wantErr: ErrNilTrack},
		{name: "nil buffer", track: &Track{}, opts: DefaultOptions(), wantErr: ErrNilTrack},
		{
			name:    "negative loops",
			track:   rampTrack(100, 20, 60, 10),
			opts:    Options{Process: true, Loops: -1},
			wantErr: ErrNegativeLoops,
		},
		{
			name:    "loop end past the track",
			track:   rampTrack(100, 20, 160, 10),
			opts:    Options{Process: true, Loops: 1},
			wantErr: loop.ErrRegionOutOfRange,
		},
		{
			name:    "fade runs off the track",
			track:   rampTrack(100, 20, 60, 10),
			opts:    Options{Process: true, FadeSeconds: 9, Loops: 1},
			wantErr: loop.ErrFadeOverrun,
		},
		{
			name:    "loops overflow the output",
			track:   rampTrack(100, 20, 60, 10),
			opts:    Options{Process: true, Loops: math.MaxInt / 2},
			wantErr: loop.ErrOutputTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Render(tt.track, tt.opts); !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRender_Resample(t *testing.T) {
	t.Parallel()

	opts := Options{Process: true, FadeSeconds: 1, Loops: 1, SampleRate: 20}
	res, err := Render(rampTrack(100, 20, 60, 10), opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if res.Buffer.SampleRate != 20 {
		t.Errorf("SampleRate = %d, want 20", res.Buffer.SampleRate)
	}
	// 20 + 40 + 10 frames at 10 Hz, doubled
	if got := res.Buffer.Frames(); got != 140 {
		t.Errorf("Frames() = %d, want 140", got)
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(1000, 2, 3000, 50)
	src.LoopStart, src.LoopEnd = 500, 1500
	enc := &recordEncoder{}
	var out bytes.Buffer

	opts := Options{Process: true, FadeSeconds: 0.25, Loops: 3}
	res, err := Convert(context.Background(), nil, &out, mockDecoder{src: src}, enc, 0, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !res.Processed || res.Buffer.Frames() != 500+1000*3+250 {
		t.Errorf("Convert() = %d frames, processed %v", res.Buffer.Frames(), res.Processed)
	}
	if enc.got != res.Buffer {
		t.Error("encoder did not receive the rendered buffer")
	}
	if out.String() != "ok" {
		t.Errorf("output = %q", out.String())
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk full")

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := audiotest.NewSineSource(1000, 2, 100, 50)
		_, err := Convert(ctx, nil, io.Discard, mockDecoder{src: src}, &recordEncoder{}, 0, DefaultOptions())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Convert() error = %v, want context.Canceled", err)
		}
	})

	t.Run("encoder", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewSineSource(1000, 2, 100, 50)
		_, err := Convert(context.Background(), nil, io.Discard, mockDecoder{src: src}, &recordEncoder{err: errDisk}, 0, DefaultOptions())
		if !errors.Is(err, errDisk) {
			t.Errorf("Convert() error = %v, want %v", err, errDisk)
		}
	})
}

func BenchmarkRender(b *testing.B) {
	const rate = 44100
	track := &Track{
		Buffer: &audio.Buffer{
			Left:       audiotest.Ramp(0, 60*rate),
			Right:      audiotest.Ramp(0, 60*rate),
			SampleRate: rate,
		},
		LoopStart: 5 * rate,
		LoopEnd:   45 * rate,
	}

	b.ReportAllocs()
	for range b.N {
		if _, err := Render(track, DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
