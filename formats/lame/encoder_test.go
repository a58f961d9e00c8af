// SPDX-License-Identifier: EPL-2.0

package lame

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/formats/mp3"
	"github.com/ik5/audloop/internal/audiotest"
)

func sineBuffer(rate, frames int) *audio.Buffer {
	b := &audio.Buffer{SampleRate: rate, Left: make([]int16, frames), Right: make([]int16, frames)}
	for i := range frames {
		v := math.Sin(2 * math.Pi * 440 * float64(i) / float64(rate))
		b.Left[i] = int16(v * 16000)
		b.Right[i] = int16(v * 8000)
	}
	return b
}

func TestPreset_Mode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset Preset
		want   int
	}{
		{preset: V0, want: 500},
		{preset: V2, want: 480},
		{preset: V9, want: 410},
	}

	for _, tt := range tests {
		if got := int(tt.preset.mode()); got != tt.want {
			t.Errorf("V%d.mode() = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestNewEncoder_InvalidPreset(t *testing.T) {
	t.Parallel()

	for _, p := range []Preset{-1, 10} {
		if _, err := NewEncoder(io.Discard, 44100, WithPreset(p)); !errors.Is(err, ErrInvalidPreset) {
			t.Errorf("NewEncoder(V%d) error = %v, want ErrInvalidPreset", p, err)
		}
	}
}

func TestEncoder_ChannelMismatch(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(io.Discard, 44100)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	defer enc.Close()

	if err := enc.EncodeChannels(make([]int16, 4), make([]int16, 3)); !errors.Is(err, ErrEncode) {
		t.Errorf("EncodeChannels() error = %v, want ErrEncode", err)
	}
}

func TestEncoder_Closed(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(io.Discard, 44100)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if err := enc.EncodeChannels([]int16{1}, []int16{1}); !errors.Is(err, ErrClosed) {
		t.Errorf("EncodeChannels() after Close error = %v, want ErrClosed", err)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	const rate = 44100
	in := sineBuffer(rate, rate)

	tests := []struct {
		name   string
		encode func(t *testing.T) []byte
	}{
		{
			name: "seeker",
			encode: func(t *testing.T) []byte {
				f := &audiotest.File{}
				if err := NewCodec().Encode(f, in); err != nil {
					t.Fatalf("Encode() error = %v", err)
				}
				return f.Bytes()
			},
		},
		{
			name: "stream",
			encode: func(t *testing.T) []byte {
				var buf bytes.Buffer
				if err := NewCodec(WithPreset(V5), WithQuality(7)).Encode(&buf, in); err != nil {
					t.Fatalf("Encode() error = %v", err)
				}
				return buf.Bytes()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := tt.encode(t)
			if len(data) == 0 {
				t.Fatal("Encode() wrote nothing")
			}

			head := data[:min(len(data), 512)]
			if !bytes.Contains(head, []byte("Xing")) || !bytes.Contains(head, []byte("LAME")) {
				t.Error("stream does not start with a LAME tag frame")
			}

			src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			out, err := audio.Collect(src)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			if out.SampleRate != rate {
				t.Errorf("SampleRate = %d, want %d", out.SampleRate, rate)
			}
			// LAME pads both ends, never truncates.
			if out.Frames() < in.Frames() {
				t.Errorf("decoded %d frames, want at least %d", out.Frames(), in.Frames())
			}
		})
	}
}

func BenchmarkEncoder(b *testing.B) {
	in := sineBuffer(44100, 44100)
	codec := NewCodec()

	b.ReportAllocs()
	for range b.N {
		if err := codec.Encode(io.Discard, in); err != nil {
			b.Fatal(err)
		}
	}
}
