// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audloop/internal/audiotest"
)

func TestCheckLayer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		layer    int
		channels int
		wantErr  error
	}{
		{name: "mono first layer", layer: 0, channels: 1},
		{name: "mono second layer", layer: 1, channels: 1, wantErr: ErrMonoLayer},
		{name: "stereo", layer: 0, channels: 2},
		{name: "stereo second layer", layer: 1, channels: 2, wantErr: ErrLayerOutOfRange},
		{name: "three layers last", layer: 2, channels: 6},
		{name: "three layers past end", layer: 3, channels: 6, wantErr: ErrLayerOutOfRange},
		{name: "odd channel count drops the tail", layer: 1, channels: 3, wantErr: ErrLayerOutOfRange},
		{name: "negative", layer: -1, channels: 2, wantErr: ErrNegativeLayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckLayer(tt.layer, tt.channels)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckLayer(%d, %d) error = %v", tt.layer, tt.channels, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckLayer(%d, %d) error = %v, want %v", tt.layer, tt.channels, err, tt.wantErr)
			}
		})
	}
}

func TestLayerSelector_PicksPair(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChannelTagSource(48000, 6, 100)
	sel, err := NewLayerSelector(src, 1)
	if err != nil {
		t.Fatalf("NewLayerSelector() error = %v", err)
	}

	if sel.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", sel.Channels())
	}

	dst := make([]float32, 20)
	n, err := sel.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 20 {
		t.Fatalf("ReadSamples() n = %d, want 20", n)
	}

	for f := range n / 2 {
		if dst[2*f] != audiotest.ChannelTag(2) || dst[2*f+1] != audiotest.ChannelTag(3) {
			t.Fatalf("frame %d = (%v, %v), want channels 2 and 3", f, dst[2*f], dst[2*f+1])
		}
	}
}

func TestLayerSelector_MonoDuplicates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 50, 440)
	sel, err := NewLayerSelector(src, 0)
	if err != nil {
		t.Fatalf("NewLayerSelector() error = %v", err)
	}

	b, err := Collect(sel)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if b.Frames() != 50 {
		t.Fatalf("Frames() = %d, want 50", b.Frames())
	}
	for i := range b.Left {
		if b.Left[i] != b.Right[i] {
			t.Fatalf("frame %d differs between channels: %d != %d", i, b.Left[i], b.Right[i])
		}
	}
}

func TestLayerSelector_ForwardsLoopPointsAndClose(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChannelTagSource(8000, 4, 10)
	src.LoopStart, src.LoopEnd = 3, 9

	sel, err := NewLayerSelector(src, 1)
	if err != nil {
		t.Fatalf("NewLayerSelector() error = %v", err)
	}

	if s, e := LoopPoints(sel); s != 3 || e != 9 {
		t.Errorf("LoopPoints() = %d, %d, want 3, 9", s, e)
	}
	if err := sel.Close(); err != nil || !src.Closed {
		t.Errorf("Close() = %v, closed = %v", err, src.Closed)
	}
}

func TestLayerSelector_InvalidLayer(t *testing.T) {
	t.Parallel()

	_, err := NewLayerSelector(audiotest.NewChannelTagSource(8000, 1, 10), 1)
	if !errors.Is(err, ErrMonoLayer) {
		t.Errorf("NewLayerSelector() error = %v, want ErrMonoLayer", err)
	}
}
