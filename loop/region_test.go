// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"errors"
	"math"
	"testing"
)

func TestShouldProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     int
		end       int
		requested bool
		want      bool
	}{
		{name: "valid markers", start: 10, end: 20, requested: true, want: true},
		{name: "processing disabled", start: 10, end: 20, requested: false, want: false},
		{name: "no markers", start: 0, end: 0, requested: true, want: false},
		{name: "end before start", start: 20, end: 10, requested: true, want: false},
		{name: "empty body", start: 15, end: 15, requested: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ShouldProcess(tt.start, tt.end, tt.requested); got != tt.want {
				t.Errorf("ShouldProcess(%d, %d, %v) = %v, want %v", tt.start, tt.end, tt.requested, got, tt.want)
			}
		})
	}
}

func TestRegion_OutputLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		region Region
		want   int
	}{
		{name: "intro body and outro", region: Region{Start: 2, End: 6, Repeat: 2, Fade: 2}, want: 12},
		{name: "no repeats keeps fade", region: Region{Start: 3, End: 7, Repeat: 0, Fade: 2}, want: 5},
		{name: "no fade", region: Region{Start: 3, End: 7, Repeat: 3, Fade: 0}, want: 15},
		{name: "intro only", region: Region{Start: 3, End: 7}, want: 3},
		{name: "inactive body counts as empty", region: Region{Start: 7, End: 3, Repeat: 4}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.region.OutputLen(); got != tt.want {
				t.Errorf("%v.OutputLen() = %d, want %d", tt.region, got, tt.want)
			}
		})
	}
}

func TestRegion_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		region  Region
		frames  int
		wantErr error
	}{
		{name: "valid", region: Region{Start: 2, End: 6, Repeat: 1, Fade: 4}, frames: 10},
		{name: "body up to the last frame", region: Region{Start: 0, End: 10, Repeat: 1}, frames: 10},
		{name: "negative repeat", region: Region{Start: 2, End: 6, Repeat: -1}, frames: 10, wantErr: ErrNegativeRepeat},
		{name: "negative fade", region: Region{Start: 2, End: 6, Fade: -3}, frames: 10, wantErr: ErrNegativeFade},
		{name: "end past buffer", region: Region{Start: 2, End: 11}, frames: 10, wantErr: ErrRegionOutOfRange},
		{name: "negative start", region: Region{Start: -1, End: 5}, frames: 10, wantErr: ErrRegionOutOfRange},
		{name: "fade past buffer", region: Region{Start: 6, End: 8, Fade: 5}, frames: 10, wantErr: ErrFadeOverrun},
		{name: "repeat overflows int", region: Region{Start: 2, End: 6, Repeat: math.MaxInt / 2}, frames: 10, wantErr: ErrOutputTooLong},
		{name: "repeat past the output cap", region: Region{Start: 2, End: 6, Repeat: MaxOutputSamples/4 + 1}, frames: 10, wantErr: ErrOutputTooLong},
		{name: "repeat just under the cap", region: Region{Start: 2, End: 6, Repeat: (MaxOutputSamples - 2) / 4}, frames: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.region.Validate(tt.frames)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("Validate() error = %v does not wrap ErrInvalidRegion", err)
			}
		})
	}
}
