// SPDX-License-Identifier: EPL-2.0

package audloop

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/timing"
)

// Track is one decoded stereo layer together with the loop markers of the
// file it came from. LoopEnd <= LoopStart means the file has no loop.
type Track struct {
	Buffer    *audio.Buffer
	LoopStart int
	LoopEnd   int
}

// Decode reads the whole of r with dec and keeps the zero-based layer.
// Mono input is duplicated into both channels.
func Decode(r io.Reader, dec audio.Decoder, layer int) (*Track, error) {
	return decode(slog.Default(), r, dec, layer)
}

func decode(log *slog.Logger, r io.Reader, dec audio.Decoder, layer int) (*Track, error) {
	sw := timing.Start(log, "decode")
	defer sw.Stop()

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	defer src.Close()

	sel, err := audio.NewLayerSelector(src, layer)
	if err != nil {
		return nil, err
	}

	b, err := audio.Collect(sel)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	start, end := audio.LoopPoints(src)
	log.Debug("decoded track",
		slog.Int("channels", src.Channels()),
		slog.Int("rate", b.SampleRate),
		slog.Int("frames", b.Frames()),
		slog.Int("loop_start", start),
		slog.Int("loop_end", end),
	)

	return &Track{Buffer: b, LoopStart: start, LoopEnd: end}, nil
}
