// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/formats/internal/intpcm"
)

const wavFormatPCM = 1

// Decoder reads integer PCM WAV files. The first loop of a smpl chunk, if
// any, is reported through LoopPoints.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	meta := wav.NewDecoder(rs)
	if !meta.IsValidFile() {
		return nil, ErrNotWavFile
	}

	// ReadMetadata walks every chunk, so PCM is read by a second decoder.
	meta.ReadMetadata()
	var loopStart, loopEnd int
	if meta.Metadata != nil {
		loopStart, loopEnd = samplerLoop(meta.Metadata.SamplerInfo)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav data: %w", err)
	}
	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, ErrNotPCM
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, bitDepth)
	}

	src := intpcm.NewSource(dec, format.SampleRate, format.NumChannels, bitDepth)
	src.LoopStart, src.LoopEnd = loopStart, loopEnd
	return src, nil
}

// samplerLoop converts the first smpl loop, whose end is inclusive, to a
// half-open frame range.
func samplerLoop(info *wav.SamplerInfo) (start, end int) {
	if info == nil || len(info.Loops) == 0 || info.Loops[0] == nil {
		return 0, 0
	}

	l := info.Loops[0]
	return int(l.Start), int(l.End) + 1
}
