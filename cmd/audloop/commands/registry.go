// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/formats/aiff"
	"github.com/ik5/audloop/formats/lame"
	"github.com/ik5/audloop/formats/mp3"
	"github.com/ik5/audloop/formats/vorbis"
	"github.com/ik5/audloop/formats/wav"
)

// newRegistry registers every input format and both output formats. preset
// is the LAME VBR preset for MP3 output.
func newRegistry(preset int, log *slog.Logger) *audio.Registry {
	reg := audio.NewRegistry()

	reg.RegisterDecoder(audio.FormatOgg, vorbis.Decoder{Logger: log})
	reg.RegisterDecoder(audio.FormatWAV, wav.Decoder{})
	reg.RegisterDecoder(audio.FormatAIFF, aiff.Decoder{})
	reg.RegisterDecoder(audio.FormatMP3, mp3.Decoder{})

	reg.RegisterEncoder(audio.FormatMP3, lame.NewCodec(lame.WithPreset(lame.Preset(preset))))
	reg.RegisterEncoder(audio.FormatWAV, wav.Encoder{})

	return reg
}
