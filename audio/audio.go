// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo, 6=three stereo layers).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// LoopPointer is implemented by sources whose container carries loop
// markers. Values are frame indexes; a source without markers reports 0, 0.
type LoopPointer interface {
	LoopPoints() (start, end int)
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder writes a stereo Buffer to w in its container format.
type Encoder interface {
	Encode(w io.Writer, b *Buffer) error
}

// LoopPoints returns the loop markers of src, or 0, 0 when it has none.
func LoopPoints(src Source) (start, end int) {
	if lp, ok := src.(LoopPointer); ok {
		return lp.LoopPoints()
	}
	return 0, 0
}

// Registry maps format keys (e.g., "ogg", "wav", "mp3") to codecs.
type Registry struct {
	mtx      sync.RWMutex
	decoders map[string]Decoder
	encoders map[string]Encoder
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
	}
}

func (r *Registry) RegisterDecoder(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

// Decoder returns the decoder registered for format.
func (r *Registry) Decoder(format string) (Decoder, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrUnsupportedFormat, format)
	}
	return d, nil
}

// Encoder returns the encoder registered for format.
func (r *Registry) Encoder(format string) (Encoder, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: no encoder for %q", ErrUnsupportedFormat, format)
	}
	return e, nil
}

// EncoderFormats lists the formats that can be written, sorted.
func (r *Registry) EncoderFormats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.encoders))
	for f := range r.encoders {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
