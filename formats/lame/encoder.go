// SPDX-License-Identifier: EPL-2.0

package lame

/*
#cgo darwin CFLAGS: -I/opt/homebrew/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -lmp3lame
#cgo linux pkg-config: mp3lame
#include <lame/lame.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"io"
	"sync"
	"unsafe"
)

// Preset is a LAME VBR preset, V0 being the highest quality.
type Preset int

const (
	V0 Preset = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
)

// DefaultPreset is V2, roughly 190 kbps.
const DefaultPreset = V2

// lame.h numbers V9..V0 as 410..500.
func (p Preset) mode() C.int { return C.int(500 - 10*int(p)) }

// chunkFrames bounds the input handed to LAME per call.
const chunkFrames = 8192

// Encoder writes joint-stereo VBR MP3 to w.
//
// The first frame LAME emits is a placeholder for the LAME tag. When w is
// an io.WriteSeeker, Close seeks back and replaces it with the final tag so
// players can read the stream length and encoder delay.
type Encoder struct {
	w io.Writer

	mu         sync.Mutex
	lame       *C.lame_global_flags
	sampleRate int
	preset     Preset
	quality    int // -1 leaves the preset's algorithm quality
	start      int64
	seekable   bool
	closed     bool

	mp3buf []byte
}

// EncoderOption configures the encoder.
type EncoderOption func(*Encoder)

// WithPreset selects the VBR preset.
func WithPreset(p Preset) EncoderOption {
	return func(e *Encoder) {
		e.preset = p
	}
}

// WithQuality sets LAME's algorithm quality, 0 (slowest) to 9 (fastest).
func WithQuality(q int) EncoderOption {
	return func(e *Encoder) {
		e.quality = q
	}
}

// NewEncoder creates a LAME context for stereo input at sampleRate.
func NewEncoder(w io.Writer, sampleRate int, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		w:          w,
		sampleRate: sampleRate,
		preset:     DefaultPreset,
		quality:    -1,
		mp3buf:     make([]byte, chunkFrames*5/4+7200),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.preset < V0 || e.preset > V9 {
		return nil, fmt.Errorf("%w: got V%d", ErrInvalidPreset, e.preset)
	}

	if ws, ok := w.(io.WriteSeeker); ok {
		if pos, err := ws.Seek(0, io.SeekCurrent); err == nil {
			e.start, e.seekable = pos, true
		}
	}

	lame := C.lame_init()
	if lame == nil {
		return nil, ErrInit
	}

	C.lame_set_in_samplerate(lame, C.int(sampleRate))
	C.lame_set_num_channels(lame, 2)
	C.lame_set_mode(lame, C.JOINT_STEREO)
	C.lame_set_VBR(lame, C.vbr_mtrh)
	C.lame_set_preset(lame, e.preset.mode())
	if e.quality >= 0 {
		C.lame_set_quality(lame, C.int(e.quality))
	}
	C.lame_set_bWriteVbrTag(lame, 1)

	if C.lame_init_params(lame) < 0 {
		C.lame_close(lame)
		return nil, fmt.Errorf("%w: invalid parameters for %d Hz", ErrInit, sampleRate)
	}

	e.lame = lame
	return e, nil
}

// EncodeChannels encodes one frame per index of left and right, which must
// be the same length.
func (e *Encoder) EncodeChannels(left, right []int16) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: channel lengths %d and %d", ErrEncode, len(left), len(right))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	for off := 0; off < len(left); off += chunkFrames {
		end := min(off+chunkFrames, len(left))
		l, r := left[off:end], right[off:end]

		encoded := C.lame_encode_buffer(
			e.lame,
			(*C.short)(unsafe.Pointer(&l[0])),
			(*C.short)(unsafe.Pointer(&r[0])),
			C.int(len(l)),
			(*C.uchar)(unsafe.Pointer(&e.mp3buf[0])),
			C.int(len(e.mp3buf)),
		)
		if encoded < 0 {
			return fmt.Errorf("%w: lame_encode_buffer returned %d", ErrEncode, int(encoded))
		}

		if err := e.write(e.mp3buf[:encoded]); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := e.w.Write(p); err != nil {
		return fmt.Errorf("writing mp3 data: %w", err)
	}
	return nil
}

// Close flushes LAME, rewrites the tag frame when possible and releases
// the context. It is safe to call more than once.
func (e *Encoder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	defer func() {
		C.lame_close(e.lame)
		e.lame = nil
	}()

	encoded := C.lame_encode_flush(
		e.lame,
		(*C.uchar)(unsafe.Pointer(&e.mp3buf[0])),
		C.int(len(e.mp3buf)),
	)
	if encoded < 0 {
		return fmt.Errorf("%w: lame_encode_flush returned %d", ErrEncode, int(encoded))
	}
	if err := e.write(e.mp3buf[:encoded]); err != nil {
		return err
	}

	if !e.seekable {
		return nil
	}

	return e.writeTag()
}

func (e *Encoder) writeTag() error {
	n := C.lame_get_lametag_frame(
		e.lame,
		(*C.uchar)(unsafe.Pointer(&e.mp3buf[0])),
		C.size_t(len(e.mp3buf)),
	)
	if n == 0 || int(n) > len(e.mp3buf) {
		return nil
	}

	ws := e.w.(io.WriteSeeker)
	end, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("writing lame tag: %w", err)
	}
	if _, err := ws.Seek(e.start, io.SeekStart); err != nil {
		return fmt.Errorf("writing lame tag: %w", err)
	}
	if err := e.write(e.mp3buf[:n]); err != nil {
		return err
	}
	if _, err := ws.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("writing lame tag: %w", err)
	}

	return nil
}
