// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audloop/utils"
)

// Resampler converts src to another sample rate with cubic interpolation,
// keeping the channel count. A one-pole low-pass runs on the input when
// downsampling.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// window[1] is frame cur of the source, window[2] the one after it.
	window [4][]float32
	cur    int
	read   int
	primed bool
	srcEOF bool
	done   bool
	phase  float64
	in     []float32

	lowpass bool
	state   []float32
}

// lowpassAlpha is the smoothing factor of the downsampling filter.
const lowpassAlpha float32 = 0.5

func NewResampler(src Source, rate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(rate)

	r := &Resampler{
		src:      src,
		rate:     rate,
		step:     step,
		channels: channels,
		in:       make([]float32, channels),
		lowpass:  step > 1,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.srcEOF {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.in)
	if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
		r.srcEOF = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		r.srcEOF = true
		return false, nil
	}

	if r.lowpass {
		if r.read == 0 {
			copy(r.state, r.in)
		}
		for c := range r.channels {
			r.state[c] = lowpassAlpha*r.in[c] + (1-lowpassAlpha)*r.state[c]
		}
		copy(dst, r.state)
	} else {
		copy(dst, r.in)
	}
	r.read++

	return true, nil
}

// prime loads the first frames, duplicating edges where the source is short.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	copy(r.window[0], r.window[1])

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

// advance moves the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	r.cur++

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames && !r.done {
		for r.phase >= 1 {
			r.phase--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.cur >= r.read {
			r.done = true
			break
		}

		t := float32(r.phase)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], t)
		}

		written++
		r.phase += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}

// Resample converts a whole Buffer to rate. The input is returned as is
// when the rates already match.
func Resample(b *Buffer, rate int) (*Buffer, error) {
	if rate <= 0 || rate == b.SampleRate {
		return b, nil
	}

	out, err := Collect(NewResampler(b.Source(), rate))
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", rate, err)
	}
	return out, nil
}
