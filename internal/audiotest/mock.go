// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by package tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved audio on demand.
// It implements audio.Source without importing it, to avoid cycles.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   func(frame, channel int) float32

	// LoopStart and LoopEnd are reported through LoopPoints.
	LoopStart, LoopEnd int
	// Closed records whether Close was called.
	Closed bool
}

// NewMockSource creates a source of frames frames whose samples come from
// waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSineSource creates a source playing the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(0.5 * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewChannelTagSource creates a source where every sample of channel c is
// ChannelTag(c), which makes channel routing visible in tests.
func NewChannelTagSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(_, channel int) float32 {
		return ChannelTag(channel)
	})
}

// ChannelTag is the constant value emitted for channel c by NewChannelTagSource.
func ChannelTag(c int) float32 {
	return float32(c+1) / 16
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// LoopPoints returns LoopStart and LoopEnd.
func (m *MockSource) LoopPoints() (int, int) { return m.LoopStart, m.LoopEnd }

// Reset rewinds the generator.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += frames

	if m.pos >= m.frames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
