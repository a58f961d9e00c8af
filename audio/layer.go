// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Layers is the number of selectable stereo layers for a channel count.
// A mono source has exactly one layer, played on both sides.
func Layers(channels int) int {
	if channels == 1 {
		return 1
	}
	return channels / 2
}

// CheckLayer validates a zero-based layer index against a channel count.
func CheckLayer(layer, channels int) error {
	switch {
	case layer < 0:
		return fmt.Errorf("%w: %d", ErrNegativeLayer, layer)
	case channels == 1 && layer > 0:
		return fmt.Errorf("%w: asked for layer %d", ErrMonoLayer, layer+1)
	case layer >= Layers(channels):
		return fmt.Errorf("%w: file has %d layer(s), asked for layer %d", ErrLayerOutOfRange, Layers(channels), layer+1)
	}

	return nil
}

// LayerSelector narrows a multi-channel source to one stereo pair.
// Channels 2*layer and 2*layer+1 become left and right; a mono source is
// duplicated into both.
type LayerSelector struct {
	src   Source
	first int
	tmp   []float32
}

// NewLayerSelector wraps src and selects the zero-based layer.
func NewLayerSelector(src Source, layer int) (*LayerSelector, error) {
	if err := CheckLayer(layer, src.Channels()); err != nil {
		return nil, err
	}

	return &LayerSelector{
		src:   src,
		first: layer * 2,
		tmp:   make([]float32, 4096),
	}, nil
}

func (l *LayerSelector) SampleRate() int { return l.src.SampleRate() }
func (l *LayerSelector) Channels() int   { return 2 }
func (l *LayerSelector) BufSize() int    { return l.src.BufSize() }

func (l *LayerSelector) Close() error {
	if err := l.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// LoopPoints forwards the loop markers of the wrapped source.
func (l *LayerSelector) LoopPoints() (start, end int) {
	return LoopPoints(l.src)
}

func (l *LayerSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	channels := l.src.Channels()
	needed := len(dst) / 2 * channels
	if cap(l.tmp) < needed {
		l.tmp = make([]float32, needed)
	}
	l.tmp = l.tmp[:needed]

	n, err := l.src.ReadSamples(l.tmp)
	frames := n / channels

	if channels == 1 {
		for f := range frames {
			dst[2*f] = l.tmp[f]
			dst[2*f+1] = l.tmp[f]
		}
		return frames * 2, err
	}

	for f := range frames {
		base := f*channels + l.first
		dst[2*f] = l.tmp[base]
		dst[2*f+1] = l.tmp[base+1]
	}
	return frames * 2, err
}
