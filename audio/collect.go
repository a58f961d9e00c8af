// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audloop/utils"
)

// Collect drains a stereo source into a Buffer, converting samples to
// 16-bit PCM. It does not close src.
func Collect(src Source) (*Buffer, error) {
	if src.Channels() != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotStereo, src.Channels())
	}

	size := src.BufSize()
	if size < 2 {
		size = 4096
	}
	buf := make([]float32, size&^1)

	b := &Buffer{SampleRate: src.SampleRate()}
	for {
		n, err := src.ReadSamples(buf)
		for f := range n / 2 {
			b.Left = append(b.Left, utils.Float32ToInt16(buf[2*f]))
			b.Right = append(b.Right, utils.Float32ToInt16(buf[2*f+1]))
		}

		if errors.Is(err, io.EOF) {
			return b, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// a source that neither advances nor reports EOF is done
			return b, nil
		}
	}
}
