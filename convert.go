// SPDX-License-Identifier: EPL-2.0

package audloop

import (
	"context"
	"io"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/timing"
)

// Convert decodes layer of in, renders it with opts and encodes the result
// to out. ctx is checked between phases.
func Convert(ctx context.Context, in io.Reader, out io.Writer, dec audio.Decoder, enc audio.Encoder, layer int, opts Options) (*Result, error) {
	log := opts.logger()
	sw := timing.Start(log, "total")
	defer sw.Stop()

	t, err := decode(log, in, dec, layer)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := Render(t, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := encode(log, out, enc, res.Buffer); err != nil {
		return nil, err
	}
	return res, nil
}
