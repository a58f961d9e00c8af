// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegion is wrapped by every region validation failure.
	ErrInvalidRegion = errors.New("invalid loop region")

	ErrNegativeRepeat   = fmt.Errorf("%w: repeat count must not be negative", ErrInvalidRegion)
	ErrNegativeFade     = fmt.Errorf("%w: fade length must not be negative", ErrInvalidRegion)
	ErrRegionOutOfRange = fmt.Errorf("%w: loop points outside of buffer", ErrInvalidRegion)
	ErrFadeOverrun      = fmt.Errorf("%w: fade window runs past the end of the buffer", ErrInvalidRegion)
	ErrOutputTooLong    = fmt.Errorf("%w: output would exceed MaxOutputSamples", ErrInvalidRegion)

	ErrChannelLengthMismatch = errors.New("channels must have equal length")
	ErrMisalignedBuffer      = errors.New("interleaved buffer length is not a multiple of the channel count")
)
