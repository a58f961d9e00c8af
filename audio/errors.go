// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupportedFormat indicates no codec is registered for a format.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNegativeLayer indicates a layer index below zero.
	ErrNegativeLayer = errors.New("layer index must not be negative")
	// ErrMonoLayer indicates a layer other than the first was requested from a mono source.
	ErrMonoLayer = errors.New("mono source only has layer 1")
	// ErrLayerOutOfRange indicates the source has fewer channel pairs than requested.
	ErrLayerOutOfRange = errors.New("layer out of range")

	// ErrNotStereo indicates a stereo stream was expected.
	ErrNotStereo = errors.New("source must have exactly 2 channels")
	// ErrChannelLengthMismatch indicates left and right channels differ in length.
	ErrChannelLengthMismatch = errors.New("left and right channels must be equal length")
)
