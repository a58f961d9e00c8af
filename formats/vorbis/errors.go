// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrInvalidLoopMarker indicates a LoopStart or LoopEnd comment that is not a frame index.
	ErrInvalidLoopMarker = errors.New("loop marker is not a number")
	// ErrNoChannels indicates a stream header without audio channels.
	ErrNoChannels = errors.New("stream has no channels")
)
