// SPDX-License-Identifier: EPL-2.0

package audloop

import "errors"

var (
	ErrNilTrack      = errors.New("audloop: nil track")
	ErrNegativeLoops = errors.New("audloop: loop count must not be negative")
)
