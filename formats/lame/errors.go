// SPDX-License-Identifier: EPL-2.0

package lame

import "errors"

var (
	ErrInit          = errors.New("lame: could not create LAME context")
	ErrEncode        = errors.New("lame: encode failed")
	ErrClosed        = errors.New("lame: encoder is closed")
	ErrInvalidPreset = errors.New("lame: preset must be between V0 and V9")
)
