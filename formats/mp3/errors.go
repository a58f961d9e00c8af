// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var ErrNotMP3File = errors.New("not a valid MP3 stream")
