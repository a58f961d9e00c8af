// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"strconv"
	"strings"
)

// Comment keys holding loop points, in frames.
const (
	LoopStartKey = "LoopStart"
	LoopEndKey   = "LoopEnd"
)

// ParseLoopMarkers extracts LoopStart and LoopEnd from Vorbis comments of
// the form KEY=value. Keys match case-insensitively; a missing key yields 0.
// When a key repeats the last value wins.
func ParseLoopMarkers(comments []string) (start, end int, err error) {
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}

		var dst *int
		switch {
		case strings.EqualFold(key, LoopStartKey):
			dst = &start
		case strings.EqualFold(key, LoopEndKey):
			dst = &end
		default:
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("%w: %s=%q", ErrInvalidLoopMarker, key, value)
		}
		*dst = n
	}

	return start, end, nil
}
