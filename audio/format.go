// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format keys used with Registry.
const (
	FormatOgg  = "ogg"
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
	FormatMP3  = "mp3"
)

var extensions = map[string]string{
	".ogg":  FormatOgg,
	".oga":  FormatOgg,
	".wav":  FormatWAV,
	".wave": FormatWAV,
	".aif":  FormatAIFF,
	".aiff": FormatAIFF,
	".mp3":  FormatMP3,
}

// FormatFromPath guesses the format key from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// ReplaceExt swaps the extension of path for the one of format.
func ReplaceExt(path, format string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
}
