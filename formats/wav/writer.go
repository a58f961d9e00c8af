// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 44

// WriteHeader writes a canonical 44 byte PCM header for frames frames of
// 16-bit audio. The sizes are known up front, so no seeking is needed.
func WriteHeader(w io.Writer, sampleRate, channels, frames int) error {
	const bitsPerSample = 16

	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(frames * blockAlign)

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteStereo16 streams a complete stereo WAV file to w.
func WriteStereo16(w io.Writer, sampleRate int, left, right []int16) error {
	if err := WriteHeader(w, sampleRate, 2, len(left)); err != nil {
		return err
	}

	const chunkFrames = 4096
	buf := make([]byte, min(len(left), chunkFrames)*4)

	for i := 0; i < len(left); i += chunkFrames {
		end := min(i+chunkFrames, len(left))
		chunk := buf[:(end-i)*4]

		for f := i; f < end; f++ {
			o := (f - i) * 4
			binary.LittleEndian.PutUint16(chunk[o:], uint16(left[f]))
			binary.LittleEndian.PutUint16(chunk[o+2:], uint16(right[f]))
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
