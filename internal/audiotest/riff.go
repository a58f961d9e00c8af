// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// AppendSamplerLoop appends a RIFF smpl chunk holding one loop to a
// complete WAV file and fixes up the RIFF size. end is inclusive, as
// stored in the file.
func AppendSamplerLoop(wav []byte, start, end uint32) []byte {
	body := make([]byte, 36+24)
	binary.LittleEndian.PutUint32(body[28:32], 1) // loop count
	loop := body[36:]
	binary.LittleEndian.PutUint32(loop[8:12], start)
	binary.LittleEndian.PutUint32(loop[12:16], end)

	chunk := append([]byte("smpl"), make([]byte, 4)...)
	binary.LittleEndian.PutUint32(chunk[4:8], uint32(len(body)))

	out := append(append(wav, chunk...), body...)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out
}
