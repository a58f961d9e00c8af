// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("audiotest: negative offset")

// File is an in-memory io.ReadWriteSeeker. Writes past the end grow it.
type File struct {
	data []byte
	pos  int64
}

func (f *File) Bytes() []byte { return f.data }

func (f *File) Read(p []byte) (int, error) {
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *File) Write(p []byte) (int, error) {
	end := f.pos + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.pos:], p)
	f.pos = end
	return len(p), nil
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = int64(len(f.data)) + offset
	}
	if pos < 0 {
		return 0, errNegativeOffset
	}
	f.pos = pos
	return pos, nil
}
