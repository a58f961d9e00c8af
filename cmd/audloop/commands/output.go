// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ik5/audloop/audio"
)

var (
	errOutputArgs = errors.New("OUTPUT is required unless --automatic-name is set, and not allowed with it")
	errSameFile   = errors.New("output would overwrite the input file")
)

// outputPath works out where to write and in which format. An explicit
// format wins, then the output extension, then mp3.
func outputPath(args []string, automatic bool, format string) (path, outFormat string, err error) {
	input := args[0]

	switch {
	case automatic && len(args) == 1:
		if format == "" {
			format = audio.FormatMP3
		}
		path = audio.ReplaceExt(input, format)
	case !automatic && len(args) == 2:
		path = args[1]
		if format == "" {
			if f, err := audio.FormatFromPath(path); err == nil {
				format = f
			} else {
				format = audio.FormatMP3
			}
		}
	default:
		return "", "", errOutputArgs
	}

	if same, err := sameFile(input, path); err != nil {
		return "", "", err
	} else if same {
		return "", "", fmt.Errorf("%w: %s", errSameFile, path)
	}

	return path, format, nil
}

func sameFile(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", b, err)
	}
	return absA == absB, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking output: %w", err)
	}
}

// writeAtomic runs write against a temporary file next to path and renames
// it into place only when write succeeds.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
