// SPDX-License-Identifier: EPL-2.0

// Package prompt asks yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoAnswer is returned when input ends before a valid answer.
var ErrNoAnswer = errors.New("prompt: input closed before an answer was given")

// Confirm writes question to w and reads answers from r until one of
// y, yes, n, no (any case) or an empty line, which selects def.
func Confirm(r io.Reader, w io.Writer, question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	sc := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprintf(w, "%s [%s] ", question, hint); err != nil {
			return false, fmt.Errorf("prompt: %w", err)
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return false, fmt.Errorf("prompt: %w", err)
			}
			return false, ErrNoAnswer
		}

		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return def, nil
		}

		if _, err := fmt.Fprintln(w, "Invalid input, expecting [y/yes/n/no] or an empty line."); err != nil {
			return false, fmt.Errorf("prompt: %w", err)
		}
	}
}
