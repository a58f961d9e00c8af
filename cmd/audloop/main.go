// SPDX-License-Identifier: EPL-2.0

// Package main provides the audloop CLI.
//
// Usage:
//
//	audloop [flags] INPUT [OUTPUT]
//
// The input's loop (LoopStart/LoopEnd comments in Ogg Vorbis, the sampler
// chunk in WAV) is played --loops times and faded out over --fade seconds,
// then the result is encoded as MP3 or WAV.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audloop/cmd/audloop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
