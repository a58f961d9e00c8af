// SPDX-License-Identifier: EPL-2.0

// Package config loads the optional audloop defaults file.
//
// Every key is optional and overrides a built-in default; command-line flags
// that are set explicitly override the file in turn.
//
//	layer: 1
//	fade: 8.5
//	loops: 3
//	rate: 44100
//	format: mp3
//	preset: 2
//	yes: false
//	no_process: false
package config

// Config mirrors the command-line flags that can be defaulted.
type Config struct {
	// Layer is the 1-based channel pair to extract.
	Layer int `yaml:"layer"`
	// Fade is the fade-out length in seconds.
	Fade float64 `yaml:"fade"`
	// Loops is how many times the loop body is played.
	Loops int `yaml:"loops"`
	// Rate is the output sample rate; 0 keeps the source rate.
	Rate int `yaml:"rate"`
	// Format is the output format, "mp3" or "wav". Empty picks it from the
	// output file name.
	Format string `yaml:"format"`
	// Preset is the LAME VBR preset, 0 (best) to 9.
	Preset int `yaml:"preset"`
	// Yes overwrites existing output without asking.
	Yes bool `yaml:"yes"`
	// NoProcess skips looping and only re-encodes.
	NoProcess bool `yaml:"no_process"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Layer:  1,
		Fade:   10,
		Loops:  2,
		Preset: 2,
	}
}
