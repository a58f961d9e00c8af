// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Formats lists the accepted values of Config.Format.
var Formats = []string{"mp3", "wav"}

// DefaultPath returns $XDG_CONFIG_HOME/audloop/config.yaml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating config dir: %w", err)
	}
	return filepath.Join(dir, "audloop", "config.yaml"), nil
}

// Load reads the YAML file at path on top of Defaults. A missing file is
// only an error when required is set, i.e. the user named it explicitly.
func Load(path string, required bool) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r on top of Defaults and validates the
// result. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns every problem found in cfg, joined.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Layer < 1 {
		errs = append(errs, fmt.Errorf("layer %d is invalid; layers start at 1", cfg.Layer))
	}
	if cfg.Fade < 0 {
		errs = append(errs, fmt.Errorf("fade %g is invalid; must not be negative", cfg.Fade))
	}
	if cfg.Loops < 0 {
		errs = append(errs, fmt.Errorf("loops %d is invalid; must not be negative", cfg.Loops))
	}
	if cfg.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate %d is invalid; must not be negative", cfg.Rate))
	}
	if cfg.Format != "" && !slices.Contains(Formats, cfg.Format) {
		errs = append(errs, fmt.Errorf("format %q is invalid; valid values: %v", cfg.Format, Formats))
	}
	if cfg.Preset < 0 || cfg.Preset > 9 {
		errs = append(errs, fmt.Errorf("preset %d is invalid; valid values: 0-9", cfg.Preset))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
