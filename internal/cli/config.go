// seehuhn.de/go/outline - trace bitmaps into vector outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/outline"
)

// Config holds the settings which can be given in a TOML file.
// Command line flags override the values from the file.
//
//	[output]
//	format = "svg"
//	fill = "#000000"
//	scale = 4.0
//	margin = 2
//	fill_rule = "evenodd"
//
//	[input]
//	threshold = 128
//	invert = false
type Config struct {
	Output OutputConfig `toml:"output"`
	Input  InputConfig  `toml:"input"`
}

// OutputConfig controls the SVG and PDF output.
type OutputConfig struct {
	Format   string  `toml:"format"`    // "svg" or "pdf"
	Fill     string  `toml:"fill"`      // fill colour, "#rrggbb"
	Scale    float64 `toml:"scale"`     // output units per bitmap cell
	Margin   int     `toml:"margin"`    // empty cells around the bitmap
	FillRule string  `toml:"fill_rule"` // "evenodd" or "nonzero"
}

// InputConfig controls the conversion of images into bitmaps.
type InputConfig struct {
	Threshold int  `toml:"threshold"` // pixels darker than this are foreground
	Invert    bool `toml:"invert"`    // swap foreground and background
}

var (
	errFormat    = errors.New("unknown output format")
	errFillRule  = errors.New("unknown fill rule")
	errColor     = errors.New("invalid colour")
	errScale     = errors.New("scale must be positive")
	errMargin    = errors.New("margin must not be negative")
	errThreshold = errors.New("threshold must be between 0 and 255")
)

func defaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format:   "svg",
			Fill:     "#000000",
			Scale:    1,
			FillRule: outline.EvenOdd.String(),
		},
		Input: InputConfig{
			Threshold: 128,
		},
	}
}

// loadConfig reads the configuration file fname.  Settings missing from
// the file keep their default values.  If fname is empty, the defaults
// are returned.
func loadConfig(fname string) (Config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(fname, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown settings %s", fname, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c *Config) validate() error {
	out := &c.Output
	switch out.Format {
	case "svg", "pdf":
	default:
		return fmt.Errorf("%w %q", errFormat, out.Format)
	}
	if _, err := parseFillRule(out.FillRule); err != nil {
		return err
	}
	if _, err := parseColor(out.Fill); err != nil {
		return err
	}
	if !(out.Scale > 0) {
		return errScale
	}
	if out.Margin < 0 {
		return errMargin
	}
	if c.Input.Threshold < 0 || c.Input.Threshold > 255 {
		return errThreshold
	}
	return nil
}

func parseFillRule(s string) (outline.FillRule, error) {
	for _, rule := range []outline.FillRule{outline.EvenOdd, outline.NonZero} {
		if s == rule.String() {
			return rule, nil
		}
	}
	return 0, fmt.Errorf("%w %q", errFillRule, s)
}

// rgb is a colour with 8 bits per channel.
type rgb [3]uint8

// parseColor parses a colour of the form "#rrggbb".
func parseColor(s string) (rgb, error) {
	var c rgb
	if len(s) != 7 {
		return c, fmt.Errorf("%w %q", errColor, s)
	}
	n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c[0], &c[1], &c[2])
	if err != nil || n != 3 {
		return c, fmt.Errorf("%w %q", errColor, s)
	}
	return c, nil
}

// gray returns the luminance of c, between 0 and 1.
func (c rgb) gray() float64 {
	return (0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])) / 255
}
