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
// Package cli implements the outline command-line interface.
//
// The commands convert images, QR codes and built-in test bitmaps into
// SVG or PDF outlines, and print the arrow grid used by the tracer for
// debugging.  All commands support --verbose (-v) for debug-level
// logging and --config to read settings from a TOML file.
package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	// image formats for the trace and grid commands
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/outline"
)

// Execute runs the outline command with the arguments from the command
// line.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// app holds the state shared by all commands.
type app struct {
	stdout, stderr io.Writer
	configPath     string
	verbose        bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "outline",
		Short:         "Trace bitmaps into vector outlines",
		Long:          `outline converts black and white bitmaps into closed vector paths built from horizontal and vertical runs, and writes them as SVG or PDF.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(a.stderr, level)
			outline.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&a.configPath, "config", "", "read settings from a TOML file")

	root.AddCommand(a.newTraceCmd())
	root.AddCommand(a.newQRCmd())
	root.AddCommand(a.newGridCmd())
	root.AddCommand(a.newDemoCmd())

	return root
}

// outputFlags are the flags of all commands which write an outline.
type outputFlags struct {
	output string
	cfg    OutputConfig
}

func (f *outputFlags) register(cmd *cobra.Command) {
	def := defaultConfig().Output
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&f.cfg.Format, "format", def.Format, "output format: svg or pdf")
	flags.StringVar(&f.cfg.Fill, "fill", def.Fill, "fill colour as #rrggbb")
	flags.Float64Var(&f.cfg.Scale, "scale", def.Scale, "output units per bitmap cell")
	flags.IntVar(&f.cfg.Margin, "margin", def.Margin, "empty cells around the bitmap")
	flags.StringVar(&f.cfg.FillRule, "fill-rule", def.FillRule, "fill rule: evenodd or nonzero")
}

// apply copies the flags which were set on the command line into cfg.
func (f *outputFlags) apply(cmd *cobra.Command, cfg *OutputConfig) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = f.cfg.Format
	}
	if flags.Changed("fill") {
		cfg.Fill = f.cfg.Fill
	}
	if flags.Changed("scale") {
		cfg.Scale = f.cfg.Scale
	}
	if flags.Changed("margin") {
		cfg.Margin = f.cfg.Margin
	}
	if flags.Changed("fill-rule") {
		cfg.FillRule = f.cfg.FillRule
	}
}

// inputFlags are the flags of all commands which read an image.
type inputFlags struct {
	cfg InputConfig
}

func (f *inputFlags) register(cmd *cobra.Command) {
	def := defaultConfig().Input
	flags := cmd.Flags()
	flags.IntVar(&f.cfg.Threshold, "threshold", def.Threshold, "pixels darker than this are foreground")
	flags.BoolVar(&f.cfg.Invert, "invert", def.Invert, "treat light pixels as foreground")
}

func (f *inputFlags) apply(cmd *cobra.Command, cfg *InputConfig) {
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold = f.cfg.Threshold
	}
	if flags.Changed("invert") {
		cfg.Invert = f.cfg.Invert
	}
}

// config loads the configuration file and applies the command line
// flags.  Either set of flags may be nil.
func (a *app) config(cmd *cobra.Command, out *outputFlags, in *inputFlags) (Config, error) {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return cfg, err
	}
	if out != nil {
		out.apply(cmd, &cfg.Output)
	}
	if in != nil {
		in.apply(cmd, &cfg.Input)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// traceBitmap finds the outline of a bitmap.
func traceBitmap(ctx context.Context, data []byte, width, height int) (*outline.Outliner, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	o, err := outline.New(width, height)
	if err != nil {
		return nil, err
	}
	o.SetBitmap(data)
	if _, err := o.FindPaths(); err != nil {
		return nil, fmt.Errorf("tracing %dx%d bitmap: %w", width, height, err)
	}

	p.done(fmt.Sprintf("traced %dx%d bitmap into %d paths", width, height, o.NumPaths()))
	return o, nil
}

// emit writes the outline in the configured format.
func (a *app) emit(ctx context.Context, o *outline.Outliner, fname string, cfg OutputConfig) error {
	logger := loggerFromContext(ctx)

	if cfg.Format == "pdf" {
		if fname == "" {
			return errPDFStdout
		}
		if err := writePDF(fname, o, cfg); err != nil {
			return fmt.Errorf("writing %s: %w", fname, err)
		}
		logger.Info("wrote PDF", "file", fname)
		return nil
	}

	if fname == "" {
		return writeSVG(a.stdout, o, cfg)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := writeSVG(f, o, cfg); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote SVG", "file", fname)
	return nil
}

// loadImage reads an image file and converts it into a bitmap.
func loadImage(ctx context.Context, fname string, cfg InputConfig) ([]byte, int, int, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", fname, err)
	}
	data, width, height := outline.BitmapFromImage(img, uint8(cfg.Threshold), cfg.Invert)
	loggerFromContext(ctx).Debug("loaded image", "file", fname, "format", format,
		"width", width, "height", height)
	return data, width, height, nil
}
