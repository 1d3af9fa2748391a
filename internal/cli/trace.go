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
	"github.com/spf13/cobra"
)

func (a *app) newTraceCmd() *cobra.Command {
	var out outputFlags
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "trace <image>",
		Short: "Trace an image file",
		Long: `Trace converts an image into a black and white bitmap and writes its outline.

Supported input formats are PNG, GIF, JPEG, BMP, TIFF and WebP.  Pixels
darker than the threshold are foreground, transparent pixels count as
white.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &out, &in)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			data, width, height, err := loadImage(ctx, args[0], cfg.Input)
			if err != nil {
				return err
			}
			o, err := traceBitmap(ctx, data, width, height)
			if err != nil {
				return err
			}
			return a.emit(ctx, o, out.output, cfg.Output)
		},
	}
	out.register(cmd)
	in.register(cmd)
	return cmd
}
