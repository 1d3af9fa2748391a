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

	"seehuhn.de/go/outline/gridview"
)

func (a *app) newGridCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "grid <image>",
		Short: "Print the arrow grid of an image, for debugging",
		Long: `Grid traces an image and prints the grid of boundary arrows found by the
tracer.  Outer arrows are shown in green, inner arrows in red.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, nil, &in)
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
			return gridview.Write(a.stdout, o, data)
		},
	}
	in.register(cmd)
	return cmd
}
