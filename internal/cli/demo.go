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
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/outline/gridview"
	"seehuhn.de/go/outline/testcases"
)

func (a *app) newDemoCmd() *cobra.Command {
	var out outputFlags
	var grid bool

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Trace a built-in test bitmap",
		Long: `Demo traces one of the built-in test bitmaps.  Without an argument, the
names of all test bitmaps are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range testcases.Names() {
					fmt.Fprintln(a.stdout, name)
				}
				return nil
			}

			cfg, err := a.config(cmd, &out, nil)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			tc, ok := testcases.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown test bitmap %q", args[0])
			}
			o, err := traceBitmap(ctx, tc.Data, tc.Width, tc.Height)
			if err != nil {
				return err
			}
			if grid {
				return gridview.Write(a.stdout, o, tc.Data)
			}
			return a.emit(ctx, o, out.output, cfg.Output)
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&grid, "grid", false, "print the arrow grid instead of the outline")
	return cmd
}
