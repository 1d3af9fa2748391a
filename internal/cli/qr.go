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

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

var qrLevels = map[string]qrcode.RecoveryLevel{
	"low":     qrcode.Low,
	"medium":  qrcode.Medium,
	"high":    qrcode.High,
	"highest": qrcode.Highest,
}

func (a *app) newQRCmd() *cobra.Command {
	var out outputFlags
	var level string
	var border bool

	cmd := &cobra.Command{
		Use:   "qr <text>",
		Short: "Encode text as a QR code and trace it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, &out, nil)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			data, size, err := encodeQR(args[0], level, border)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("encoded QR code", "size", size, "level", level)

			o, err := traceBitmap(ctx, data, size, size)
			if err != nil {
				return err
			}
			return a.emit(ctx, o, out.output, cfg.Output)
		},
	}
	out.register(cmd)
	cmd.Flags().StringVar(&level, "level", "medium", "error recovery level: low, medium, high or highest")
	cmd.Flags().BoolVar(&border, "border", false, "include the quiet zone in the bitmap")
	return cmd
}

// encodeQR returns the bitmap of a QR code for text.
func encodeQR(text, level string, border bool) ([]byte, int, error) {
	l, ok := qrLevels[level]
	if !ok {
		return nil, 0, fmt.Errorf("unknown recovery level %q", level)
	}
	q, err := qrcode.New(text, l)
	if err != nil {
		return nil, 0, fmt.Errorf("encoding QR code: %w", err)
	}
	q.DisableBorder = !border

	bitmap := q.Bitmap()
	size := len(bitmap)
	data := make([]byte, size*size)
	for y, row := range bitmap {
		for x, black := range row {
			if black {
				data[y*size+x] = 1
			}
		}
	}
	return data, size, nil
}
