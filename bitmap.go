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

package outline

import (
	"image"
	"image/color"
)

// BitmapFromImage converts img into bitmap data for SetBitmap.
// Pixels with a luminance below threshold become foreground; with
// invert set, pixels at or above the threshold do.  Transparent pixels
// are treated as white.
func BitmapFromImage(img image.Image, threshold uint8, invert bool) (data []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	data = make([]byte, width*height)
	for y := range height {
		for x := range width {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			_, _, _, a := c.RGBA()
			g := color.GrayModel.Convert(c).(color.Gray).Y
			// composite onto white: premultiplied gray + (1-alpha)
			lum := uint32(g) + 0xff - a>>8
			dark := lum < uint32(threshold)
			if dark != invert {
				data[y*width+x] = 1
			}
		}
	}
	return data, width, height
}
