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
	"math"

	"golang.org/x/image/vector"
)

// AddTo adds the current outline to z, with all coordinates multiplied
// by scale.  The vector package uses the nonzero winding rule, which
// gives the same result as even-odd for outlines produced by FindPaths.
func (o *Outliner) AddTo(z *vector.Rasterizer, scale float32) {
	walkSegments(o.Segments(),
		func(x, y int) { z.MoveTo(float32(x)*scale, float32(y)*scale) },
		func(x, y int) { z.LineTo(float32(x)*scale, float32(y)*scale) },
		z.ClosePath)
}

// Mask renders the current outline into a new alpha mask.  The mask
// covers the whole bitmap, scaled by scale.  At integer scales the mask
// has no intermediate alpha values.
func (o *Outliner) Mask(scale float32) *image.Alpha {
	w := int(math.Ceil(float64(float32(o.width) * scale)))
	h := int(math.Ceil(float64(float32(o.height) * scale)))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	o.AddTo(z, scale)
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
