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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// walkSegments converts segments into absolute path commands.
// closePath is called once at the end of every path.
func walkSegments(segs []Segment, moveTo, lineTo func(x, y int), closePath func()) {
	var x, y int
	for i, s := range segs {
		switch s.Kind {
		case Start:
			if i > 0 {
				closePath()
			}
			x, y = s.X, s.Y
			moveTo(x, y)
		case Horizontal:
			x += s.X
			lineTo(x, y)
		case Vertical:
			y += s.Y
			lineTo(x, y)
		}
	}
	if len(segs) > 0 {
		closePath()
	}
}

// PathData returns the current outline as a path, with all points
// transformed by m.  Use matrix.Identity to get the outline in bitmap
// coordinates.
func (o *Outliner) PathData(m matrix.Matrix) *path.Data {
	p := &path.Data{}
	tr := func(x, y int) vec.Vec2 {
		xf, yf := float64(x), float64(y)
		return vec.Vec2{
			X: m[0]*xf + m[2]*yf + m[4],
			Y: m[1]*xf + m[3]*yf + m[5],
		}
	}
	walkSegments(o.Segments(),
		func(x, y int) { p.MoveTo(tr(x, y)) },
		func(x, y int) { p.LineTo(tr(x, y)) },
		func() { p.Close() })
	return p
}

// Bounds returns the bounding box of the current outline in bitmap
// coordinates.  The result is the zero rectangle if the outline is
// empty.
func (o *Outliner) Bounds() rect.Rect {
	var r rect.Rect
	first := true
	add := func(x, y int) {
		xf, yf := float64(x), float64(y)
		if first {
			r = rect.Rect{LLx: xf, LLy: yf, URx: xf, URy: yf}
			first = false
			return
		}
		r.LLx = min(r.LLx, xf)
		r.LLy = min(r.LLy, yf)
		r.URx = max(r.URx, xf)
		r.URy = max(r.URy, yf)
	}
	walkSegments(o.Segments(), add, add, func() {})
	return r
}
