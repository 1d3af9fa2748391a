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

import "slices"

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "invalid"
	}
}

// Fill rasterises the current outline into dst, which must have room
// for width*height bytes in row-major order.  Cells inside the outline
// are set to 1, all other cells to 0.
//
// Since all outline vertices lie on integer coordinates, every cell is
// either fully inside or fully outside and the result is exact.  For a
// correct outline both fill rules reproduce the traced bitmap.
func (o *Outliner) Fill(dst []byte, rule FillRule) {
	width, height := o.width, o.height
	stride := width + 1
	dst = dst[:width*height]

	// Coverage accumulation model:
	//
	// Every vertical edge changes the winding number for all cells to
	// its right.  cover[y*stride+x] collects the signed changes caused
	// by edges on the vertical line x within bitmap row y, with +1 for
	// downward and -1 for upward edges.  A running sum along each row
	// then gives the winding number of every cell.  Horizontal edges do
	// not contribute.
	size := stride * height
	o.cover = slices.Grow(o.cover[:0], size)[:size]
	clear(o.cover)

	var x0, y0 int // current point
	var sx, sy int // start of the current path
	addEdge := func(x1, y1 int) {
		if x1 == x0 {
			o.accumulateEdge(x0, y0, y1, stride)
		}
		x0, y0 = x1, y1
	}
	walkSegments(o.Segments(),
		func(x, y int) {
			x0, y0 = x, y
			sx, sy = x, y
		},
		addEdge,
		func() { addEdge(sx, sy) })

	for y := range height {
		integrateRow(dst[y*width:(y+1)*width], o.cover[y*stride:(y+1)*stride], rule)
	}
}

// accumulateEdge adds the contribution of the vertical edge from (x, y0)
// to (x, y1) to the cover buffer.
func (o *Outliner) accumulateEdge(x, y0, y1, stride int) {
	sign := int32(1)
	if y1 < y0 {
		y0, y1 = y1, y0
		sign = -1
	}
	y0 = max(y0, 0)
	y1 = min(y1, o.height)
	if x < 0 || x >= stride {
		return
	}
	for y := y0; y < y1; y++ {
		o.cover[y*stride+x] += sign
	}
}

// integrateRow converts the accumulated cover values of one row into
// inside/outside values.
func integrateRow(dst []byte, cover []int32, rule FillRule) {
	var accum int32
	for x := range dst {
		accum += cover[x]

		var inside bool
		if rule == EvenOdd {
			inside = accum%2 != 0
		} else {
			inside = accum != 0
		}
		if inside {
			dst[x] = 1
		} else {
			dst[x] = 0
		}
	}
}
