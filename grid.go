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

// Direction is the direction of a boundary edge in the arrow grid.
// Foreground always lies to the right of an arrow, in a coordinate
// system where y grows downwards.
type Direction uint8

const (
	None Direction = iota
	Right
	Left
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// IsHorizontal reports whether d is Right or Left.
func (d Direction) IsHorizontal() bool {
	return d == Right || d == Left
}

// arrow is a single cell of the arrow grid.
type arrow struct {
	dir     Direction
	inner   bool // the arrow belongs to an inner (hole) path
	seen    bool // consumed by the tracer
	visited bool // consumed by the classifier
}

// arrowGrid holds the boundary edges of a bitmap at doubled vertical
// resolution.  Row 2y+1 holds the horizontal arrows on the line y of
// the bitmap, row 2y+2 holds the vertical arrows between the cells of
// bitmap row y.  Column x+1 corresponds to bitmap column x (horizontal
// arrows) or to the vertical line x (vertical arrows).  A border of one
// empty cell on every side lets the tracer look at all neighbours of an
// arrow without bounds checks.
type arrowGrid struct {
	width, height int // bitmap size
	stride        int // width + 3
	rows          int // 2*height + 3
	cells         []arrow
}

// gridSize returns the number of columns and rows of the arrow grid for
// a bitmap of the given size.
func gridSize(width, height int) (cols, rows int) {
	return width + 3, 2*height + 3
}

func (g *arrowGrid) reset(width, height int) {
	cols, rows := gridSize(width, height)
	n := cols * rows
	if cap(g.cells) < n {
		g.cells = make([]arrow, n)
	} else {
		g.cells = g.cells[:n]
		clear(g.cells)
	}
	g.width = width
	g.height = height
	g.stride = cols
	g.rows = rows
}

func (g *arrowGrid) clear() {
	clear(g.cells)
}

// at returns the arrow at grid position (gx, gy).
func (g *arrowGrid) at(gx, gy int) *arrow {
	return &g.cells[gy*g.stride+gx]
}

// setArrows installs one arrow for every foreground/background
// transition of the bitmap.  The area outside the bitmap counts as
// background.
func (g *arrowGrid) setArrows(data []byte) {
	width, height := g.width, g.height

	// scan columns top to bottom for the horizontal edges
	for x := range width {
		var prev bool
		for y := range height {
			p := data[y*width+x] != 0
			if p != prev {
				dir := Right
				if prev {
					dir = Left
				}
				g.at(x+1, 2*y+1).dir = dir
				prev = p
			}
		}
		if prev {
			g.at(x+1, 2*height+1).dir = Left
		}
	}

	// scan rows left to right for the vertical edges
	for y := range height {
		row := data[y*width : (y+1)*width]
		var prev bool
		for x, v := range row {
			p := v != 0
			if p != prev {
				dir := Up
				if prev {
					dir = Down
				}
				g.at(x+1, 2*y+2).dir = dir
				prev = p
			}
		}
		if prev {
			g.at(width+1, 2*y+2).dir = Down
		}
	}
}

// realCoords converts the grid position of an arrow into the bitmap
// coordinates of the arrow's start point.
func realCoords(dir Direction, gx, gy int) (x, y int) {
	x = gx - 1
	y = (gy - 1) / 2
	switch dir {
	case Left:
		x++
	case Up:
		y++
	}
	return x, y
}
