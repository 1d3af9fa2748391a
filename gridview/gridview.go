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

// Package gridview prints the arrow grid of an [outline.Outliner] as
// text, for debugging.
//
// Every grid cell is shown as an arrow glyph.  Outer arrows are green,
// inner arrows are red, empty cells are shown as "∙".  Foreground cells
// of the bitmap are marked with "#" between the vertical arrows.
// Colours are only used if the output supports them.
package gridview

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/outline"
)

var glyphs = [...]string{
	outline.None:  "∙",
	outline.Right: "→",
	outline.Left:  "←",
	outline.Down:  "↓",
	outline.Up:    "↑",
}

var (
	colorGreen = lipgloss.Color("2")
	colorRed   = lipgloss.Color("1")
)

// Write prints the arrow grid of o to w.  The data must be the bitmap
// most recently traced by o.
func Write(w io.Writer, o *outline.Outliner, data []byte) error {
	r := lipgloss.NewRenderer(w)
	return write(w, o, data, r)
}

func write(w io.Writer, o *outline.Outliner, data []byte, r *lipgloss.Renderer) error {
	outer := r.NewStyle().Foreground(colorGreen)
	inner := r.NewStyle().Foreground(colorRed)

	width, _ := o.Size()
	cols, rows := o.GridSize()

	out := bufio.NewWriter(w)
	for gy := range rows {
		odd := gy%2 != 0
		n := cols
		if odd {
			// horizontal arrows sit between the vertical ones
			out.WriteString("  ")
			n--
		}

		for gx := range n {
			dir, isInner := o.ArrowAt(gx, gy)
			glyph := glyphs[dir]
			switch {
			case dir == outline.None:
				// no colour
			case isInner:
				glyph = inner.Render(glyph)
			default:
				glyph = outer.Render(glyph)
			}
			out.WriteString(glyph)

			if !odd && gx > 0 && gx < cols-2 && gy >= 2 && gy < rows-2 {
				cell := (gy-2)/2*width + gx - 1
				if cell < len(data) && data[cell] != 0 {
					out.WriteString(" # ")
					continue
				}
			}
			out.WriteString("   ")
		}
		out.WriteString("\n")
	}
	return out.Flush()
}
