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
	"bufio"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
)

var errPDFStdout = errors.New("PDF output needs an output file")

// writeSVG writes the current outline of o as an SVG image with a single
// path element.
func writeSVG(w io.Writer, o *outline.Outliner, cfg OutputConfig) error {
	width, height := o.Size()
	m := cfg.Margin
	vw := width + 2*m
	vh := height + 2*m

	buf := make([]byte, o.PathLen()+1)
	n := o.WritePath(buf)

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%g" height="%g">`+"\n",
		-m, -m, vw, vh, float64(vw)*cfg.Scale, float64(vh)*cfg.Scale)
	fmt.Fprintf(out, `<path fill="%s" fill-rule="%s" d="%s"/>`+"\n",
		cfg.Fill, cfg.FillRule, buf[:n])
	out.WriteString("</svg>\n")
	return out.Flush()
}

// writePDF writes the current outline of o into a single-page PDF file.
func writePDF(fname string, o *outline.Outliner, cfg OutputConfig) error {
	fill, err := parseColor(cfg.Fill)
	if err != nil {
		return err
	}
	rule, err := parseFillRule(cfg.FillRule)
	if err != nil {
		return err
	}

	width, height := o.Size()
	s := cfg.Scale
	m := float64(cfg.Margin) * s
	paper := &pdf.Rectangle{
		URx: float64(width)*s + 2*m,
		URy: float64(height)*s + 2*m,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(fill.gray()))

	// PDF origin is bottom-left, bitmap origin is top-left.
	page.Transform(matrix.Matrix{s, 0, 0, -s, m, paper.URy - m})

	p := o.PathData(matrix.Identity)
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := p.Coords[k]
			k++
			page.MoveTo(pt.X, pt.Y)
		case path.CmdLineTo:
			pt := p.Coords[k]
			k++
			page.LineTo(pt.X, pt.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if len(p.Cmds) > 0 {
		if rule == outline.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}
