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

// Package outline converts bitmaps into closed vector outlines.
//
// Every boundary between foreground and background cells of the bitmap
// becomes part of exactly one closed path.  Paths around foreground
// regions run clockwise (with y growing downwards), paths around holes
// run counter-clockwise, so the result can be filled with either the
// even-odd or the nonzero winding rule.  Collinear edges are merged into
// single horizontal and vertical runs.  A typical use is converting QR
// codes or stencil masks into scalable SVG or PDF paths.
//
// The outline is written in the SVG path syntax using only the M, h, v
// and z commands, for example "M0,0h2v1h-2z".
package outline

import "errors"

var (
	// ErrDimensions is returned for bitmaps with a non-positive width or
	// height.
	ErrDimensions = errors.New("outline: invalid bitmap dimensions")

	// ErrNoBitmap is returned by FindPaths if no bitmap has been set.
	ErrNoBitmap = errors.New("outline: no bitmap set")

	// ErrBitmapSize is returned by FindPaths if the bitmap data is
	// shorter than width*height bytes.
	ErrBitmapSize = errors.New("outline: bitmap data too short")

	// ErrTooManySegments is returned by FindPaths if the outline needs
	// more than MaxSegments segments.
	ErrTooManySegments = errors.New("outline: too many path segments")
)

// Outliner finds the outlines of the foreground regions of a bitmap.
// Create one instance per bitmap size and reuse it.  Internal buffers
// are reused between calls to FindPaths.
//
// An Outliner is not safe for concurrent use.  Different Outliners can
// be used concurrently.
type Outliner struct {
	// MaxSegments limits the number of segments FindPaths may produce.
	// Zero means no limit.
	MaxSegments int

	width, height int
	data          []byte // borrowed, not owned
	grid          arrowGrid

	// FindPaths traces into bufs[1-cur] and only switches cur on
	// success, so that a failed call leaves the published outline
	// intact.
	bufs [2]segmentBuffer
	cur  int

	cover []int32 // winding number changes, used by Fill
}

// New returns an Outliner for bitmaps of the given size.
func New(width, height int) (*Outliner, error) {
	o := &Outliner{}
	if err := o.Reset(width, height); err != nil {
		return nil, err
	}
	return o, nil
}

// Reset changes the bitmap size.  The outline and the bitmap are
// discarded, buffers are kept for reuse.
func (o *Outliner) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrDimensions
	}

	o.width = width
	o.height = height
	o.data = nil
	o.grid.reset(width, height)
	for i := range o.bufs {
		b := &o.bufs[i]
		b.reset(0)
		if cap(b.segs) == 0 {
			// cannot fail, since there is no limit
			_ = b.grow()
		}
	}
	return nil
}

// Size returns the bitmap size.
func (o *Outliner) Size() (width, height int) {
	return o.width, o.height
}

// SetBitmap sets the bitmap to trace.  The data is stored in row-major
// order, one byte per cell, and nonzero bytes are foreground.  The slice
// is used, not copied, by the following calls to FindPaths and must not
// be modified while FindPaths runs.
func (o *Outliner) SetBitmap(data []byte) {
	o.data = data
}

// FindPaths traces the current bitmap and returns the outline.
// The returned slice is owned by the Outliner and remains valid until
// the next call to FindPaths or Reset.
//
// If an error occurs, the previous outline remains in place.
func (o *Outliner) FindPaths() ([]Segment, error) {
	if o.data == nil {
		return nil, ErrNoBitmap
	}
	if len(o.data) < o.width*o.height {
		return nil, ErrBitmapSize
	}

	g := &o.grid
	g.clear()
	g.setArrows(o.data)

	buf := &o.bufs[1-o.cur]
	buf.reset(o.MaxSegments)
	cycles, err := g.searchPaths(buf)
	if err != nil {
		logger().Debug("outline: tracing failed",
			"width", o.width, "height", o.height, "error", err)
		return nil, err
	}
	o.cur = 1 - o.cur

	segs := o.Segments()
	logger().Debug("outline: bitmap traced",
		"width", o.width, "height", o.height,
		"cycles", cycles, "segments", len(segs))
	return segs, nil
}

// Segments returns the outline found by the most recent successful call
// to FindPaths.
func (o *Outliner) Segments() []Segment {
	return o.bufs[o.cur].segs
}

// NumPaths returns the number of closed paths in the current outline.
func (o *Outliner) NumPaths() int {
	n := 0
	for _, s := range o.Segments() {
		if s.Kind == Start {
			n++
		}
	}
	return n
}

// GridSize returns the number of columns and rows of the arrow grid.
// The grid has width+3 columns and 2*height+3 rows.
func (o *Outliner) GridSize() (cols, rows int) {
	return gridSize(o.width, o.height)
}

// ArrowAt returns the direction of the arrow at grid position (gx, gy),
// and whether the arrow was classified as part of an inner path.  Rows
// 2y+1 hold the horizontal edges on line y of the bitmap, rows 2y+2 the
// vertical edges of bitmap row y.  The grid reflects the most recent
// call to FindPaths.
func (o *Outliner) ArrowAt(gx, gy int) (dir Direction, inner bool) {
	cols, rows := o.GridSize()
	if gx < 0 || gx >= cols || gy < 0 || gy >= rows {
		return None, false
	}
	a := o.grid.at(gx, gy)
	return a.dir, a.inner
}
