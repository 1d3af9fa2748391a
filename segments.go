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

// SegmentKind distinguishes the segments of an outline.
type SegmentKind uint8

const (
	// Start begins a new closed path at an absolute point.
	// Any previous path is closed implicitly.
	Start SegmentKind = iota

	// Horizontal is a horizontal run, relative to the current point.
	Horizontal

	// Vertical is a vertical run, relative to the current point.
	Vertical
)

func (k SegmentKind) String() string {
	switch k {
	case Start:
		return "start"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "invalid"
	}
}

// Segment is one element of an outline.
//
// For Start segments, X and Y give the absolute position of the new
// path.  For Horizontal segments X is the signed length of the run and
// Y is zero; for Vertical segments Y is the signed length and X is zero.
// All values are in bitmap units, with y growing downwards.
type Segment struct {
	Kind SegmentKind
	X, Y int
}

// minSegments is the capacity allocated when a segment buffer first
// grows.
const minSegments = 64

// segmentBuffer collects segments.  The capacity grows to 2n+1 when the
// buffer is full, but to at least minSegments.
type segmentBuffer struct {
	segs  []Segment
	limit int // maximum number of segments, 0 for unlimited
}

func (b *segmentBuffer) reset(limit int) {
	b.segs = b.segs[:0]
	b.limit = limit
}

func (b *segmentBuffer) grow() error {
	n := max(2*cap(b.segs)+1, minSegments)
	if b.limit > 0 && n > b.limit {
		if cap(b.segs) >= b.limit {
			return ErrTooManySegments
		}
		n = b.limit
	}

	segs := make([]Segment, len(b.segs), n)
	copy(segs, b.segs)
	b.segs = segs
	return nil
}

func (b *segmentBuffer) push(s Segment) error {
	if b.limit > 0 && len(b.segs) >= b.limit {
		return ErrTooManySegments
	}
	if len(b.segs) >= cap(b.segs) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.segs = append(b.segs, s)
	return nil
}
