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
	"math/bits"
	"strconv"
)

// pow10 holds the powers of ten which fit into a uint64.
var pow10 = [...]uint64{
	1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// numDigits returns the number of decimal digits of n.
//
// The integer log10 is found from the integer log2, using
// 1233/4096 ≈ log10(2), and is then corrected by one table lookup.
// See https://graphics.stanford.edu/~seander/bithacks.html#IntegerLog10
func numDigits(n uint64) int {
	n = max(n, 1)
	t := bits.Len64(n) * 1233 >> 12
	if n < pow10[t] {
		t--
	}
	return t + 1
}

// intLen returns the length of the decimal representation of v,
// including a minus sign if needed.
func intLen(v int) int {
	if v < 0 {
		return 1 + numDigits(uint64(-int64(v)))
	}
	return numDigits(uint64(v))
}

// PathLen returns the length in bytes of the SVG path string for the
// current outline.  This is the number of bytes written by AppendPath,
// and WritePath needs a buffer of PathLen()+1 bytes to avoid truncation.
func (o *Outliner) PathLen() int {
	return pathLen(o.Segments())
}

func pathLen(segs []Segment) int {
	if len(segs) == 0 {
		return 0
	}

	n := 1 // final "z"
	for i, s := range segs {
		switch s.Kind {
		case Start:
			if i > 0 {
				n++ // "z"
			}
			n += 2 + intLen(s.X) + intLen(s.Y) // "M" x "," y
		case Horizontal:
			n += 1 + intLen(s.X)
		case Vertical:
			n += 1 + intLen(s.Y)
		}
	}
	return n
}

// writeSegments produces the SVG path string for segs in pieces and
// passes the pieces to write.  The slice passed to write is only valid
// during the call.
func writeSegments(segs []Segment, write func([]byte)) {
	var tmp [48]byte
	for i, s := range segs {
		b := tmp[:0]
		switch s.Kind {
		case Start:
			if i > 0 {
				b = append(b, 'z')
			}
			b = append(b, 'M')
			b = strconv.AppendInt(b, int64(s.X), 10)
			b = append(b, ',')
			b = strconv.AppendInt(b, int64(s.Y), 10)
		case Horizontal:
			b = append(b, 'h')
			b = strconv.AppendInt(b, int64(s.X), 10)
		case Vertical:
			b = append(b, 'v')
			b = strconv.AppendInt(b, int64(s.Y), 10)
		}
		write(b)
	}
	if len(segs) > 0 {
		write(append(tmp[:0], 'z'))
	}
}

// AppendPath appends the SVG path string for the current outline to dst
// and returns the extended slice.  An empty outline gives an empty
// string.
func (o *Outliner) AppendPath(dst []byte) []byte {
	segs := o.Segments()
	if n := pathLen(segs); cap(dst)-len(dst) < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	writeSegments(segs, func(b []byte) {
		dst = append(dst, b...)
	})
	return dst
}

// String returns the SVG path string for the current outline.
func (o *Outliner) String() string {
	return string(o.AppendPath(nil))
}

// WritePath writes the SVG path string for the current outline into buf,
// followed by a zero byte, and returns the number of bytes written, not
// counting the zero byte.  If buf is too short, the path is truncated to
// len(buf)-1 bytes.  Nothing is written if buf is empty.
func (o *Outliner) WritePath(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	limit := len(buf) - 1
	n := 0
	writeSegments(o.Segments(), func(b []byte) {
		n += copy(buf[n:limit], b)
	})
	buf[n] = 0
	return n
}
