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
	"math"
	"strconv"
	"testing"

	"seehuhn.de/go/outline/testcases"
)

func TestNumDigits(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 11, 99, 100, 101, 999, 1000,
		123456789, 1<<32 - 1, 1 << 32, 9999999999999999999, math.MaxUint64}
	for i := range 19 {
		values = append(values, pow10[i]-1, pow10[i], pow10[i]+1)
	}
	for _, n := range values {
		want := len(strconv.FormatUint(n, 10))
		if got := numDigits(n); got != want {
			t.Errorf("numDigits(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestIntLen(t *testing.T) {
	values := []int{0, 1, -1, 9, -9, 10, -10, 65535, -65536,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		want := len(strconv.Itoa(v))
		if got := intLen(v); got != want {
			t.Errorf("intLen(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestPathLen(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase) {
		o := trace(t, tc)
		s := o.String()
		if n := o.PathLen(); n != len(s) {
			t.Errorf("PathLen() = %d, but the path has %d bytes", n, len(s))
		}

		buf := make([]byte, o.PathLen()+1)
		for i := range buf {
			buf[i] = 0xff
		}
		n := o.WritePath(buf)
		if n != len(s) || string(buf[:n]) != s || buf[n] != 0 {
			t.Errorf("WritePath wrote %q (n=%d), want %q", buf[:n], n, s)
		}
	})
}

func TestPathLenLarge(t *testing.T) {
	segs := []Segment{
		{Kind: Start, X: 12345, Y: 678},
		{Kind: Horizontal, X: -100000},
		{Kind: Vertical, Y: 99},
		{Kind: Start, X: 0, Y: 0},
		{Kind: Vertical, Y: -1},
	}
	want := "M12345,678h-100000v99zM0,0v-1z"

	var got []byte
	writeSegments(segs, func(b []byte) { got = append(got, b...) })
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := pathLen(segs); n != len(want) {
		t.Errorf("pathLen = %d, want %d", n, len(want))
	}
}

func TestWritePathTruncation(t *testing.T) {
	tc, _ := testcases.Find("nested_ring")
	o := trace(t, tc)
	full := o.String()

	for size := 0; size <= len(full)+2; size++ {
		buf := make([]byte, size)
		n := o.WritePath(buf)

		wantN := min(len(full), max(size-1, 0))
		if n != wantN {
			t.Errorf("size %d: wrote %d bytes, want %d", size, n, wantN)
			continue
		}
		if string(buf[:n]) != full[:n] {
			t.Errorf("size %d: wrote %q, want prefix of %q", size, buf[:n], full)
		}
		if size > 0 && buf[n] != 0 {
			t.Errorf("size %d: missing terminator", size)
		}
	}
}

func TestAppendPath(t *testing.T) {
	tc, _ := testcases.Find("basic_single")
	o := trace(t, tc)

	got := o.AppendPath([]byte("d=\""))
	got = append(got, '"')
	if want := "d=\"M0,0h1v1h-1z\""; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
