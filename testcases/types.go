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

// Package testcases contains named bitmaps for testing and benchmarking
// the outliner.
package testcases

import (
	"maps"
	"slices"
	"strings"
)

// TestCase is a bitmap to trace.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // bitmap width in cells
	Height int    // bitmap height in cells
	Data   []byte // row-major, nonzero is foreground
}

// Count returns the number of foreground cells.
func (tc TestCase) Count() int {
	n := 0
	for _, v := range tc.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// String shows the bitmap using "#" for foreground and "." for
// background cells, one line per row.
func (tc TestCase) String() string {
	var b strings.Builder
	for y := range tc.Height {
		for x := range tc.Width {
			if tc.Data[y*tc.Width+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Find returns the test case with the given full name, of the form
// category_name.
func Find(fullName string) (TestCase, bool) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			if category+"_"+tc.Name == fullName {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}

// Names returns the full names of all test cases, in sorted order.
func Names() []string {
	var names []string
	for category, cases := range All {
		for _, tc := range cases {
			names = append(names, category+"_"+tc.Name)
		}
	}
	slices.Sort(names)
	return names
}

// parse builds a test case from rows of text.  The character '#' marks
// foreground cells, every other character is background.
func parse(name string, rows ...string) TestCase {
	tc := TestCase{
		Name:   name,
		Width:  len(rows[0]),
		Height: len(rows),
	}
	tc.Data = make([]byte, tc.Width*tc.Height)
	for y, row := range rows {
		if len(row) != tc.Width {
			panic("testcases: ragged bitmap " + name)
		}
		for x := range len(row) {
			if row[x] == '#' {
				tc.Data[y*tc.Width+x] = 1
			}
		}
	}
	return tc
}

// fromValues builds a test case from a row-major list of cell values.
func fromValues(name string, width, height int, values ...byte) TestCase {
	if len(values) != width*height {
		panic("testcases: wrong number of values for " + name)
	}
	return TestCase{Name: name, Width: width, Height: height, Data: values}
}
