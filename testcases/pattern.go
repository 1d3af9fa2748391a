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
package testcases

import "math/rand/v2"

var patternCases = []TestCase{
	checkerboard("checker8", 8, 8),
	checkerboard("checker_odd", 9, 5),
	random("random_sparse", 16, 16, 1, 0.2),
	random("random_half", 16, 16, 2, 0.5),
	random("random_dense", 16, 16, 3, 0.8),
	random("random_wide", 40, 7, 4, 0.5),
	rings("rings", 4),
}

// checkerboard returns a bitmap where every second cell is foreground,
// starting with a foreground cell in the top left corner.
func checkerboard(name string, width, height int) TestCase {
	tc := TestCase{Name: name, Width: width, Height: height}
	tc.Data = make([]byte, width*height)
	for y := range height {
		for x := range width {
			if (x+y)%2 == 0 {
				tc.Data[y*width+x] = 1
			}
		}
	}
	return tc
}

// random returns a bitmap where each cell is foreground with
// probability p.  The same seed always gives the same bitmap.
func random(name string, width, height int, seed uint64, p float64) TestCase {
	rng := rand.New(rand.NewPCG(seed, 0x6f75746c696e65))
	tc := TestCase{Name: name, Width: width, Height: height}
	tc.Data = make([]byte, width*height)
	for i := range tc.Data {
		if rng.Float64() < p {
			tc.Data[i] = 1
		}
	}
	return tc
}

// rings returns n concentric square rings, separated by one cell of
// background, with a single foreground cell in the centre.
func rings(name string, n int) TestCase {
	size := 4*n + 1
	tc := TestCase{Name: name, Width: size, Height: size}
	tc.Data = make([]byte, size*size)
	c := 2 * n
	for y := range size {
		for x := range size {
			d := max(abs(x-c), abs(y-c)) // Chebyshev distance from the centre
			if d%2 == 0 {
				tc.Data[y*size+x] = 1
			}
		}
	}
	return tc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
