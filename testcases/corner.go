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

// cornerCases contain foreground regions which touch only at a corner.
var cornerCases = []TestCase{
	parse("diagonal",
		"#.",
		".#",
	),
	parse("antidiagonal",
		".#",
		"#.",
	),
	parse("checker3",
		"#.#",
		".#.",
		"#.#",
	),
	parse("cross",
		".#.",
		"#.#",
		".#.",
	),
	parse("diagonal_hole",
		"####",
		"#.##",
		"##.#",
		"####",
	),
	parse("hole_touching_border",
		"###",
		"#.#",
		"##.",
	),
	parse("staggered",
		"##..",
		"##..",
		"..##",
		"..##",
	),
	// a mixture of holes, diagonal contacts and border contacts
	fromValues("mixed6", 6, 6,
		0, 1, 1, 1, 0, 0,
		1, 0, 1, 0, 0, 1,
		1, 1, 0, 0, 1, 1,
		1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 1,
		1, 0, 1, 1, 1, 0,
	),
	fromValues("mixed7", 7, 7,
		1, 1, 0, 1, 0, 1, 1,
		0, 0, 1, 0, 1, 0, 0,
		1, 0, 1, 1, 1, 0, 1,
		1, 1, 0, 0, 0, 1, 1,
		1, 1, 0, 0, 0, 1, 1,
		1, 1, 0, 1, 0, 1, 1,
		1, 1, 0, 1, 0, 1, 1,
	),
	fromValues("checker5x10", 5, 10,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
	),
}
