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

// candidate describes where to look for the arrow following the current
// one, relative to the grid position of the current arrow.
type candidate struct {
	dir    Direction
	dx, dy int
}

// Path modes, used as the second index into transitions.
const (
	outerMode = 0
	innerMode = 1
)

// transitions lists, for every arrow direction and path mode, the
// possible successors of an arrow in order of precedence.  All four
// candidates start at the head of the current arrow.
//
// Entry 0 is the opposite arrow, which ends at the same grid vertex as
// the current one.  It is never part of the current path, but an outer
// path uses it to cross over into an inner path touching the same
// vertex.  Entries 1-3 are the left turn, straight on and right turn
// (outer paths), or the right turn, straight on and left turn (inner
// paths).
var transitions = [5][2][4]candidate{
	Right: {
		{{Left, +1, 0}, {Up, +1, -1}, {Right, +1, 0}, {Down, +1, +1}},
		{{Left, +1, 0}, {Down, +1, +1}, {Right, +1, 0}, {Up, +1, -1}},
	},
	Left: {
		{{Right, -1, 0}, {Down, 0, +1}, {Left, -1, 0}, {Up, 0, -1}},
		{{Right, -1, 0}, {Up, 0, -1}, {Left, -1, 0}, {Down, 0, +1}},
	},
	Down: {
		{{Up, 0, +2}, {Right, 0, +1}, {Down, 0, +2}, {Left, -1, +1}},
		{{Up, 0, +2}, {Left, -1, +1}, {Down, 0, +2}, {Right, 0, +1}},
	},
	Up: {
		{{Down, 0, -2}, {Left, -1, -1}, {Up, 0, -2}, {Right, 0, -1}},
		{{Down, 0, -2}, {Right, 0, -1}, {Up, 0, -2}, {Left, -1, -1}},
	},
}

func pathMode(inner bool) int {
	if inner {
		return innerMode
	}
	return outerMode
}

// classify walks the cycle of arrows starting at (gx, gy) and marks
// every arrow on it as visited.  The whole cycle gets the same inner
// flag: a cycle is inner if its first arrow in raster order points left,
// i.e. if it has foreground above and background below.
//
// Opposite arrows are ignored here, so that two paths which only touch
// at a corner end up in different cycles.  It returns the number of
// arrows on the cycle.
func (g *arrowGrid) classify(gx, gy int) int {
	a := g.at(gx, gy)
	inner := a.dir == Left
	mode := pathMode(inner)

	n := 0
	for a != nil {
		a.visited = true
		a.inner = inner
		n++

		cands := &transitions[a.dir][mode]
		var next *arrow
		for _, c := range cands[1:] {
			xn, yn := gx+c.dx, gy+c.dy
			b := g.at(xn, yn)
			if b.dir == c.dir && !b.visited {
				gx, gy = xn, yn
				next = b
				break
			}
		}
		a = next
	}
	return n
}

// follow searches the arrow following the arrow of direction dir at
// (gx, gy) and returns its position.  The result is nil if the path is
// complete.
//
// In outer mode an unseen inner arrow opposite the current one causes
// the search to continue in inner mode, as seen from the opposite arrow.
// The opposite arrow itself is not consumed.  If an inner search finds
// nothing, it is repeated in outer mode from the same position.  Since
// the opposite of the opposite arrow is the current, already seen
// arrow, at most one crossover can happen per step.
func (g *arrowGrid) follow(dir Direction, inner bool, gx, gy int) (int, int, *arrow) {
search:
	for {
		cands := &transitions[dir][pathMode(inner)]
		for n, c := range cands {
			xn, yn := gx+c.dx, gy+c.dy
			b := g.at(xn, yn)
			if b.dir != c.dir || b.seen {
				continue
			}

			if n == 0 {
				if !inner && b.inner {
					gx, gy = xn, yn
					dir = b.dir
					inner = true
					continue search
				}
				continue
			}
			if b.inner != inner {
				continue
			}
			return xn, yn, b
		}

		if !inner {
			return gx, gy, nil
		}
		inner = false
	}
}

// tracePath follows the path which starts with the arrow at (gx, gy)
// and appends its segments to buf.  Consecutive arrows of the same
// orientation are merged into one run.  The final run, which leads back
// to the start point, is not stored since the close command implies it.
func (g *arrowGrid) tracePath(buf *segmentBuffer, gx, gy int) error {
	a := g.at(gx, gy)
	dir := a.dir
	inner := a.inner

	x, y := realCoords(dir, gx, gy)
	if err := buf.push(Segment{Kind: Start, X: x, Y: y}); err != nil {
		return err
	}

	runDir := dir
	xp, yp := x, y
	for {
		a.seen = true

		var next *arrow
		gx, gy, next = g.follow(dir, inner, gx, gy)
		if next == nil {
			return nil
		}
		a = next
		dir = a.dir
		inner = a.inner

		if dir.IsHorizontal() == runDir.IsHorizontal() {
			continue
		}

		x, y = realCoords(dir, gx, gy)
		seg := Segment{Kind: Vertical, Y: y - yp}
		if runDir.IsHorizontal() {
			seg = Segment{Kind: Horizontal, X: x - xp}
		}
		if err := buf.push(seg); err != nil {
			return err
		}
		xp, yp = x, y
		runDir = dir
	}
}

// searchPaths classifies all arrow cycles and then traces all paths.
// Only rows of horizontal arrows are scanned; every cycle contains at
// least one horizontal arrow.
func (g *arrowGrid) searchPaths(buf *segmentBuffer) (cycles int, err error) {
	for gy := 1; gy < g.rows-1; gy += 2 {
		for gx := 1; gx < g.stride-1; gx++ {
			a := g.at(gx, gy)
			if a.dir != None && !a.visited {
				g.classify(gx, gy)
				cycles++
			}
		}
	}

	for gy := 1; gy < g.rows-1; gy += 2 {
		for gx := 1; gx < g.stride-1; gx++ {
			a := g.at(gx, gy)
			if a.dir != None && !a.seen {
				if err := g.tracePath(buf, gx, gy); err != nil {
					return cycles, err
				}
			}
		}
	}
	return cycles, nil
}
