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

import (
	"slices"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		tc, ok := Find(name)
		if !ok {
			t.Errorf("Find(%q) failed", name)
			continue
		}
		if len(tc.Data) != tc.Width*tc.Height {
			t.Errorf("%s: %d cells for a %dx%d bitmap", name, len(tc.Data), tc.Width, tc.Height)
		}
		for _, c := range tc.Name {
			if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
				t.Errorf("%s: invalid character %q in name", name, c)
				break
			}
		}
	}

	if _, ok := Find("no_such_case"); ok {
		t.Error("Find succeeded for an unknown name")
	}
}

func TestParse(t *testing.T) {
	tc := parse("example", "#.", ".#", "##")
	if tc.Width != 2 || tc.Height != 3 {
		t.Fatalf("size %dx%d, want 2x3", tc.Width, tc.Height)
	}
	if got, want := tc.String(), "#.\n.#\n##\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := tc.Count(); n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}
}

func TestParseRagged(t *testing.T) {
	defer func() {
		if r := recover(); r == nil || !strings.Contains(r.(string), "ragged") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	parse("ragged", "##", "#")
}

func TestRandomDeterministic(t *testing.T) {
	a := random("a", 10, 10, 7, 0.5)
	b := random("b", 10, 10, 7, 0.5)
	if !slices.Equal(a.Data, b.Data) {
		t.Error("same seed gave different bitmaps")
	}
}
