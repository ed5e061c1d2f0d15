// seehuhn.de/go/glyphsolid - extrude font glyphs into 3D solids
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
	"seehuhn.de/go/glyphsolid/outline"
)

// All contains all test glyphs, organized by category.
var All = map[string][]TestCase{
	"lines":     lines,
	"curves":    curves,
	"holes":     holes,
	"path":      paths,
	"empty":     empty,
	"malformed": malformed,
}

// Font returns a provider for all test glyphs which are assigned to a
// character.  Test glyphs for the same character are resolved in favour
// of the first category in alphabetical order.
func Font() outline.Static {
	font := outline.Static{}
	for _, tc := range Flat() {
		r := tc.Outline.Rune
		if _, seen := font[r]; !seen {
			font[r] = tc.Outline
		}
	}
	return font
}

// Flat returns all test glyphs, sorted by category and then in the order
// of definition.
func Flat() []TestCase {
	var res []TestCase
	for _, cat := range []string{"curves", "empty", "holes", "lines", "malformed", "path"} {
		res = append(res, All[cat]...)
	}
	return res
}
