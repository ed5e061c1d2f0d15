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

// Package testcases provides synthetic glyph outlines for tests.
//
// The outlines use the conventions of real fonts: TrueType glyphs have
// clockwise outer contours and quadratic off-curve points, path based
// glyphs have counter-clockwise outer contours and may use cubic
// segments.  All coordinates are in font units, with 1000 units per em.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/outline"
)

// TestCase is a single test glyph.
type TestCase struct {
	Name    string // lowercase a-z and _ only
	Outline *outline.Outline

	Regions int  // expected number of regions
	Holes   int  // expected total number of holes
	Invalid bool // the outline cannot be converted into a solid
}

// on and off create the points of a TrueType contour.
func on(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y, OnCurve: true}
}

func off(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y}
}

// glyf creates a TrueType style outline.
func glyf(r rune, advance float64, contours ...outline.Contour) *outline.Outline {
	return &outline.Outline{
		Rune:       r,
		Contours:   contours,
		Winding:    outline.Clockwise,
		Advance:    advance,
		HasAdvance: true,
	}
}

// rect returns an axis-aligned rectangle contour.  Clockwise rectangles
// are outer contours in TrueType fonts.
func rect(x0, y0, x1, y1 float64, clockwise bool) outline.Contour {
	if clockwise {
		return outline.Contour{on(x0, y0), on(x0, y1), on(x1, y1), on(x1, y0)}
	}
	return outline.Contour{on(x0, y0), on(x1, y0), on(x1, y1), on(x0, y1)}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
