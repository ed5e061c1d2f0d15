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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/glyphsolid/outline"
)

var lines = []TestCase{
	{
		Name: "letter_l",
		Outline: glyf('L', 550, outline.Contour{
			on(100, 0), on(100, 700), on(200, 700),
			on(200, 100), on(500, 100), on(500, 0),
		}),
		Regions: 1,
	},
	{
		Name: "letter_v",
		Outline: glyf('V', 700, outline.Contour{
			on(300, 0), on(0, 700), on(100, 700),
			on(350, 120), on(600, 700), on(700, 700), on(400, 0),
		}),
		Regions: 1,
	},
	{
		Name: "two_parts",
		Outline: glyf('i', 300,
			rect(100, 0, 200, 500, true),
			rect(100, 600, 200, 700, true),
		),
		Regions: 2,
	},
	{
		Name: "collinear_points",
		Outline: glyf('I', 300, outline.Contour{
			on(100, 0), on(100, 350), on(100, 700),
			on(200, 700), on(200, 700), on(200, 0),
		}),
		Regions: 1,
	},
}

var curves = []TestCase{
	{
		Name: "letter_o",
		Outline: glyf('O', 700,
			outline.Contour{
				on(50, 350), off(50, 650), on(350, 650), off(650, 650),
				on(650, 350), off(650, 50), on(350, 50), off(50, 50),
			},
			outline.Contour{
				on(150, 350), off(150, 150), on(350, 150), off(550, 150),
				on(550, 350), off(550, 550), on(350, 550), off(150, 550),
			},
		),
		Regions: 1,
		Holes:   1,
	},
	{
		Name: "letter_d",
		Outline: glyf('D', 700,
			outline.Contour{
				on(100, 0), on(100, 700), on(350, 700), off(650, 700),
				on(650, 350), off(650, 0), on(350, 0),
			},
			outline.Contour{
				on(200, 100), on(350, 100), off(550, 100), on(550, 350),
				off(550, 600), on(350, 600), on(200, 600),
			},
		),
		Regions: 1,
		Holes:   1,
	},
	{
		// Only control points, every on-curve point is implied.
		Name: "off_curve_only",
		Outline: glyf('o', 700, outline.Contour{
			off(50, 350), off(350, 650), off(650, 350), off(350, 50),
		}),
		Regions: 1,
	},
}

var holes = []TestCase{
	{
		Name: "two_holes",
		Outline: glyf('B', 500,
			rect(0, 0, 400, 700, true),
			rect(100, 100, 300, 300, false),
			rect(100, 400, 300, 600, false),
		),
		Regions: 1,
		Holes:   2,
	},
	{
		Name: "nested_outer",
		Outline: glyf('@', 1000,
			rect(0, 0, 900, 900, true),
			rect(100, 100, 800, 800, false),
			rect(300, 300, 600, 600, true),
			rect(400, 400, 500, 500, false),
		),
		Regions: 2,
		Holes:   2,
	},
}

// A square with a rounded right side and a square hole, in the style of a
// CFF font.
var paths = []TestCase{
	{
		Name: "cubic",
		Outline: &outline.Outline{
			Rune: 'P',
			Path: (&path.Data{}).
				MoveTo(pt(0, 0)).
				LineTo(pt(500, 0)).
				CubeTo(pt(650, 150), pt(650, 350), pt(500, 500)).
				LineTo(pt(0, 500)).
				Close().
				MoveTo(pt(150, 150)).
				LineTo(pt(150, 350)).
				LineTo(pt(350, 350)).
				LineTo(pt(350, 150)).
				Close().
				Iter(),
			Winding:    outline.CounterClockwise,
			Advance:    700,
			HasAdvance: true,
		},
		Regions: 1,
		Holes:   1,
	},
}

var empty = []TestCase{
	{
		Name:    "space",
		Outline: glyf(' ', 250),
	},
}

var malformed = []TestCase{
	{
		Name: "overlapping_holes",
		Outline: glyf('#', 700,
			rect(0, 0, 600, 600, true),
			rect(100, 100, 300, 300, false),
			rect(200, 200, 400, 400, false),
		),
		Invalid: true,
	},
	{
		Name: "single_point",
		Outline: glyf('.', 300,
			rect(100, 0, 200, 100, true),
			outline.Contour{on(150, 300)},
		),
		Invalid: true,
	},
}
