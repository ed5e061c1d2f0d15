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

package contour

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath flattens an outline given as path commands, as used for CFF
// glyphs and composite TrueType glyphs.  Every subpath becomes one closed
// polyline; subpaths are closed implicitly.
//
// A subpath with at least one segment is a contour, and like a contour of
// a simple TrueType glyph it must have two or more distinct points.
// Otherwise a *DegenerateContourError is returned.  A MoveTo without
// segments does not start a contour and is ignored.
//
// If tol is not positive, DefaultTolerance is used.
func FromPath(r rune, p path.Path, tol float64) ([]Polyline, error) {
	f := newFlattener(tol)

	var res []Polyline
	var cur Polyline
	var current, start vec.Vec2
	flush := func() error {
		defer func() { cur = nil }()
		if len(cur) < 2 {
			// no segments
			return nil
		}
		poly := dedup(cur)
		if len(poly) < 2 {
			return &DegenerateContourError{Rune: r, Contour: len(res), Points: len(poly)}
		}
		res = append(res, poly)
		return nil
	}
	emit := func(v vec.Vec2) {
		if cur == nil {
			cur = Polyline{current}
		}
		cur = append(cur, v)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if err := flush(); err != nil {
				return nil, err
			}
			current = pts[0]
			start = current
			cur = Polyline{current}
		case path.CmdLineTo:
			emit(pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			f.quadratic(current, pts[0], pts[1], emit)
			current = pts[1]
		case path.CmdCubeTo:
			f.cubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]
		case path.CmdClose:
			if err := flush(); err != nil {
				return nil, err
			}
			current = start
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return res, nil
}
