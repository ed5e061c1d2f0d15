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

// Package outline describes raw glyph outlines as they are stored in a font,
// and provides access to the outlines of an sfnt font file.
//
// An [Outline] is a list of contours. Each contour is a sequence of points
// in font units, where every point is either on the curve or a control
// point of a quadratic Bézier segment (TrueType convention). Glyphs which
// are not available in this form (CFF outlines, composite glyphs) carry a
// [path.Path] instead.
package outline

import (
	"seehuhn.de/go/geom/path"
)

// Point is a point of a glyph contour, in font units.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Contour is a closed sequence of points.  The last point is implicitly
// connected to the first one.
type Contour []Point

// Winding gives the orientation used by a font for outer contours.
// Contours with the opposite orientation are holes.
type Winding int

const (
	// Clockwise is used by TrueType (glyf) outlines.
	Clockwise Winding = iota

	// CounterClockwise is used by CFF and Type 1 outlines.
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Outline is the raw outline of a single glyph.
type Outline struct {
	// Rune is the character this outline was requested for.
	Rune rune

	// Contours holds the point/flag data of a simple glyph.
	Contours []Contour

	// Path is set instead of Contours for glyphs whose outline is only
	// available as a sequence of path commands.
	Path path.Path

	// Winding is the orientation of outer contours.
	Winding Winding

	// Advance is the horizontal advance width in font units.
	// It is only meaningful if HasAdvance is set.
	Advance    float64
	HasAdvance bool
}

// IsEmpty reports whether the outline has no geometry at all, as is the
// case for the space character.
func (o *Outline) IsEmpty() bool {
	return o == nil || (len(o.Contours) == 0 && o.Path == nil)
}

// Raw returns the contours as one flat point array, together with the
// index of the last point of every contour.  This is the layout used by
// the TrueType glyf table.
func (o *Outline) Raw() (points []Point, endPts []int) {
	for _, c := range o.Contours {
		points = append(points, c...)
		endPts = append(endPts, len(points)-1)
	}
	return points, endPts
}

// Provider gives access to the glyph outlines of a font.
//
// Implementations must be safe for concurrent use.  The returned outline
// must not be modified by the caller.
type Provider interface {
	Outline(r rune) (*Outline, error)
}
