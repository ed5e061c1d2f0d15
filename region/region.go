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

// Package region groups the closed polylines of a glyph into planar
// regions, each consisting of one outer boundary and zero or more holes.
//
// Assembly runs in two passes.  First every contour is classified as an
// outer boundary or a hole, using the sign of its area and the winding
// convention of the font.  Then every hole is assigned to the smallest
// outer boundary which contains it.
package region

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/contour"
)

const (
	// minArea is the smallest absolute area of a contour which is kept.
	minArea = 1e-9

	// edgeEpsilon is the distance below which a point counts as lying on
	// a polygon edge.
	edgeEpsilon = 1e-9

	// collinearEpsilon bounds the sine of the angle at a vertex which is
	// removed as collinear.
	collinearEpsilon = 1e-12
)

// Region is a planar region bounded by one outer polygon, with zero or
// more holes removed.
//
// The outer boundary is oriented counter-clockwise and holes are oriented
// clockwise, so that the region is always to the left of each edge.
type Region struct {
	Outer contour.Polyline
	Holes []contour.Polyline
}

// Area returns the area of the region, with the holes subtracted.
func (r Region) Area() float64 {
	a := math.Abs(SignedArea(r.Outer))
	for _, h := range r.Holes {
		a -= math.Abs(SignedArea(h))
	}
	return a
}

// Bounds returns the bounding box of the outer boundary.
func (r Region) Bounds() rect.Rect {
	return bounds(r.Outer)
}

// NumVertices returns the total number of vertices of the outer boundary
// and all holes.
func (r Region) NumVertices() int {
	n := len(r.Outer)
	for _, h := range r.Holes {
		n += len(h)
	}
	return n
}

// Transform returns a copy of the region with all vertices mapped by M.
// If M reverses the orientation, the vertex order is reversed so that the
// outer boundary stays counter-clockwise.
func (r Region) Transform(M matrix.Matrix) Region {
	flip := M[0]*M[3]-M[1]*M[2] < 0
	apply := func(p contour.Polyline) contour.Polyline {
		q := make(contour.Polyline, len(p))
		for i, v := range p {
			q[i] = M.Apply(v)
		}
		if flip {
			q = reverse(q)
		}
		return q
	}

	res := Region{Outer: apply(r.Outer)}
	if r.Holes != nil {
		res.Holes = make([]contour.Polyline, len(r.Holes))
		for i, h := range r.Holes {
			res.Holes[i] = apply(h)
		}
	}
	return res
}

// Warning describes a problem which was worked around during assembly.
type Warning struct {
	Rune    rune
	Contour int // index of the affected contour
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("glyph %q: contour %d: %s", w.Rune, w.Contour, w.Message)
}

// SignedArea computes the signed area of a closed polygon using the
// shoelace formula.  The area is positive for counter-clockwise polygons.
func SignedArea(p contour.Polyline) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := p[n-1]
	for _, v := range p {
		sum += prev.X*v.Y - v.X*prev.Y
		prev = v
	}
	return sum / 2
}

// Centroid returns the center of mass of the area enclosed by p.
// For polygons with (almost) zero area, the mean of the vertices is used.
func Centroid(p contour.Polyline) vec.Vec2 {
	a := SignedArea(p)
	if math.Abs(a) < minArea {
		var sum vec.Vec2
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Mul(1 / float64(len(p)))
	}

	var cx, cy float64
	prev := p[len(p)-1]
	for _, v := range p {
		cross := prev.X*v.Y - v.X*prev.Y
		cx += (prev.X + v.X) * cross
		cy += (prev.Y + v.Y) * cross
		prev = v
	}
	return vec.Vec2{X: cx / (6 * a), Y: cy / (6 * a)}
}

func bounds(p contour.Polyline) rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}
