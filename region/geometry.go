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

package region

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/contour"
)

// location describes the position of a point relative to a polygon.
type location int

const (
	outside location = iota
	inside
	onEdge
)

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// locate determines whether p is inside, outside or on the boundary of the
// closed polygon poly.  The orientation of poly does not matter.
func locate(p vec.Vec2, poly contour.Polyline) location {
	n := len(poly)
	in := false
	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		if distToSegment(p, a, b) < edgeEpsilon {
			return onEdge
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	if in {
		return inside
	}
	return outside
}

// Contains reports whether p lies in the interior of the region.
// Points on the boundary are not contained.
func (r Region) Contains(p vec.Vec2) bool {
	if locate(p, r.Outer) != inside {
		return false
	}
	for _, h := range r.Holes {
		if locate(p, h) != outside {
			return false
		}
	}
	return true
}

func distToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// polylinesIntersect reports whether any edge of a touches or crosses any
// edge of b.
func polylinesIntersect(a, b contour.Polyline) bool {
	na, nb := len(a), len(b)
	for i := range na {
		a0, a1 := a[i], a[(i+1)%na]
		for j := range nb {
			if segmentsIntersect(a0, a1, b[j], b[(j+1)%nb]) {
				return true
			}
		}
	}
	return false
}

// segmentsIntersect reports whether the closed segments p0-p1 and q0-q1
// have a point in common.
func segmentsIntersect(p0, p1, q0, q1 vec.Vec2) bool {
	d1 := orient(q0, q1, p0)
	d2 := orient(q0, q1, p1)
	d3 := orient(p0, p1, q0)
	d4 := orient(p0, p1, q1)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return d1 == 0 && onSegment(q0, q1, p0) ||
		d2 == 0 && onSegment(q0, q1, p1) ||
		d3 == 0 && onSegment(p0, p1, q0) ||
		d4 == 0 && onSegment(p0, p1, q1)
}

// orient returns a positive value if c lies to the left of the directed
// line a-b, a negative value if it lies to the right, and zero if the
// three points are collinear.
func orient(a, b, c vec.Vec2) float64 {
	return cross(b.Sub(a), c.Sub(a))
}

// onSegment reports whether c, known to be collinear with a and b, lies
// within the bounding box of the segment a-b.
func onSegment(a, b, c vec.Vec2) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}
