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

// Package contour converts raw glyph contours into closed polylines.
//
// TrueType contours consist of on-curve points and off-curve control
// points.  Two consecutive off-curve points imply an on-curve point at
// their midpoint.  Every resulting quadratic Bézier segment is replaced by
// straight line segments, such that the polyline stays within a given
// tolerance of the curve.
package contour

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/outline"
)

// DefaultTolerance is the default maximal distance, in font units, between
// a curve and the polyline approximating it.
const DefaultTolerance = 0.5

// duplicateThreshold is the distance below which consecutive polyline
// vertices are merged.
const duplicateThreshold = 1e-9

// Polyline is a closed polygon.  The last vertex is implicitly connected
// to the first one; the first vertex is not repeated at the end.
type Polyline []vec.Vec2

// DegenerateContourError is returned for contours with fewer than two
// distinct points.
type DegenerateContourError struct {
	Rune    rune
	Contour int // index of the contour within the glyph
	Points  int // number of points found
}

func (e *DegenerateContourError) Error() string {
	return fmt.Sprintf("contour: glyph %q: contour %d has %d point(s)",
		e.Rune, e.Contour, e.Points)
}

// Reconstruct converts the outline of a glyph into closed polylines, one
// for each contour.  The result is in font units.  An empty outline gives
// an empty result and no error.
//
// If tol is not positive, DefaultTolerance is used.
func Reconstruct(o *outline.Outline, tol float64) ([]Polyline, error) {
	if o.IsEmpty() {
		return nil, nil
	}
	if o.Path != nil {
		return FromPath(o.Rune, o.Path, tol)
	}

	res := make([]Polyline, 0, len(o.Contours))
	for i, c := range o.Contours {
		poly, err := resolve(o.Rune, i, c, tol)
		if err != nil {
			return nil, err
		}
		res = append(res, poly)
	}
	return res, nil
}

// FromRaw converts contours given in the flat layout of the TrueType glyf
// table: all points of the glyph in one array, and the index of the last
// point of every contour in endPts.
func FromRaw(r rune, points []outline.Point, endPts []int, tol float64) ([]Polyline, error) {
	res := make([]Polyline, 0, len(endPts))
	start := 0
	for i, end := range endPts {
		if end >= len(points) {
			return nil, &outline.MalformedGlyphError{
				Rune:   r,
				Reason: fmt.Sprintf("end point %d of contour %d is out of range", end, i),
			}
		}
		if end < start-1 {
			return nil, &outline.MalformedGlyphError{
				Rune:   r,
				Reason: fmt.Sprintf("end points are not increasing at contour %d", i),
			}
		}
		poly, err := resolve(r, i, points[start:end+1], tol)
		if err != nil {
			return nil, err
		}
		res = append(res, poly)
		start = end + 1
	}
	return res, nil
}

// resolve turns one contour into a polyline.
func resolve(r rune, idx int, c []outline.Point, tol float64) (Polyline, error) {
	n := len(c)
	if n < 2 {
		return nil, &DegenerateContourError{Rune: r, Contour: idx, Points: n}
	}
	f := newFlattener(tol)

	// Find an on-curve point to start from.  If there is none, the
	// midpoint between the last and the first point is on the curve.
	first := -1
	for i, p := range c {
		if p.OnCurve {
			first = i
			break
		}
	}
	var start vec.Vec2
	var walk []outline.Point
	if first >= 0 {
		start = toVec(c[first])
		walk = make([]outline.Point, 0, n-1)
		walk = append(walk, c[first+1:]...)
		walk = append(walk, c[:first]...)
	} else {
		start = mid(toVec(c[n-1]), toVec(c[0]))
		walk = c
	}

	res := Polyline{start}
	emit := func(p vec.Vec2) {
		res = append(res, p)
	}

	current := start
	var ctrl vec.Vec2
	hasCtrl := false
	for _, p := range walk {
		pt := toVec(p)
		switch {
		case p.OnCurve && hasCtrl:
			f.quadratic(current, ctrl, pt, emit)
			current = pt
			hasCtrl = false
		case p.OnCurve:
			emit(pt)
			current = pt
		case hasCtrl:
			implied := mid(ctrl, pt)
			f.quadratic(current, ctrl, implied, emit)
			current = implied
			ctrl = pt
		default:
			ctrl = pt
			hasCtrl = true
		}
	}
	if hasCtrl {
		f.quadratic(current, ctrl, start, emit)
	}

	res = dedup(res)
	if len(res) < 2 {
		return nil, &DegenerateContourError{Rune: r, Contour: idx, Points: len(res)}
	}
	return res, nil
}

// dedup removes consecutive duplicate vertices, including a final vertex
// which repeats the first one.
func dedup(p Polyline) Polyline {
	if len(p) == 0 {
		return p
	}
	res := make(Polyline, 1, len(p))
	res[0] = p[0]
	for _, v := range p[1:] {
		if v.Sub(res[len(res)-1]).Length() >= duplicateThreshold {
			res = append(res, v)
		}
	}
	for len(res) > 1 && res[len(res)-1].Sub(res[0]).Length() < duplicateThreshold {
		res = res[:len(res)-1]
	}
	return res
}

func toVec(p outline.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

// flattener approximates Bézier curves by line segments.
type flattener struct {
	tol float64
}

func newFlattener(tol float64) flattener {
	if !(tol > 0) || math.IsInf(tol, 1) {
		tol = DefaultTolerance
	}
	return flattener{tol: tol}
}

// quadratic flattens the quadratic Bézier curve with start point p0,
// control point p1 and end point p2.  The start point is not emitted.
func (f flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// The distance between the curve and a chord spanning a parameter
	// interval of length 1/n is at most |p0 - 2p1 + p2| / (4n²).
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > f.tol {
		n = int(math.Ceil(math.Sqrt(dev / f.tol)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubic flattens the cubic Bézier curve p0, p1, p2, p3 using Wang's
// formula.  The start point is not emitted.
func (f flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.tol)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t)))
	}
}
