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
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/outline"
)

// classified is a contour after the first pass of Assemble.
type classified struct {
	index int // position in the input
	poly  contour.Polyline
	area  float64 // absolute area
}

// Assemble groups the polylines of one glyph into regions.
//
// A polyline whose orientation agrees with winding is an outer boundary,
// all other polylines are holes.  Polylines with (almost) zero area are
// dropped.  Every hole is assigned to the smallest outer boundary which
// contains it; holes outside of all outer boundaries become outer
// boundaries themselves.  Regions are returned in the input order of
// their outer boundaries.
//
// If a hole cannot be placed unambiguously, it is assigned to the outer
// boundary with the nearest centroid and a Warning is returned.  If two
// holes of the same region intersect, or one contains the other, an
// *outline.MalformedGlyphError is returned.
func Assemble(r rune, polys []contour.Polyline, winding outline.Winding) ([]Region, []Warning, error) {
	outers, holes := classify(polys, winding)

	assignment, orphans, warnings := assign(r, outers, holes)

	// Holes without an enclosing outer boundary are disjoint glyph parts.
	for _, h := range orphans {
		h.poly = reverse(h.poly)
		outers = append(outers, h)
	}
	order := make([]int, len(outers))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(outers[a].index, outers[b].index)
	})

	res := make([]Region, 0, len(outers))
	for _, i := range order {
		reg := Region{Outer: outers[i].poly}
		for _, h := range assignment[i] {
			reg.Holes = append(reg.Holes, h.poly)
		}
		if err := validate(r, reg); err != nil {
			return nil, warnings, err
		}
		res = append(res, reg)
	}
	return res, warnings, nil
}

// classify sorts the polylines into outer boundaries and holes.  Outer
// boundaries are returned counter-clockwise, holes clockwise.
func classify(polys []contour.Polyline, winding outline.Winding) (outers, holes []classified) {
	for i, p := range polys {
		p = simplify(p)
		a := SignedArea(p)
		if math.Abs(a) < minArea {
			continue
		}

		ccw := a > 0
		isOuter := ccw == (winding == outline.CounterClockwise)
		if isOuter != ccw {
			p = reverse(p)
		}

		c := classified{index: i, poly: p, area: math.Abs(a)}
		if isOuter {
			outers = append(outers, c)
		} else {
			holes = append(holes, c)
		}
	}
	return outers, holes
}

// assign finds the outer boundary for every hole.  The result maps the
// index of an outer boundary to its holes.  Holes which are not contained
// in any outer boundary are returned as orphans.
func assign(r rune, outers, holes []classified) (map[int][]classified, []classified, []Warning) {
	assignment := make(map[int][]classified)
	var orphans []classified
	var warnings []Warning

	for _, h := range holes {
		best := -1
		ambiguous := false
		for i, o := range outers {
			if o.area <= h.area || !overlaps(bounds(o.poly), bounds(h.poly)) {
				continue
			}
			loc := locate(h.poly[0], o.poly)
			if loc == onEdge {
				loc = locate(Centroid(h.poly), o.poly)
			}
			switch loc {
			case inside:
				if best < 0 || o.area < outers[best].area {
					best = i
				}
			case onEdge:
				ambiguous = true
			}
		}

		switch {
		case best >= 0:
			assignment[best] = append(assignment[best], h)
		case ambiguous:
			best = nearest(Centroid(h.poly), outers)
			assignment[best] = append(assignment[best], h)
			warnings = append(warnings, Warning{
				Rune:    r,
				Contour: h.index,
				Message: fmt.Sprintf("ambiguous hole assigned to the nearest outer contour %d",
					outers[best].index),
			})
		default:
			orphans = append(orphans, h)
		}
	}
	return assignment, orphans, warnings
}

func nearest(p vec.Vec2, outers []classified) int {
	best := -1
	bestDist := math.Inf(1)
	for i, o := range outers {
		if d := Centroid(o.poly).Sub(p).Length(); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// validate checks that the holes of a region are pairwise disjoint.
func validate(r rune, reg Region) error {
	for i, a := range reg.Holes {
		ba := bounds(a)
		for j := i + 1; j < len(reg.Holes); j++ {
			b := reg.Holes[j]
			if !overlaps(ba, bounds(b)) {
				continue
			}
			if polylinesIntersect(a, b) {
				return &outline.MalformedGlyphError{
					Rune:   r,
					Reason: fmt.Sprintf("holes %d and %d of the same region intersect", i, j),
				}
			}
			if locate(a[0], b) == inside || locate(b[0], a) == inside {
				return &outline.MalformedGlyphError{
					Rune:   r,
					Reason: fmt.Sprintf("holes %d and %d of the same region are nested", i, j),
				}
			}
		}
	}
	return nil
}

// simplify removes consecutive duplicate vertices and vertices where the
// boundary does not change direction.
func simplify(p contour.Polyline) contour.Polyline {
	res := slices.Clone(p)
	for changed := true; changed && len(res) >= 3; {
		changed = false
		n := len(res)
		for i := 0; i < n && n >= 3; i++ {
			prev := res[(i+n-1)%n]
			next := res[(i+1)%n]
			a := res[i].Sub(prev)
			b := next.Sub(res[i])
			la, lb := a.Length(), b.Length()
			if la < edgeEpsilon || lb < edgeEpsilon ||
				math.Abs(cross(a, b)) <= collinearEpsilon*la*lb {
				res = slices.Delete(res, i, i+1)
				n--
				i--
				changed = true
			}
		}
	}
	return res
}

// reverse returns a copy of p with the opposite orientation.  The first
// vertex stays in place.
func reverse(p contour.Polyline) contour.Polyline {
	n := len(p)
	q := make(contour.Polyline, n)
	for i := range n {
		q[i] = p[(n-i)%n]
	}
	return q
}
