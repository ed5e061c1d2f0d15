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

package extrude

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/region"
)

// collinearEpsilon is the relative tolerance below which three vertices
// count as collinear.  The orientation of a vertex is compared to the
// product of the lengths of its two edges, so that the test does not
// depend on the scale of the glyph.
const collinearEpsilon = 1e-9

// node is a vertex in the circular list of polygon vertices used for ear
// clipping.  After holes have been bridged into the outer boundary, some
// vertices occur twice in the list.
type node struct {
	i          int // index into the vertex array
	p          vec.Vec2
	prev, next *node
}

// Triangulate splits a region into triangles.  The returned vertices are
// the vertices of the outer boundary, followed by the vertices of all
// holes in order.  Triangles are given as indices into pts and are
// oriented counter-clockwise.
//
// Holes are first joined to the outer boundary by bridges between mutually
// visible vertices, and the resulting polygon is then cut into triangles
// by ear clipping.  No new vertices are introduced.  A vertex which lies
// on the straight line between its neighbours is never cut off, since the
// resulting chord would not match the boundary edges used for the walls.
func Triangulate(reg region.Region) (pts []vec.Vec2, tris [][3]int) {
	pts, tris, _ = triangulate(reg)
	return pts, tris
}

// triangulate is like Triangulate, but also returns the vertex rings which
// form the boundary of the triangulated area: the outer boundary followed
// by every hole which could be bridged.
func triangulate(reg region.Region) ([]vec.Vec2, [][3]int, [][]int) {
	var pts []vec.Vec2
	addRing := func(poly []vec.Vec2) []int {
		ring := make([]int, len(poly))
		for k, p := range poly {
			ring[k] = len(pts)
			pts = append(pts, p)
		}
		return ring
	}

	outer := addRing(reg.Outer)
	if len(outer) < 3 {
		return pts, nil, nil
	}
	holeRings := make([][]int, len(reg.Holes))
	for k, h := range reg.Holes {
		holeRings[k] = addRing(h)
	}

	start := linkRing(pts, outer)

	// Bridge the holes in order of decreasing maximal x-coordinate.  Holes
	// further to the left cannot obstruct the bridges of holes further to
	// the right.
	type holeStart struct {
		ring      int
		rightmost *node
	}
	var queue []holeStart
	for k, ring := range holeRings {
		if len(ring) < 3 {
			continue
		}
		first := linkRing(pts, ring)
		queue = append(queue, holeStart{ring: k, rightmost: rightmost(first)})
	}
	slices.SortStableFunc(queue, func(a, b holeStart) int {
		return -cmp.Compare(a.rightmost.p.X, b.rightmost.p.X)
	})

	rings := [][]int{outer}
	for _, h := range queue {
		bridge := findBridge(h.rightmost, start)
		if bridge == nil {
			continue
		}
		split(bridge, h.rightmost)
		rings = append(rings, holeRings[h.ring])
	}

	tris := earClip(start, len(pts))
	return pts, tris, rings
}

// linkRing creates a circular list for the given vertex ring and returns
// its first node.
func linkRing(pts []vec.Vec2, ring []int) *node {
	var first, last *node
	for _, i := range ring {
		n := &node{i: i, p: pts[i]}
		if first == nil {
			first = n
		} else {
			last.next = n
			n.prev = last
		}
		last = n
	}
	last.next = first
	first.prev = last
	return first
}

func rightmost(start *node) *node {
	best := start
	for n := start.next; n != start; n = n.next {
		if n.p.X > best.p.X || n.p.X == best.p.X && n.p.Y > best.p.Y {
			best = n
		}
	}
	return best
}

// findBridge finds a vertex of the polygon starting at start which is
// visible from the hole vertex m.  The vertex m must be the rightmost
// vertex of its hole.
func findBridge(m *node, start *node) *node {
	mp := m.p

	// Cast a ray from m in direction +x and find the nearest edge it hits.
	// Since the region is to the left of every edge, only edges pointing
	// upwards need to be considered.
	hitX := math.Inf(1)
	var hit *node
	for a := start; ; {
		b := a.next
		if a.p.Y <= mp.Y && mp.Y <= b.p.Y && a.p.Y < b.p.Y {
			x := a.p.X + (mp.Y-a.p.Y)*(b.p.X-a.p.X)/(b.p.Y-a.p.Y)
			if x >= mp.X && x < hitX {
				hitX = x
				switch {
				case x == a.p.X && mp.Y == a.p.Y:
					hit = a
				case x == b.p.X && mp.Y == b.p.Y:
					hit = b
				case a.p.X > b.p.X:
					hit = a
				default:
					hit = b
				}
			}
		}
		a = b
		if a == start {
			break
		}
	}
	if hit == nil {
		return nil
	}
	if hit.p == (vec.Vec2{X: hitX, Y: mp.Y}) {
		return locallyVisible(hit, mp)
	}

	// Vertices inside the triangle formed by m, the intersection point and
	// the candidate may block the view.  Among those, the one with the
	// smallest angle to the ray is visible.
	ip := vec.Vec2{X: hitX, Y: mp.Y}
	best := hit
	bestTan := math.Inf(1)
	for n := start; ; {
		if n != hit && n.p.X > mp.X && n.p.X <= hit.p.X && n.p != hit.p &&
			inTriangle(mp, ip, hit.p, n.p) && locallyInside(n, mp) {
			tan := math.Abs(n.p.Y-mp.Y) / (n.p.X - mp.X)
			if tan < bestTan || tan == bestTan && n.p.X < best.p.X {
				best = n
				bestTan = tan
			}
		}
		n = n.next
		if n == start {
			break
		}
	}
	if best == hit {
		return locallyVisible(hit, mp)
	}
	return best
}

// locallyVisible returns the copy of n, among all list nodes at the same
// position, for which the direction towards p points into the polygon.
func locallyVisible(n *node, p vec.Vec2) *node {
	for c := n; ; {
		if c.p == n.p && locallyInside(c, p) {
			return c
		}
		c = c.next
		if c == n {
			return n
		}
	}
}

// split connects the node a of the outer list with the hole node b.  The
// two lists are merged into one, which runs from a to b, around the hole,
// back to a copy of b and then via a copy of a to the successor of a.
func split(a, b *node) {
	a2 := &node{i: a.i, p: a.p}
	b2 := &node{i: b.i, p: b.p}
	an := a.next
	bp := b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp
}

// earClip triangulates the counter-clockwise polygon given by the circular
// list starting at start.
func earClip(start *node, size int) [][3]int {
	tris := make([][3]int, 0, size)
	emit := func(a, b, c *node) {
		// Triangles with coincident corners have a zero-length edge and
		// can be dropped without leaving a gap.
		if a.p == b.p || b.p == c.p || c.p == a.p {
			return
		}
		tris = append(tris, [3]int{a.i, b.i, c.i})
	}

	ear := start
	count := 1
	for n := start.next; n != start; n = n.next {
		count++
	}

	stop := ear
	pass := 0
	for count > 3 {
		prev, next := ear.prev, ear.next

		var clip bool
		switch pass {
		case 0:
			clip = isEar(ear)
		case 1:
			// remove duplicate vertices and spikes
			clip = ear.p == prev.p || ear.p == next.p || prev.p == next.p
		default:
			// the polygon is not simple; cut off any convex vertex
			clip = isConvex(prev.p, ear.p, next.p)
		}

		if clip {
			emit(prev, ear, next)
			prev.next = next
			next.prev = prev
			count--
			ear = next
			stop = next
			pass = 0
			continue
		}

		ear = next
		if ear == stop {
			pass++
			if pass > 2 {
				break
			}
		}
	}
	if count == 3 {
		emit(ear.prev, ear, ear.next)
	}
	return tris
}

// isEar reports whether the triangle formed by n and its neighbours can be
// cut off the polygon.
func isEar(n *node) bool {
	a, b, c := n.prev.p, n.p, n.next.p
	if !isConvex(a, b, c) {
		return false
	}

	for p := n.next.next; p != n.prev; p = p.next {
		if p.p == a || p.p == b || p.p == c {
			continue
		}
		// Vertices on the boundary of the triangle block the ear as well,
		// even if they are convex.
		if inTriangle(a, b, c, p.p) {
			return false
		}
	}
	return true
}

// locallyInside reports whether the direction from n towards p points into
// the interior of the polygon, near n.
func locallyInside(n *node, p vec.Vec2) bool {
	prev, next := n.prev.p, n.next.p
	if orient(prev, n.p, next) > 0 {
		return orient(n.p, next, p) >= 0 && orient(n.p, p, prev) >= 0
	}
	return orient(n.p, next, p) >= 0 || orient(n.p, p, prev) >= 0
}

// inTriangle reports whether p lies inside or on the boundary of the
// triangle a, b, c.  The orientation of the triangle does not matter.
func inTriangle(a, b, c, p vec.Vec2) bool {
	d1 := orient(a, b, p)
	d2 := orient(b, c, p)
	d3 := orient(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// isConvex reports whether the polygon turns left at b, by more than the
// collinearity tolerance.
func isConvex(a, b, c vec.Vec2) bool {
	o := orient(a, b, c)
	if o <= 0 {
		return false
	}
	return o > collinearEpsilon*b.Sub(a).Length()*c.Sub(b).Length()
}

// orient returns twice the signed area of the triangle a, b, c.  The value
// is positive if the triangle is oriented counter-clockwise.
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
