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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/region"
)

func box(x0, y0, x1, y1 float64) contour.Polyline {
	return contour.Polyline{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func clockwiseBox(x0, y0, x1, y1 float64) contour.Polyline {
	return contour.Polyline{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
}

// regular returns a regular polygon with n corners.
func regular(cx, cy, r float64, n int, clockwise bool) contour.Polyline {
	p := make(contour.Polyline, n)
	for i := range p {
		phi := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			phi = -phi
		}
		p[i] = vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	return p
}

var (
	shapeL = region.Region{Outer: contour.Polyline{
		{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 60, Y: 20},
		{X: 20, Y: 20}, {X: 20, Y: 100}, {X: 0, Y: 100},
	}}
	shapeV = region.Region{Outer: contour.Polyline{
		{X: 0, Y: 100}, {X: 40, Y: 0}, {X: 60, Y: 0}, {X: 100, Y: 100},
		{X: 80, Y: 100}, {X: 50, Y: 25}, {X: 20, Y: 100},
	}}
	shapeO = region.Region{
		Outer: box(0, 0, 100, 100),
		Holes: []contour.Polyline{clockwiseBox(25, 25, 75, 75)},
	}
	shape8 = region.Region{
		Outer: box(0, 0, 100, 200),
		Holes: []contour.Polyline{
			clockwiseBox(25, 25, 75, 75),
			clockwiseBox(25, 125, 75, 175),
		},
	}
	shapeRing = region.Region{
		Outer: regular(0, 0, 100, 64, false),
		Holes: []contour.Polyline{regular(10, 0, 50, 32, true)},
	}
	shapeHoles = region.Region{
		Outer: box(0, 0, 300, 100),
		Holes: []contour.Polyline{
			clockwiseBox(10, 10, 90, 90),
			regular(150, 50, 30, 12, true),
			clockwiseBox(210, 40, 290, 60),
		},
	}
)

func TestTriangulateArea(t *testing.T) {
	cases := []struct {
		name string
		reg  region.Region
	}{
		{"L", shapeL},
		{"V", shapeV},
		{"O", shapeO},
		{"8", shape8},
		{"ring", shapeRing},
		{"holes", shapeHoles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts, tris := Triangulate(tc.reg)
			if len(pts) != tc.reg.NumVertices() {
				t.Errorf("got %d vertices, want %d", len(pts), tc.reg.NumVertices())
			}

			var area float64
			for _, tri := range tris {
				for _, i := range tri {
					if i < 0 || i >= len(pts) {
						t.Fatalf("invalid vertex index %d", i)
					}
				}
				a := orient(pts[tri[0]], pts[tri[1]], pts[tri[2]]) / 2
				if a <= 0 {
					t.Errorf("triangle %v has area %g", tri, a)
				}
				area += a
			}

			want := tc.reg.Area()
			if math.Abs(area-want) > 1e-9*want {
				t.Errorf("triangulated area %g, want %g", area, want)
			}

			wantTris := tc.reg.NumVertices() + 2*len(tc.reg.Holes) - 2
			if len(tris) != wantTris {
				t.Errorf("got %d triangles, want %d", len(tris), wantTris)
			}
		})
	}
}

func TestSimpleFaceCount(t *testing.T) {
	for _, reg := range []region.Region{shapeL, shapeV} {
		n := len(reg.Outer)
		m, err := Extrude([]region.Region{reg}, 5)
		if err != nil {
			t.Fatal(err)
		}

		want := 2*(n-2) + 2*n
		if len(m.Faces) != want {
			t.Errorf("got %d faces, want %d", len(m.Faces), want)
		}
		if !m.IsClosed() {
			t.Errorf("mesh is not closed: %v", m.BoundaryEdges())
		}
		if d := m.DegenerateFaces(1e-9); len(d) != 0 {
			t.Errorf("degenerate faces %v", d)
		}
	}
}

func TestClosedWithHoles(t *testing.T) {
	for _, reg := range []region.Region{shapeO, shape8, shapeRing, shapeHoles} {
		m, err := Extrude([]region.Region{reg}, 3)
		if err != nil {
			t.Fatal(err)
		}
		if !m.IsClosed() {
			t.Errorf("mesh is not closed: %v", m.BoundaryEdges())
		}
		_, tris := Triangulate(reg)
		want := 2*len(tris) + 2*reg.NumVertices()
		if len(m.Faces) != want {
			t.Errorf("got %d faces, want %d", len(m.Faces), want)
		}
		if v, want := m.Volume(), 3*reg.Area(); math.Abs(v-want) > 1e-9*want {
			t.Errorf("volume %g, want %g", v, want)
		}
	}
}

func TestHoleReducesVolume(t *testing.T) {
	solid, err := Extrude([]region.Region{{Outer: shapeO.Outer}}, 5)
	if err != nil {
		t.Fatal(err)
	}
	withHole, err := Extrude([]region.Region{shapeO}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if withHole.Volume() >= solid.Volume() {
		t.Errorf("hole does not reduce the volume: %g >= %g",
			withHole.Volume(), solid.Volume())
	}
}

func TestLinearHeight(t *testing.T) {
	for _, h := range []float64{0.5, 1, 5, 17.25} {
		m1, err := Extrude([]region.Region{shapeRing}, h)
		if err != nil {
			t.Fatal(err)
		}
		m2, err := Extrude([]region.Region{shapeRing}, 2*h)
		if err != nil {
			t.Fatal(err)
		}
		v1, v2 := m1.Volume(), m2.Volume()
		if math.Abs(v2-2*v1) > 1e-9*v2 {
			t.Errorf("h=%g: volumes %g and %g are not proportional", h, v1, v2)
		}
	}
}

func TestOrientation(t *testing.T) {
	m, err := Extrude([]region.Region{shapeO}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.Volume() <= 0 {
		t.Error("faces are oriented inwards")
	}
	b := m.Bounds()
	if b.Min.Z != 0 || b.Max.Z != 2 {
		t.Errorf("wrong z-range %g to %g", b.Min.Z, b.Max.Z)
	}
}

func TestMultipleRegions(t *testing.T) {
	regs := []region.Region{
		{Outer: box(0, 0, 10, 10)},
		{Outer: box(0, 20, 10, 25)},
	}
	m, err := Extrude(regs, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsClosed() {
		t.Error("mesh is not closed")
	}
	if v := m.Volume(); math.Abs(v-150) > 1e-9 {
		t.Errorf("volume %g, want 150", v)
	}
	if len(m.Vertices) != 16 {
		t.Errorf("got %d vertices, want 16", len(m.Vertices))
	}
}

func TestInvalidHeight(t *testing.T) {
	for _, h := range []float64{0, -1, math.Inf(-1), math.Inf(1), math.NaN()} {
		_, err := Extrude([]region.Region{shapeL}, h)
		var heightErr *InvalidExtrusionHeightError
		if !errors.As(err, &heightErr) {
			t.Errorf("height %g: expected InvalidExtrusionHeightError, got %v", h, err)
			continue
		}
		if !math.IsNaN(h) && heightErr.Height != h {
			t.Errorf("error reports height %g, want %g", heightErr.Height, h)
		}
	}
}

func TestNoRegions(t *testing.T) {
	m, err := Extrude(nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsEmpty() {
		t.Errorf("got %d faces for empty input", len(m.Faces))
	}
}

// slantedE is an italic "E" whose stem edge has slope 5.  The vertices
// where the arms meet the stem are collinear, but only become neighbours
// once the arms have been cut off.
func slantedE() contour.Polyline {
	stem := func(y float64) vec.Vec2 { return vec.Vec2{X: 100 + y/5, Y: y} }
	return contour.Polyline{
		{X: 0, Y: 0},
		{X: 500, Y: 0},
		{X: 520, Y: 100},
		stem(100),
		stem(450),
		{X: 490, Y: 450},
		{X: 500, Y: 550},
		stem(550),
		stem(900),
		{X: 580, Y: 900},
		{X: 600, Y: 1000},
		{X: 200, Y: 1000},
	}
}

func TestCollinearAfterClipping(t *testing.T) {
	const height = 5
	for _, scale := range []float64{1, 0.03, 0.01, 1.0 / 3, 0.7, 17.1} {
		reg := region.Region{Outer: slantedE()}.Transform(matrix.Scale(scale, scale))
		m, err := Extrude([]region.Region{reg}, height)
		if err != nil {
			t.Fatal(err)
		}
		if !m.IsClosed() {
			t.Errorf("scale %g: boundary edges %v", scale, m.BoundaryEdges())
		}
		if d := m.DegenerateFaces(1e-12 * scale * scale); len(d) != 0 {
			t.Errorf("scale %g: degenerate faces %v", scale, d)
		}
		want := height * reg.Area()
		if v := m.Volume(); math.Abs(v-want) > 1e-9*want {
			t.Errorf("scale %g: volume %g, want %g", scale, v, want)
		}
	}
}

func TestCollinearChain(t *testing.T) {
	// A zig-zag whose lower vertices all lie on one slanted line.
	var p contour.Polyline
	for i := range 8 {
		x := float64(i) * 30
		p = append(p, vec.Vec2{X: x, Y: 0.3 * x})
		p = append(p, vec.Vec2{X: x + 15, Y: 0.3*x + 40})
	}
	p = append(p, vec.Vec2{X: 240, Y: 200}, vec.Vec2{X: 0, Y: 200})
	reg := region.Region{Outer: p}.Transform(matrix.Scale(0.03, 0.03))

	m, err := Extrude([]region.Region{reg}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsClosed() {
		t.Errorf("boundary edges %v", m.BoundaryEdges())
	}
}
