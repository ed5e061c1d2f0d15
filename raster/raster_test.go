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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
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

func circle(cx, cy, r float64, n int, clockwise bool) contour.Polyline {
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

// render rasterizes regs into a width×height coverage grid.
func render(r *Rasterizer, regs []region.Region, width, height int) [][]float32 {
	grid := make([][]float32, height)
	for y := range grid {
		grid[y] = make([]float32, width)
	}
	r.FillRegions(regs, func(y, xMin int, coverage []float32) {
		copy(grid[y][xMin:], coverage)
	})
	return grid
}

func total(grid [][]float32) float64 {
	var sum float64
	for _, row := range grid {
		for _, c := range row {
			sum += float64(c)
		}
	}
	return sum
}

func TestAlignedSquare(t *testing.T) {
	r := New(rect.Rect{URx: 10, URy: 10})
	grid := render(r, []region.Region{{Outer: box(2, 2, 8, 8)}}, 10, 10)
	for y, row := range grid {
		for x, c := range row {
			want := float32(0)
			if x >= 2 && x < 8 && y >= 2 && y < 8 {
				want = 1
			}
			if math.Abs(float64(c-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, c, want)
			}
		}
	}
}

func TestHalfPixelSquare(t *testing.T) {
	r := New(rect.Rect{URx: 10, URy: 10})
	grid := render(r, []region.Region{{Outer: box(2.5, 2.5, 7.5, 7.5)}}, 10, 10)

	cases := []struct {
		x, y int
		want float32
	}{
		{2, 2, 0.25},
		{3, 2, 0.5},
		{2, 5, 0.5},
		{5, 5, 1},
		{7, 7, 0.25},
		{8, 5, 0},
	}
	for _, tc := range cases {
		if c := grid[tc.y][tc.x]; math.Abs(float64(c-tc.want)) > 1e-6 {
			t.Errorf("pixel (%d,%d): got %g, want %g", tc.x, tc.y, c, tc.want)
		}
	}
	if a := total(grid); math.Abs(a-25) > 1e-4 {
		t.Errorf("total coverage %g, want 25", a)
	}
}

func TestTriangleCoverage(t *testing.T) {
	tri := contour.Polyline{{X: 0.3, Y: 0.7}, {X: 19.1, Y: 2.2}, {X: 4.4, Y: 17.9}}
	want := math.Abs(region.SignedArea(tri))

	r := New(rect.Rect{URx: 20, URy: 20})
	grid := render(r, []region.Region{{Outer: tri}}, 20, 20)
	if a := total(grid); math.Abs(a-want) > 1e-3 {
		t.Errorf("total coverage %g, want %g", a, want)
	}
}

func TestDenseMatchesScanlines(t *testing.T) {
	regs := []region.Region{{
		Outer: circle(50, 50, 45, 100, false),
		Holes: []contour.Polyline{circle(50, 50, 30, 60, true)},
	}}

	dense := New(rect.Rect{URx: 100, URy: 100})
	dense.denseLimit = 1 << 30
	scan := New(rect.Rect{URx: 100, URy: 100})
	scan.denseLimit = 0

	a := render(dense, regs, 100, 100)
	b := render(scan, regs, 100, 100)
	for y := range a {
		for x := range a[y] {
			if math.Abs(float64(a[y][x]-b[y][x])) > 1e-5 {
				t.Fatalf("pixel (%d,%d): dense %g, scanlines %g", x, y, a[y][x], b[y][x])
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	polys := []contour.Polyline{
		box(10, 10, 90, 90),
		box(30, 30, 70, 70), // same orientation as the outer box
	}

	r := New(rect.Rect{URx: 100, URy: 100})
	sum := func() float64 {
		var s float64
		r.FillPolylines(polys, func(_, _ int, coverage []float32) {
			for _, c := range coverage {
				s += float64(c)
			}
		})
		return s
	}

	r.Rule = NonZero
	if a := sum(); math.Abs(a-6400) > 1e-2 {
		t.Errorf("nonzero: got %g, want 6400", a)
	}
	r.Rule = EvenOdd
	if a := sum(); math.Abs(a-4800) > 1e-2 {
		t.Errorf("even-odd: got %g, want 4800", a)
	}
}

func TestClip(t *testing.T) {
	r := New(rect.Rect{LLx: 0, LLy: 0, URx: 5, URy: 5})
	grid := render(r, []region.Region{{Outer: box(-10, -10, 20, 20)}}, 5, 5)
	if a := total(grid); math.Abs(a-25) > 1e-4 {
		t.Errorf("clipped coverage %g, want 25", a)
	}
}

func TestArea(t *testing.T) {
	regs := []region.Region{
		{
			Outer: box(0, 0, 100, 100),
			Holes: []contour.Polyline{clockwiseBox(25, 25, 75, 75)},
		},
		{Outer: circle(200, 50, 40, 80, false)},
	}
	want := regs[0].Area() + regs[1].Area()
	for _, res := range []float64{0.1, 0.37, 1, 4} {
		if a := Area(regs, res); math.Abs(a-want) > 1e-4*want {
			t.Errorf("resolution %g: area %g, want %g", res, a, want)
		}
	}
}

func TestImage(t *testing.T) {
	regs := []region.Region{{
		Outer: box(0, 0, 100, 100),
		Holes: []contour.Polyline{clockwiseBox(25, 25, 75, 75)},
	}}
	img := Image(regs, 64, 64, 2)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("wrong image size %v", b)
	}
	if c := img.GrayAt(32, 32).Y; c != 255 {
		t.Errorf("hole is not white: %d", c)
	}
	if c := img.GrayAt(6, 32).Y; c != 0 {
		t.Errorf("glyph is not black: %d", c)
	}
	if c := img.GrayAt(0, 0).Y; c != 255 {
		t.Errorf("margin is not white: %d", c)
	}
}

func TestFit(t *testing.T) {
	b := rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 60}
	M := Fit(b, 100, 100, 10)

	// the taller side fills the available height
	top := M.Apply(vec.Vec2{X: 10, Y: 60})
	bottom := M.Apply(vec.Vec2{X: 30, Y: 20})
	if math.Abs(top.Y-10) > 1e-9 || math.Abs(bottom.Y-90) > 1e-9 {
		t.Errorf("y range %g to %g, want 10 to 90", top.Y, bottom.Y)
	}
	if mid := (top.X + bottom.X) / 2; math.Abs(mid-50) > 1e-9 {
		t.Errorf("not centered: %g", mid)
	}
}
