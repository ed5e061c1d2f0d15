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

package glyphsolid

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/glyphsolid/outline"
	"seehuhn.de/go/glyphsolid/raster"
	"seehuhn.de/go/glyphsolid/testcases"
)

func goRegular(t *testing.T) *outline.Font {
	t.Helper()
	font, err := outline.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return font
}

func TestBuildGoRegular(t *testing.T) {
	b := NewBuilder(goRegular(t), nil)
	ctx := context.Background()

	cases := []struct {
		r       rune
		regions int
		holes   int
	}{
		{'L', 1, 0},
		{'O', 1, 1},
		{'B', 1, 2},
		{'i', 2, 0},
		{'8', 1, 2},
	}
	for _, tc := range cases {
		g, err := b.Build(ctx, tc.r, 5, 0.03)
		if err != nil {
			t.Errorf("%q: %v", tc.r, err)
			continue
		}
		if g.Empty {
			t.Errorf("%q: glyph is empty", tc.r)
			continue
		}
		holes := 0
		var area float64
		for _, reg := range g.Regions {
			holes += len(reg.Holes)
			area += reg.Area()
		}
		if len(g.Regions) != tc.regions || holes != tc.holes {
			t.Errorf("%q: got %d regions with %d holes, want %d with %d",
				tc.r, len(g.Regions), holes, tc.regions, tc.holes)
		}

		if !g.Mesh.IsClosed() {
			t.Errorf("%q: mesh is not closed", tc.r)
		}
		if v := g.Mesh.Volume(); math.Abs(v-5*area) > 1e-6*v {
			t.Errorf("%q: volume %g, want %g", tc.r, v, 5*area)
		}
		if a := raster.Area(g.Regions, 20); math.Abs(a-area) > 1e-3*area {
			t.Errorf("%q: rasterized area %g, want %g", tc.r, a, area)
		}

		box := g.Mesh.Bounds()
		if box.Min.Z != 0 || box.Max.Z != 5 {
			t.Errorf("%q: z range %g to %g", tc.r, box.Min.Z, box.Max.Z)
		}
	}
}

// TestBuildClosedGoFonts checks that every glyph of the Latin ranges of
// three Go fonts gives a closed solid, both in font units and at the word
// mode scale.
func TestBuildClosedGoFonts(t *testing.T) {
	const height = 5

	fonts := []struct {
		name string
		data []byte
	}{
		{"regular", goregular.TTF},
		{"italic", goitalic.TTF},
		{"smallcaps_italic", gosmallcapsitalic.TTF},
	}

	// these characters must always build
	required := map[rune]bool{'\u00D7': true}
	for _, r := range Alphabet() {
		required[r] = true
	}

	last := rune(0x024F)
	if testing.Short() {
		last = 0x007E
	}

	for _, fi := range fonts {
		font, err := outline.Parse(fi.data)
		if err != nil {
			t.Fatal(err)
		}
		b := NewBuilder(font, nil)
		for _, scale := range []float64{1, 0.03} {
			t.Run(fmt.Sprintf("%s_%g", fi.name, scale), func(t *testing.T) {
				for r := rune(0x0021); r <= last; r++ {
					g, err := b.Build(context.Background(), r, height, scale)
					var notFound *GlyphNotFoundError
					if errors.As(err, &notFound) && !required[r] {
						continue
					} else if err != nil {
						if required[r] {
							t.Errorf("%q: %v", r, err)
						} else {
							t.Logf("%q: %v", r, err)
						}
						continue
					}
					if g.Empty {
						continue
					}

					if !g.Mesh.IsClosed() {
						t.Errorf("%q: boundary edges %v", r, g.Mesh.BoundaryEdges())
					}
					if d := g.Mesh.DegenerateFaces(1e-12 * scale * scale); len(d) != 0 {
						t.Errorf("%q: %d degenerate faces", r, len(d))
					}
					var area float64
					for _, reg := range g.Regions {
						area += reg.Area()
					}
					if v := g.Mesh.Volume(); math.Abs(v-height*area) > 1e-6*height*area {
						t.Errorf("%q: volume %g, want %g", r, v, height*area)
					}
				}
			})
		}
	}
}

func TestBuildSpace(t *testing.T) {
	b := NewBuilder(goRegular(t), nil)

	// the height is not checked for empty glyphs
	g, err := b.Build(context.Background(), ' ', -1, 0.03)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Empty || !g.Mesh.IsEmpty() {
		t.Error("space is not empty")
	}
	if !g.HasAdvance || !(g.Advance > 0) {
		t.Errorf("space has no advance: %g", g.Advance)
	}
}

func TestBuildErrors(t *testing.T) {
	b := NewBuilder(testcases.Font(), nil)
	ctx := context.Background()

	var notFound *GlyphNotFoundError
	_, err := b.Build(ctx, 'Z', 5, 1)
	checkStage(t, err, StageLookup)
	if !errors.As(err, &notFound) || notFound.Rune != 'Z' {
		t.Errorf("missing glyph: got %v", err)
	}

	var degenerate *DegenerateContourError
	_, err = b.Build(ctx, '.', 5, 1)
	checkStage(t, err, StageReconstruct)
	if !errors.As(err, &degenerate) {
		t.Errorf("single point contour: got %v", err)
	}

	var malformed *MalformedGlyphError
	_, err = b.Build(ctx, '#', 5, 1)
	checkStage(t, err, StageAssemble)
	if !errors.As(err, &malformed) {
		t.Errorf("overlapping holes: got %v", err)
	}

	for _, height := range []float64{0, -5, math.Inf(1), math.NaN()} {
		var invalid *InvalidExtrusionHeightError
		_, err = b.Build(ctx, 'L', height, 1)
		checkStage(t, err, StageExtrude)
		if !errors.As(err, &invalid) {
			t.Errorf("height %g: got %v", height, err)
		}
	}

	for _, scale := range []float64{0, -1, math.NaN()} {
		_, err = b.Build(ctx, 'L', 5, scale)
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("scale %g: got %v", scale, err)
		}
	}
}

func checkStage(t *testing.T, err error, stage Stage) {
	t.Helper()
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Errorf("expected BuildError, got %v", err)
		return
	}
	if buildErr.Stage != stage {
		t.Errorf("error %q in stage %s, want %s", err, buildErr.Stage, stage)
	}
}

func TestBuildCancelled(t *testing.T) {
	b := NewBuilder(testcases.Font(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Build(ctx, 'L', 5, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestBuildScale(t *testing.T) {
	b := NewBuilder(testcases.Font(), nil)
	ctx := context.Background()

	g1, err := b.Build(ctx, 'L', 2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := b.Build(ctx, 'L', 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	// L has area 400*100 + 100*600 = 100000 font units
	if v := g2.Mesh.Volume(); math.Abs(v-200000) > 1e-6 {
		t.Errorf("volume %g, want 200000", v)
	}
	if ratio := g2.Mesh.Volume() / g1.Mesh.Volume(); math.Abs(ratio-4) > 1e-9 {
		t.Errorf("volume ratio %g, want 4", ratio)
	}
	if g1.Advance != 275 {
		t.Errorf("scaled advance %g, want 275", g1.Advance)
	}
}

func TestOptions(t *testing.T) {
	b := NewBuilder(testcases.Font(), &Options{})
	if b.opt.Tolerance <= 0 || b.opt.Workers <= 0 {
		t.Errorf("defaults not applied: %+v", b.opt)
	}

	coarse := NewBuilder(testcases.Font(), &Options{Tolerance: 50})
	fine := NewBuilder(testcases.Font(), &Options{Tolerance: 0.1})
	gc, err := coarse.Build(context.Background(), 'O', 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	gf, err := fine.Build(context.Background(), 'O', 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(gc.Mesh.Vertices) >= len(gf.Mesh.Vertices) {
		t.Errorf("coarse tolerance gives %d vertices, fine gives %d",
			len(gc.Mesh.Vertices), len(gf.Mesh.Vertices))
	}
}
