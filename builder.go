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
	"log/slog"
	"math"
	"runtime"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/extrude"
	"seehuhn.de/go/glyphsolid/mesh"
	"seehuhn.de/go/glyphsolid/outline"
	"seehuhn.de/go/glyphsolid/region"
)

// Options controls the behaviour of a Builder.
type Options struct {
	// Tolerance is the maximal distance, in font units, between a curve
	// and its polygonal approximation.  If this is zero,
	// contour.DefaultTolerance is used.
	Tolerance float64

	// Workers is the maximal number of glyphs built concurrently by Batch
	// and Layout.  If this is zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Logger receives diagnostic messages.  If this is nil, the package
	// logger set by SetLogger is used.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nil is passed to NewBuilder.
func DefaultOptions() *Options {
	return &Options{
		Tolerance: contour.DefaultTolerance,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Builder converts the glyphs of a font into solid meshes.
//
// A Builder only reads from its outline provider and can be used
// concurrently from several goroutines.
type Builder struct {
	provider outline.Provider
	opt      Options
}

// NewBuilder returns a Builder for the glyphs provided by p.
// If opt is nil, DefaultOptions() is used.
func NewBuilder(p outline.Provider, opt *Options) *Builder {
	if opt == nil {
		opt = DefaultOptions()
	}
	b := &Builder{provider: p, opt: *opt}
	if b.opt.Tolerance <= 0 {
		b.opt.Tolerance = contour.DefaultTolerance
	}
	if b.opt.Workers <= 0 {
		b.opt.Workers = runtime.GOMAXPROCS(0)
	}
	return b
}

func (b *Builder) logger() *slog.Logger {
	if b.opt.Logger != nil {
		return b.opt.Logger
	}
	return Logger()
}

// Glyph is the solid generated for a single character.
type Glyph struct {
	Rune rune

	// Mesh is the extruded glyph, in scaled units.  For empty glyphs this
	// is a mesh without vertices and faces.
	Mesh *mesh.Mesh

	// Regions are the planar regions which were extruded, in scaled units.
	Regions []region.Region

	// Empty is set for glyphs without any outline, like the space
	// character.
	Empty bool

	// Advance is the scaled advance width from the font.  It is only
	// meaningful if HasAdvance is set.
	Advance    float64
	HasAdvance bool

	Warnings []region.Warning
}

// Build generates the solid for the character r.  The outline is scaled by
// the factor scale in x- and y-direction, and then extruded from z=0 to
// z=height.
//
// Characters without an outline give an empty Glyph, without checking the
// height.  Errors from the pipeline stages are returned as *BuildError.
func (b *Builder) Build(ctx context.Context, r rune, height, scale float64) (*Glyph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, ErrInvalidScale
	}
	log := b.logger()

	o, err := b.provider.Outline(r)
	if err != nil {
		return nil, &BuildError{Rune: r, Stage: StageLookup, Err: err}
	}
	g := &Glyph{
		Rune:       r,
		Advance:    o.Advance * scale,
		HasAdvance: o.HasAdvance,
	}

	polys, err := contour.Reconstruct(o, b.opt.Tolerance)
	if err != nil {
		return nil, &BuildError{Rune: r, Stage: StageReconstruct, Err: err}
	}
	if len(polys) == 0 {
		g.Empty = true
		g.Mesh = &mesh.Mesh{}
		log.Debug("empty glyph", "rune", string(r))
		return g, nil
	}

	regs, warnings, err := region.Assemble(r, polys, o.Winding)
	if err != nil {
		return nil, &BuildError{Rune: r, Stage: StageAssemble, Err: err}
	}
	for _, w := range warnings {
		log.Warn("ambiguous hole", "rune", string(r), "contour", w.Contour, "msg", w.Message)
	}
	g.Warnings = warnings

	if len(regs) == 0 {
		g.Empty = true
		g.Mesh = &mesh.Mesh{}
		log.Warn("glyph has no area", "rune", string(r), "contours", len(polys))
		return g, nil
	}

	M := matrix.Scale(scale, scale)
	for i, reg := range regs {
		regs[i] = reg.Transform(M)
	}
	g.Regions = regs

	m, err := extrude.Extrude(regs, height)
	if err != nil {
		return nil, &BuildError{Rune: r, Stage: StageExtrude, Err: err}
	}
	g.Mesh = m

	log.Debug("glyph built",
		"rune", string(r),
		"contours", len(polys),
		"regions", len(regs),
		"vertices", len(m.Vertices),
		"faces", len(m.Faces))
	return g, nil
}
