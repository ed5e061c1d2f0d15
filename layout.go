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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphsolid/mesh"
	"seehuhn.de/go/glyphsolid/region"
)

// Placement records where one character of a word was placed.
type Placement struct {
	Rune rune

	// Mesh is the translated glyph mesh, or nil for characters without an
	// outline.
	Mesh *mesh.Mesh

	// Regions is the translated footprint of the glyph.
	Regions []region.Region

	// Offset is the x-coordinate of the left edge of the glyph.
	Offset float64
}

// Word is the solid generated for a string of characters.
type Word struct {
	// Mesh contains the meshes of all characters.  The glyph meshes are
	// not merged, so the mesh is only closed if no glyphs touch.
	Mesh *mesh.Mesh

	Placements []Placement

	// Advance is the horizontal position after the last character.
	Advance float64

	Warnings []region.Warning
}

// Layout generates one solid for all characters of text, placed next to
// each other along the x-axis.
//
// Each glyph is moved so that its left edge is at the current position,
// and the position is then advanced by w + w*spacing, where w is the
// width of the glyph.  Characters without outline advance the position by
// their advance width from the font.  The spacing can be negative.
//
// If any character fails, Layout returns the error for the first failing
// character in the text.
func (b *Builder) Layout(ctx context.Context, text string, height, scale, spacing float64) (*Word, error) {
	if text == "" {
		return nil, &EmptyInputError{}
	}
	if !(scale > 0) {
		return nil, ErrInvalidScale
	}
	log := b.logger()

	runes := []rune(text)

	// every distinct character is built only once
	index := make(map[rune]int)
	var unique []rune
	for _, r := range runes {
		if _, seen := index[r]; !seen {
			index[r] = len(unique)
			unique = append(unique, r)
		}
	}
	glyphs := b.Batch(ctx, unique, height, scale)

	for _, r := range runes {
		if err := glyphs[index[r]].Err; err != nil {
			return nil, err
		}
	}

	word := &Word{
		Placements: make([]Placement, 0, len(runes)),
	}
	parts := make([]*mesh.Mesh, 0, len(runes))
	offset := 0.0
	for _, r := range runes {
		g := glyphs[index[r]].Glyph

		if g.Empty {
			word.Placements = append(word.Placements, Placement{Rune: r, Offset: offset})
			if g.HasAdvance {
				offset += g.Advance
			} else {
				log.Warn("no advance width", "rune", string(r))
				word.Warnings = append(word.Warnings, region.Warning{
					Rune:    r,
					Contour: -1,
					Message: "no advance width, character ignored",
				})
			}
			continue
		}

		word.Warnings = append(word.Warnings, g.Warnings...)

		m := g.Mesh.Clone()
		bbox := m.Bounds()
		w := bbox.Max.X - bbox.Min.X
		dx := offset - bbox.Min.X
		m.Translate(dx, 0, 0)

		M := matrix.Translate(dx, 0)
		regs := make([]region.Region, len(g.Regions))
		for i, reg := range g.Regions {
			regs[i] = reg.Transform(M)
		}

		word.Placements = append(word.Placements, Placement{
			Rune:    r,
			Mesh:    m,
			Regions: regs,
			Offset:  offset,
		})
		parts = append(parts, m)
		offset += w + w*spacing
	}

	word.Mesh = mesh.Concat(parts...)
	word.Advance = offset

	log.Debug("word laid out",
		"text", text,
		"glyphs", len(parts),
		"faces", len(word.Mesh.Faces),
		"advance", offset)
	return word, nil
}

// Regions returns the footprints of all characters of the word.
func (w *Word) Regions() []region.Region {
	var res []region.Region
	for _, p := range w.Placements {
		res = append(res, p.Regions...)
	}
	return res
}
