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

package outline

import (
	"bytes"
	"errors"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// runeMap maps characters to glyph IDs.  It is satisfied by the best
// subtable of an sfnt character map.
type runeMap interface {
	Lookup(r rune) glyph.ID
}

// Font gives access to the outlines of a TrueType or OpenType font.
//
// A Font is immutable after loading and is safe for concurrent use.
type Font struct {
	// Path is the file the font was loaded from, if any.
	Path string

	info *sfnt.Font
	cmap runeMap
}

// LoadFile reads a font from a .ttf or .otf file.
func LoadFile(fname string) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, &FontLoadError{Path: fname, Err: err}
	}
	return newFont(info, fname)
}

// Parse reads a font from memory.
func Parse(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	return newFont(info, "")
}

// NewFont wraps an already decoded font.
func NewFont(info *sfnt.Font) (*Font, error) {
	return newFont(info, "")
}

func newFont(info *sfnt.Font, fname string) (*Font, error) {
	if info == nil || info.Outlines == nil {
		return nil, &FontLoadError{Path: fname, Err: errors.New("font has no outlines")}
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, &FontLoadError{Path: fname, Err: err}
	}
	return &Font{
		Path: fname,
		info: info,
		cmap: subtable,
	}, nil
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() float64 {
	return float64(f.info.UnitsPerEm)
}

// Outline returns the outline of the glyph used for r.
//
// Simple TrueType glyphs are returned as point/flag contours.  Composite
// glyphs and CFF glyphs are returned as a path.
func (f *Font) Outline(r rune) (*Outline, error) {
	gid := f.cmap.Lookup(r)
	if gid == 0 {
		return nil, &GlyphNotFoundError{Rune: r}
	}

	res := &Outline{
		Rune:       r,
		Winding:    CounterClockwise,
		Advance:    float64(f.info.GlyphWidth(gid)),
		HasAdvance: true,
	}

	outlines, ok := f.info.Outlines.(*glyf.Outlines)
	if !ok {
		res.Path = f.info.Outlines.Path(gid)
		return res, nil
	}

	res.Winding = Clockwise
	if int(gid) >= len(outlines.Glyphs) {
		return nil, &GlyphNotFoundError{Rune: r}
	}
	g := outlines.Glyphs[gid]
	if g == nil {
		// glyph without outline, e.g. the space character
		return res, nil
	}

	switch data := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := data.Unpack()
		if err != nil {
			return nil, &MalformedGlyphError{Rune: r, Reason: err.Error()}
		}
		res.Contours = make([]Contour, len(info.Contours))
		for i, cc := range info.Contours {
			c := make(Contour, len(cc))
			for j, p := range cc {
				c[j] = Point{X: float64(p.X), Y: float64(p.Y), OnCurve: p.OnCurve}
			}
			res.Contours[i] = c
		}
	default:
		res.Path = outlines.Path(gid)
	}
	return res, nil
}
