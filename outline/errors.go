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

import "fmt"

// FontLoadError is returned when a font file cannot be read or parsed.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("outline: cannot load font: %v", e.Err)
	}
	return fmt.Sprintf("outline: cannot load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// GlyphNotFoundError is returned when a character is not mapped by the
// character map of a font.
type GlyphNotFoundError struct {
	Rune rune
}

func (e *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("outline: no glyph for %q (U+%04X)", e.Rune, e.Rune)
}

// MalformedGlyphError is returned when the outline data of a glyph is
// inconsistent, for example when holes overlap.
type MalformedGlyphError struct {
	Rune   rune
	Reason string
}

func (e *MalformedGlyphError) Error() string {
	return fmt.Sprintf("outline: malformed glyph %q: %s", e.Rune, e.Reason)
}
