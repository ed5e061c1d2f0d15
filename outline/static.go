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

// Static is a Provider backed by a fixed set of outlines.
// It is mainly used for tests and for fonts constructed in code.
type Static map[rune]*Outline

// Outline implements the Provider interface.
func (s Static) Outline(r rune) (*Outline, error) {
	o, ok := s[r]
	if !ok || o == nil {
		return nil, &GlyphNotFoundError{Rune: r}
	}
	return o, nil
}
