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

// Package glyphsolid converts the glyphs of a font into closed triangle
// meshes, suitable for 3D printing.
//
// The outline of a glyph is converted into polygons (package contour),
// the polygons are grouped into regions with holes (package region), and
// every region is triangulated and extruded into a solid (package
// extrude).  A [Builder] runs these steps for single characters, for a
// batch of characters, or for a whole word:
//
//	font, err := outline.LoadFile("DejaVuSans.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	b := glyphsolid.NewBuilder(font, nil)
//	word, err := b.Layout(ctx, "Hello", 5, 0.03, -0.1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = export.SaveSTL("hello.stl", word.Mesh)
package glyphsolid
