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

// Command genpdf generates reference images of glyph footprints.
// It writes a PDF file for every test glyph and renders it to PNG using
// Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/unixpickle/essentials"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/export"
	"seehuhn.de/go/glyphsolid/region"
	"seehuhn.de/go/glyphsolid/testcases"
)

const (
	refDir = "testdata/reference"

	// page size in points, 1 point = 1 pixel at 72 DPI
	pageSize = 128
)

func main() {
	essentials.Must(os.MkdirAll(refDir, 0755))

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Invalid || tc.Regions == 0 {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				essentials.Die(fmt.Sprintf("%s: %v", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				essentials.Die(fmt.Sprintf("%s: %v", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	o := tc.Outline
	polys, err := contour.Reconstruct(o, contour.DefaultTolerance)
	if err != nil {
		return err
	}
	regs, _, err := region.Assemble(o.Rune, polys, o.Winding)
	if err != nil {
		return err
	}
	return export.SaveFootprintPDF(pdfPath, regs, pageSize)
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, like raster.Image
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
