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

package export

import (
	"bufio"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/raster"
	"seehuhn.de/go/glyphsolid/region"
)

// PreviewMargin is the free space around a footprint preview, in pixels
// for PNG output and in PDF points for PDF output.
const PreviewMargin = 8

// WriteFootprintPNG draws the footprint of the regions as a size×size
// grayscale PNG image.
func WriteFootprintPNG(w io.Writer, regs []region.Region, size int) error {
	img := raster.Image(regs, size, size, PreviewMargin)
	return png.Encode(w, img)
}

// SaveFootprintPNG writes a PNG preview of the regions to the named file.
func SaveFootprintPNG(fileName string, regs []region.Region, size int) error {
	return saveFile(fileName, func(w io.Writer) error {
		return WriteFootprintPNG(w, regs, size)
	})
}

// WriteFootprintPDF writes a single-page PDF document to w, showing the
// footprint of the regions as a black shape on a page of size×size
// points.
func WriteFootprintPDF(w io.Writer, regs []region.Region, size float64) error {
	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	drawFootprint(page, regs, size)
	return page.Close()
}

// SaveFootprintPDF writes a PDF preview of the regions to the named file.
func SaveFootprintPDF(fileName string, regs []region.Region, size float64) error {
	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	drawFootprint(page, regs, size)
	return page.Close()
}

func drawFootprint(page *document.Page, regs []region.Region, size float64) {
	if len(regs) == 0 {
		return
	}

	// PDF has the origin in the bottom-left corner, so we undo the
	// y-flip of raster.Fit.
	n := int(size)
	M := raster.Fit(raster.Bounds(regs), n, n, PreviewMargin)
	M = M.Mul(matrix.Matrix{1, 0, 0, -1, 0, float64(n)})
	page.Transform(M)

	page.SetFillColor(color.DeviceGray(0))
	for _, reg := range regs {
		addRing(page, reg.Outer)
		for _, h := range reg.Holes {
			addRing(page, h)
		}
	}
	page.Fill()
}

func addRing(page *document.Page, p contour.Polyline) {
	if len(p) < 3 {
		return
	}
	page.MoveTo(p[0].X, p[0].Y)
	for _, v := range p[1:] {
		page.LineTo(v.X, v.Y)
	}
	page.ClosePath()
}

func saveFile(fileName string, write func(w io.Writer) error) (err error) {
	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	buf := bufio.NewWriter(fd)
	err = write(buf)
	if err != nil {
		return err
	}
	return buf.Flush()
}
