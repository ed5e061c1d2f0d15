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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsolid/region"
)

// Bounds returns the bounding box of all outer boundaries.
func Bounds(regs []region.Region) rect.Rect {
	var b rect.Rect
	for i, reg := range regs {
		rb := reg.Bounds()
		if i == 0 {
			b = rb
			continue
		}
		b.LLx = min(b.LLx, rb.LLx)
		b.LLy = min(b.LLy, rb.LLy)
		b.URx = max(b.URx, rb.URx)
		b.URy = max(b.URy, rb.URy)
	}
	return b
}

// Fit returns the transformation which maps the box b into an image of
// the given size, keeping the aspect ratio and leaving margin pixels free
// on each side.  The y-axis is flipped, so that the result can be used for
// images where y grows downwards.
func Fit(b rect.Rect, width, height, margin int) matrix.Matrix {
	dx := b.URx - b.LLx
	dy := b.URy - b.LLy
	availX := float64(width - 2*margin)
	availY := float64(height - 2*margin)
	if dx <= 0 || dy <= 0 || availX <= 0 || availY <= 0 {
		return matrix.Identity
	}
	s := min(availX/dx, availY/dy)

	// center the box in the image
	offX := (float64(width) - s*dx) / 2
	offY := (float64(height) - s*dy) / 2
	return matrix.Matrix{s, 0, 0, -s, offX - s*b.LLx, offY + s*b.URy}
}

// Image draws the footprint of the given regions as a grayscale image:
// black on white, scaled to fit the image size.
func Image(regs []region.Region, width, height, margin int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	if len(regs) == 0 {
		return img
	}

	r := New(rect.Rect{URx: float64(width), URy: float64(height)})
	r.M = Fit(Bounds(regs), width, height, margin)
	r.FillRegions(regs, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = 255 - uint8(math.Round(float64(c)*255))
		}
	})
	return img
}

// Area returns the total area covered by the regions, computed by
// rasterizing them at the given resolution (pixels per unit).  The result
// is in region units.
func Area(regs []region.Region, resolution float64) float64 {
	if len(regs) == 0 || !(resolution > 0) {
		return 0
	}
	b := Bounds(regs)
	w := int(math.Ceil((b.URx-b.LLx)*resolution)) + 2
	h := int(math.Ceil((b.URy-b.LLy)*resolution)) + 2

	r := New(rect.Rect{URx: float64(w), URy: float64(h)})
	r.M = matrix.Matrix{resolution, 0, 0, resolution, 1 - resolution*b.LLx, 1 - resolution*b.LLy}

	var sum float64
	r.FillRegions(regs, func(_, _ int, coverage []float32) {
		for _, c := range coverage {
			sum += float64(c)
		}
	})
	return sum / (resolution * resolution)
}
