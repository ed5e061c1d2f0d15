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

// Package raster computes the pixel coverage of planar glyph regions.
//
// The rasterizer is used to draw previews of glyph footprints and to
// cross-check triangulated areas.  Coverage is computed exactly for every
// pixel, as the area of the pixel square which lies inside the filled
// polygons.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/region"
)

// FillRule decides which points are inside a set of polygons.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

// segment is a non-horizontal polygon edge in pixel coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasterizer converts polygons into per-pixel coverage values between 0
// and 1.  A Rasterizer can be reused for many fills; its buffers are kept
// between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// M maps region coordinates to pixel coordinates.
	M matrix.Matrix

	// Clip restricts the output to this rectangle of pixel coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Rule is the fill rule.  For regions produced by the region package
	// both rules give the same result.
	Rule FillRule

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterized using one buffer for the whole box.  Larger polygons are
	// processed one scanline at a time.
	denseLimit int

	segs       []segment
	active     []int
	cover      []float32
	area       []float32
	rowTouched []bool

	haveBBox       bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// New returns a Rasterizer which writes to the given clip rectangle,
// using the identity transformation.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		M:          matrix.Identity,
		Clip:       clip,
		denseLimit: denseLimit,
	}
}

// Reset prepares the rasterizer for a new image.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.M = matrix.Identity
	r.Clip = clip
	r.Rule = NonZero
}

// FillRegions fills the given regions.  For every pixel row which
// intersects the regions, emit is called with the coverage values of the
// pixels xMin, xMin+1, ...  The coverage slice is only valid during the
// call.
func (r *Rasterizer) FillRegions(regs []region.Region, emit func(y, xMin int, coverage []float32)) {
	r.begin()
	for _, reg := range regs {
		r.addPolyline(reg.Outer)
		for _, h := range reg.Holes {
			r.addPolyline(h)
		}
	}
	r.fill(emit)
}

// FillPolylines fills the area enclosed by the given closed polylines,
// using the fill rule r.Rule.
func (r *Rasterizer) FillPolylines(polys []contour.Polyline, emit func(y, xMin int, coverage []float32)) {
	r.begin()
	for _, p := range polys {
		r.addPolyline(p)
	}
	r.fill(emit)
}

func (r *Rasterizer) begin() {
	r.segs = r.segs[:0]
	r.haveBBox = false
}

func (r *Rasterizer) addPolyline(p contour.Polyline) {
	n := len(p)
	if n < 2 {
		return
	}
	prev := r.M.Apply(p[n-1])
	for _, v := range p {
		cur := r.M.Apply(v)
		r.addSegment(prev, cur)
		prev = cur
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.segs = append(r.segs, segment{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if !r.haveBBox {
		r.bbXMin, r.bbXMax = a.X, a.X
		r.bbYMin, r.bbYMax = a.Y, a.Y
		r.haveBBox = true
	}
	r.bbXMin = min(r.bbXMin, a.X, b.X)
	r.bbXMax = max(r.bbXMax, a.X, b.X)
	r.bbYMin = min(r.bbYMin, a.Y, b.Y)
	r.bbYMax = max(r.bbYMax, a.Y, b.Y)
}

func (r *Rasterizer) fill(emit func(y, xMin int, coverage []float32)) {
	if len(r.segs) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, emit)
	}
}

// Every segment contributes two quantities to each pixel it crosses:
//
//	cover: the signed height of the part of the segment inside the pixel
//	area:  cover, weighted by the fraction of the pixel to the right of
//	       the segment
//
// Summing cover from the left and adding area gives the signed coverage
// of each pixel.  Contributions of segments left of the box are collected
// in the first pixel.

// accumulate adds the contribution of s to the scanline [y, y+1).  The
// buffers cover pixel columns xMin to xMax-1.
func accumulate(s *segment, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(s.y0, s.y1))
	yBot := min(float64(y+1), max(s.y0, s.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xa := s.x0 + s.dxdy*(yTop-s.y0)
	xb := s.x0 + s.dxdy*(yBot-s.y0)
	left, right := min(xa, xb), max(xa, xb)
	colLeft := int(math.Floor(left))
	colRight := int(math.Floor(right))

	switch {
	case colRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case colLeft >= xMax:
		return
	case colLeft == colRight:
		addPiece(s, yTop, yBot, sign, colLeft, cover, area, xMin, xMax)
		return
	}

	// The segment crosses several pixel columns.  Split it at the column
	// boundaries.
	dydx := 1 / s.dxdy
	for col := colLeft; col <= colRight; col++ {
		ya := s.y0 + dydx*(float64(col)-s.x0)
		yb := s.y0 + dydx*(float64(col+1)-s.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addPiece(s, lo, hi, sign, col, cover, area, xMin, xMax)
	}
}

// addPiece adds the part of s between yTop and yBot, which lies inside
// pixel column col.
func addPiece(s *segment, yTop, yBot float64, sign float32, col int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	if col < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if col >= xMax {
		return
	}
	xMid := s.x0 + s.dxdy*((yTop+yBot)/2-s.y0)
	frac := xMid - float64(col)
	i := col - xMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate turns the cover and area values of one scanline into
// coverage, stored in cover.
func integrate(rule FillRule, cover, area []float32) {
	var sum float32
	for i := range cover {
		raw := sum + area[i]
		sum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			raw = 1 - abs32(1-raw)
		}
		cover[i] = min(raw, 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trim removes leading and trailing zeros.
func trim(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillDense rasterizes using buffers for the whole bounding box.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	h := yMax - yMin
	size := w * h
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowTouched = slices.Grow(r.rowTouched[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowTouched)

	for i := range r.segs {
		s := &r.segs[i]
		lo := max(int(math.Floor(min(s.y0, s.y1))), yMin)
		hi := min(int(math.Floor(max(s.y0, s.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * w
			accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowTouched[row] = true
		}
	}

	for row := range h {
		if !r.rowTouched[row] {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(r.Rule, coverage, r.area[off:off+w])
		if c, dx := trim(coverage); c != nil {
			emit(yMin+row, xMin+dx, c)
		}
	}
}

// fillScanlines rasterizes one scanline at a time, keeping a list of the
// segments which intersect the current scanline.
func (r *Rasterizer) fillScanlines(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.segs) && min(r.segs[next].y0, r.segs[next].y1) < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if max(s.y0, s.y1) <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(s, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.Rule, r.cover, r.area)
		if c, dx := trim(r.cover); c != nil {
			emit(y, xMin+dx, c)
		}
	}
}

const (
	// horizontalThreshold is the smallest vertical extent of a segment
	// which contributes to the coverage.
	horizontalThreshold = 1e-10

	denseLimit = 65536
)
