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

// Package extrude turns planar regions into closed triangle meshes.
//
// Every region is triangulated, and the triangulation is used for the
// bottom face at z=0 and for the top face at the extrusion height.  The
// two faces are connected by side walls along all boundary edges.
package extrude

import (
	"fmt"
	"math"

	"seehuhn.de/go/glyphsolid/mesh"
	"seehuhn.de/go/glyphsolid/region"
)

// InvalidExtrusionHeightError is returned if the extrusion height is not a
// positive, finite number.
type InvalidExtrusionHeightError struct {
	Height float64
}

func (e *InvalidExtrusionHeightError) Error() string {
	return fmt.Sprintf("extrude: invalid extrusion height %g", e.Height)
}

// Extrude extrudes the given regions along the z-axis, from z=0 to
// z=height.  The result is a single mesh, containing one closed solid per
// region.  All faces are oriented outwards.
func Extrude(regs []region.Region, height float64) (*mesh.Mesh, error) {
	if !(height > 0) || math.IsInf(height, 1) {
		return nil, &InvalidExtrusionHeightError{Height: height}
	}

	parts := make([]*mesh.Mesh, 0, len(regs))
	for _, reg := range regs {
		if m := extrudeRegion(reg, height); m != nil {
			parts = append(parts, m)
		}
	}
	return mesh.Concat(parts...), nil
}

// extrudeRegion returns nil if the region has no area after
// triangulation.
func extrudeRegion(reg region.Region, height float64) *mesh.Mesh {
	pts, tris, rings := triangulate(reg)
	if len(tris) == 0 {
		return nil
	}

	n := len(pts)
	m := &mesh.Mesh{
		Vertices: make([]mesh.Vertex, 2*n),
	}
	for i, p := range pts {
		m.Vertices[i] = mesh.Vertex{X: p.X, Y: p.Y, Z: 0}
		m.Vertices[i+n] = mesh.Vertex{X: p.X, Y: p.Y, Z: height}
	}

	numEdges := 0
	for _, ring := range rings {
		numEdges += len(ring)
	}
	m.Faces = make([]mesh.Face, 0, 2*len(tris)+2*numEdges)

	for _, t := range tris {
		m.Faces = append(m.Faces, mesh.Face{t[0], t[2], t[1]})
	}
	for _, t := range tris {
		m.Faces = append(m.Faces, mesh.Face{t[0] + n, t[1] + n, t[2] + n})
	}

	// The region lies to the left of every boundary edge, so the walls
	// face to the right.
	for _, ring := range rings {
		k := len(ring)
		for j, a := range ring {
			b := ring[(j+1)%k]
			m.Faces = append(m.Faces,
				mesh.Face{a, b, b + n},
				mesh.Face{a, b + n, a + n})
		}
	}
	return m
}
