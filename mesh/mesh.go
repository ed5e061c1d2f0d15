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

// Package mesh implements indexed triangle meshes.
//
// Faces are oriented counter-clockwise when seen from outside the solid,
// so that the face normals computed by the right-hand rule point outwards.
package mesh

import (
	"math"
	"slices"
)

// Vertex is a point in space.
type Vertex struct {
	X, Y, Z float64
}

// Face is a triangle, given by three vertex indices.
type Face [3]int

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vertex
}

// IsEmpty reports whether the mesh has no faces.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Faces) == 0
}

// Bounds returns the bounding box of all vertices.
// The result is the zero box for a mesh without vertices.
func (m *Mesh) Bounds() Box {
	if m == nil || len(m.Vertices) == 0 {
		return Box{}
	}
	b := Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Min.Z = min(b.Min.Z, v.Z)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
		b.Max.Z = max(b.Max.Z, v.Z)
	}
	return b
}

// Width returns the extent of the mesh along the x-axis.
func (m *Mesh) Width() float64 {
	b := m.Bounds()
	return b.Max.X - b.Min.X
}

// Translate moves all vertices by the given offset, in place.
func (m *Mesh) Translate(dx, dy, dz float64) {
	for i := range m.Vertices {
		m.Vertices[i].X += dx
		m.Vertices[i].Y += dy
		m.Vertices[i].Z += dz
	}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: slices.Clone(m.Vertices),
		Faces:    slices.Clone(m.Faces),
	}
}

// Append adds the vertices and faces of other to m.
// The two meshes are not connected; shared points are duplicated.
func (m *Mesh) Append(other *Mesh) {
	if other == nil {
		return
	}
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Faces = slices.Grow(m.Faces, len(other.Faces))
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, Face{f[0] + base, f[1] + base, f[2] + base})
	}
}

// Concat returns a new mesh which contains all the given meshes.
func Concat(meshes ...*Mesh) *Mesh {
	var nv, nf int
	for _, m := range meshes {
		if m != nil {
			nv += len(m.Vertices)
			nf += len(m.Faces)
		}
	}
	res := &Mesh{
		Vertices: make([]Vertex, 0, nv),
		Faces:    make([]Face, 0, nf),
	}
	for _, m := range meshes {
		res.Append(m)
	}
	return res
}

// Volume returns the signed volume enclosed by a closed mesh.  The result
// is positive if the faces are oriented outwards.
func (m *Mesh) Volume() float64 {
	var sum float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		// scalar triple product a · (b × c)
		sum += a.X*(b.Y*c.Z-b.Z*c.Y) -
			a.Y*(b.X*c.Z-b.Z*c.X) +
			a.Z*(b.X*c.Y-b.Y*c.X)
	}
	return sum / 6
}

// Area returns the total surface area of the mesh.
func (m *Mesh) Area() float64 {
	var sum float64
	for _, f := range m.Faces {
		sum += m.faceArea(f)
	}
	return sum
}

func (m *Mesh) faceArea(f Face) float64 {
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	return math.Sqrt(nx*nx+ny*ny+nz*nz) / 2
}
