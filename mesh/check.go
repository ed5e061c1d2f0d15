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

package mesh

import (
	"cmp"
	"slices"
)

// Edge is a directed edge between two vertices.
type Edge struct {
	From, To int
}

// BoundaryEdges returns the directed edges which violate closedness.  In a
// closed, consistently oriented mesh, every directed edge is used by
// exactly one face and the reversed edge is used by exactly one other
// face.  The result is sorted.
func (m *Mesh) BoundaryEdges() []Edge {
	count := make(map[Edge]int, 3*len(m.Faces))
	for _, f := range m.Faces {
		for i := range 3 {
			count[Edge{f[i], f[(i+1)%3]}]++
		}
	}

	var res []Edge
	for e, n := range count {
		if n != 1 || count[Edge{e.To, e.From}] != 1 {
			res = append(res, e)
		}
	}
	slices.SortFunc(res, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return res
}

// IsClosed reports whether the mesh is watertight: every edge is shared by
// exactly two faces, which traverse it in opposite directions.
func (m *Mesh) IsClosed() bool {
	return len(m.BoundaryEdges()) == 0
}

// DegenerateFaces returns the indices of all faces with an area less than
// eps, or with repeated vertex indices.
func (m *Mesh) DegenerateFaces(eps float64) []int {
	var res []int
	for i, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] || m.faceArea(f) < eps {
			res = append(res, i)
		}
	}
	return res
}
