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

// Package export writes glyph meshes and footprints to files.
//
// Meshes are written as binary STL, footprints as PNG images or as
// single-page PDF files.
package export

import (
	"bufio"
	"io"
	"os"

	"github.com/unixpickle/model3d/model3d"

	"seehuhn.de/go/glyphsolid/mesh"
)

// Triangles converts m into model3d triangles.
func Triangles(m *mesh.Mesh) []*model3d.Triangle {
	if m.IsEmpty() {
		return nil
	}
	res := make([]*model3d.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		t := &model3d.Triangle{}
		for j, k := range f {
			v := m.Vertices[k]
			t[j] = model3d.XYZ(v.X, v.Y, v.Z)
		}
		res[i] = t
	}
	return res
}

// Model converts m into a model3d mesh.
func Model(m *mesh.Mesh) *model3d.Mesh {
	return model3d.NewMeshTriangles(Triangles(m))
}

// WriteSTL writes m to w in binary STL format.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	return model3d.WriteSTL(w, Triangles(m))
}

// SaveSTL writes m to the named file in binary STL format.
// An existing file is overwritten.
func SaveSTL(fileName string, m *mesh.Mesh) (err error) {
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
	err = WriteSTL(buf, m)
	if err != nil {
		return err
	}
	return buf.Flush()
}
