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

// Command export converts all test glyphs into STL files and writes a
// summary of the resulting meshes to testdata/testcases.yaml.
package main

import (
	"context"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/unixpickle/essentials"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/glyphsolid"
	"seehuhn.de/go/glyphsolid/export"
	"seehuhn.de/go/glyphsolid/outline"
	"seehuhn.de/go/glyphsolid/testcases"
)

const (
	outDir = "testdata/stl"
	height = 10.0
	scale  = 0.01
)

type summary struct {
	Name     string  `yaml:"name"`
	Rune     string  `yaml:"rune"`
	Regions  int     `yaml:"regions,omitempty"`
	Vertices int     `yaml:"vertices,omitempty"`
	Faces    int     `yaml:"faces,omitempty"`
	Volume   float64 `yaml:"volume,omitempty"`
	Closed   bool    `yaml:"closed"`
	Error    string  `yaml:"error,omitempty"`
}

func main() {
	essentials.Must(os.MkdirAll(outDir, 0755))

	var out struct {
		TestCases []summary `yaml:"testcases"`
	}
	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s := summary{Name: name, Rune: string(tc.Outline.Rune)}

			// use a single-glyph font, since several test cases share
			// a character
			font := outline.Static{tc.Outline.Rune: tc.Outline}
			b := glyphsolid.NewBuilder(font, nil)
			g, err := b.Build(ctx, tc.Outline.Rune, height, scale)
			var buildErr *glyphsolid.BuildError
			switch {
			case errors.As(err, &buildErr):
				s.Error = buildErr.Error()
			case err != nil:
				essentials.Die(name, err)
			case g.Empty:
				s.Closed = true
			default:
				s.Regions = len(g.Regions)
				s.Vertices = len(g.Mesh.Vertices)
				s.Faces = len(g.Mesh.Faces)
				s.Volume = g.Mesh.Volume()
				s.Closed = g.Mesh.IsClosed()
				essentials.Must(export.SaveSTL(filepath.Join(outDir, name+".stl"), g.Mesh))
			}
			out.TestCases = append(out.TestCases, s)
		}
	}

	f, err := os.Create("testdata/testcases.yaml")
	essentials.Must(err)
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	essentials.Must(enc.Encode(out))
	essentials.Must(enc.Close())
}
