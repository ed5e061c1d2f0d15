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

package glyphsolid

import (
	"errors"
	"fmt"

	"seehuhn.de/go/glyphsolid/contour"
	"seehuhn.de/go/glyphsolid/extrude"
	"seehuhn.de/go/glyphsolid/outline"
)

// Errors raised by the individual pipeline stages.
type (
	FontLoadError               = outline.FontLoadError
	GlyphNotFoundError          = outline.GlyphNotFoundError
	MalformedGlyphError         = outline.MalformedGlyphError
	DegenerateContourError      = contour.DegenerateContourError
	InvalidExtrusionHeightError = extrude.InvalidExtrusionHeightError
)

// ErrInvalidScale is returned if the scale factor is not positive.
var ErrInvalidScale = errors.New("glyphsolid: scale must be positive")

// EmptyInputError is returned when a word layout is requested for an
// empty string.
type EmptyInputError struct{}

func (*EmptyInputError) Error() string {
	return "glyphsolid: empty input text"
}

// Stage identifies a step of the glyph pipeline.
type Stage int

const (
	StageLookup Stage = iota
	StageReconstruct
	StageAssemble
	StageExtrude
)

func (s Stage) String() string {
	switch s {
	case StageLookup:
		return "lookup"
	case StageReconstruct:
		return "reconstruct"
	case StageAssemble:
		return "assemble"
	case StageExtrude:
		return "extrude"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// BuildError records the character and the pipeline stage of an error.
// The original error is available via Unwrap, so that errors.As finds the
// typed error raised by the stage.
type BuildError struct {
	Rune  rune
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("glyphsolid: %s %q: %v", e.Stage, e.Rune, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
