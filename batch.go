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
	"context"
	"fmt"
	"sync"
	"unicode"
)

// Result is the outcome of building one glyph in a batch.
type Result struct {
	Rune  rune
	Glyph *Glyph
	Err   error
}

// Batch builds the solids for all given characters concurrently.  The
// results are in the order of the input.  A failure for one character
// does not affect the others.
//
// Once ctx is cancelled, no more glyphs are started.  The results for
// characters which were not started carry the context error.
func (b *Builder) Batch(ctx context.Context, runes []rune, height, scale float64) []Result {
	res := make([]Result, len(runes))
	b.forEach(ctx, len(runes), func(i int) {
		r := runes[i]
		res[i].Rune = r
		res[i].Glyph, res[i].Err = b.Build(ctx, r, height, scale)
	}, func(i int, err error) {
		res[i] = Result{Rune: runes[i], Err: err}
	})
	return res
}

// forEach calls fn(i) for i = 0, ..., n-1, running at most
// b.opt.Workers calls concurrently.  If ctx is cancelled, skip(i, err) is
// called instead for all work items which have not been started.
func (b *Builder) forEach(ctx context.Context, n int, fn func(i int), skip func(i int, err error)) {
	sem := make(chan struct{}, b.opt.Workers)
	var wg sync.WaitGroup

	for i := range n {
		if err := ctx.Err(); err != nil {
			skip(i, err)
			continue
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			skip(i, ctx.Err())
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i)
		}()
	}
	wg.Wait()
}

// Alphabet returns the characters A to Z, followed by a to z.
func Alphabet() []rune {
	res := make([]rune, 0, 52)
	for r := 'A'; r <= 'Z'; r++ {
		res = append(res, r)
	}
	for r := 'a'; r <= 'z'; r++ {
		res = append(res, r)
	}
	return res
}

// FileName returns the name of the STL file for a single character.
// Upper and lower case letters get distinct names, so that the files can
// coexist on case-insensitive file systems.
func FileName(r rune) string {
	switch {
	case r < unicode.MaxASCII && unicode.IsUpper(r):
		return fmt.Sprintf("upper_%c.stl", r)
	case r < unicode.MaxASCII && unicode.IsLower(r):
		return fmt.Sprintf("lower_%c.stl", r)
	default:
		return fmt.Sprintf("U+%04X.stl", r)
	}
}
