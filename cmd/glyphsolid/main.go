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

// Command glyphsolid converts the glyphs of a font into STL files.
//
// In alphabet mode, one file is written for every letter A-Z and a-z:
//
//	glyphsolid --font DejaVuSans.ttf --height 5 --out letters/
//
// In word mode, the letters of a word are placed next to each other and
// written to a single file, generated/Hello.stl in this example:
//
//	glyphsolid --font DejaVuSans.ttf --name Hello
//
// Output goes to the directory "generated" unless --out is given.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"seehuhn.de/go/glyphsolid"
	"seehuhn.de/go/glyphsolid/export"
	"seehuhn.de/go/glyphsolid/outline"
	"seehuhn.de/go/glyphsolid/region"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	// size of the preview images, in pixels or PDF points
	previewSize = 256
)

// fonts keeps loaded fonts across runs within one process.
var fonts = outline.NewCache(4)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	} else if err != nil {
		fmt.Fprintf(stderr, "glyphsolid: %v\n", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	font, err := fonts.LoadFile(cfg.Font)
	if err != nil {
		logger.Error("cannot load font", "err", err)
		return exitError
	}
	logger.Debug("font loaded", "file", cfg.Font, "unitsPerEm", font.UnitsPerEm())

	b := glyphsolid.NewBuilder(font, &glyphsolid.Options{
		Tolerance: cfg.Tolerance,
		Workers:   cfg.Workers,
		Logger:    logger,
	})

	if cfg.Name != "" {
		err = writeWord(ctx, b, cfg, stdout)
		if err != nil {
			logger.Error("cannot generate word", "name", cfg.Name, "err", err)
			return exitError
		}
		return exitOK
	}

	failed := writeAlphabet(ctx, b, cfg, stdout, logger)
	if failed > 0 {
		logger.Error("some glyphs failed", "count", failed)
		return exitError
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := pflag.NewFlagSet("glyphsolid", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	def := defaultConfig()
	var (
		configFile string
		flags      config
		scale      float64
	)
	fs.StringVar(&configFile, "config", "", "read settings from this YAML file")
	fs.StringVarP(&flags.Font, "font", "f", "", "font file (TrueType or OpenType)")
	fs.Float64Var(&flags.Height, "height", def.Height, "extrusion height")
	fs.Float64Var(&scale, "scale", 1.0, "scale factor for the glyph outlines (0.03 in word mode)")
	fs.Float64Var(&flags.Spacing, "spacing", def.Spacing, "letter spacing in word mode, relative to the glyph width")
	fs.StringVar(&flags.Name, "name", "", "generate a single solid for this word")
	fs.StringVarP(&flags.Out, "out", "o", def.Out, "output directory")
	fs.Float64Var(&flags.Tolerance, "tolerance", 0, "curve flattening tolerance in font units")
	fs.IntVar(&flags.Workers, "workers", 0, "number of glyphs built in parallel")
	fs.StringVar(&flags.Preview, "preview", def.Preview, "write footprint previews: none, png or pdf")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "print debug messages")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := def
	if configFile != "" {
		err = loadConfig(configFile, cfg)
		if err != nil {
			return nil, err
		}
	}

	// flags on the command line override the configuration file
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = flags.Font
		case "height":
			cfg.Height = flags.Height
		case "scale":
			cfg.Scale = &scale
		case "spacing":
			cfg.Spacing = flags.Spacing
		case "name":
			cfg.Name = flags.Name
		case "out":
			cfg.Out = flags.Out
		case "tolerance":
			cfg.Tolerance = flags.Tolerance
		case "workers":
			cfg.Workers = flags.Workers
		case "preview":
			cfg.Preview = flags.Preview
		case "verbose":
			cfg.Verbose = flags.Verbose
		}
	})

	err = cfg.check()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeWord(ctx context.Context, b *glyphsolid.Builder, cfg *config, stdout io.Writer) error {
	word, err := b.Layout(ctx, cfg.Name, cfg.Height, cfg.scale(), cfg.Spacing)
	if err != nil {
		return err
	}

	err = os.MkdirAll(cfg.Out, 0o755)
	if err != nil {
		return err
	}
	fileName := filepath.Join(cfg.Out, cfg.Name+".stl")
	err = export.SaveSTL(fileName, word.Mesh)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d triangles\n", fileName, len(word.Mesh.Faces))

	return writePreview(cfg.Preview, fileName, word.Regions())
}

// writeAlphabet writes one file per letter and returns the number of
// letters which could not be converted.
func writeAlphabet(ctx context.Context, b *glyphsolid.Builder, cfg *config, stdout io.Writer, logger *slog.Logger) int {
	dir := cfg.Out
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		logger.Error("cannot create output directory", "err", err)
		return len(glyphsolid.Alphabet())
	}

	failed := 0
	for _, res := range b.Batch(ctx, glyphsolid.Alphabet(), cfg.Height, cfg.scale()) {
		if res.Err != nil {
			logger.Error("glyph failed", "rune", string(res.Rune), "err", res.Err)
			failed++
			continue
		}
		if res.Glyph.Empty {
			logger.Warn("glyph has no outline", "rune", string(res.Rune))
			continue
		}

		fileName := filepath.Join(dir, glyphsolid.FileName(res.Rune))
		err := export.SaveSTL(fileName, res.Glyph.Mesh)
		if err == nil {
			err = writePreview(cfg.Preview, fileName, res.Glyph.Regions)
		}
		if err != nil {
			logger.Error("cannot write glyph", "rune", string(res.Rune), "err", err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: %d triangles\n", fileName, len(res.Glyph.Mesh.Faces))
	}
	return failed
}

// writePreview writes the footprint next to the STL file.
func writePreview(format, stlName string, regs []region.Region) error {
	base := strings.TrimSuffix(stlName, filepath.Ext(stlName))
	switch format {
	case "png":
		return export.SaveFootprintPNG(base+".png", regs, previewSize)
	case "pdf":
		return export.SaveFootprintPDF(base+".pdf", regs, previewSize)
	default:
		return nil
	}
}
