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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings of one run.  Settings are read from an
// optional YAML file first, flags given on the command line take
// precedence.
type config struct {
	Font      string   `yaml:"font"`
	Height    float64  `yaml:"height"`
	Scale     *float64 `yaml:"scale"`
	Spacing   float64  `yaml:"spacing"`
	Name      string   `yaml:"name"`
	Out       string   `yaml:"out"`
	Tolerance float64  `yaml:"tolerance"`
	Workers   int      `yaml:"workers"`
	Preview   string   `yaml:"preview"`
	Verbose   bool     `yaml:"verbose"`
}

// defaultOutDir is the directory for generated files.
const defaultOutDir = "generated"

func defaultConfig() *config {
	return &config{
		Height:  5.0,
		Spacing: -0.1,
		Out:     defaultOutDir,
		Preview: "none",
	}
}

// loadConfig reads a YAML configuration file into cfg.  Keys which are
// not present in the file keep their previous values.
func loadConfig(fileName string, cfg *config) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", fileName, err)
	}
	return nil
}

// scale returns the scale factor.  Word mode uses a smaller default, so
// that words of a typical font come out a few centimetres long.
func (c *config) scale() float64 {
	if c.Scale != nil {
		return *c.Scale
	}
	if c.Name != "" {
		return 0.03
	}
	return 1.0
}

func (c *config) check() error {
	if c.Font == "" {
		return fmt.Errorf("no font given, use --font")
	}
	if c.Out == "" {
		return fmt.Errorf("empty output directory")
	}
	switch c.Preview {
	case "none", "png", "pdf":
	default:
		return fmt.Errorf("invalid preview format %q", c.Preview)
	}
	return nil
}
