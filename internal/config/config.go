// Copyright 2026 go-ezdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads batch evaluation files for the ezdiff command.
//
// A file lists functions and the points to evaluate them at. TOML and YAML
// are both accepted; the format is chosen from the file extension.
//
//	precision = "f32"
//	output = "yaml"
//
//	[[eval]]
//	functions = ["cos_x2", "sigmoid"]
//	points = [0.0, 0.5, 1.0]
//
//	[[gradient]]
//	functions = ["hypot"]
//	points = [[3.0, 4.0]]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ezdiff/internal/functions"
)

// EnvVar names the environment variable holding the default config path.
const EnvVar = "EZDIFF_CONFIG"

// Format is a config file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// Config is a batch of evaluations.
type Config struct {
	// Precision is the default for every Eval that does not set its own.
	Precision string     `toml:"precision" yaml:"precision"`
	Output    string     `toml:"output" yaml:"output"`
	Evals     []Eval     `toml:"eval" yaml:"eval"`
	Gradients []Gradient `toml:"gradient" yaml:"gradient"`
}

// Eval evaluates every function at every point.
type Eval struct {
	Functions []string  `toml:"functions" yaml:"functions"`
	Points    []float64 `toml:"points" yaml:"points"`
	Precision string    `toml:"precision" yaml:"precision"`
}

// Gradient evaluates two-variable functions at (x, y) points.
type Gradient struct {
	Functions []string     `toml:"functions" yaml:"functions"`
	Points    [][2]float64 `toml:"points" yaml:"points"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates data in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DetectFormat picks the format from the file extension, defaulting to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks that every function name and precision is known.
func (c *Config) Validate() error {
	if _, err := functions.ParsePrecision(c.Precision); err != nil {
		return err
	}
	switch c.Output {
	case "", "text", "yaml", "toml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	for i, e := range c.Evals {
		if _, err := functions.ParsePrecision(e.Precision); err != nil {
			return fmt.Errorf("eval[%d]: %w", i, err)
		}
		if len(e.Points) == 0 {
			return fmt.Errorf("eval[%d]: no points", i)
		}
		for _, name := range e.Functions {
			if _, err := functions.Lookup(name); err != nil {
				return fmt.Errorf("eval[%d]: %w", i, err)
			}
		}
	}
	for i, g := range c.Gradients {
		if len(g.Points) == 0 {
			return fmt.Errorf("gradient[%d]: no points", i)
		}
		for _, name := range g.Functions {
			if _, err := functions.LookupGradient(name); err != nil {
				return fmt.Errorf("gradient[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// PrecisionFor returns the precision of e, falling back to the config default.
func (c *Config) PrecisionFor(e Eval) functions.Precision {
	s := e.Precision
	if s == "" {
		s = c.Precision
	}
	p, _ := functions.ParsePrecision(s)
	return p
}
