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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// termsPerLine is how many ~[N]F terms go on one line of the Width union.
const termsPerLine = 8

// Generator writes the width constraint and the fixed-width Vector aliases.
type Generator struct {
	MaxWidth     int    // Largest array length, at least 1
	LanesOutput  string // Output path for the Width constraint (package lanes)
	DualOutput   string // Output path for the VecN aliases (package dual)
	LanesPackage string // Package clause for LanesOutput
	DualPackage  string // Package clause for DualOutput
	Verbose      bool
}

var widthsTemplate = template.Must(template.New("widths").Parse(`// Code generated by dualgen. DO NOT EDIT.

package {{.Package}}

// Width is the set of fixed-width lane arrays with element type F.
type Width[F Float] interface {
	{{.Union}}
}
`))

var vecTemplate = template.Must(template.New("vec").Parse(`// Code generated by dualgen. DO NOT EDIT.

package {{.Package}}
{{range .Widths}}
// Vec{{.}} is a Vector with {{.}} derivative slot{{if ne . 1}}s{{end}}.
type Vec{{.}}[F Float] = Vector[F, [{{.}}]F]

// NewVec{{.}} returns NewVector for width {{.}}.
func NewVec{{.}}[F Float](v F) Vec{{.}}[F] { return NewVector[F, [{{.}}]F](v) }

// PartialVec{{.}} returns Partial for width {{.}}.
func PartialVec{{.}}[F Float](v F, slot int) Vec{{.}}[F] { return Partial[F, [{{.}}]F](v, slot) }
{{end}}`))

// Run renders both files and writes them.
func (g *Generator) Run() error {
	if g.MaxWidth < 1 {
		return fmt.Errorf("max width must be at least 1, got %d", g.MaxWidth)
	}
	if g.LanesPackage == "" {
		g.LanesPackage = "lanes"
	}
	if g.DualPackage == "" {
		g.DualPackage = "dual"
	}

	if g.LanesOutput != "" {
		src, err := g.RenderWidths()
		if err != nil {
			return fmt.Errorf("render widths: %w", err)
		}
		if err := g.write(g.LanesOutput, src); err != nil {
			return err
		}
	}
	if g.DualOutput != "" {
		src, err := g.RenderVectors()
		if err != nil {
			return fmt.Errorf("render vectors: %w", err)
		}
		if err := g.write(g.DualOutput, src); err != nil {
			return err
		}
	}
	return nil
}

// RenderWidths returns the formatted source of the Width constraint.
func (g *Generator) RenderWidths() ([]byte, error) {
	var buf bytes.Buffer
	err := widthsTemplate.Execute(&buf, struct {
		Package string
		Union   string
	}{g.LanesPackage, widthUnion(g.MaxWidth)})
	if err != nil {
		return nil, err
	}
	return format("widths_gen.go", buf.Bytes())
}

// RenderVectors returns the formatted source of the VecN aliases.
func (g *Generator) RenderVectors() ([]byte, error) {
	widths := make([]int, g.MaxWidth)
	for i := range widths {
		widths[i] = i + 1
	}
	var buf bytes.Buffer
	err := vecTemplate.Execute(&buf, struct {
		Package string
		Widths  []int
	}{g.DualPackage, widths})
	if err != nil {
		return nil, err
	}
	return format("vec_gen.go", buf.Bytes())
}

func (g *Generator) write(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if g.Verbose {
		fmt.Fprintf(os.Stderr, "dualgen: wrote %s (%d bytes)\n", path, len(src))
	}
	return nil
}

// widthUnion builds "~[1]F | ~[2]F | ..." wrapped every termsPerLine terms.
func widthUnion(maxWidth int) string {
	var lines []string
	var terms []string
	for n := 1; n <= maxWidth; n++ {
		terms = append(terms, fmt.Sprintf("~[%d]F", n))
		if len(terms) == termsPerLine {
			lines = append(lines, strings.Join(terms, " | "))
			terms = nil
		}
	}
	if len(terms) > 0 {
		lines = append(lines, strings.Join(terms, " | "))
	}
	return strings.Join(lines, " |\n\t\t")
}

// format runs the source through goimports so the output is gofmt-clean.
func format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", filename, err, src)
	}
	return out, nil
}
