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

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ezdiff/internal/functions"
)

type resultDoc struct {
	Results []functions.Result `yaml:"results" toml:"results"`
}

type gradientDoc struct {
	Gradients []functions.GradientResult `yaml:"gradients" toml:"gradients"`
}

func writeResults(w io.Writer, format, lang string, results []functions.Result) error {
	switch format {
	case "text", "":
		return writeTable(w, lang,
			[]string{"function", "expr", "precision", "x", "value", "derivative"},
			lo.Map(results, func(r functions.Result, _ int) []any {
				return []any{r.Function, r.Expr, r.Precision, r.X, r.Value, r.Derivative}
			}))
	default:
		return encode(w, format, resultDoc{Results: results})
	}
}

func writeGradients(w io.Writer, format, lang string, results []functions.GradientResult) error {
	switch format {
	case "text", "":
		return writeTable(w, lang,
			[]string{"function", "expr", "x", "y", "value", "df/dx", "df/dy"},
			lo.Map(results, func(r functions.GradientResult, _ int) []any {
				return []any{r.Function, r.Expr, r.X, r.Y, r.Value, r.DX, r.DY}
			}))
	default:
		return encode(w, format, gradientDoc{Gradients: results})
	}
}

// writeTable prints rows under titled headers. Numbers are formatted for
// the language tag.
func writeTable(w io.Writer, lang string, headers []string, rows [][]any) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("output: language %q: %w", lang, err)
	}
	p := message.NewPrinter(tag)
	title := cases.Title(tag)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(lo.Map(headers, func(h string, _ int) string {
		return title.String(h)
	}), "\t"))
	for _, row := range rows {
		cells := lo.Map(row, func(c any, _ int) string {
			if s, ok := c.(string); ok {
				return s
			}
			return p.Sprintf("%v", c)
		})
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func encode(w io.Writer, format string, doc any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("output: yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("output: toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("output: unknown format %q (want text, yaml or toml)", format)
}
