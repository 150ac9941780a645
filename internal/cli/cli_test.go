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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ezdiff/internal/config"
	"github.com/ajroetker/go-ezdiff/internal/functions"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalText(t *testing.T) {
	out, err := run(t, "eval", "square_plus_2", "--at", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Function")
	assert.Contains(t, lines[0], "Derivative")
	assert.Equal(t, []string{"square_plus_2", "x^2", "+", "2", "f64", "3", "11", "6"}, strings.Fields(lines[1]))
}

func TestEvalAllFunctions(t *testing.T) {
	out, err := run(t, "eval", "--at", "0.5,1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+2*len(functions.Names()))
}

func TestEvalYAML(t *testing.T) {
	out, err := run(t, "eval", "affine", "--at", "2", "--precision", "f32", "-o", "yaml")
	require.NoError(t, err)

	var doc resultDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, functions.Result{
		Function: "affine", Expr: "1 + 3x", Precision: "f32", X: 2, Value: 7, Derivative: 3,
	}, doc.Results[0])
}

func TestEvalTOML(t *testing.T) {
	out, err := run(t, "eval", "square_plus_2", "affine", "--at", "1,2", "-o", "toml")
	require.NoError(t, err)

	var doc resultDoc
	_, err = toml.Decode(out, &doc)
	require.NoError(t, err)
	require.Len(t, doc.Results, 4)
	assert.Equal(t, "square_plus_2", doc.Results[0].Function)
	assert.Equal(t, 1.0, doc.Results[0].X)
	assert.Equal(t, 2.0, doc.Results[1].X)
	assert.Equal(t, "affine", doc.Results[2].Function)
	assert.Equal(t, 7.0, doc.Results[3].Value)
}

func TestEvalConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: yaml
eval:
  - functions: [square_plus_2]
    points: [3]
gradient:
  - functions: [sum_squares]
    points: [[1, 2]]
`), 0o644))

	out, err := run(t, "eval", "--config", path)
	require.NoError(t, err)
	var doc resultDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, 11.0, doc.Results[0].Value)

	out, err = run(t, "grad", "--config", path)
	require.NoError(t, err)
	var grads gradientDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &grads))
	require.Len(t, grads.Gradients, 1)
	assert.Equal(t, 2.0, grads.Gradients[0].DX)
	assert.Equal(t, 4.0, grads.Gradients[0].DY)
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no points", []string{"eval", "affine"}, "--at is required"},
		{"unknown function", []string{"eval", "nope", "--at", "1"}, `unknown function "nope"`},
		{"bad precision", []string{"eval", "--at", "1", "--precision", "f16"}, "unknown precision"},
		{"bad output", []string{"eval", "affine", "--at", "1", "-o", "json"}, "unknown format"},
		{"bad lang", []string{"eval", "affine", "--at", "1", "--lang", "!!"}, "language"},
		{"missing config", []string{"eval", "--config", "/nonexistent/batch.toml"}, "config"},
		{"grad no points", []string{"grad"}, "--at is required"},
		{"grad bad point", []string{"grad", "--at", "1"}, "want x,y"},
		{"grad bad number", []string{"grad", "--at", "1,y"}, "invalid syntax"},
		{"grad unknown", []string{"grad", "nope", "--at", "1,2"}, "unknown gradient function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestGradYAML(t *testing.T) {
	out, err := run(t, "grad", "hypot", "--at", "3,4", "--at", "6, 8", "-o", "yaml")
	require.NoError(t, err)

	var doc gradientDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Gradients, 2)
	for _, g := range doc.Gradients {
		assert.InDelta(t, 0.6, g.DX, 1e-12)
		assert.InDelta(t, 0.8, g.DY, 1e-12)
	}
	assert.InDelta(t, 10.0, doc.Gradients[1].Value, 1e-12)
}

func TestGradText(t *testing.T) {
	out, err := run(t, "grad", "sum_squares", "--at", "1,2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"sum_squares", "x^2", "+", "y^2", "1", "2", "5", "2", "4"}, strings.Fields(lines[1]))
}

func TestParsePoints(t *testing.T) {
	points, err := parsePoints([]string{"1,2", " -0.5 , 3e2 "})
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}, {-0.5, 300}}, points)
}

func TestEvaluateKeepsOrder(t *testing.T) {
	fn, err := functions.Lookup("affine")
	require.NoError(t, err)
	var tasks []evalTask
	for i := range 100 {
		tasks = append(tasks, evalTask{fn: fn, x: float64(i), precision: functions.Float64})
	}
	results, err := evaluate(context.Background(), tasks, 4)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, float64(i), r.X)
		assert.Equal(t, 1+3*float64(i), r.Value)
	}
}

func TestEvaluateCanceled(t *testing.T) {
	fn, err := functions.Lookup("affine")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = evaluate(ctx, []evalTask{{fn: fn, x: 1, precision: functions.Float64}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunctionsCommand(t *testing.T) {
	out, err := run(t, "functions")
	require.NoError(t, err)
	for _, name := range functions.Names() {
		assert.Contains(t, out, name)
	}
	for _, name := range functions.GradientNames() {
		assert.Contains(t, out, name)
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH:")
	assert.Contains(t, out, "Vector extension:")
	assert.Contains(t, out, "Lanes per register:")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ezdiff v"+Version)
}
