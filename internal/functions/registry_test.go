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

package functions

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in      string
		want    Precision
		wantErr bool
	}{
		{"", Float64, false},
		{"f64", Float64, false},
		{"float64", Float64, false},
		{"f32", Float32, false},
		{"float32", Float32, false},
		{"f16", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePrecision(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParsePrecision(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePrecision(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, slices.IsSorted(names), "names not sorted: %v", names)
	assert.Len(t, All(), len(names))
	for _, f := range All() {
		assert.NotEmpty(t, f.Expr, "function %s has no expression", f.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	assert.ErrorContains(t, err, `unknown function "nope"`)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantValue float64
		wantDeriv float64
	}{
		{"square_plus_2", 3, 11, 6},
		{"affine", 2, 7, 3},
		{"cos_x2", 2, math.Cos(4), -4 * math.Sin(4)},
		{"cos_x2_3x", 2, math.Cos(4) + 6, -4*math.Sin(4) + 3},
		{"sin_cos", 1, math.Sin(1) * math.Cos(1), math.Cos(2)},
		{"cube_root", 8, 8, 1},
		{"sigmoid", 0, 0.5, 0.25},
		{"exp2", 3, 8, 8 * math.Ln2},
		{"sqrt_ln", 1, 0, 1},
		{"atan_ratio", 0, 0, 1},
	}
	for _, tt := range tests {
		f, err := Lookup(tt.name)
		require.NoError(t, err)

		r := f.Eval(tt.x, Float64)
		assert.InDelta(t, tt.wantValue, r.Value, 1e-12, "%s(%v) value", tt.name, tt.x)
		assert.InDelta(t, tt.wantDeriv, r.Derivative, 1e-12, "%s(%v) derivative", tt.name, tt.x)

		r32 := f.Eval(tt.x, Float32)
		assert.Equal(t, "f32", r32.Precision)
		assert.InDelta(t, tt.wantValue, r32.Value, 1e-5, "%s(%v) f32 value", tt.name, tt.x)
		assert.InDelta(t, tt.wantDeriv, r32.Derivative, 1e-5, "%s(%v) f32 derivative", tt.name, tt.x)
	}
}

func TestCubeRootAtZeroIsNaN(t *testing.T) {
	f, err := Lookup("cube_root")
	require.NoError(t, err)
	r := f.Eval(0, Float32)
	assert.Equal(t, 0.0, r.Value)
	assert.True(t, math.IsNaN(r.Derivative), "derivative = %v", r.Derivative)
}

func TestGradients(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		wantValue float64
		wantDX    float64
		wantDY    float64
	}{
		{"xy_sin", 1, 2, 2 + math.Sin(1), 2 + math.Cos(1), 1},
		{"sum_squares", 1, 2, 5, 2, 4},
		{"exp_cos", 0, 0, 1, 1, 0},
		{"hypot", 3, 4, 5, 0.6, 0.8},
	}
	for _, tt := range tests {
		g, err := LookupGradient(tt.name)
		require.NoError(t, err)
		r := g.Eval(tt.x, tt.y)
		assert.InDelta(t, tt.wantValue, r.Value, 1e-12, tt.name)
		assert.InDelta(t, tt.wantDX, r.DX, 1e-12, tt.name)
		assert.InDelta(t, tt.wantDY, r.DY, 1e-12, tt.name)
	}

	assert.True(t, slices.IsSorted(GradientNames()))
	assert.Len(t, AllGradients(), len(GradientNames()))
	_, err := LookupGradient("nope")
	assert.Error(t, err)
}
