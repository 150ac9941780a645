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
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-ezdiff/dual"
)

// Gradient is a two-variable example function f(x, y).
// It is evaluated once with x seeded in slot 0 and y in slot 1, so the
// derivative slots are ∂f/∂x and ∂f/∂y.
type Gradient struct {
	Name string
	Expr string
	eval func(x, y dual.Vec2[float64]) dual.Vec2[float64]
}

// GradientResult is f(x, y) and its gradient.
type GradientResult struct {
	Function string  `yaml:"function" toml:"function"`
	Expr     string  `yaml:"expr" toml:"expr"`
	X        float64 `yaml:"x" toml:"x"`
	Y        float64 `yaml:"y" toml:"y"`
	Value    float64 `yaml:"value" toml:"value"`
	DX       float64 `yaml:"df_dx" toml:"df_dx"`
	DY       float64 `yaml:"df_dy" toml:"df_dy"`
}

// Eval evaluates g and its gradient at (x, y).
func (g Gradient) Eval(x, y float64) GradientResult {
	f := g.eval(dual.PartialVec2(x, 0), dual.PartialVec2(y, 1))
	d := f.Derivative()
	return GradientResult{
		Function: g.Name,
		Expr:     g.Expr,
		X:        x,
		Y:        y,
		Value:    f.Slot(0).Value(),
		DX:       d[0],
		DY:       d[1],
	}
}

var gradients = map[string]Gradient{
	"xy_sin": {
		Name: "xy_sin",
		Expr: "x y + sin(x)",
		eval: func(x, y dual.Vec2[float64]) dual.Vec2[float64] { return x.Mul(y).Add(x.Sin()) },
	},
	"sum_squares": {
		Name: "sum_squares",
		Expr: "x^2 + y^2",
		eval: func(x, y dual.Vec2[float64]) dual.Vec2[float64] { return x.Pow(2).Add(y.Pow(2)) },
	},
	"exp_cos": {
		Name: "exp_cos",
		Expr: "e^x cos(y)",
		eval: func(x, y dual.Vec2[float64]) dual.Vec2[float64] { return x.Exp().Mul(y.Cos()) },
	},
	"hypot": {
		Name: "hypot",
		Expr: "sqrt(x^2 + y^2)",
		eval: func(x, y dual.Vec2[float64]) dual.Vec2[float64] { return x.Mul(x).Add(y.Mul(y)).Sqrt() },
	},
}

// LookupGradient returns the two-variable function registered under name.
func LookupGradient(name string) (Gradient, error) {
	g, ok := gradients[name]
	if !ok {
		return Gradient{}, fmt.Errorf("unknown gradient function %q", name)
	}
	return g, nil
}

// GradientNames returns the two-variable function names in sorted order.
func GradientNames() []string {
	names := lo.Keys(gradients)
	slices.Sort(names)
	return names
}

// AllGradients returns every two-variable function, sorted by name.
func AllGradients() []Gradient {
	return lo.Map(GradientNames(), func(name string, _ int) Gradient {
		return gradients[name]
	})
}
