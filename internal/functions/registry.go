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

// Package functions holds the example functions the ezdiff command
// differentiates. Each function is written once against dual.Number and
// instantiated for float32 and float64 scalars, or for two-slot vectors
// when it has two variables.
package functions

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-ezdiff/dual"
)

// Precision selects the element type an evaluation runs in.
type Precision string

const (
	Float32 Precision = "f32"
	Float64 Precision = "f64"
)

// ParsePrecision accepts "f32"/"float32" and "f64"/"float64".
// The empty string selects Float64.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "f32", "float32":
		return Float32, nil
	case "", "f64", "float64":
		return Float64, nil
	}
	return "", fmt.Errorf("unknown precision %q (want f32 or f64)", s)
}

// Function is a single-variable example function.
type Function struct {
	Name   string
	Expr   string
	eval32 func(dual.Scalar[float32]) dual.Scalar[float32]
	eval64 func(dual.Scalar[float64]) dual.Scalar[float64]
}

// Result is one (value, derivative) pair of a function at a point.
type Result struct {
	Function   string  `yaml:"function" toml:"function"`
	Expr       string  `yaml:"expr" toml:"expr"`
	Precision  string  `yaml:"precision" toml:"precision"`
	X          float64 `yaml:"x" toml:"x"`
	Value      float64 `yaml:"value" toml:"value"`
	Derivative float64 `yaml:"derivative" toml:"derivative"`
}

// Eval evaluates f and its derivative at x. For Float32 the point is
// rounded to float32 first and the results are widened back.
func (f Function) Eval(x float64, p Precision) Result {
	r := Result{Function: f.Name, Expr: f.Expr, Precision: string(p), X: x}
	switch p {
	case Float32:
		y := f.eval32(dual.New(float32(x)))
		r.Value, r.Derivative = float64(y.Value()), float64(y.Derivative())
	default:
		y := f.eval64(dual.New(x))
		r.Value, r.Derivative = y.Value(), y.Derivative()
	}
	return r
}

func cosSquare[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Pow(2).Cos()
}

func cosSquarePlusLinear[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Pow(2).Cos().Add(x.MulConst(3))
}

func cubeThenRoot[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Pow(3).Pow(1.0 / 3)
}

func squarePlusTwo[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Mul(x).AddConst(2)
}

func sinTimesCos[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Sin().Mul(x.Cos())
}

func affine[T dual.Number[T, F], F dual.Float](x T) T {
	return x.MulConst(3).AddConst(1)
}

func sigmoid[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Neg().Exp().AddConst(1).Pow(-1)
}

// exp2 computes 2^x as e^(x·ln 2).
func exp2[T dual.Number[T, F], F dual.Float](x T) T {
	return x.MulConst(F(math.Ln2)).Exp()
}

func sqrtLog[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Sqrt().Mul(x.Ln())
}

func atanRatio[T dual.Number[T, F], F dual.Float](x T) T {
	return x.Atan().Div(x.AddConst(1))
}

var registry = map[string]Function{}

func register(name, expr string,
	f32 func(dual.Scalar[float32]) dual.Scalar[float32],
	f64 func(dual.Scalar[float64]) dual.Scalar[float64],
) {
	if _, dup := registry[name]; dup {
		panic("functions: duplicate registration of " + name)
	}
	registry[name] = Function{Name: name, Expr: expr, eval32: f32, eval64: f64}
}

func init() {
	register("cos_x2", "cos(x^2)",
		cosSquare[dual.Scalar[float32], float32], cosSquare[dual.Scalar[float64], float64])
	register("cos_x2_3x", "cos(x^2) + 3x",
		cosSquarePlusLinear[dual.Scalar[float32], float32], cosSquarePlusLinear[dual.Scalar[float64], float64])
	register("cube_root", "(x^3)^(1/3)",
		cubeThenRoot[dual.Scalar[float32], float32], cubeThenRoot[dual.Scalar[float64], float64])
	register("square_plus_2", "x^2 + 2",
		squarePlusTwo[dual.Scalar[float32], float32], squarePlusTwo[dual.Scalar[float64], float64])
	register("sin_cos", "sin(x) cos(x)",
		sinTimesCos[dual.Scalar[float32], float32], sinTimesCos[dual.Scalar[float64], float64])
	register("affine", "1 + 3x",
		affine[dual.Scalar[float32], float32], affine[dual.Scalar[float64], float64])
	register("sigmoid", "1 / (1 + e^-x)",
		sigmoid[dual.Scalar[float32], float32], sigmoid[dual.Scalar[float64], float64])
	register("exp2", "2^x",
		exp2[dual.Scalar[float32], float32], exp2[dual.Scalar[float64], float64])
	register("sqrt_ln", "sqrt(x) ln(x)",
		sqrtLog[dual.Scalar[float32], float32], sqrtLog[dual.Scalar[float64], float64])
	register("atan_ratio", "atan(x) / (x + 1)",
		atanRatio[dual.Scalar[float32], float32], atanRatio[dual.Scalar[float64], float64])
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, error) {
	f, ok := registry[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown function %q", name)
	}
	return f, nil
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// All returns every registered function, sorted by name.
func All() []Function {
	return lo.Map(Names(), func(name string, _ int) Function {
		return registry[name]
	})
}
