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

// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A dual number pairs a value with a derivative. Every operation in this
// package computes its result value and applies the chain rule to compute
// the result derivative, so after evaluating f on a seeded variable the pair
// is (f(x), f'(x)). There is no graph, tape or tracing: a function is
// differentiated by writing it in terms of the methods below.
//
// # Representations
//
// Scalar[F] tracks one derivative. Vector[F, A] tracks len(A) derivative
// slots at once, where A is a fixed array type such as [3]float64; each slot
// obeys exactly the scalar rules. The element type F is float32 or float64.
// Mixing element types or widths does not compile.
//
// # Seeding
//
// New and NewVector seed the derivative with 1, which declares the value to
// be the independent variable. A value that must stay fixed has to enter an
// expression through the constant operations (AddConst, MulConst, ConstAdd,
// ConstMul, ConstPow) instead: constructing it with New silently gives it a
// derivative of 1 and the result derivative is wrong. This is not detected.
//
// For gradients, Partial seeds a one-hot derivative so that slot i carries
// the partial derivative with respect to the i-th variable.
//
// # Exceptional Values
//
// No operation returns an error. Division by zero, logarithms of
// non-positive numbers, Asin/Acos outside [-1, 1] and similar cases produce
// ±Inf or NaN exactly as IEEE 754 arithmetic does, and propagate through
// later operations.
//
// # Example
//
//	// f(x) = cos(x²) + 3x at x = 2
//	x := dual.New[float32](2)
//	y := x.Pow(2).Cos().Add(dual.ConstMul(3, x))
//	fmt.Println(y.Value(), y.Derivative())
package dual

import "github.com/ajroetker/go-ezdiff/lanes"

// Float is the set of element types a dual number may hold.
type Float = lanes.Float

// Width is the set of derivative slot arrays a Vector may use:
// [1]F through [16]F.
type Width[F Float] interface {
	lanes.Width[F]
}
