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

package lanes

import stdmath "math"

// Scalar elementary functions, generic over the element type.
// Each one evaluates in float64 and converts back to F.

// Exp computes e^x.
func Exp[F Float](x F) F { return F(stdmath.Exp(float64(x))) }

// Ln computes the natural logarithm of x.
func Ln[F Float](x F) F { return F(stdmath.Log(float64(x))) }

// Log computes the logarithm of x in the given base.
func Log[F Float](x, base F) F {
	return F(stdmath.Log(float64(x)) / stdmath.Log(float64(base)))
}

// Pow computes x^y.
func Pow[F Float](x, y F) F { return F(stdmath.Pow(float64(x), float64(y))) }

// Sqrt computes the square root of x.
func Sqrt[F Float](x F) F { return F(stdmath.Sqrt(float64(x))) }

// Sin computes sin(x).
func Sin[F Float](x F) F { return F(stdmath.Sin(float64(x))) }

// Cos computes cos(x).
func Cos[F Float](x F) F { return F(stdmath.Cos(float64(x))) }

// Tan computes tan(x).
func Tan[F Float](x F) F { return F(stdmath.Tan(float64(x))) }

// Asin computes arcsin(x). Returns NaN outside [-1, 1].
func Asin[F Float](x F) F { return F(stdmath.Asin(float64(x))) }

// Acos computes arccos(x). Returns NaN outside [-1, 1].
func Acos[F Float](x F) F { return F(stdmath.Acos(float64(x))) }

// Atan computes arctan(x).
func Atan[F Float](x F) F { return F(stdmath.Atan(float64(x))) }
