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

package dual

// Number is the operation set shared by Scalar[F] and every Vector[F, A].
// Writing a function against Number lets the same expression be evaluated
// with one derivative or with many:
//
//	func square[T dual.Number[T, F], F dual.Float](x T) T { return x.Mul(x) }
//
//	square[dual.Scalar[float64], float64](dual.New(3.0))
//	square[dual.Vec4[float64], float64](dual.NewVec4(3.0))
type Number[T any, F Float] interface {
	Neg() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	AddConst(F) T
	MulConst(F) T
	Pow(F) T
	Sqrt() T
	Exp() T
	Ln() T
	Log(F) T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	String() string
}

var (
	_ Number[Scalar[float32], float32] = Scalar[float32]{}
	_ Number[Scalar[float64], float64] = Scalar[float64]{}
	_ Number[Vec4[float32], float32]   = Vec4[float32]{}
	_ Number[Vec4[float64], float64]   = Vec4[float64]{}
)
