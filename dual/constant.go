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

import "github.com/ajroetker/go-ezdiff/lanes"

// Operations with the constant on the left. Results are identical to the
// AddConst and MulConst methods.

// ConstAdd returns c + x.
func ConstAdd[F Float](c F, x Scalar[F]) Scalar[F] {
	return x.AddConst(c)
}

// ConstMul returns c * x.
func ConstMul[F Float](c F, x Scalar[F]) Scalar[F] {
	return x.MulConst(c)
}

// ConstPow returns base^x for a constant base.
// The derivative is ln(base) · base^x · x'.
func ConstPow[F Float](base F, x Scalar[F]) Scalar[F] {
	return x.chain(lanes.Pow(base, x.value), dConstPow(x.value, base, lanes.Ln(base)))
}

// ConstAddVector returns c + x.
func ConstAddVector[F Float, A Width[F]](c F, x Vector[F, A]) Vector[F, A] {
	return x.AddConst(c)
}

// ConstMulVector returns c * x.
func ConstMulVector[F Float, A Width[F]](c F, x Vector[F, A]) Vector[F, A] {
	return x.MulConst(c)
}

// ConstPowVector returns base^x for a constant base, slot by slot.
func ConstPowVector[F Float, A Width[F]](base F, x Vector[F, A]) Vector[F, A] {
	lnBase := lanes.Ln(base)
	return x.chain(
		func(v F) F { return lanes.Pow(base, v) },
		func(v F) F { return dConstPow(v, base, lnBase) },
	)
}
