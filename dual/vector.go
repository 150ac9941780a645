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

import (
	"fmt"

	"github.com/ajroetker/go-ezdiff/lanes"
)

// Vector is a dual number with len(A) derivative slots.
//
// The value is broadcast across the slots, so a Vector built from one
// number behaves in every slot like a Scalar built from the same number.
// Slot i of the derivative is the partial derivative with respect to the
// i-th independent variable when the inputs were seeded with Partial.
//
// Use the VecN aliases (Vec2, Vec3, ...) instead of spelling out A.
type Vector[F Float, A Width[F]] struct {
	value      A
	derivative A
}

// NewVector returns the independent variable with value v in every slot and
// every derivative slot seeded with 1.
func NewVector[F Float, A Width[F]](v F) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Broadcast[F, A](v),
		derivative: lanes.Broadcast[F, A](1),
	}
}

// Partial returns the variable with value v whose derivative is 1 in slot
// and 0 elsewhere. It panics if slot is not in [0, len(A)).
//
//	x := dual.PartialVec2(1.0, 0)
//	y := dual.PartialVec2(2.0, 1)
//	f := x.Mul(y) // Derivative() == [2 1]
func Partial[F Float, A Width[F]](v F, slot int) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Broadcast[F, A](v),
		derivative: lanes.Basis[F, A](slot),
	}
}

// MakeVector returns a dual number with explicit per-slot values and
// derivatives.
func MakeVector[F Float, A Width[F]](value, derivative A) Vector[F, A] {
	return Vector[F, A]{value: value, derivative: derivative}
}

// Value returns a copy of the per-slot values.
func (x Vector[F, A]) Value() A { return x.value }

// Derivative returns a copy of the per-slot derivatives.
func (x Vector[F, A]) Derivative() A { return x.derivative }

// Width returns the number of slots.
func (x Vector[F, A]) Width() int { return len(x.value) }

// Slot returns slot i as a Scalar. It panics if i is out of range.
func (x Vector[F, A]) Slot(i int) Scalar[F] {
	return Make(x.value[i], x.derivative[i])
}

// String formats x as "(value, derivative)".
func (x Vector[F, A]) String() string {
	return fmt.Sprintf("(%v, %v)", x.value, x.derivative)
}

// chain applies f to every slot, scaling each derivative slot by df of the
// slot's input value.
func (x Vector[F, A]) chain(f, df func(F) F) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Map[F](x.value, f),
		derivative: lanes.Mul[F](lanes.Map[F](x.value, df), x.derivative),
	}
}

// Neg returns -x.
func (x Vector[F, A]) Neg() Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Neg[F](x.value),
		derivative: lanes.Neg[F](x.derivative),
	}
}

// Add returns x + y (sum rule).
func (x Vector[F, A]) Add(y Vector[F, A]) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Add[F](x.value, y.value),
		derivative: lanes.Add[F](x.derivative, y.derivative),
	}
}

// Sub returns x - y (difference rule).
func (x Vector[F, A]) Sub(y Vector[F, A]) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Sub[F](x.value, y.value),
		derivative: lanes.Sub[F](x.derivative, y.derivative),
	}
}

// Mul returns x * y (product rule).
func (x Vector[F, A]) Mul(y Vector[F, A]) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.Mul[F](x.value, y.value),
		derivative: lanes.MulAdd[F](x.value, y.derivative, y.value, x.derivative),
	}
}

// Div returns x / y, slot by slot, with the same derivative rule as
// Scalar.Div: (x·y' + y·x') / y².
func (x Vector[F, A]) Div(y Vector[F, A]) Vector[F, A] {
	return Vector[F, A]{
		value: lanes.Div[F](x.value, y.value),
		derivative: lanes.Div[F](
			lanes.MulAdd[F](x.value, y.derivative, y.value, x.derivative),
			lanes.Mul[F](y.value, y.value),
		),
	}
}

// AddConst returns x + c. The constant contributes no derivative.
func (x Vector[F, A]) AddConst(c F) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.AddScalar[F](x.value, c),
		derivative: x.derivative,
	}
}

// MulConst returns x * c (constant multiple rule).
func (x Vector[F, A]) MulConst(c F) Vector[F, A] {
	return Vector[F, A]{
		value:      lanes.MulScalar[F](x.value, c),
		derivative: lanes.MulScalar[F](x.derivative, c),
	}
}

// Pow returns x raised to the constant power r (power rule).
func (x Vector[F, A]) Pow(r F) Vector[F, A] {
	return x.chain(
		func(v F) F { return lanes.Pow(v, r) },
		func(v F) F { return dPow(v, r) },
	)
}

// Sqrt returns x.Pow(0.5).
func (x Vector[F, A]) Sqrt() Vector[F, A] {
	return x.Pow(0.5)
}

// Exp returns e^x. Both the value and the derivative factor are the
// exponential of the input slot.
func (x Vector[F, A]) Exp() Vector[F, A] {
	return x.chain(lanes.Exp[F], lanes.Exp[F])
}

// Ln returns the natural logarithm of x.
func (x Vector[F, A]) Ln() Vector[F, A] {
	return x.chain(lanes.Ln[F], dLn[F])
}

// Log returns the logarithm of x in the given base.
func (x Vector[F, A]) Log(base F) Vector[F, A] {
	lnBase := lanes.Ln(base)
	return x.chain(
		func(v F) F { return lanes.Log(v, base) },
		func(v F) F { return dLog(v, lnBase) },
	)
}

// Sin returns sin(x).
func (x Vector[F, A]) Sin() Vector[F, A] {
	return x.chain(lanes.Sin[F], dSin[F])
}

// Cos returns cos(x).
func (x Vector[F, A]) Cos() Vector[F, A] {
	return x.chain(lanes.Cos[F], dCos[F])
}

// Tan returns tan(x).
func (x Vector[F, A]) Tan() Vector[F, A] {
	return x.chain(lanes.Tan[F], dTan[F])
}

// Asin returns arcsin(x).
func (x Vector[F, A]) Asin() Vector[F, A] {
	return x.chain(lanes.Asin[F], dAsin[F])
}

// Acos returns arccos(x).
func (x Vector[F, A]) Acos() Vector[F, A] {
	return x.chain(lanes.Acos[F], dAcos[F])
}

// Atan returns arctan(x).
func (x Vector[F, A]) Atan() Vector[F, A] {
	return x.chain(lanes.Atan[F], dAtan[F])
}
