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

// Broadcast creates an array with all lanes set to the same value.
func Broadcast[F Float, A Width[F]](value F) A {
	var out A
	for i := range len(out) {
		out[i] = value
	}
	return out
}

// Zero creates an array with all lanes set to zero.
func Zero[F Float, A Width[F]]() A {
	var out A
	return out
}

// Basis creates an array that is one in lane i and zero elsewhere.
// It panics if i is out of range for A.
func Basis[F Float, A Width[F]](i int) A {
	var out A
	out[i] = 1
	return out
}

// Add performs element-wise addition.
func Add[F Float, A Width[F]](a, b A) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub performs element-wise subtraction.
func Sub[F Float, A Width[F]](a, b A) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] - b[i]
	}
	return out
}

// Mul performs element-wise multiplication.
func Mul[F Float, A Width[F]](a, b A) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div performs element-wise division.
// Division by zero follows IEEE 754: ±Inf for a nonzero numerator, NaN for 0/0.
func Div[F Float, A Width[F]](a, b A) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] / b[i]
	}
	return out
}

// Neg negates all lanes.
func Neg[F Float, A Width[F]](a A) A {
	var out A
	for i := range len(out) {
		out[i] = -a[i]
	}
	return out
}

// AddScalar adds c to every lane.
func AddScalar[F Float, A Width[F]](a A, c F) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] + c
	}
	return out
}

// MulScalar multiplies every lane by c.
func MulScalar[F Float, A Width[F]](a A, c F) A {
	var out A
	for i := range len(out) {
		out[i] = a[i] * c
	}
	return out
}

// MulAdd computes a*b + c*d lane by lane, rounding each product separately.
func MulAdd[F Float, A Width[F]](a, b, c, d A) A {
	var out A
	for i := range len(out) {
		out[i] = F(a[i]*b[i]) + F(c[i]*d[i])
	}
	return out
}

// Map applies fn to every lane.
func Map[F Float, A Width[F]](a A, fn func(F) F) A {
	var out A
	for i := range len(out) {
		out[i] = fn(a[i])
	}
	return out
}

// Sum adds all lanes.
func Sum[F Float, A Width[F]](a A) F {
	var sum F
	for i := range len(a) {
		sum += a[i]
	}
	return sum
}
