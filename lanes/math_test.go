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

import (
	"math"
	"testing"
)

func TestMathFloat64(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Exp(1)", Exp(1.0), math.Exp(1)},
		{"Ln(2)", Ln(2.0), math.Ln2},
		{"Log(8, 2)", Log(8.0, 2.0), 3},
		{"Pow(2, 10)", Pow(2.0, 10.0), 1024},
		{"Sqrt(2)", Sqrt(2.0), math.Sqrt2},
		{"Sin(1)", Sin(1.0), 0.8414709848078965},
		{"Cos(1)", Cos(1.0), 0.5403023058681398},
		{"Tan(1)", Tan(1.0), 1.5574077246549023},
		{"Asin(0.5)", Asin(0.5), 0.5235987755982989},
		{"Acos(0.5)", Acos(0.5), 1.0471975511965979},
		{"Atan(0.5)", Atan(0.5), 0.4636476090008061},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-15*math.Max(1, math.Abs(tt.want)) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMathFloat32(t *testing.T) {
	// float32 results are the float64 result rounded once.
	if got, want := Exp(float32(1)), float32(math.E); got != want {
		t.Errorf("Exp(float32(1)) = %v, want %v", got, want)
	}
	if got, want := Sin(float32(1)), float32(math.Sin(1)); got != want {
		t.Errorf("Sin(float32(1)) = %v, want %v", got, want)
	}
	if got, want := Ln(float32(2)), float32(math.Ln2); got != want {
		t.Errorf("Ln(float32(2)) = %v, want %v", got, want)
	}
}

func TestMathDomainErrors(t *testing.T) {
	if got := Asin(2.0); !math.IsNaN(got) {
		t.Errorf("Asin(2) = %v, want NaN", got)
	}
	if got := Acos(-2.0); !math.IsNaN(got) {
		t.Errorf("Acos(-2) = %v, want NaN", got)
	}
	if got := Ln(-1.0); !math.IsNaN(got) {
		t.Errorf("Ln(-1) = %v, want NaN", got)
	}
	if got := Ln(0.0); !math.IsInf(got, -1) {
		t.Errorf("Ln(0) = %v, want -Inf", got)
	}
	if got := Sqrt(float32(-1)); !math.IsNaN(float64(got)) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
}
