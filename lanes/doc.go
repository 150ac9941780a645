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

// Package lanes provides element-wise operations over fixed-width arrays of
// floating-point values.
//
// A lane array is any Go array type [N]F where F is float32 or float64 and N
// is between 1 and 16. The width is part of the type, so mixing widths or
// element types is rejected by the compiler rather than checked at runtime:
//
//	a := lanes.Broadcast[float32, [4]float32](2)
//	b := lanes.Broadcast[float32, [4]float32](3)
//	c := lanes.Mul[float32](a, b) // [6 6 6 6]
//
// The element type cannot be inferred from the array type alone, so callers
// name F explicitly; A is inferred from the arguments where it appears.
//
// Every operation takes its operands by value and returns a new array; there
// is no aliasing and no allocation.
//
// # Elementary Functions
//
// The package also provides generic scalar versions of the elementary
// functions (Exp, Ln, Log, Pow, Sin, Cos, Tan, Asin, Acos, Atan, Sqrt).
// They evaluate in float64 and round to F, so float32 results are the
// correctly rounded float64 result.
//
// # Target Information
//
// CurrentTarget describes the CPU the process runs on, as detected by
// golang.org/x/sys/cpu. It is diagnostic only; all kernels in this package
// are portable Go.
package lanes
