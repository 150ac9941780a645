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

import "math"

// maxULP is the accepted distance between a computed and a reference value.
const maxULP = 4

// ulpDistance64 returns how many float64 units in the last place separate a
// and b. NaN matches NaN and infinities match infinities of the same sign.
func ulpDistance64(a, b float64) float64 {
	if a == b {
		return 0
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return 0
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return math.Inf(1)
	}
	diff := math.Abs(a - b)
	ulp := math.Abs(math.Nextafter(b, math.Inf(1)) - b)
	if ulp == 0 {
		ulp = 5e-324 // Smallest positive float64
	}
	return diff / ulp
}

// ulpDistance32 is ulpDistance64 for float32.
func ulpDistance32(a, b float32) float32 {
	if a == b {
		return 0
	}
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return 0
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return float32(math.Inf(1))
	}
	diff := math.Abs(float64(a - b))
	ulp := math.Abs(float64(math.Nextafter32(b, float32(math.Inf(1))) - b))
	if ulp == 0 {
		ulp = 1e-45 // Smallest positive float32
	}
	return float32(diff / ulp)
}
