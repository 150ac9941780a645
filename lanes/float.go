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

//go:generate go run ../cmd/dualgen --max 16 --lanes widths_gen.go --dual ../dual/vec_gen.go

// Float is the set of element types a lane array may hold.
type Float interface {
	~float32 | ~float64
}

// MaxWidth is the largest array length accepted by Width.
const MaxWidth = 16

// Len returns the number of lanes in an array of type A.
func Len[F Float, A Width[F]]() int {
	var a A
	return len(a)
}
