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

// Derivative factors f'(v) of the elementary functions. Scalar and Vector
// both go through these so a slot and a scalar round identically.

func dLn[F Float](v F) F { return 1 / v }

func dSin[F Float](v F) F { return lanes.Cos(v) }

func dCos[F Float](v F) F { return -lanes.Sin(v) }

func dTan[F Float](v F) F {
	c := lanes.Cos(v)
	return 1 / (c * c)
}

func dAsin[F Float](v F) F { return 1 / lanes.Sqrt(1-v*v) }

func dAcos[F Float](v F) F { return -1 / lanes.Sqrt(1-v*v) }

func dAtan[F Float](v F) F { return 1 / (1 + v*v) }

// dLog returns the factor of log_base for a precomputed ln(base).
func dLog[F Float](v, lnBase F) F { return 1 / (lnBase * v) }

// dPow returns the power rule factor r·v^(r-1).
func dPow[F Float](v, r F) F { return r * lanes.Pow(v, r-1) }

// dConstPow returns the factor ln(base)·base^v for a precomputed ln(base).
func dConstPow[F Float](v, base, lnBase F) F { return lnBase * lanes.Pow(base, v) }

// mulAdd returns a·b + c·d with each product rounded before the sum.
func mulAdd[F Float](a, b, c, d F) F { return F(a*b) + F(c*d) }
