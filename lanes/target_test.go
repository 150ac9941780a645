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
	"runtime"
	"testing"
)

func TestCurrentTarget(t *testing.T) {
	tgt := CurrentTarget()
	if tgt.GOARCH != runtime.GOARCH {
		t.Errorf("GOARCH = %q, want %q", tgt.GOARCH, runtime.GOARCH)
	}
	if tgt.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", tgt.NumCPU)
	}

	switch runtime.GOARCH {
	case "amd64":
		if tgt.VectorBytes < 16 {
			t.Errorf("amd64 VectorBytes = %d, want >= 16", tgt.VectorBytes)
		}
		if len(tgt.Features) == 0 {
			t.Error("amd64 reported no features")
		}
	case "arm64":
		if tgt.Name != "neon" {
			t.Errorf("arm64 Name = %q, want neon", tgt.Name)
		}
	default:
		if tgt.Name != "scalar" {
			t.Errorf("Name = %q, want scalar", tgt.Name)
		}
	}

	// Detection is cached.
	again := CurrentTarget()
	if again.Name != tgt.Name || again.VectorBytes != tgt.VectorBytes {
		t.Errorf("CurrentTarget changed between calls: %+v then %+v", tgt, again)
	}
}

func TestMaxLanes(t *testing.T) {
	n32 := MaxLanes[float32]()
	n64 := MaxLanes[float64]()
	if n32 < 1 || n64 < 1 {
		t.Fatalf("MaxLanes = %d/%d, want >= 1", n32, n64)
	}
	if CurrentTarget().VectorBytes >= 8 && n32 != 2*n64 {
		t.Errorf("MaxLanes[float32] = %d, want twice MaxLanes[float64] = %d", n32, n64)
	}
}
