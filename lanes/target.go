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
	"sync"

	"golang.org/x/sys/cpu"
)

// Feature is a named CPU capability and whether the running CPU has it.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Target describes the machine the lane kernels run on.
type Target struct {
	GOOS   string
	GOARCH string
	NumCPU int
	// Name is the widest vector extension detected ("avx512", "avx2",
	// "sse2", "neon" or "scalar").
	Name string
	// VectorBytes is the register width of Name in bytes.
	VectorBytes int
	Features    []Feature
}

var (
	targetOnce sync.Once
	target     Target
)

// CurrentTarget returns the detected target. Detection runs once.
func CurrentTarget() Target {
	targetOnce.Do(func() {
		target = detectTarget()
	})
	return target
}

// MaxLanes returns how many F values fit in one vector register of the
// current target, or 1 on scalar targets.
func MaxLanes[F Float]() int {
	var zero F
	size := 8
	if _, ok := any(zero).(float32); ok {
		size = 4
	}
	t := CurrentTarget()
	if t.VectorBytes < size {
		return 1
	}
	return t.VectorBytes / size
}

func detectTarget() Target {
	t := Target{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		Name:        "scalar",
		VectorBytes: 0,
	}
	switch runtime.GOARCH {
	case "amd64":
		t.Features = amd64Features()
		switch {
		case cpu.X86.HasAVX512F:
			t.Name, t.VectorBytes = "avx512", 64
		case cpu.X86.HasAVX2:
			t.Name, t.VectorBytes = "avx2", 32
		default:
			// SSE2 is baseline for amd64.
			t.Name, t.VectorBytes = "sse2", 16
		}
	case "arm64":
		t.Features = arm64Features()
		// NEON is baseline for arm64.
		t.Name, t.VectorBytes = "neon", 16
	}
	return t
}

func amd64Features() []Feature {
	return []Feature{
		{Name: "AVX", Present: cpu.X86.HasAVX},
		{Name: "AVX2", Present: cpu.X86.HasAVX2},
		{Name: "AVX512F", Present: cpu.X86.HasAVX512F},
		{Name: "AVX512BW", Present: cpu.X86.HasAVX512BW},
		{Name: "AVX512VL", Present: cpu.X86.HasAVX512VL},
		{Name: "FMA", Present: cpu.X86.HasFMA},
		{Name: "SSE2", Present: cpu.X86.HasSSE2},
		{Name: "SSE41", Present: cpu.X86.HasSSE41},
		{Name: "SSE42", Present: cpu.X86.HasSSE42},
	}
}

func arm64Features() []Feature {
	return []Feature{
		{Name: "ASIMD", Present: cpu.ARM64.HasASIMD, Note: "NEON baseline"},
		{Name: "FP", Present: cpu.ARM64.HasFP, Note: "floating point"},
		{Name: "FPHP", Present: cpu.ARM64.HasFPHP, Note: "FP16 scalar, ARMv8.2-A"},
		{Name: "ASIMDHP", Present: cpu.ARM64.HasASIMDHP, Note: "FP16 NEON, ARMv8.2-A"},
		{Name: "ASIMDFHM", Present: cpu.ARM64.HasASIMDFHM, Note: "FP16 FMA, ARMv8.4-A"},
		{Name: "SVE", Present: cpu.ARM64.HasSVE, Note: "Scalable Vector Extension"},
		{Name: "SVE2", Present: cpu.ARM64.HasSVE2},
	}
}
