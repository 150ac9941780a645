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

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ezdiff/lanes"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the CPU target the lane kernels run on",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printTarget(cmd.OutOrStdout(), lanes.CurrentTarget())
		},
	}
}

func printTarget(w io.Writer, t lanes.Target) {
	fmt.Fprintf(w, "GOOS: %s\n", t.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", t.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", t.NumCPU)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Vector extension: %s\n", t.Name)
	fmt.Fprintf(w, "Vector width: %d bytes\n", t.VectorBytes)
	fmt.Fprintf(w, "Lanes per register: float32=%d float64=%d\n",
		lanes.MaxLanes[float32](), lanes.MaxLanes[float64]())
	fmt.Fprintf(w, "Max dual vector width: %d\n", lanes.MaxWidth)

	if len(t.Features) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "=== %s features ===\n", t.GOARCH)
	for _, f := range t.Features {
		if f.Note != "" {
			fmt.Fprintf(w, "  Has%-9s %v (%s)\n", f.Name+":", f.Present, f.Note)
			continue
		}
		fmt.Fprintf(w, "  Has%-9s %v\n", f.Name+":", f.Present)
	}
}
