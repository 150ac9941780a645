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

// Command dualgen generates the fixed-width pieces of the lanes and dual
// packages: the Width constraint listing every supported array length, and
// the VecN aliases with their constructors.
//
// Usage (from package lanes):
//
//	//go:generate go run ../cmd/dualgen --max 16 --lanes widths_gen.go --dual ../dual/vec_gen.go
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

func main() {
	g := &Generator{}
	flag.IntVar(&g.MaxWidth, "max", 16, "largest vector width to generate")
	flag.StringVar(&g.LanesOutput, "lanes", "", "output file for the Width constraint")
	flag.StringVar(&g.DualOutput, "dual", "", "output file for the VecN aliases")
	flag.StringVar(&g.LanesPackage, "lanes-pkg", "lanes", "package name for --lanes output")
	flag.StringVar(&g.DualPackage, "dual-pkg", "dual", "package name for --dual output")
	flag.BoolVarP(&g.Verbose, "verbose", "v", false, "report written files")
	flag.Parse()

	if g.LanesOutput == "" && g.DualOutput == "" {
		fmt.Fprintln(os.Stderr, "dualgen: at least one of --lanes or --dual is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dualgen: %v\n", err)
		os.Exit(1)
	}
}
