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

// Command ezdiff evaluates example functions and their exact derivatives
// using forward-mode automatic differentiation.
package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/ajroetker/go-ezdiff/internal/cli"
)

func main() {
	err := cli.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ezdiff: %v\n", err)
		os.Exit(1)
	}
}
