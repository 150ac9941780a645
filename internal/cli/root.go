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

// Package cli implements the ezdiff command line.
package cli

import (
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-ezdiff/internal/config"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	output     string
	lang       string
}

// NewRootCommand builds the ezdiff command tree writing to out.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "ezdiff",
		Short: "Forward-mode automatic differentiation with dual numbers",
		Long: `ezdiff evaluates example functions together with their exact
derivatives, computed by propagating dual numbers through each operation.

Single-variable functions run on scalar dual numbers in float32 or float64.
Two-variable functions run on two-slot vector dual numbers, one slot per
partial derivative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	goflags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goflags)
	root.PersistentFlags().AddGoFlagSet(goflags)
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv(config.EnvVar),
		"batch file (.toml, .yaml) listing evaluations; defaults to $"+config.EnvVar)
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "output format: text, yaml or toml")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "en", "BCP 47 language tag for text output")

	root.AddCommand(
		newEvalCommand(opts),
		newGradCommand(opts),
		newFunctionsCommand(),
		newInfoCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the ezdiff command with the process arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}
