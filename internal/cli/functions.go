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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ezdiff/internal/functions"
)

func newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "functions",
		Aliases: []string{"ls"},
		Short:   "List the registered functions",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVARIABLES\tEXPRESSION")
			for _, f := range functions.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, "x", f.Expr)
			}
			for _, g := range functions.AllGradients() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Name, "x,y", g.Expr)
			}
			tw.Flush()
		},
	}
}
